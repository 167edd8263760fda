// Package maps holds the room maps shipped with the game.
package maps

import "embed"

// FS holds every bundled map, in text form.
//
//go:embed *.txt
var FS embed.FS

// Demo is the map played when no other is given.
const Demo = "demo.txt"
