// mapconv converts a text or Tiled room map into the binary map format.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/roomrunner/shared/leveldata"
)

func main() {
	out := flag.String("o", "", "Output file (default: input name with .bin)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: mapconv [-o out.bin] <map.txt|map.tmx>")
		os.Exit(1)
	}
	in := flag.Arg(0)
	if *out == "" {
		*out = strings.TrimSuffix(in, filepath.Ext(in)) + ".bin"
	}

	if err := convert(in, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convert(in, out string) error {
	dir, name := filepath.Split(filepath.Clean(in))
	if dir == "" {
		dir = "."
	}
	data, err := leveldata.ReadMapFile(os.DirFS(dir), filepath.ToSlash(name))
	if err != nil {
		return err
	}

	records, err := leveldata.ReadRooms(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("verify %s: %w", in, err)
	}
	m := leveldata.Build(records)

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Printf("%s -> %s: %d rooms, %d walls, %d semi-solids, %d spawners, spawn=%v\n",
		in, out, len(m.Rooms), len(m.Walls), len(m.SemiSolids), countSpawners(m), m.HasSpawn)
	for _, u := range m.Unknown {
		fmt.Fprintf(os.Stderr, "warning: room %d: unknown tile %v at (%.0f, %.0f)\n", u.Room, u.Code, u.Pos.X, u.Pos.Y)
	}
	return nil
}

func countSpawners(m *leveldata.Map) int {
	n := 0
	for _, r := range m.Rooms {
		n += len(r.Spawners)
	}
	return n
}
