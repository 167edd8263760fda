package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

const (
	tmxTileLayer = "tiles"
	tmxRoomGroup = "rooms"
	tmxCodeProp  = "code"
)

// ImportTMX converts a Tiled map into room records. Room rectangles come from
// the "rooms" object group (pixels, tile aligned); tile codes come from the
// "tiles" layer, using a tile's "code" property when present and its local id
// plus one otherwise. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func ImportTMX(fsys fs.FS, tmxPath string) ([]RoomRecord, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == tmxTileLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("TMX %s: no %q layer", tmxPath, tmxTileLayer)
	}

	codeAt := func(x, y int) Tile {
		if x < 0 || y < 0 || x >= levelMap.Width || y >= levelMap.Height {
			return TileNone
		}
		tile := layer.Tiles[y*levelMap.Width+x]
		if tile == nil || tile.IsNil() {
			return TileNone
		}
		if tile.Tileset != nil {
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if code := tilesetTile.Properties.GetInt(tmxCodeProp); code > 0 {
					return Tile(code)
				}
			}
		}
		return Tile(tile.ID + 1)
	}

	tw, th := float64(levelMap.TileWidth), float64(levelMap.TileHeight)
	var rooms []RoomRecord
	for _, og := range levelMap.ObjectGroups {
		if og.Name != tmxRoomGroup {
			continue
		}
		for _, o := range og.Objects {
			room := RoomRecord{
				X: int32(o.X / tw),
				Y: int32(o.Y / th),
				W: int32(o.Width / tw),
				H: int32(o.Height / th),
			}
			if err := checkSize(room.W, room.H); err != nil {
				return nil, fmt.Errorf("TMX %s room %d: %w", tmxPath, len(rooms), err)
			}
			room.Tiles = make([]Tile, 0, int(room.W)*int(room.H))
			for y := 0; y < int(room.H); y++ {
				for x := 0; x < int(room.W); x++ {
					room.Tiles = append(room.Tiles, codeAt(int(room.X)+x, int(room.Y)+y))
				}
			}
			rooms = append(rooms, room)
		}
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("TMX %s: no rooms in %q object group", tmxPath, tmxRoomGroup)
	}

	return rooms, nil
}
