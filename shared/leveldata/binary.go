package leveldata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ReadRooms decodes room records until the stream ends. A stream that ends
// inside a record fails with io.ErrUnexpectedEOF.
func ReadRooms(r io.Reader) ([]RoomRecord, error) {
	var rooms []RoomRecord
	for {
		var header [4]int32
		err := binary.Read(r, binary.LittleEndian, &header)
		if errors.Is(err, io.EOF) {
			return rooms, nil
		}
		if err != nil {
			return nil, fmt.Errorf("room %d header: %w", len(rooms), err)
		}

		room := RoomRecord{X: header[0], Y: header[1], W: header[2], H: header[3]}
		if err := checkSize(room.W, room.H); err != nil {
			return nil, fmt.Errorf("room %d: %w", len(rooms), err)
		}

		// The buffer grows with the bytes that arrive, not with the header.
		var raw bytes.Buffer
		n := int64(room.W) * int64(room.H)
		if _, err := io.CopyN(&raw, r, n); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("room %d tiles: %w", len(rooms), err)
		}
		room.Tiles = make([]Tile, raw.Len())
		for i, b := range raw.Bytes() {
			room.Tiles[i] = Tile(b)
		}
		rooms = append(rooms, room)
	}
}

// WriteRooms encodes room records in the binary map format.
func WriteRooms(w io.Writer, rooms []RoomRecord) error {
	for i, room := range rooms {
		if len(room.Tiles) != int(room.W)*int(room.H) {
			return fmt.Errorf("room %d: %d tiles for %dx%d", i, len(room.Tiles), room.W, room.H)
		}
		header := [4]int32{room.X, room.Y, room.W, room.H}
		if err := binary.Write(w, binary.LittleEndian, header); err != nil {
			return fmt.Errorf("room %d header: %w", i, err)
		}
		raw := make([]byte, len(room.Tiles))
		for j, t := range room.Tiles {
			raw[j] = byte(t)
		}
		if _, err := w.Write(raw); err != nil {
			return fmt.Errorf("room %d tiles: %w", i, err)
		}
	}
	return nil
}

// Build interprets room records: walls and semi-solids become static
// geometry, the spawn tile sets the player spawn, entity tiles become room
// spawners. Unknown codes are collected, not fatal.
func Build(records []RoomRecord) *Map {
	m := &Map{Rooms: make([]Room, 0, len(records))}

	for ri, rec := range records {
		room := Room{X: int(rec.X), Y: int(rec.Y), W: int(rec.W), H: int(rec.H)}

		for y := 0; y < room.H; y++ {
			for x := 0; x < room.W; x++ {
				tile := rec.At(x, y)
				pos := Point{
					X: float64((room.X + x) * TileUnit),
					Y: float64((room.Y + y) * TileUnit),
				}

				switch {
				case tile == TileNone:
				case tile == TileWall:
					m.Walls = append(m.Walls, pos)
				case tile == TileSemiSolid:
					m.SemiSolids = append(m.SemiSolids, pos)
				case tile == TileSpawn:
					m.Spawn = pos
					m.HasSpawn = true
				case tile.IsSpawner():
					room.Spawners = append(room.Spawners, Spawner{Tile: tile, Pos: pos})
				default:
					m.Unknown = append(m.Unknown, UnknownTile{Room: ri, Code: tile, Pos: pos})
				}
			}
		}

		m.Rooms = append(m.Rooms, room)
	}

	return m
}
