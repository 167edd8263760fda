package leveldata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadTile is returned when a text map holds a tile that is not a digit.
var ErrBadTile = errors.New("tile is not a digit")

// TileError locates a bad tile in a text map.
type TileError struct {
	Room, Row, Col int
	Char           byte
}

func (e *TileError) Error() string {
	return fmt.Sprintf("room %d row %d col %d: %q: %v", e.Room, e.Row, e.Col, e.Char, ErrBadTile)
}

func (e *TileError) Unwrap() error { return ErrBadTile }

// ParseText reads the human-authored map format: per room a header line
// "X Y W H", then H rows of exactly W digits, rows ending in CRLF.
func ParseText(r io.Reader) ([]RoomRecord, error) {
	br := bufio.NewReader(r)
	var rooms []RoomRecord

	for {
		line, err := readLine(br)
		if errors.Is(err, io.EOF) && line == "" {
			return rooms, nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("room %d header: %w", len(rooms), err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		room, err := parseHeader(line)
		if err != nil {
			return nil, fmt.Errorf("room %d header: %w", len(rooms), err)
		}
		if err := readGrid(br, len(rooms), &room); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
}

// Compile converts a text map into the binary map format.
func Compile(src io.Reader, dst io.Writer) error {
	rooms, err := ParseText(src)
	if err != nil {
		return fmt.Errorf("parse text map: %w", err)
	}
	if err := WriteRooms(dst, rooms); err != nil {
		return fmt.Errorf("write binary map: %w", err)
	}
	return nil
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

func parseHeader(line string) (RoomRecord, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return RoomRecord{}, fmt.Errorf("want 4 fields, got %d in %q", len(fields), line)
	}
	var vals [4]int32
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return RoomRecord{}, fmt.Errorf("field %d: %w", i, err)
		}
		vals[i] = int32(v)
	}
	if err := checkSize(vals[2], vals[3]); err != nil {
		return RoomRecord{}, err
	}
	return RoomRecord{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

func readGrid(br *bufio.Reader, roomIndex int, room *RoomRecord) error {
	w, h := int(room.W), int(room.H)
	room.Tiles = make([]Tile, 0, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, err := br.ReadByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = io.ErrUnexpectedEOF
				}
				return fmt.Errorf("room %d row %d: %w", roomIndex, y, err)
			}
			if c < '0' || c > '9' {
				return &TileError{Room: roomIndex, Row: y, Col: x, Char: c}
			}
			room.Tiles = append(room.Tiles, Tile(c-'0'))
		}
		if err := skipLineEnd(br); err != nil {
			return fmt.Errorf("room %d row %d: %w", roomIndex, y, err)
		}
	}
	return nil
}

// skipLineEnd consumes CRLF or LF. End of input also ends a row.
func skipLineEnd(br *bufio.Reader) error {
	c, err := br.ReadByte()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	if c == '\r' {
		c, err = br.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	if c != '\n' {
		return fmt.Errorf("row longer than room width: %q", c)
	}
	return nil
}
