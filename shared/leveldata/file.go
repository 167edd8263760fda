package leveldata

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ReadMapFile returns the binary encoding of the map stored at name in fsys.
// Text (.txt) and Tiled (.tmx) maps are converted on the way; anything else is
// read as a binary map.
func ReadMapFile(fsys fs.FS, name string) ([]byte, error) {
	var buf bytes.Buffer
	switch strings.ToLower(path.Ext(name)) {
	case ".txt":
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open map: %w", err)
		}
		defer f.Close()
		if err := Compile(f, &buf); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	case ".tmx":
		rooms, err := ImportTMX(fsys, name)
		if err != nil {
			return nil, err
		}
		if err := WriteRooms(&buf, rooms); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	default:
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read map: %w", err)
		}
		return data, nil
	}
	return buf.Bytes(), nil
}
