package leveldata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureRooms is the hand-authored equivalent of fixtureText.
func fixtureRooms() []RoomRecord {
	return []RoomRecord{
		{X: 0, Y: 0, W: 4, H: 3, Tiles: []Tile{
			1, 1, 1, 1,
			1, 2, 4, 0,
			1, 1, 7, 1,
		}},
		{X: 4, Y: 0, W: 3, H: 3, Tiles: []Tile{
			0, 0, 1,
			3, 5, 6,
			1, 1, 1,
		}},
	}
}

const fixtureText = "0 0 4 3\r\n" +
	"1111\r\n" +
	"1240\r\n" +
	"1171\r\n" +
	"4 0 3 3\r\n" +
	"001\r\n" +
	"356\r\n" +
	"111\r\n"

func encode(t *testing.T, rooms []RoomRecord) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteRooms(&buf, rooms))
	return buf.Bytes()
}

func TestBinaryLayout(t *testing.T) {
	data := encode(t, []RoomRecord{{X: 1, Y: -2, W: 2, H: 1, Tiles: []Tile{TileWall, TileSemiSolid}}})

	want := []byte{
		1, 0, 0, 0,
		0xfe, 0xff, 0xff, 0xff,
		2, 0, 0, 0,
		1, 0, 0, 0,
		1, 7,
	}
	assert.Equal(t, want, data)
}

func TestReadRoomsRoundTrip(t *testing.T) {
	rooms, err := ReadRooms(bytes.NewReader(encode(t, fixtureRooms())))
	require.NoError(t, err)
	assert.Equal(t, fixtureRooms(), rooms)
}

func TestReadRoomsEmpty(t *testing.T) {
	rooms, err := ReadRooms(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestReadRoomsTruncated(t *testing.T) {
	data := encode(t, fixtureRooms())

	for _, cut := range []int{3, 16, 20, len(data) - 1} {
		_, err := ReadRooms(bytes.NewReader(data[:cut]))
		require.Error(t, err, "cut at %d", cut)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF, "cut at %d", cut)
	}
}

func TestReadRoomsHugeHeader(t *testing.T) {
	tests := []struct {
		name string
		w, h int32
	}{
		{"max int32", 2147483647, 2147483647},
		{"fifty thousand square", 50000, 50000},
		{"one over cap", MaxRoomTiles + 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := []byte{0, 0, 0, 0, 0, 0, 0, 0}
			header = binary.LittleEndian.AppendUint32(header, uint32(tt.w))
			header = binary.LittleEndian.AppendUint32(header, uint32(tt.h))

			_, err := ReadRooms(bytes.NewReader(header))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRoomTooLarge)
		})
	}
}

func TestReadRoomsLargeHeaderShortBody(t *testing.T) {
	header := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	header = binary.LittleEndian.AppendUint32(header, 1024)
	header = binary.LittleEndian.AppendUint32(header, 1024)
	header = append(header, 1, 1, 1)

	_, err := ReadRooms(bytes.NewReader(header))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestParseTextHugeHeader(t *testing.T) {
	for _, text := range []string{
		"0 0 2147483647 2147483647\r\n",
		"0 0 50000 50000\r\n0000\r\n",
	} {
		_, err := ParseText(strings.NewReader(text))
		require.Error(t, err, text)
		assert.ErrorIs(t, err, ErrRoomTooLarge, text)
	}
}

func TestParseTextNegativeSize(t *testing.T) {
	_, err := ParseText(strings.NewReader("0 0 -1 2\r\n"))
	assert.ErrorContains(t, err, "negative size")
}

func TestCompileMatchesHandAuthoredBinary(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Compile(strings.NewReader(fixtureText), &out))
	assert.Equal(t, encode(t, fixtureRooms()), out.Bytes())

	rooms, err := ReadRooms(&out)
	require.NoError(t, err)
	assert.Equal(t, Build(fixtureRooms()), Build(rooms))
}

func TestParseTextTolerantLineEnds(t *testing.T) {
	text := "\n0 0 2 2\n11\n01"
	rooms, err := ParseText(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, []Tile{1, 1, 0, 1}, rooms[0].Tiles)
}

func TestCompileRejectsNonDigit(t *testing.T) {
	text := "0 0 3 2\r\n111\r\n1x1\r\n"
	err := Compile(strings.NewReader(text), io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadTile)

	var tileErr *TileError
	require.True(t, errors.As(err, &tileErr))
	assert.Equal(t, TileError{Room: 0, Row: 1, Col: 1, Char: 'x'}, *tileErr)
}

func TestParseTextBadHeader(t *testing.T) {
	_, err := ParseText(strings.NewReader("0 0 3\r\n111\r\n"))
	assert.Error(t, err)
}

func TestParseTextRowTooLong(t *testing.T) {
	_, err := ParseText(strings.NewReader("0 0 2 1\r\n111\r\n"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	m := Build(fixtureRooms())

	require.Len(t, m.Rooms, 2)
	assert.Equal(t, Room{X: 0, Y: 0, W: 4, H: 3, Spawners: []Spawner{
		{Tile: TileBonus, Pos: Point{X: 64, Y: 32}},
	}}, m.Rooms[0])
	assert.Equal(t, []Spawner{
		{Tile: TileSpring, Pos: Point{X: 128, Y: 32}},
		{Tile: TileSpike, Pos: Point{X: 160, Y: 32}},
		{Tile: TileMovingBlock, Pos: Point{X: 192, Y: 32}},
	}, m.Rooms[1].Spawners)

	assert.True(t, m.HasSpawn)
	assert.Equal(t, Point{X: 32, Y: 32}, m.Spawn)
	assert.Equal(t, []Point{{X: 64, Y: 64}}, m.SemiSolids)
	assert.Len(t, m.Walls, 4+1+3+1+3)
	assert.Contains(t, m.Walls, Point{X: 192, Y: 0})
	assert.Empty(t, m.Unknown)
}

func TestBuildCollectsUnknownTiles(t *testing.T) {
	m := Build([]RoomRecord{{X: 1, Y: 1, W: 2, H: 1, Tiles: []Tile{9, 1}}})

	require.Len(t, m.Unknown, 1)
	assert.Equal(t, UnknownTile{Room: 0, Code: 9, Pos: Point{X: 32, Y: 32}}, m.Unknown[0])
	assert.Equal(t, []Point{{X: 64, Y: 32}}, m.Walls)
	assert.Equal(t, "Tile(9)", Tile(9).String())
}

const fixtureTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="2">
 <tileset firstgid="1" name="codes" tilewidth="32" tileheight="32" tilecount="8" columns="8">
  <tile id="4">
   <properties>
    <property name="code" type="int" value="7"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="tiles" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,3,0,5,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="rooms">
  <object id="1" x="0" y="0" width="96" height="96"/>
 </objectgroup>
</map>
`

func TestImportTMX(t *testing.T) {
	fsys := fstest.MapFS{"maps/level.tmx": {Data: []byte(fixtureTMX)}}

	rooms, err := ImportTMX(fsys, "maps/level.tmx")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, RoomRecord{X: 0, Y: 0, W: 3, H: 3, Tiles: []Tile{
		1, 1, 1,
		1, 3, 0,
		1, 1, 1,
	}}, rooms[0])
}

func TestImportTMXCodeProperty(t *testing.T) {
	tmx := strings.Replace(fixtureTMX, `width="96"`, `width="128"`, 1)
	fsys := fstest.MapFS{"level.tmx": {Data: []byte(tmx)}}

	rooms, err := ImportTMX(fsys, "level.tmx")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, TileSemiSolid, rooms[0].At(3, 1))
}

func TestImportTMXMissingFile(t *testing.T) {
	_, err := ImportTMX(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}
