package maze

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/INLOpen/hollow"
)

const sampleMaze = `#####
#P.S#
#.#.#
#M..E
#####
`

// fixedTreasures hands every hollow the same three treasures with ratios
// 5, 3 and 1.
func fixedTreasures() []hollow.Treasure {
	return []hollow.Treasure{
		{Name: "A", Weight: 2, Value: 10},
		{Name: "B", Weight: 3, Value: 9},
		{Name: "C", Weight: 1, Value: 1},
	}
}

func mustLoad(t *testing.T, src string, opts ...Option) *Maze {
	t.Helper()
	opts = append([]Option{WithTreasureSource(fixedTreasures)}, opts...)
	m, err := Load(strings.NewReader(src), opts...)
	require.NoError(t, err)
	return m
}

func names(treasures []hollow.Treasure) []string {
	out := make([]string, len(treasures))
	for i, t := range treasures {
		out[i] = t.Name
	}
	return out
}

func TestLoad(t *testing.T) {
	m := mustLoad(t, sampleMaze)

	assert.Equal(t, 5, m.Rows)
	assert.Equal(t, 5, m.Cols)
	assert.Equal(t, Position{1, 1}, m.Start)
	assert.Equal(t, []Position{{3, 4}}, m.Exits)
	require.Len(t, m.Hollows(), 2)
	assert.NotNil(t, m.Vault())

	spooky := m.Cell(Position{1, 3})
	require.IsType(t, &hollow.Spooky{}, spooky.Hollow)
	assert.Equal(t, 3, spooky.Hollow.Len())

	mystical := m.Cell(Position{3, 1})
	require.IsType(t, &hollow.Mystical{}, mystical.Hollow)
	assert.Equal(t, 3, m.Vault().Len())

	// Empty tiles are drawn as blanks.
	want := strings.ReplaceAll(strings.TrimRight(sampleMaze, "\n"), ".", " ")
	assert.Equal(t, want, m.String())
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		code ErrorCode
	}{
		{"Empty", "\n\n", ErrEmptyMaze},
		{"Uneven", "PSE\nPS\n", ErrUnevenRows},
		{"NoStart", "#SE#\n", ErrMissingStart},
		{"NoExit", "#SP#\n", ErrMissingExit},
		{"TwoStarts", "PSPE\n", ErrMultipleStarts},
		{"NoHollows", "P..E\n", ErrNoHollows},
		{"InvalidTile", "PSXE\n", ErrInvalidTile},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.src), WithTreasureSource(fixedTreasures))
			require.Error(t, err)
			assert.True(t, IsErrorCode(err, tc.code), "got %v", err)

			var merr Error
			require.True(t, errors.As(err, &merr))
			assert.Equal(t, tc.code, merr.ErrorCode)
		})
	}
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "ErrInvalidTile", ErrInvalidTile.String())
	assert.Equal(t, "Unknown ErrorCode (99)", ErrorCode(99).String())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleMaze), 0o600))

	m, err := LoadFile(path, WithTreasureSource(fixedTreasures))
	require.NoError(t, err)
	assert.Len(t, m.Hollows(), 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, IsErrorCode(err, ErrReadFailed))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_WithVaultResets(t *testing.T) {
	vault := hollow.NewVault()
	first := mustLoad(t, "PMME\n", WithVault(vault))
	require.Same(t, vault, first.Vault())
	_, ok := first.Cell(Position{0, 1}).Hollow.ExtractBest(10)
	require.True(t, ok)
	require.Equal(t, 2, vault.Len())

	// A new maze starts from a clean vault.
	second := mustLoad(t, "PME\n", WithVault(vault))
	assert.Equal(t, 3, second.Vault().Len())
}

func TestPositions(t *testing.T) {
	m := mustLoad(t, sampleMaze)

	assert.True(t, m.IsValidPosition(Position{1, 2}))
	assert.False(t, m.IsValidPosition(Position{0, 0}))
	assert.False(t, m.IsValidPosition(Position{-1, 2}))
	assert.False(t, m.IsValidPosition(Position{1, 5}))

	assert.Equal(t, []Position{{2, 1}, {1, 2}}, m.AvailablePositions(Position{1, 1}))
	assert.Equal(t, []Position{{2, 3}, {3, 2}, {3, 4}}, m.AvailablePositions(Position{3, 3}))
}

func TestFindWayOut(t *testing.T) {
	m := mustLoad(t, sampleMaze)

	path, ok := m.FindWayOut()
	require.True(t, ok)
	assert.Equal(t, []Position{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}, {3, 4}}, path)

	// Searching again gives the same answer.
	again, ok := m.FindWayOut()
	require.True(t, ok)
	assert.Equal(t, path, again)
}

func TestFindWayOut_Unreachable(t *testing.T) {
	m := mustLoad(t, "P#SE\n")
	path, ok := m.FindWayOut()
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestTakeTreasures(t *testing.T) {
	m := mustLoad(t, "PSMSE\n")
	path, ok := m.FindWayOut()
	require.True(t, ok)
	require.Len(t, path, 5)

	taken, ok := TakeTreasures(m.CellsAlong(path), 5)
	require.True(t, ok)
	// S: A (3 left), M: A (1 left), S: only C fits.
	assert.Equal(t, []string{"A", "A", "C"}, names(taken))
}

func TestTakeTreasures_MysticalShared(t *testing.T) {
	m := mustLoad(t, "PMME\n")
	path, ok := m.FindWayOut()
	require.True(t, ok)

	// Both hollows were given A, B and C; the vault keeps one of each, so
	// the second hollow cannot hand out A again.
	taken, ok := TakeTreasures(m.CellsAlong(path), 10)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, names(taken))
	assert.Equal(t, 1, m.Vault().Len())
}

func TestTakeTreasures_NothingTaken(t *testing.T) {
	m := mustLoad(t, "PSME\n")
	path, ok := m.FindWayOut()
	require.True(t, ok)

	taken, ok := TakeTreasures(m.CellsAlong(path), 0)
	assert.False(t, ok)
	assert.Nil(t, taken)
	for _, c := range m.Hollows() {
		assert.Equal(t, 3, c.Hollow.Len())
	}
}

func TestNew(t *testing.T) {
	s := hollow.NewSpooky(fixedTreasures())
	m := New(Position{0, 0}, []Position{{0, 3}}, []Position{{1, 1}},
		[]PlacedHollow{{s, Position{0, 2}}}, 2, 4)

	assert.Equal(t, "P SE\n #  ", m.String())
	assert.Nil(t, m.Vault())

	path, ok := m.FindWayOut()
	require.True(t, ok)
	taken, ok := TakeTreasures(m.CellsAlong(path), 1)
	require.True(t, ok)
	assert.Equal(t, []string{"C"}, names(taken))
}

func TestLoad_Logging(t *testing.T) {
	var buf bytes.Buffer
	UseLogger(btclog.NewBackend(&buf).Logger("MAZE"))
	defer DisableLog()

	mustLoad(t, sampleMaze)
	assert.Contains(t, buf.String(), "[INF] MAZE: Loaded 5x5 maze with 2 hollows and 1 exits")
}
