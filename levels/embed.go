package levels

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/spookymaze/common"
	"github.com/milk9111/spookymaze/obj"
)

//go:embed *.txt
var LevelsFS embed.FS

var (
	ErrNoLevels    = errors.New("levels: no level files")
	ErrNoEntrance  = errors.New("no entrance door in the first column")
	ErrNoExit      = errors.New("no exit door in the last column")
	ErrLevelLayout = errors.New("bad level layout")
)

// Names lists the embedded level files in order.
func Names() []string {
	entries, err := fs.Glob(LevelsFS, "level-*.txt")
	if err != nil {
		return nil
	}
	sort.Strings(entries)
	return entries
}

// Count returns how many levels Generate chooses from.
func Count() int {
	return len(Names())
}

// Load reads a level by file name. A file under dir/levels/ wins over the
// embedded copy; an empty dir skips the disk lookup.
func Load(dir, name string) (*obj.Level, error) {
	data, err := read(dir, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	l, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	l.Name = name
	return l, nil
}

func read(dir, name string) ([]byte, error) {
	if dir != "" {
		if data, err := os.ReadFile(filepath.Join(dir, "levels", name)); err == nil {
			return data, nil
		}
	}
	return fs.ReadFile(LevelsFS, name)
}

// Parse reads LevelH rows of LevelW tile characters. Spaces are ignored and
// blank lines after the last row are allowed.
func Parse(r io.Reader) (*obj.Level, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		row := strings.ReplaceAll(strings.TrimRight(sc.Text(), "\r"), " ", "")
		if row == "" {
			continue
		}
		if len(rows) == common.LevelH {
			return nil, fmt.Errorf("%w: more than %d rows", ErrLevelLayout, common.LevelH)
		}
		if len(row) != common.LevelW {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrLevelLayout, len(rows), len(row), common.LevelW)
		}
		for x := 0; x < len(row); x++ {
			if !common.Tile(row[x]).Valid() {
				return nil, fmt.Errorf("%w: unknown tile %q at %d,%d", ErrLevelLayout, row[x], x, len(rows))
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) != common.LevelH {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrLevelLayout, len(rows), common.LevelH)
	}

	l := obj.NewLevelFromRows(rows...)
	if _, ok := l.Entrance(); !ok {
		return nil, ErrNoEntrance
	}
	if _, ok := l.Exit(); !ok {
		return nil, ErrNoExit
	}
	return l, nil
}

// Mirror swaps the level left to right.
func Mirror(l *obj.Level) {
	for y := range l.Tiles {
		for x, i := 0, common.LevelW-1; x < i; x, i = x+1, i-1 {
			l.Tiles[y][x], l.Tiles[y][i] = l.Tiles[y][i], l.Tiles[y][x]
		}
	}
	l.BuildWalls()
}

// Flip swaps the level top to bottom.
func Flip(l *obj.Level) {
	for y, i := 0, common.LevelH-1; y < i; y, i = y+1, i-1 {
		l.Tiles[y], l.Tiles[i] = l.Tiles[i], l.Tiles[y]
	}
	l.BuildWalls()
}

// Generate picks a random level and mirrors and flips it with even odds
// each.
func Generate(rng *rand.Rand, dir string) (*obj.Level, error) {
	names := Names()
	if len(names) == 0 {
		return nil, ErrNoLevels
	}
	l, err := Load(dir, names[rng.Intn(len(names))])
	if err != nil {
		return nil, err
	}
	if rng.Intn(2) == 1 {
		Mirror(l)
	}
	if rng.Intn(2) == 1 {
		Flip(l)
	}
	return l, nil
}
