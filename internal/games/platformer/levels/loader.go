// Package levels loads platformer level plans from YAML files.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

//go:embed campaign/*.yaml
var campaignFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Order    int
	Plan     []string
	Metadata map[string]string
	FilePath string
}

// Build parses the plan into a fresh simulation level using the default
// symbol dictionary. Coin phases are drawn from rng.
func (l *Level) Build(rng *rand.Rand) (*core.Level, error) {
	parser, err := core.NewLevelParser(core.DefaultDictionary(rng))
	if err != nil {
		return nil, err
	}
	return parser.Parse(l.Plan), nil
}

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader for level files under root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewCampaignLoader creates a loader for the built-in campaign.
func NewCampaignLoader() *Loader {
	sub, err := fs.Sub(campaignFS, "campaign")
	if err != nil {
		panic(err)
	}
	return &Loader{Root: "campaign", fsys: sub}
}

// LoadAll recursively scans and loads all level files.
// Files that cannot be read or parsed are skipped and reported in the
// second return value. Levels are sorted by order, then ID.
func (l *Loader) LoadAll() ([]Level, []error, error) {
	var (
		levels  []Level
		skipped []error
	)

	err := fs.WalkDir(l.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsLevelFile(path) {
			return nil
		}

		full := filepath.Join(l.Root, path)
		data, err := fs.ReadFile(l.fsys, path)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("reading file %s: %w", full, err))
			return nil
		}
		level, err := decode(data, full)
		if err != nil {
			skipped = append(skipped, err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortLevels(levels)
	return levels, skipped, nil
}

// LoadFile loads a single level file from disk.
func LoadFile(path string) (Level, error) {
	if !IsLevelFile(path) {
		return Level{}, fmt.Errorf("unsupported extension: %s", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return decode(data, path)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, _, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in campaign order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, _, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// IsLevelFile reports whether path has a supported level extension.
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func decode(data []byte, path string) (Level, error) {
	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Order:    parsed.Order,
		Plan:     parsed.Plan,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

func sortLevels(levels []Level) {
	sort.SliceStable(levels, func(i, j int) bool {
		if levels[i].Order != levels[j].Order {
			return levels[i].Order < levels[j].Order
		}
		return levels[i].ID < levels[j].ID
	})
}
