package asset

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/side-fighter/core"
)

//go:embed sprites.yaml
var defaultSprites []byte

// ErrSpriteNotFound is returned for names absent from the catalog
var ErrSpriteNotFound = errors.New("sprite not found")

type spriteDef struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Color  string   `yaml:"color"`
	Rows   []string `yaml:"rows"`
}

// Catalog is an in-memory Provider built from a YAML sprite sheet
type Catalog struct {
	sprites map[string]*Sprite
}

// DefaultCatalog parses the embedded sprite sheet
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultSprites)
}

// ParseCatalog builds a catalog from YAML, every entry needs a positive size
func ParseCatalog(data []byte) (*Catalog, error) {
	var defs map[string]spriteDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse sprite sheet: %w", err)
	}

	c := &Catalog{sprites: make(map[string]*Sprite, len(defs))}
	for name, def := range defs {
		if def.Width <= 0 || def.Height <= 0 {
			return nil, fmt.Errorf("sprite %q: invalid size %dx%d", name, def.Width, def.Height)
		}
		color, err := parseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("sprite %q: %w", name, err)
		}
		rows := make([][]rune, len(def.Rows))
		for i, r := range def.Rows {
			rows[i] = []rune(r)
		}
		c.sprites[name] = &Sprite{
			Name:  name,
			W:     def.Width,
			H:     def.Height,
			Color: color,
			Rows:  rows,
		}
	}
	return c, nil
}

// Sprite implements Provider
func (c *Catalog) Sprite(name string) (*Sprite, error) {
	s, ok := c.sprites[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSpriteNotFound, name)
	}
	return s, nil
}

// parseHexColor accepts "#rrggbb", empty means white
func parseHexColor(s string) (core.RGB, error) {
	if s == "" {
		return core.RGBWhite, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return core.RGB{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return core.RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return core.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
