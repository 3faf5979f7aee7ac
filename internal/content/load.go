package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed default.toml
var defaultDocument []byte

// Default returns the built-in portfolio.
func Default() (*Portfolio, error) {
	return Parse(defaultDocument)
}

// Load reads a portfolio from a TOML file. An empty path returns the
// built-in portfolio.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing content %s: %w", path, err)
	}

	p, err := unmarshal(k)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	p.Source = path
	p.UpdatedAt = info.ModTime()
	return p, nil
}

// Parse reads a portfolio from TOML bytes.
func Parse(data []byte) (*Portfolio, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), toml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Portfolio, error) {
	var p Portfolio
	if err := k.Unmarshal("", &p); err != nil {
		return nil, fmt.Errorf("unmarshalling content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that the document can be rendered and tracked.
func (p *Portfolio) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Owner.Name) == "" {
		errs = append(errs, errors.New("owner.name is required"))
	}

	errs = append(errs, uniqueIDs("experience", p.ExperienceIDs())...)
	errs = append(errs, uniqueIDs("education", p.EducationIDs())...)

	tileIDs := make([]string, len(p.Graphics.Tiles))
	for i, t := range p.Graphics.Tiles {
		tileIDs[i] = t.ID
		if strings.HasSuffix(t.ID, LoopSuffix) {
			errs = append(errs, fmt.Errorf("graphics.tiles[%d]: id %q ends with reserved suffix %q", i, t.ID, LoopSuffix))
		}
	}
	errs = append(errs, uniqueIDs("graphics.tiles", tileIDs)...)

	for i, s := range p.Skills {
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, fmt.Errorf("skills[%d]: empty name", i))
		}
	}

	return errors.Join(errs...)
}

func uniqueIDs(section string, ids []string) []error {
	var errs []error
	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		switch {
		case id == "":
			errs = append(errs, fmt.Errorf("%s[%d]: empty id", section, i))
		case seen[id]:
			errs = append(errs, fmt.Errorf("%s[%d]: duplicate id %q", section, i, id))
		}
		seen[id] = true
	}
	return errs
}
