// Package content loads the marketing copy rendered by the site.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elchananT/personal-coach-demo-website/internal/model"
)

//go:embed default.yaml
var defaultYAML []byte

//go:embed legal/*.md
var legalFS embed.FS

// LegalDocs returns the legal documents as <type>.md files. A non-empty dir
// replaces the built-in set.
func LegalDocs(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(legalFS, "legal")
	if err != nil {
		panic(err)
	}
	return sub
}

// Load reads site content from path. An empty path loads the built-in copy.
func Load(path string) (*model.SiteContent, error) {
	if path == "" {
		return Parse(bytes.NewReader(defaultYAML))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("content: open: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the built-in copy. It panics if the embedded file is broken,
// which the package tests rule out.
func Default() *model.SiteContent {
	c, err := Parse(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates YAML content. Unknown keys are rejected so a typo
// in the content file fails at startup instead of silently hiding a section.
func Parse(r io.Reader) (*model.SiteContent, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c model.SiteContent
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("content: empty document")
		}
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the fields the pages cannot render without.
func Validate(c *model.SiteContent) error {
	if c.Brand.Name == "" {
		return errors.New("content: brand.name is required")
	}
	for i, o := range c.Booking.Goals {
		if o.Value == "" {
			return fmt.Errorf("content: booking.goals[%d] has an empty value", i)
		}
	}
	for i, o := range c.Booking.Timeframes {
		if o.Value == "" {
			return fmt.Errorf("content: booking.timeframes[%d] has an empty value", i)
		}
	}
	return nil
}

// PageMeta returns the metadata for page, falling back to the brand name.
func PageMeta(c *model.SiteContent, page string) model.Meta {
	if m, ok := c.Pages[page]; ok {
		return m
	}
	return model.Meta{Title: c.Brand.Name, Description: c.Brand.Tagline}
}
