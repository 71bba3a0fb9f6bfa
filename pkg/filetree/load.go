// SPDX-License-Identifier: MPL-2.0

package filetree

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/namekit/namekit/pkg/cueutil"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

//go:embed tree_schema.cue
var treeSchema []byte

type (
	// LoadOption configures Load.
	LoadOption func(*loadOptions)

	loadOptions struct {
		logger *log.Logger
	}
)

// WithLogger sets the logger Load reports progress to.
func WithLogger(l *log.Logger) LoadOption {
	return func(o *loadOptions) { o.logger = l }
}

// Load reads a tree description from path and builds it. Files ending in
// ".toml" are decoded as TOML; everything else is treated as CUE and
// validated against the #Tree schema.
func Load(ctx context.Context, path string, opts ...LoadOption) (*RootDirectory, error) {
	o := loadOptions{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree file: %w", err)
	}
	spec, err := ParseSpec(data, path)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("parsed tree description", "path", path, "entries", len(spec.Entries))

	root, err := spec.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("build tree from %s: %w", path, err)
	}

	count := 0
	_ = root.Walk(func(Node) error { count++; return nil })
	o.logger.Debug("built tree", "path", path, "nodes", count)
	return root, nil
}

// ParseSpec decodes a tree description. filename selects the format by its
// extension and labels errors.
func ParseSpec(data []byte, filename string) (*Spec, error) {
	if filepath.Ext(filename) == ".toml" {
		if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, filename); err != nil {
			return nil, err
		}
		var spec Spec
		if err := toml.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		return &spec, nil
	}

	result, err := cueutil.ParseAndDecode[Spec](treeSchema, data, "#Tree", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}
