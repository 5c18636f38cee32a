package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
)

//go:embed defaults
var defaultFS embed.FS

// Default loads the catalog built into the binary.
func Default(logger *log.Logger) (*Catalog, error) {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		return nil, fmt.Errorf("catalog: embedded defaults: %w", err)
	}
	return Load(sub, logger)
}

// Open loads the catalog rooted at dir, or the built-in one when dir is empty.
func Open(dir string, logger *log.Logger) (*Catalog, error) {
	if dir == "" {
		return Default(logger)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog: %s is not a directory", dir)
	}
	return Load(os.DirFS(dir), logger)
}
