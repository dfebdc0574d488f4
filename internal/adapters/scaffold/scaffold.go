// Package scaffold creates the directory skeleton of platform projects.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scaffolder implements ports.Scaffolder for the gradle project of android builds.
type Scaffolder struct {
	logger ports.Logger
}

// NewScaffolder creates a new Scaffolder.
func NewScaffolder(logger ports.Logger) *Scaffolder {
	return &Scaffolder{logger: logger}
}

// AndroidDirs lists the gradle project directories below the layout root.
func AndroidDirs(layout domain.Layout) []string {
	root := layout.RootDir()
	main := filepath.Join(root, "app", "src", "main")
	return []string{
		filepath.Join(root, "gradle", "wrapper"),
		filepath.Join(main, "kotlin"),
		filepath.Join(main, "jniLibs"),
		filepath.Join(main, "assets"),
		filepath.Join(main, "res", "values"),
		layout.AndroidKotlinOutDir(),
		layout.ExeDir(),
	}
}

// Scaffold creates the project skeleton for layout. Existing directories are kept.
func (s *Scaffolder) Scaffold(layout domain.Layout) error {
	if layout.Platform != domain.PlatformAndroid {
		return nil
	}

	for _, dir := range AndroidDirs(layout) {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create android project directory"), "dir", dir)
		}
	}

	s.logger.Debug(fmt.Sprintf("initialized android project at %s", layout.RootDir()))
	return nil
}
