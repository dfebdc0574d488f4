package builder

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
)

// DirPreparer creates the platform directory tree once per process.
// Every later caller gets the first call's result, including a failure.
type DirPreparer struct {
	scaffolder ports.Scaffolder
	logger     ports.Logger

	once sync.Once
	err  error
}

// NewDirPreparer creates a DirPreparer. The scaffolder runs for android layouts only.
func NewDirPreparer(scaffolder ports.Scaffolder, logger ports.Logger) *DirPreparer {
	return &DirPreparer{
		scaffolder: scaffolder,
		logger:     logger,
	}
}

// Prepare removes the stale executable directory and recreates the root,
// executable and asset directories of layout.
func (d *DirPreparer) Prepare(layout domain.Layout) error {
	d.once.Do(func() {
		d.err = d.prepare(layout)
	})
	return d.err
}

func (d *DirPreparer) prepare(layout domain.Layout) error {
	_ = os.RemoveAll(layout.ExeDir())

	for _, dir := range []string{layout.RootDir(), layout.ExeDir(), layout.AssetDir()} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return errors.Join(domain.ErrBuildDirInitFailed, err)
		}
	}

	d.logger.Debug(fmt.Sprintf("initialized root dir: %s", layout.RootDir()))
	d.logger.Debug(fmt.Sprintf("initialized exe dir: %s", layout.ExeDir()))
	d.logger.Debug(fmt.Sprintf("initialized asset dir: %s", layout.AssetDir()))

	if layout.Platform == domain.PlatformAndroid && d.scaffolder != nil {
		if err := d.scaffolder.Scaffold(layout); err != nil {
			return errors.Join(domain.ErrBuildDirInitFailed, err)
		}
	}
	return nil
}
