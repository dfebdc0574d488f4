package linker_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weld/internal/adapters/linker"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupDelegate(t *testing.T) (*linker.Delegate, *mocks.MockCommandRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	d := linker.NewDelegate(runner, logger).WithOutput(&bytes.Buffer{}, &bytes.Buffer{})
	return d, runner
}

func TestDelegate_BaseLinkStrips(t *testing.T) {
	d, runner := setupDelegate(t)
	inc := filepath.Join(t.TempDir(), "incremental-cache")

	intent, err := domain.NewLinkIntent(domain.BaseMode(), domain.PlatformLinux, "cc", inc)
	require.NoError(t, err)

	runner.EXPECT().Run(gomock.Any(), domain.Command{
		Program: "cc",
		Args:    []string{"main.o", "-o", "demo", "-s"},
	}, gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, d.Link(context.Background(), intent, []string{"main.o", "-o", "demo"}))
	assert.NoFileExists(t, filepath.Join(inc, linker.ArgsFileName))
}

func TestDelegate_FatLinkRecordsArgs(t *testing.T) {
	d, runner := setupDelegate(t)
	inc := filepath.Join(t.TempDir(), "incremental-cache")

	intent, err := domain.NewLinkIntent(domain.FatMode(), domain.PlatformMacOS, "cc", inc)
	require.NoError(t, err)

	runner.EXPECT().Run(gomock.Any(), domain.Command{
		Program: "cc",
		Args:    []string{"main.o", "-o", "demo"},
	}, gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, d.Link(context.Background(), intent, []string{"main.o", "-o", "demo"}))

	data, err := os.ReadFile(filepath.Join(inc, linker.ArgsFileName))
	require.NoError(t, err)
	assert.JSONEq(t, `["main.o","-o","demo"]`, string(data))
}

func TestDelegate_WindowsDoesNotStrip(t *testing.T) {
	d, runner := setupDelegate(t)

	intent, err := domain.NewLinkIntent(domain.BaseMode(), domain.PlatformWindows, "link.exe", "")
	require.NoError(t, err)

	runner.EXPECT().Run(gomock.Any(), domain.Command{Program: "link.exe", Args: []string{"/OUT:demo.exe"}}, gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, d.Link(context.Background(), intent, []string{"/OUT:demo.exe"}))
}

func TestDelegate_Errors(t *testing.T) {
	t.Run("thin is refused", func(t *testing.T) {
		d, _ := setupDelegate(t)
		mode := domain.ThinMode([][]string{{"rustc"}}, domain.PatchTarget{Binary: "/t/demo", MainPtr: 1})
		intent, err := domain.NewLinkIntent(mode, domain.PlatformMacOS, "cc", "")
		require.NoError(t, err)

		err = d.Link(context.Background(), intent, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrThinLinkUnsupported.Error())
	})

	t.Run("no linker", func(t *testing.T) {
		d, _ := setupDelegate(t)
		err := d.Link(context.Background(), domain.LinkIntent{Action: domain.LinkActionBase, Platform: domain.PlatformIOS}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrLinkerNotConfigured.Error())
	})

	t.Run("linker fails", func(t *testing.T) {
		d, runner := setupDelegate(t)
		runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("undefined symbol: main"))

		intent, err := domain.NewLinkIntent(domain.BaseMode(), domain.PlatformLinux, "cc", "")
		require.NoError(t, err)

		err = d.Link(context.Background(), intent, []string{"main.o"})
		require.ErrorIs(t, err, domain.ErrLinkFailed)
		assert.Contains(t, err.Error(), "undefined symbol: main")
	})
}
