package scaffold_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weld/internal/adapters/scaffold"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestScaffolder_Android(t *testing.T) {
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	build := t.TempDir()
	layout := domain.NewLayout(build, domain.PlatformAndroid, false, "Demo", domain.ArchX64)

	require.NoError(t, scaffold.NewScaffolder(logger).Scaffold(layout))
	for _, dir := range scaffold.AndroidDirs(layout) {
		assert.DirExists(t, dir)
	}
	assert.DirExists(t, filepath.Join(build, "app", "app", "src", "main", "jniLibs", "x86_64"))
	assert.DirExists(t, filepath.Join(build, "app", "app", "src", "main", "kotlin", "dev", "weld", "main"))

	require.NoError(t, scaffold.NewScaffolder(logger).Scaffold(layout))
}

func TestScaffolder_OtherPlatformsUntouched(t *testing.T) {
	logger := mocks.NewMockLogger(gomock.NewController(t))

	build := filepath.Join(t.TempDir(), "web")
	layout := domain.NewLayout(build, domain.PlatformWeb, false, "Demo", "")

	require.NoError(t, scaffold.NewScaffolder(logger).Scaffold(layout))
	_, err := os.Stat(build)
	assert.True(t, os.IsNotExist(err))
}

func TestScaffolder_Failure(t *testing.T) {
	logger := mocks.NewMockLogger(gomock.NewController(t))

	base := t.TempDir()
	blocker := filepath.Join(base, "app")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), domain.FilePerm))

	layout := domain.NewLayout(base, domain.PlatformAndroid, false, "Demo", "")
	err := scaffold.NewScaffolder(logger).Scaffold(layout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create android project directory")
}
