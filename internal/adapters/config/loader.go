// Package config provides the project configuration loader for weld.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using weld.yaml and an optional env file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load finds weld.yaml in cwd or its closest ancestor and resolves it.
// Without a weld.yaml the defaults rooted at cwd are returned.
func (l *Loader) Load(cwd string) (*domain.ProjectConfig, error) {
	configPath, found := l.findConfiguration(cwd)
	if !found {
		cfg := domain.DefaultProjectConfig(cwd)
		if err := l.loadEnvFile(cfg, "", false); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var weldfile Weldfile
	if err := l.readAndUnmarshalYAML(configPath, &weldfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	cfg := domain.DefaultProjectConfig(filepath.Dir(configPath))
	cfg.AppName = weldfile.App.Name
	cfg.AppTitle = weldfile.App.Title
	cfg.WebBasePath = weldfile.Web.BasePath
	cfg.ServerProfile = weldfile.Build.ServerProfile

	for name, linker := range weldfile.Build.Linker {
		platform, err := domain.ParsePlatform(name)
		if err != nil {
			l.Logger.Warn(fmt.Sprintf("ignoring linker for unknown platform %q in %s", name, domain.ConfigFileName))
			continue
		}
		cfg.Linkers[platform.String()] = linker
	}

	if err := l.loadEnvFile(cfg, weldfile.Build.EnvFile, weldfile.Build.EnvFile != ""); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// loadEnvFile merges the env file into cfg. A missing default file is not an error;
// a missing configured file is.
func (l *Loader) loadEnvFile(cfg *domain.ProjectConfig, name string, required bool) error {
	if name == "" {
		name = domain.DefaultEnvFile
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Root, path)
	}

	data, err := l.FS.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrEnvFileFailed.Error()), "path", path)
	}

	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvFileFailed.Error()), "path", path)
	}

	keys := make([]string, 0, len(vars))
	for k, v := range vars {
		cfg.Env[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)
	cfg.EnvKeys = keys

	l.Logger.Debug(fmt.Sprintf("loaded %d variables from %s", len(keys), path))
	return nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Weldfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
