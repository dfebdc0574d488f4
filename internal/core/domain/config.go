package domain

const (
	// ConfigFileName is the project configuration file discovered upwards from the working directory.
	ConfigFileName = "weld.yaml"
	// DefaultEnvFile is read when present and no other env file is configured.
	DefaultEnvFile = ".env"
)

// ProjectConfig is the resolved project configuration.
type ProjectConfig struct {
	// Root is the directory containing weld.yaml, or the working directory when there is none.
	Root string
	// AppName names macOS and iOS bundles. Defaults to the executable name.
	AppName string
	// AppTitle is exported to release builds as WELD_APP_TITLE.
	AppTitle string
	// WebBasePath is exported to release builds as WELD_ASSET_ROOT.
	WebBasePath string
	// ServerProfile overrides the cargo profile of debug server builds.
	ServerProfile string
	// Linkers overrides the linker per platform name.
	Linkers map[string]string
	// Env holds the variables read from the project env file.
	Env map[string]string
	// EnvKeys lists the keys of Env in sorted order so command environments are deterministic.
	EnvKeys []string
}

// DefaultProjectConfig returns the configuration used when no weld.yaml is found.
func DefaultProjectConfig(root string) *ProjectConfig {
	return &ProjectConfig{
		Root:    root,
		Linkers: map[string]string{},
		Env:     map[string]string{},
	}
}

// ResolvedAppName returns AppName or falls back to exe.
func (c *ProjectConfig) ResolvedAppName(exe string) string {
	if c != nil && c.AppName != "" {
		return c.AppName
	}
	return exe
}

// ResolvedAppTitle returns AppTitle or falls back to name.
func (c *ProjectConfig) ResolvedAppTitle(name string) string {
	if c != nil && c.AppTitle != "" {
		return c.AppTitle
	}
	return name
}
