package android

// NewLocatorWith creates a Locator with a fixed environment and host OS.
func NewLocatorWith(env map[string]string, goos string) *Locator {
	return &Locator{
		getenv: func(key string) string { return env[key] },
		goos:   goos,
	}
}

// CompareVersions exposes compareVersions for tests.
var CompareVersions = compareVersions
