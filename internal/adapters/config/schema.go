package config

// Weldfile represents the structure of the weld.yaml configuration file.
type Weldfile struct {
	Version string   `yaml:"version"`
	App     AppDTO   `yaml:"app"`
	Web     WebDTO   `yaml:"web"`
	Build   BuildDTO `yaml:"build"`
}

// AppDTO names the application.
type AppDTO struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
}

// WebDTO configures web output.
type WebDTO struct {
	BasePath string `yaml:"base_path"`
}

// BuildDTO configures the toolchain invocation.
type BuildDTO struct {
	ServerProfile string            `yaml:"server_profile"`
	EnvFile       string            `yaml:"env_file"`
	Linker        map[string]string `yaml:"linker"`
}
