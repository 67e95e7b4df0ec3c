package model

// Path represents a file system path.
type Path string

// Artifact identifies the build output being patched.
type Artifact struct {
	// Path is the location used for reading and writing.
	Path Path
	// Rel is Path relative to the project root, used in status lines.
	Rel Path
}

// Config holds the locator settings and the default patch order.
type Config struct {
	Assets  Path     `yaml:"assets"`
	Pattern string   `yaml:"pattern"`
	Patches []string `yaml:"patches"`
}
