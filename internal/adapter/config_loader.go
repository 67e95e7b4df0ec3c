package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/bundlepatch/internal/model"
)

const (
	// DefaultConfigFile is looked up under the project root.
	DefaultConfigFile = ".bundlepatch.yaml"
	// DefaultAssetsDir is the build output directory, relative to the root.
	DefaultAssetsDir m.Path = "src/webview/assets"
	// DefaultPattern matches the bundled webview script.
	DefaultPattern = `^index-.*\.js$`
)

// ConfigLoader reads the optional project configuration file.
type ConfigLoader interface {
	// Load parses the file at path. A missing file yields an empty Config
	// unless required is true.
	Load(path m.Path, required bool) (m.Config, error)
}

// LocalConfigLoader decodes YAML configuration from disk.
type LocalConfigLoader struct{}

// NewLocalConfigLoader constructs a LocalConfigLoader.
func NewLocalConfigLoader() *LocalConfigLoader {
	return &LocalConfigLoader{}
}

// Load reads and strictly decodes the configuration file.
func (l *LocalConfigLoader) Load(path m.Path, required bool) (m.Config, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return m.Config{}, nil
		}

		return m.Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return ParseConfig(content)
}

// ParseConfig decodes YAML content. Unknown keys are rejected.
func ParseConfig(content []byte) (m.Config, error) {
	var cfg m.Config

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return m.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// ApplyDefaults fills unset fields. defaultPatches is used when the config
// does not name any patch.
func ApplyDefaults(cfg m.Config, defaultPatches []string) m.Config {
	if cfg.Assets == "" {
		cfg.Assets = DefaultAssetsDir
	}

	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}

	if len(cfg.Patches) == 0 {
		cfg.Patches = append([]string(nil), defaultPatches...)
	}

	return cfg
}

// CompilePattern compiles the artifact file name pattern.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid artifact pattern %q: %w", pattern, err)
	}

	return re, nil
}
