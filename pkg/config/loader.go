package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every configuration environment variable
const EnvPrefix = "DOT_"

// LoadOptions selects the configuration sources
type LoadOptions struct {
	// RepoDir holds the repository config file. Empty skips it.
	RepoDir string

	// UserConfigPath overrides the user config location. Empty uses
	// UserConfigPath().
	UserConfigPath string

	// Overrides are applied last, keyed by dotted path ("output.format")
	Overrides map[string]interface{}
}

// UserConfigPath returns $XDG_CONFIG_HOME/dot/config.toml
func UserConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "dot", "config.toml")
}

// Load builds the configuration from every source in order:
// embedded defaults, user file, repository file, DOT_* environment,
// overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User and repository files, when present
	userPath := opts.UserConfigPath
	if userPath == "" {
		userPath = UserConfigPath()
	}
	files := []string{userPath}
	if opts.RepoDir != "" {
		files = append(files, filepath.Join(opts.RepoDir, paths.RepoConfigFileName))
	}
	for _, path := range files {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithPath(path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment: DOT_OUTPUT_FORMAT -> output.format
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				trimSliceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// trimSliceHookFunc trims whitespace around items split from a
// comma-separated environment value
func trimSliceHookFunc() mapstructure.DecodeHookFuncType {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.String {
			return data, nil
		}
		items, ok := data.([]string)
		if !ok {
			return data, nil
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out, nil
	}
}

// ManifestPath returns the manifest location for repoDir
func (c *Config) ManifestPath(repoDir string) string {
	if filepath.IsAbs(c.Manifest.File) {
		return c.Manifest.File
	}
	return filepath.Join(repoDir, c.Manifest.File)
}
