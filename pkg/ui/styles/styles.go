// Package styles defines the visual styling for dot's terminal output.
//
// Styles are loaded from the embedded styles.yaml and looked up by
// semantic name (Success, Warning, Path, ...). Unknown names render
// unstyled.
package styles

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
type Registry struct {
	styles map[string]lipgloss.Style
}

// Default returns the registry built from the embedded styles
func Default() *Registry {
	r, err := Parse(defaultStyles)
	if err != nil {
		panic(fmt.Sprintf("failed to load embedded styles: %v", err))
	}
	return r
}

// UserStylesPath returns $XDG_CONFIG_HOME/dot/styles.yaml
func UserStylesPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "dot", "styles.yaml")
}

// Load returns the embedded styles with the user styles file applied on
// top. A missing file is not an error; a broken one is logged and ignored.
func Load() *Registry {
	logger := logging.GetLogger("ui.styles")

	path := UserStylesPath()
	if _, err := os.Stat(path); err != nil {
		return Default()
	}
	r, err := LoadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Ignoring user styles")
		return Default()
	}
	logger.Debug().Str("path", path).Msg("Loaded user styles")
	return r
}

// LoadFile builds a registry from a YAML file. Colors and styles it
// defines replace the embedded ones of the same name.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read styles file %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(defaultStyles, &config); err != nil {
		return nil, fmt.Errorf("failed to parse embedded styles: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles file %s: %w", path, err)
	}
	return build(config), nil
}

// Parse builds a registry from YAML
func Parse(data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}
	return build(config), nil
}

func build(config Config) *Registry {
	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	r := &Registry{styles: make(map[string]lipgloss.Style, len(config.Styles))}
	for name, def := range config.Styles {
		r.styles[name] = buildStyle(def, colors)
	}
	return r
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}
	return style
}

// Get returns the named style, or an empty style if it is not defined
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether name is defined
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Render applies the named style to text
func (r *Registry) Render(name, text string) string {
	return r.Get(name).Render(text)
}
