package icons

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var embeddedStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// StylesConfig is the styles.yaml document
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Renderer draws icons for a color terminal
type Renderer struct {
	styles map[string]lipgloss.Style
}

// NewRenderer builds a Renderer from the embedded styles
func NewRenderer() (*Renderer, error) {
	return NewRendererFromData(embeddedStyles)
}

// NewRendererFromData builds a Renderer from a styles YAML document
func NewRendererFromData(data []byte) (*Renderer, error) {
	var cfg StylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse icon styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	r := &Renderer{styles: make(map[string]lipgloss.Style, len(cfg.Styles))}
	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle().Bold(def.Bold).Italic(def.Italic)
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
		r.styles[name] = style
	}
	return r, nil
}

// Render returns the styled terminal rendition of icon
func (r *Renderer) Render(icon Icon) string {
	text := icon.String()
	if text == "" {
		return ""
	}
	return r.styleFor(icon).Render(text)
}

func (r *Renderer) styleFor(icon Icon) lipgloss.Style {
	var key string
	switch icon.Kind {
	case KindMethod:
		key = "method." + icon.Method
		if _, ok := r.styles[key]; !ok {
			key = "method.default"
		}
	case KindEntity:
		key = "entity"
	case KindDatabase:
		key = "database"
	}
	if style, ok := r.styles[key]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
