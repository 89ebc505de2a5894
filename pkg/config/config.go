package config

import (
	"github.com/arthur-debert/xml2struct/pkg/structure"
)

// Config is the resolved xml2struct configuration
type Config struct {
	Input  Input          `koanf:"input"`
	Output Output         `koanf:"output"`
	Keys   structure.Keys `koanf:"keys"`
}

// Input controls how input paths are resolved
type Input struct {
	DefaultExtension string   `koanf:"default_extension"`
	Extensions       []string `koanf:"extensions"`
}

// Output controls rendering
type Output struct {
	Format string `koanf:"format"`
}

// KeyStyle names a preset for the reserved keys
type KeyStyle string

const (
	KeyStyleSymbolic KeyStyle = "symbolic"
	KeyStyleClassic  KeyStyle = "classic"
)

// KeyOverrides returns the confmap overrides selecting a key preset.
// An unknown style returns nil and false.
func KeyOverrides(style KeyStyle) (map[string]interface{}, bool) {
	var keys structure.Keys
	switch style {
	case KeyStyleSymbolic:
		keys = structure.DefaultKeys()
	case KeyStyleClassic:
		keys = structure.ClassicKeys()
	default:
		return nil, false
	}
	return map[string]interface{}{
		"keys.attributes": keys.Attributes,
		"keys.text":       keys.Text,
		"keys.comment":    keys.Comment,
		"keys.cdata":      keys.CDATA,
	}, true
}
