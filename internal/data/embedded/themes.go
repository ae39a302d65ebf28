// Package embedded provides access to embedded theme files and static text.
package embedded

import _ "embed"

// DefaultThemeData contains the embedded default theme YAML data.
//
//go:embed themes/default.yaml
var DefaultThemeData []byte

// DarkThemeData contains the embedded dark theme YAML data.
//
//go:embed themes/dark.yaml
var DarkThemeData []byte

// LightThemeData contains the embedded light theme YAML data.
//
//go:embed themes/light.yaml
var LightThemeData []byte

// MatrixThemeData contains the embedded matrix theme YAML data.
//
//go:embed themes/matrix.yaml
var MatrixThemeData []byte

// CyberpunkThemeData contains the embedded cyberpunk theme YAML data.
//
//go:embed themes/cyberpunk.yaml
var CyberpunkThemeData []byte

// OceanThemeData contains the embedded ocean theme YAML data.
//
//go:embed themes/ocean.yaml
var OceanThemeData []byte

// PlainThemeData contains the embedded plain theme YAML data.
//
//go:embed themes/plain.yaml
var PlainThemeData []byte

// Banner is the ASCII art printed by the banner command and at startup.
//
//go:embed banner.txt
var Banner string

// Themes maps theme names to their YAML data.
func Themes() map[string][]byte {
	return map[string][]byte{
		"default":   DefaultThemeData,
		"dark":      DarkThemeData,
		"light":     LightThemeData,
		"matrix":    MatrixThemeData,
		"cyberpunk": CyberpunkThemeData,
		"ocean":     OceanThemeData,
		"plain":     PlainThemeData,
	}
}
