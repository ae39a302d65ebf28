package foliotypes

// ThemeFile is the root structure of an embedded theme YAML file.
type ThemeFile struct {
	ThemeConfig `yaml:",inline"`
}

// ThemeConfig represents a theme configuration loaded from YAML.
type ThemeConfig struct {
	// Name is the theme identifier (e.g., "default", "dark", "matrix")
	Name string `yaml:"name" json:"name"`

	// Description provides a brief description of the theme
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Prompt styles the prompt prefix of the input line
	Prompt StyleConfig `yaml:"prompt" json:"prompt"`

	// Lines maps a line class name to its style
	Lines map[string]StyleConfig `yaml:"lines" json:"lines"`

	// Markdown names the glamour style used for markdown lines ("dark", "light", "notty")
	Markdown string `yaml:"markdown,omitempty" json:"markdown,omitempty"`
}

// StyleConfig defines the visual styling for a line class.
// Colors are either a plain string or a {light, dark} map for adaptive colors.
type StyleConfig struct {
	Foreground interface{} `yaml:"foreground,omitempty" json:"foreground,omitempty"`
	Background interface{} `yaml:"background,omitempty" json:"background,omitempty"`
	Bold       *bool       `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic     *bool       `yaml:"italic,omitempty" json:"italic,omitempty"`
	Underline  *bool       `yaml:"underline,omitempty" json:"underline,omitempty"`
	Faint      *bool       `yaml:"faint,omitempty" json:"faint,omitempty"`
}
