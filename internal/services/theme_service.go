package services

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"folioshell/internal/data/embedded"
	"folioshell/internal/logger"
	"folioshell/pkg/foliotypes"
)

// PlainTheme is the theme without any styling. It is always available.
const PlainTheme = "plain"

// DefaultTheme is the theme selected when none is configured.
const DefaultTheme = "default"

// ThemeService owns the color themes and the currently selected one.
type ThemeService struct {
	mu      sync.RWMutex
	themes  map[string]*Theme
	current string
	profile termenv.Profile
}

// Theme is a resolved theme: one lipgloss style per line class plus the prompt style.
type Theme struct {
	Name        string
	Description string
	Prompt      lipgloss.Style
	Lines       map[foliotypes.LineClass]lipgloss.Style
	Markdown    string
}

var _ foliotypes.ThemeSwitcher = (*ThemeService)(nil)

// NewThemeService creates a ThemeService with the embedded themes loaded and the default theme
// selected. The color profile is taken from lipgloss.
func NewThemeService() *ThemeService {
	service := &ThemeService{
		themes:  make(map[string]*Theme),
		current: DefaultTheme,
		profile: lipgloss.ColorProfile(),
	}
	service.loadThemesFromYAML(embedded.Themes())
	return service
}

// loadThemesFromYAML parses theme files; a file that fails to parse becomes an unstyled theme.
func (t *ThemeService) loadThemesFromYAML(files map[string][]byte) {
	for themeName, themeData := range files {
		theme, err := t.loadThemeFile(themeData)
		if err != nil {
			logger.Error("Failed to load theme", "theme", themeName, "error", err)
			t.themes[themeName] = t.createFallbackTheme(themeName)
			continue
		}
		if theme.Name == "" {
			theme.Name = themeName
		}
		t.themes[strings.ToLower(theme.Name)] = theme
	}

	if _, exists := t.themes[PlainTheme]; !exists {
		t.themes[PlainTheme] = t.createFallbackTheme(PlainTheme)
	}
}

// loadThemeFile parses one theme from YAML data.
func (t *ThemeService) loadThemeFile(data []byte) (*Theme, error) {
	var themeFile foliotypes.ThemeFile
	if err := yaml.Unmarshal(data, &themeFile); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	return t.convertThemeConfig(&themeFile.ThemeConfig), nil
}

func (t *ThemeService) convertThemeConfig(config *foliotypes.ThemeConfig) *Theme {
	theme := &Theme{
		Name:        config.Name,
		Description: config.Description,
		Prompt:      t.createStyle(config.Prompt),
		Lines:       make(map[foliotypes.LineClass]lipgloss.Style, len(foliotypes.AllClasses)),
		Markdown:    config.Markdown,
	}
	for _, class := range foliotypes.AllClasses {
		theme.Lines[class] = t.createStyle(config.Lines[string(class)])
	}
	if theme.Markdown == "" {
		theme.Markdown = "dark"
	}
	return theme
}

// createStyle converts a StyleConfig to a lipgloss.Style.
func (t *ThemeService) createStyle(config foliotypes.StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if config.Foreground != nil {
		if color := parseColor(config.Foreground); color != nil {
			style = style.Foreground(color)
		}
	}
	if config.Background != nil {
		if color := parseColor(config.Background); color != nil {
			style = style.Background(color)
		}
	}

	if config.Bold != nil && *config.Bold {
		style = style.Bold(true)
	}
	if config.Italic != nil && *config.Italic {
		style = style.Italic(true)
	}
	if config.Underline != nil && *config.Underline {
		style = style.Underline(true)
	}
	if config.Faint != nil && *config.Faint {
		style = style.Faint(true)
	}
	return style
}

// parseColor accepts a color string or a map with light and dark keys.
func parseColor(value interface{}) lipgloss.TerminalColor {
	switch v := value.(type) {
	case string:
		return lipgloss.Color(v)
	case map[string]interface{}:
		light, hasLight := v["light"].(string)
		dark, hasDark := v["dark"].(string)
		if hasLight && hasDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}
		}
		return nil
	default:
		return nil
	}
}

func (t *ThemeService) createFallbackTheme(name string) *Theme {
	theme := &Theme{
		Name:     name,
		Prompt:   lipgloss.NewStyle(),
		Lines:    make(map[foliotypes.LineClass]lipgloss.Style, len(foliotypes.AllClasses)),
		Markdown: "notty",
	}
	for _, class := range foliotypes.AllClasses {
		theme.Lines[class] = lipgloss.NewStyle()
	}
	return theme
}

// Names returns the available theme names, sorted.
func (t *ThemeService) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.themes))
	for name := range t.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Current returns the selected theme name.
func (t *ThemeService) Current() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// Set selects a theme by case-insensitive name.
func (t *ThemeService) Set(name string) error {
	normalized := strings.ToLower(strings.TrimSpace(name))

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.themes[normalized]; !exists {
		return fmt.Errorf("unknown theme %q", name)
	}
	t.current = normalized
	logger.Debug("Theme changed", "theme", normalized)
	return nil
}

// SetColorProfile overrides the detected terminal color profile.
func (t *ThemeService) SetColorProfile(profile termenv.Profile) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.profile = profile
}

// ColorEnabled reports whether the terminal can show colors.
func (t *ThemeService) ColorEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.profile != termenv.Ascii
}

// Theme returns the theme in effect: the selected one, or plain when colors are unavailable.
func (t *ThemeService) Theme() *Theme {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.profile == termenv.Ascii {
		return t.themes[PlainTheme]
	}
	if theme, ok := t.themes[t.current]; ok {
		return theme
	}
	return t.themes[PlainTheme]
}

// Style returns the style for a line class in the effective theme.
func (t *ThemeService) Style(class foliotypes.LineClass) lipgloss.Style {
	if style, ok := t.Theme().Lines[class]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// PromptStyle returns the prompt style in the effective theme.
func (t *ThemeService) PromptStyle() lipgloss.Style {
	return t.Theme().Prompt
}

// MarkdownStyle returns the glamour style name for the effective theme.
func (t *ThemeService) MarkdownStyle() string {
	return t.Theme().Markdown
}
