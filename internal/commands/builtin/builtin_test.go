package builtin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folioshell/internal/commands"
	"folioshell/internal/portfolio"
	"folioshell/pkg/foliotypes"
)

// mockThemes is a minimal ThemeSwitcher.
type mockThemes struct {
	names   []string
	current string
}

func (m *mockThemes) Names() []string { return m.names }
func (m *mockThemes) Current() string { return m.current }
func (m *mockThemes) Set(name string) error {
	for _, n := range m.names {
		if strings.EqualFold(n, name) {
			m.current = n
			return nil
		}
	}
	return fmt.Errorf("unknown theme %q", name)
}

// mockEnv implements foliotypes.Env over a fixed registry and portfolio.
type mockEnv struct {
	registry  *commands.Registry
	portfolio foliotypes.Portfolio
	history   []string
	themes    *mockThemes
	reloaded  string
	source    string
	now       time.Time
}

func newMockEnv(t *testing.T) *mockEnv {
	t.Helper()
	r := commands.NewRegistry()
	require.NoError(t, Register(r, Options{}))
	return &mockEnv{
		registry:  r,
		portfolio: portfolio.View{},
		themes:    &mockThemes{names: []string{"dark", "default", "plain"}, current: "default"},
		reloaded:  portfolio.ReloadOK + " Loaded 5 sections.",
		source:    "built-in",
		now:       time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
	}
}

func (m *mockEnv) Portfolio() foliotypes.Portfolio  { return m.portfolio }
func (m *mockEnv) Commands() []foliotypes.Command   { return m.registry.All() }
func (m *mockEnv) History() []string                { return m.history }
func (m *mockEnv) Themes() foliotypes.ThemeSwitcher { return m.themes }
func (m *mockEnv) Reload(_ context.Context) string  { return m.reloaded }
func (m *mockEnv) Now() time.Time                   { return m.now }
func (m *mockEnv) Prompt() string                   { return "guest@portfolio:~$" }
func (m *mockEnv) DataSource() string               { return m.source }

const loadedDocument = `{
  "personal": {"name": "Bijay Koirala", "email": "bk@example.com", "phone": "+977 98", "location": "Kathmandu, Nepal"},
  "skills": {
    "Programming Languages": [{"name": "Python", "level": 90}, {"name": "JavaScript", "level": 75}],
    "Bot Development": [{"name": "aiogram", "level": 85}]
  },
  "projects": [
    {"title": "Bot Ecosystem", "category": "Bot Development", "status": "active"},
    {"title": "CMS Platform", "category": "Web", "status": "completed"}
  ],
  "services": [{"title": "Automation", "description": "Scripts that do the chores", "price_range": "$50 - $500", "features": ["Scraping", "Scheduling"]}],
  "education": [{"degree": "BCA", "institution": "Mega College", "period": "2021 - 2026", "status": "Pursuing", "focus": "Apps"}],
  "certifications": [{"name": "Python Programming", "issuer": "Coursera", "date": "2023"}],
  "experience": [{"title": "Freelancer", "company": "Self", "period": "2024 - Present", "achievements": ["18 projects"]}],
  "social": {"github": "https://github.com/bk"},
  "stats": {"projects_completed": 18},
  "settings": {"theme": "dark", "enable_animations": true, "enable_terminal": true, "maintenance_mode": false}
}`

func loadedEnv(t *testing.T) *mockEnv {
	t.Helper()
	env := newMockEnv(t)
	env.portfolio = portfolio.NewView([]byte(loadedDocument))
	env.source = "loaded from stub"
	return env
}

func run(t *testing.T, env *mockEnv, line string) foliotypes.Output {
	t.Helper()
	parts := strings.Split(line, " ")
	cmd, ok := env.registry.Resolve(parts[0])
	require.True(t, ok, "command %s not registered", parts[0])
	out, err := cmd.Execute(context.Background(), parts[1:], env)
	require.NoError(t, err)
	return out
}

func TestRegister_AllBuiltins(t *testing.T) {
	r := commands.NewRegistry()
	require.NoError(t, Register(r, Options{}))

	assert.Equal(t, []string{
		"about", "banner", "cat", "clear", "contact", "date", "echo", "education", "exit",
		"experience", "github", "help", "history", "info", "joke", "json", "ls", "matrix",
		"projects", "pwd", "quote", "reload", "resume", "services", "skills", "social", "stats",
		"theme", "version", "weather", "whoami",
	}, r.Names())

	for _, cmd := range r.All() {
		assert.NotEmpty(t, cmd.Description(), cmd.Name())
		assert.True(t, strings.HasPrefix(cmd.Usage(), cmd.Name()), cmd.Name())
	}
}

func TestAsyncCommands(t *testing.T) {
	for _, cmd := range All(Options{}) {
		switch cmd.Name() {
		case "github", "reload":
			assert.True(t, foliotypes.IsAsync(cmd), cmd.Name())
		default:
			assert.False(t, foliotypes.IsAsync(cmd), cmd.Name())
		}
	}
}

func TestHelpCommand(t *testing.T) {
	env := newMockEnv(t)

	out := run(t, env, "help")
	assert.True(t, out.Typed)
	for _, cmd := range env.registry.All() {
		assert.Contains(t, out.Text, cmd.Name())
		assert.Contains(t, out.Text, cmd.Description())
	}
	assert.Less(t, strings.Index(out.Text, "about"), strings.Index(out.Text, "whoami"))

	out = run(t, env, "help SKILLS")
	assert.Contains(t, out.Text, "skills [category]")
	assert.Equal(t, foliotypes.ClassNormal, out.Class)

	out = run(t, env, "help nope")
	assert.Equal(t, foliotypes.ClassError, out.Class)
	assert.Contains(t, out.Text, "nope")
}

func TestAboutCommand(t *testing.T) {
	env := newMockEnv(t)
	out := run(t, env, "about")
	assert.Equal(t, foliotypes.ClassMarkdown, out.Class)
	assert.False(t, out.Typed)
	assert.Equal(t, portfolio.FallbackBio, out.Text)
}

func TestSkillsCommand(t *testing.T) {
	env := newMockEnv(t)

	out := run(t, env, "skills")
	assert.Contains(t, out.Text, "Frontend")
	assert.Contains(t, out.Text, "Backend")
	assert.Contains(t, out.Text, "JavaScript")
	assert.Contains(t, out.Text, "90%")

	out = run(t, env, "skills Backend")
	assert.Contains(t, out.Text, "Go")
	assert.NotContains(t, out.Text, "Frontend")

	out = run(t, env, "skills BACK")
	assert.Contains(t, out.Text, "Go")
	assert.NotContains(t, out.Text, "Frontend")

	out = run(t, env, "skills cooking")
	assert.Equal(t, foliotypes.ClassInfo, out.Class)
	assert.Equal(t, "Usage: skills [frontend|backend|tools]", out.Text)
}

func TestSkillsCommand_MultiWordCategories(t *testing.T) {
	env := loadedEnv(t)

	out := run(t, env, "skills programming languages")
	assert.True(t, strings.HasPrefix(out.Text, "Programming Languages\n"))
	assert.Contains(t, out.Text, "Python")
	assert.NotContains(t, out.Text, "aiogram")

	out = run(t, env, "skills programming")
	assert.True(t, strings.HasPrefix(out.Text, "Programming Languages\n"))

	out = run(t, env, "skills bot")
	assert.Contains(t, out.Text, "aiogram")
	assert.NotContains(t, out.Text, "Python")

	out = run(t, env, "skills design")
	assert.Equal(t, "Usage: skills [Programming Languages|Bot Development]", out.Text)
}

func TestLevelBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", 10)+strings.Repeat("░", 10)+"  50%", levelBar(50))
	assert.Equal(t, strings.Repeat("░", 20)+"   0%", levelBar(-3))
	assert.Equal(t, strings.Repeat("█", 20)+" 100%", levelBar(250))
}

func TestProjectsCommand(t *testing.T) {
	env := newMockEnv(t)

	out := run(t, env, "projects")
	assert.Contains(t, out.Text, "Portfolio Terminal [live]")
	assert.Contains(t, out.Text, "Trailhead")
	assert.Contains(t, out.Text, "Demo: https://queuectl.samcarter.dev")

	out = run(t, env, "projects mobile")
	assert.Contains(t, out.Text, "Trailhead")
	assert.NotContains(t, out.Text, "queuectl")

	out = run(t, env, "projects LIVE")
	assert.Contains(t, out.Text, "Portfolio Terminal")
	assert.NotContains(t, out.Text, "Trailhead")

	out = run(t, env, "projects games")
	assert.Equal(t, "Usage: projects [web|mobile|tools|in progress|live]", out.Text)
}

func TestProjectsCommand_CategoryAndStatus(t *testing.T) {
	env := loadedEnv(t)

	out := run(t, env, "projects bot")
	assert.Contains(t, out.Text, "Bot Ecosystem")
	assert.NotContains(t, out.Text, "CMS Platform")

	out = run(t, env, "projects bot development")
	assert.Contains(t, out.Text, "Bot Ecosystem")

	out = run(t, env, "projects active")
	assert.Contains(t, out.Text, "Bot Ecosystem")
	assert.NotContains(t, out.Text, "CMS Platform")

	out = run(t, env, "projects completed")
	assert.Contains(t, out.Text, "CMS Platform")
}

func TestContactCommand_FallbackEmail(t *testing.T) {
	env := newMockEnv(t)
	out := run(t, env, "contact")
	assert.Contains(t, out.Text, portfolio.FallbackEmail)
	assert.Contains(t, out.Text, "Phone:        "+portfolio.FallbackPhone)
	assert.Contains(t, out.Text, "Website:      "+portfolio.FallbackWebsite)
	assert.Contains(t, out.Text, "Timezone:     "+portfolio.FallbackTimezone)
	assert.NotContains(t, out.Text, "<nil>")
}

func TestContactCommand_Document(t *testing.T) {
	env := newMockEnv(t)
	env.portfolio = portfolio.NewView([]byte(`{"personal": {"email": "me@example.org"}}`))

	out := run(t, env, "contact")
	assert.Contains(t, out.Text, "me@example.org")
	assert.Contains(t, out.Text, portfolio.FallbackLocation)
}

func TestSocialAndStats(t *testing.T) {
	env := newMockEnv(t)

	out := run(t, env, "social")
	assert.Contains(t, out.Text, "Github")
	assert.Contains(t, out.Text, "https://github.com/samcarter")

	out = run(t, env, "stats")
	assert.Contains(t, out.Text, "Years coding")
	assert.Contains(t, out.Text, "24")

	env.portfolio = portfolio.NewView([]byte(`{"social": {}, "stats": {}}`))
	assert.Equal(t, "No social profiles listed.", run(t, env, "social").Text)
	assert.Equal(t, "No stats available.", run(t, env, "stats").Text)
}

func TestGitHubCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/samcarter" {
			_, _ = w.Write([]byte(`{"login":"samcarter","public_repos":12,"followers":7,"following":3,"public_gists":1}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	env := newMockEnv(t)
	cmd := &GitHubCommand{Client: portfolio.NewGitHubClient(srv.URL, time.Second)}

	out, err := cmd.Execute(context.Background(), nil, env)
	require.NoError(t, err)
	assert.Contains(t, out.Text, "GitHub: samcarter")
	assert.Contains(t, out.Text, "Public repos  12")
	assert.Contains(t, out.Text, "Followers     7")

	cmd.User = "broken"
	out, err = cmd.Execute(context.Background(), nil, env)
	require.NoError(t, err)
	assert.Contains(t, out.Text, "GitHub unavailable")
	assert.Contains(t, out.Text, "Projects shipped")

	offline := &GitHubCommand{}
	out, err = offline.Execute(context.Background(), nil, env)
	require.NoError(t, err)
	assert.Contains(t, out.Text, "live lookup disabled")
}

func TestSimpleCommands(t *testing.T) {
	env := newMockEnv(t)

	assert.Equal(t, portfolio.FallbackName+"\n"+portfolio.FallbackTitle, run(t, env, "whoami").Text)
	assert.Equal(t, "Sat, 14 Mar 2026 15:09:26 UTC", run(t, env, "date").Text)
	assert.Equal(t, "hello  there", run(t, env, "echo hello  there").Text)
	assert.Equal(t, "", run(t, env, "echo").Text)

	out := run(t, env, "clear")
	assert.Equal(t, foliotypes.ActionClear, out.Action)
	assert.Empty(t, out.Text)

	out = run(t, env, "exit")
	assert.Equal(t, foliotypes.ActionQuit, out.Action)

	out = run(t, env, "banner")
	assert.Equal(t, foliotypes.ClassASCII, out.Class)
	assert.NotEmpty(t, out.Text)

	assert.Contains(t, run(t, env, "version").Text, "folioshell v")
}

func TestHistoryCommand(t *testing.T) {
	env := newMockEnv(t)
	assert.Equal(t, "History is empty.", run(t, env, "history").Text)

	env.history = []string{"help", "about", "skills", "projects", "contact", "social", "stats", "date", "echo hi", "whoami"}
	out := run(t, env, "history")
	lines := strings.Split(out.Text, "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, " 1  help", lines[0])
	assert.Equal(t, "10  whoami", lines[9])
}

func TestThemeCommand(t *testing.T) {
	env := newMockEnv(t)

	out := run(t, env, "theme")
	assert.Contains(t, out.Text, "Current theme: default")
	assert.Contains(t, out.Text, "* default")
	assert.Contains(t, out.Text, "Usage: theme [name]")

	out = run(t, env, "theme DARK")
	assert.Equal(t, foliotypes.ClassSuccess, out.Class)
	assert.Equal(t, "dark", env.themes.current)

	out = run(t, env, "theme neon")
	assert.Equal(t, foliotypes.ClassInfo, out.Class)
	assert.Equal(t, "Usage: theme [dark|default|plain]", out.Text)
	assert.Equal(t, "dark", env.themes.current)
}

func TestReloadCommand(t *testing.T) {
	env := newMockEnv(t)

	out := run(t, env, "reload")
	assert.Equal(t, foliotypes.ClassSuccess, out.Class)
	assert.Equal(t, portfolio.ReloadOK+" Loaded 5 sections.", out.Text)

	env.reloaded = portfolio.ReloadFailed
	out = run(t, env, "reload")
	assert.Equal(t, foliotypes.ClassInfo, out.Class)
}

func TestServicesEducationExperience(t *testing.T) {
	env := newMockEnv(t)

	out := run(t, env, "services")
	assert.True(t, out.Typed)
	assert.Contains(t, out.Text, "Web Application Development")
	assert.Contains(t, out.Text, "Price range: $500 - $3000")

	assert.Contains(t, run(t, env, "education").Text, "BSc in Computer Science")
	assert.Contains(t, run(t, env, "experience").Text, "Senior Software Engineer @ Harbor Labs")

	env = loadedEnv(t)

	out = run(t, env, "services")
	assert.Contains(t, out.Text, "Automation\n  Scripts that do the chores\n  Price range: $50 - $500\n  Features:\n    • Scraping")

	out = run(t, env, "education")
	assert.Contains(t, out.Text, "BCA\n  Mega College\n  2021 - 2026 (Pursuing)\n  Focus: Apps")
	assert.Contains(t, out.Text, "Certifications\n  • Python Programming (Coursera, 2023)")

	out = run(t, env, "experience")
	assert.Contains(t, out.Text, "Freelancer @ Self\n  2024 - Present\n  • 18 projects")
	assert.Contains(t, out.Text, "Statistics\nProjects completed  18")

	env.portfolio = portfolio.NewView([]byte(`{"services": [], "education": [], "certifications": []}`))
	assert.Equal(t, "No services listed.", run(t, env, "services").Text)
	assert.Equal(t, "No education listed.", run(t, env, "education").Text)
}

func TestInfoCommand(t *testing.T) {
	env := newMockEnv(t)
	env.source = "built-in (https://example.com/portfolio.json unavailable)"

	out := run(t, env, "info")
	assert.Contains(t, out.Text, "Data source: built-in (https://example.com/portfolio.json unavailable)")
	assert.Contains(t, out.Text, "not loaded")
	assert.Contains(t, out.Text, "Use 'reload'")
	assert.NotContains(t, out.Text, "Settings")

	env = loadedEnv(t)
	out = run(t, env, "info")
	assert.Contains(t, out.Text, "Data source: loaded from stub")
	assert.Contains(t, out.Text, "Status:      loaded")
	assert.Contains(t, out.Text, "Skills          2 categories")
	assert.Contains(t, out.Text, "Projects        2 items")
	assert.Contains(t, out.Text, "Social links    1 platforms")
	assert.Contains(t, out.Text, "Theme        dark")
	assert.Contains(t, out.Text, "Maintenance  off")
	assert.True(t, strings.HasSuffix(out.Text, "Use 'json [section]' to view raw data."))
}

func TestJSONCommand(t *testing.T) {
	env := newMockEnv(t)
	out := run(t, env, "json")
	assert.Equal(t, `Portfolio data not loaded. Use "reload" to load data.`, out.Text)

	env = loadedEnv(t)
	sections := "personal, skills, projects, services, education, certifications, experience, social, stats, settings"

	out = run(t, env, "json")
	assert.Equal(t, "Available sections: "+sections+"\nUsage: json [section]", out.Text)

	out = run(t, env, "json social")
	assert.Equal(t, "Section: social\n{\n  \"github\": \"https://github.com/bk\"\n}", out.Text)

	out = run(t, env, "json hobbies")
	assert.Equal(t, foliotypes.ClassError, out.Class)
	assert.Equal(t, "Section not found. Available: "+sections, out.Text)
}

func TestFileCommands(t *testing.T) {
	env := newMockEnv(t)

	assert.Equal(t, "/home/sam/portfolio", run(t, env, "pwd").Text)

	out := run(t, env, "ls")
	lines := strings.Split(out.Text, "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "total 8", lines[0])
	assert.Equal(t, "drwxr-xr-x  2 sam sam  4096 Mar 14 15:09 about/", lines[1])
	assert.Equal(t, "-rw-r--r--  1 sam sam     0 Mar 14 15:09 portfolio.json", lines[6])

	out = run(t, env, "cat")
	assert.Equal(t, "Usage: cat [filename]", out.Text)
	out = run(t, env, "cat secrets.txt")
	assert.Equal(t, foliotypes.ClassError, out.Class)
	assert.Equal(t, "cat: secrets.txt: No such file or directory", out.Text)
	assert.Contains(t, run(t, env, "cat README.md").Text, "Welcome")
	assert.Equal(t, `Portfolio data not loaded. Use "reload" to load it.`, run(t, env, "cat portfolio.json").Text)
	assert.Contains(t, run(t, env, "cat skills.txt").Text, "JavaScript")

	env = loadedEnv(t)
	assert.Equal(t, "/home/bijay/portfolio", run(t, env, "pwd").Text)
	out = run(t, env, "ls")
	assert.Contains(t, out.Text, fmt.Sprintf("bijay bijay %5d Mar 14 15:09 portfolio.json", len(loadedDocument)))
	assert.Equal(t, "Email: bk@example.com\nPhone: +977 98", run(t, env, "cat contact.txt").Text)
	assert.Equal(t, "Portfolio data loaded! 10 sections available.", run(t, env, "cat portfolio.json").Text)
	assert.Equal(t, "Python, JavaScript, aiogram", run(t, env, "cat skills.txt").Text)
}

func TestFunCommands(t *testing.T) {
	env := newMockEnv(t)
	first := func(int) int { return 0 }
	last := func(n int) int { return n - 1 }

	out, err := (&JokeCommand{Pick: first}).Execute(context.Background(), nil, env)
	require.NoError(t, err)
	assert.Equal(t, jokes[0], out.Text)

	out, err = (&QuoteCommand{Pick: last}).Execute(context.Background(), nil, env)
	require.NoError(t, err)
	assert.Contains(t, out.Text, "Dan Salomon")

	// Unseeded commands still pick something from the list.
	assert.Contains(t, jokes, run(t, env, "joke").Text)
	assert.Contains(t, quotes, run(t, env, "quote").Text)
}

func TestMatrixCommand(t *testing.T) {
	env := newMockEnv(t)
	env.themes.names = append(env.themes.names, "matrix")

	out, err := (&MatrixCommand{Pick: func(int) int { return 1 }}).Execute(context.Background(), nil, env)
	require.NoError(t, err)
	assert.Equal(t, foliotypes.ClassASCII, out.Class)
	lines := strings.Split(out.Text, "\n")
	require.Len(t, lines, matrixRows+2)
	assert.Equal(t, strings.Repeat("1", matrixCols), lines[0])
	assert.Equal(t, "You are in the Matrix now...", lines[len(lines)-1])
	assert.Equal(t, "matrix", env.themes.current)

	env = newMockEnv(t)
	out = run(t, env, "matrix")
	assert.Len(t, strings.Split(out.Text, "\n")[0], matrixCols)
	assert.Equal(t, "default", env.themes.current, "missing theme leaves the current one")
}

func TestWeatherCommand(t *testing.T) {
	env := newMockEnv(t)

	out := run(t, env, "weather")
	assert.True(t, strings.HasPrefix(out.Text, "Weather in Lisbon:\n"))
	assert.Contains(t, out.Text, "Humidity:")

	out = run(t, env, "weather new york")
	assert.True(t, strings.HasPrefix(out.Text, "Weather in new york:\n"))
	assert.Equal(t, out.Text, run(t, env, "weather new york").Text)
	assert.Equal(t,
		strings.SplitN(out.Text, "\n", 2)[1],
		strings.SplitN(run(t, env, "weather NEW YORK").Text, "\n", 2)[1])

	env = loadedEnv(t)
	assert.True(t, strings.HasPrefix(run(t, env, "weather").Text, "Weather in Kathmandu:\n"))

	assert.Equal(t, "Lisbon", homeCity(""))
	assert.Equal(t, "Berlin", homeCity("Berlin"))
}

func TestResumeCommand(t *testing.T) {
	env := newMockEnv(t)
	out := run(t, env, "resume")
	assert.Equal(t, foliotypes.ClassSuccess, out.Class)
	assert.Equal(t, "Resume: "+portfolio.FallbackResumeURL, out.Text)
}
