package portfolio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folioshell/pkg/foliotypes"
)

const sampleDocument = `{
  "personal": {
    "name": "Riley Doe",
    "title": "Backend Engineer",
    "email": "riley@example.com",
    "github": "rileydoe"
  },
  "skills": {
    "languages": [
      {"name": "Go", "level": 95, "experience": "5 years"},
      {"name": "Rust", "level": 140},
      {"level": 10}
    ],
    "cloud": [
      {"name": "AWS", "level": 70, "experience": "3 years"}
    ]
  },
  "projects": [
    {"title": "ledger", "description": "double entry", "category": "backend", "status": "live", "technologies": ["Go", "Postgres"]},
    {"title": "dash", "category": "web"}
  ],
  "social": {"github": "https://github.com/rileydoe", "mastodon": "https://hachyderm.io/@riley"},
  "stats": {"commits": 1200, "languages": ["go", "rust"], "coffee": "lots"}
}`

type stubSource struct {
	data  []byte
	err   error
	calls atomic.Int32
	block chan struct{}
}

func (s *stubSource) Fetch(ctx context.Context) ([]byte, error) {
	s.calls.Add(1)
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.data, s.err
}

func (s *stubSource) String() string { return "stub" }

func TestView_Fallbacks(t *testing.T) {
	var v View

	assert.False(t, v.HasDocument())
	assert.Equal(t, FallbackEmail, v.Email())
	assert.Equal(t, FallbackName, v.Name())
	assert.Equal(t, FallbackBio, v.Bio())
	assert.Equal(t, fallbackSkillOrder, v.SkillCategories())
	assert.Len(t, v.Skills("frontend"), len(fallbackSkills["frontend"]))
	assert.Nil(t, v.Skills("cooking"))
	assert.Len(t, v.Projects(""), len(fallbackProjects))
	assert.Len(t, v.Social(), len(fallbackSocial))
	assert.Len(t, v.Stats(), len(fallbackStats))
}

func TestView_FallbacksAreCopies(t *testing.T) {
	var v View
	projects := v.Projects("")
	projects[0].Title = "changed"
	projects[0].Technologies[0] = "changed"

	fresh := v.Projects("")
	assert.Equal(t, "Portfolio Terminal", fresh[0].Title)
	assert.Equal(t, "Go", fresh[0].Technologies[0])
}

func TestView_Document(t *testing.T) {
	v := NewView([]byte(sampleDocument))
	require.True(t, v.HasDocument())

	assert.Equal(t, "Riley Doe", v.Name())
	assert.Equal(t, "riley@example.com", v.Email())
	assert.Equal(t, "rileydoe", v.GitHubUser())

	// Missing personal fields fall back one by one.
	assert.Equal(t, FallbackBio, v.Bio())
	assert.Equal(t, FallbackLocation, v.Location())

	assert.Equal(t, []string{"languages", "cloud"}, v.SkillCategories())

	skills := v.Skills("Languages")
	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[0].Name)
	assert.Equal(t, 95, skills[0].Level)
	assert.Equal(t, 100, skills[1].Level)
	assert.Empty(t, skills[1].Experience)
	assert.Nil(t, v.Skills("frontend"))

	projects := v.Projects("")
	require.Len(t, projects, 2)
	assert.Equal(t, []string{"Go", "Postgres"}, projects[0].Technologies)
	assert.Len(t, v.Projects("WEB"), 1)
	assert.Empty(t, v.Projects("mobile"))

	social := v.Social()
	require.Len(t, social, 2)
	assert.Equal(t, "mastodon", social[1].Name)

	stats := v.Stats()
	require.Len(t, stats, 3)
	assert.Equal(t, "1200", stats[0].Value)
	assert.Equal(t, `["go", "rust"]`, stats[1].Value)
	assert.Equal(t, "lots", stats[2].Value)
}

func TestView_CategoryMatching(t *testing.T) {
	v := NewView([]byte(`{
	  "skills": {
	    "Programming Languages": [{"name": "Python", "level": 90}],
	    "Bot Development": [{"name": "aiogram", "level": 80}],
	    "Programming Tools": [{"name": "Git", "level": 70}]
	  },
	  "projects": [
	    {"title": "helper", "category": "Bot Development", "status": "active"},
	    {"title": "site", "category": "Web", "status": "completed"}
	  ]
	}`))

	require.Len(t, v.Skills("programming languages"), 1)
	assert.Equal(t, "Python", v.Skills("programming languages")[0].Name)
	assert.Equal(t, "Python", v.Skills("programming")[0].Name, "first category containing the query")
	assert.Equal(t, "Git", v.Skills("PROGRAMMING TOOLS")[0].Name)
	assert.Equal(t, "aiogram", v.Skills("bot")[0].Name)
	assert.Nil(t, v.Skills("  "))

	require.Len(t, v.Projects("bot"), 1)
	assert.Equal(t, "helper", v.Projects("bot")[0].Title)
	require.Len(t, v.Projects("Active"), 1)
	assert.Equal(t, "helper", v.Projects("active")[0].Title)
	assert.Equal(t, "site", v.Projects("completed")[0].Title)
	assert.Empty(t, v.Projects("archived"))
	assert.Equal(t, []string{"bot development", "web", "active", "completed"}, v.ProjectFilters())
}

func TestMatchCategory(t *testing.T) {
	names := []string{"Web Frameworks", "Web", "Tools"}

	got, ok := MatchCategory(names, "web")
	require.True(t, ok)
	assert.Equal(t, "Web", got, "exact match beats an earlier substring match")

	got, ok = MatchCategory(names, "frame")
	require.True(t, ok)
	assert.Equal(t, "Web Frameworks", got)

	_, ok = MatchCategory(names, "cooking")
	assert.False(t, ok)
	_, ok = MatchCategory(names, "")
	assert.False(t, ok)
}

func TestView_ExtendedSections(t *testing.T) {
	var empty View
	assert.Equal(t, FallbackPhone, empty.Phone())
	assert.Equal(t, FallbackWebsite, empty.Website())
	assert.Equal(t, FallbackTimezone, empty.Timezone())
	assert.Equal(t, FallbackTagline, empty.Tagline())
	assert.Equal(t, FallbackResumeURL, empty.ResumeURL())
	assert.Len(t, empty.Services(), len(fallbackServices))
	assert.Len(t, empty.Education(), len(fallbackEducation))
	assert.Len(t, empty.Certifications(), len(fallbackCertifications))
	assert.Len(t, empty.Experience(), len(fallbackExperience))
	assert.Equal(t, fallbackSettings, empty.Settings())

	services := empty.Services()
	services[0].Features[0] = "changed"
	assert.NotEqual(t, "changed", empty.Services()[0].Features[0])

	v := NewView([]byte(`{
	  "personal": {"phone": "+1 555 0100", "timezone": "PST", "tagline": "ship it"},
	  "services": [{"title": "Bots", "price_range": "$100", "features": ["fast", "", "cheap"]}, {"description": "untitled"}],
	  "education": [{"degree": "MSc", "institution": "MIT", "status": "In progress"}],
	  "certifications": [{"name": "CKA", "issuer": "CNCF", "date": "2024"}],
	  "experience": [{"title": "Dev", "company": "Acme", "achievements": ["one"]}],
	  "settings": {"theme": "matrix", "enable_animations": false, "maintenance_mode": true, "enable_terminal": "yes"}
	}`))

	assert.Equal(t, "+1 555 0100", v.Phone())
	assert.Equal(t, FallbackWebsite, v.Website())
	assert.Equal(t, "PST", v.Timezone())
	assert.Equal(t, "ship it", v.Tagline())

	require.Len(t, v.Services(), 1)
	assert.Equal(t, []string{"fast", "cheap"}, v.Services()[0].Features)
	assert.Equal(t, "$100", v.Services()[0].PriceRange)
	assert.Equal(t, "In progress", v.Education()[0].Status)
	assert.Equal(t, "CNCF", v.Certifications()[0].Issuer)
	assert.Equal(t, []string{"one"}, v.Experience()[0].Achievements)
	assert.Equal(t, foliotypes.Settings{Theme: "matrix", Terminal: true, Maintenance: true}, v.Settings())
}

func TestView_RawSections(t *testing.T) {
	var empty View
	assert.False(t, empty.Loaded())
	assert.Nil(t, empty.Sections())
	assert.Zero(t, empty.Size())
	_, ok := empty.Section("personal")
	assert.False(t, ok)

	v := NewView([]byte(sampleDocument))
	assert.True(t, v.Loaded())
	assert.Equal(t, len(sampleDocument), v.Size())
	assert.Equal(t, []string{"personal", "skills", "projects", "social", "stats"}, v.Sections())

	raw, ok := v.Section("SOCIAL")
	require.True(t, ok)
	assert.Contains(t, raw, "\n  \"github\": \"https://github.com/rileydoe\"")
	assert.False(t, strings.HasSuffix(raw, "\n"))

	_, ok = v.Section("services")
	assert.False(t, ok)
}

func TestView_PromptUser(t *testing.T) {
	user, ok := NewView([]byte(sampleDocument)).PromptUser()
	require.True(t, ok)
	assert.Equal(t, "riley", user)

	_, ok = View{}.PromptUser()
	assert.False(t, ok)
	_, ok = NewView([]byte(`{"personal": {"name": "   "}}`)).PromptUser()
	assert.False(t, ok)
}

func TestView_WrongTypes(t *testing.T) {
	v := NewView([]byte(`{"personal": {"email": 42, "name": ""}, "skills": [1,2], "projects": {}, "social": "x", "stats": null}`))

	assert.Equal(t, FallbackEmail, v.Email())
	assert.Equal(t, FallbackName, v.Name())
	assert.Equal(t, fallbackSkillOrder, v.SkillCategories())
	assert.Len(t, v.Projects(""), len(fallbackProjects))
	assert.Len(t, v.Social(), len(fallbackSocial))
	assert.Len(t, v.Stats(), len(fallbackStats))
}

func TestView_InvalidJSON(t *testing.T) {
	v := NewView([]byte(`{"personal":`))
	assert.False(t, v.HasDocument())
	assert.Equal(t, FallbackEmail, v.Email())
}

func TestStore_NoSource(t *testing.T) {
	s := NewStore(nil)

	assert.False(t, s.Load(context.Background()))
	assert.False(t, s.Loaded())
	assert.Equal(t, ReloadNoSource, s.Reload(context.Background()))
	assert.Equal(t, FallbackEmail, s.View().Email())
	assert.Equal(t, "built-in", s.Summary())
}

func TestStore_LoadAndFailureKeepsPrevious(t *testing.T) {
	src := &stubSource{data: []byte(sampleDocument)}
	s := NewStore(src)

	require.True(t, s.Load(context.Background()))
	assert.True(t, s.Loaded())
	assert.Equal(t, "Riley Doe", s.View().Name())
	assert.Equal(t, "loaded from stub", s.Summary())

	src.data = []byte(`not json`)
	assert.False(t, s.Load(context.Background()))
	assert.Equal(t, "Riley Doe", s.View().Name(), "failed load keeps the previous cache")

	src.data = []byte(`[1, 2, 3]`)
	assert.False(t, s.Load(context.Background()))
	assert.Equal(t, "Riley Doe", s.View().Name())
}

func TestStore_ReloadClearsOnFailure(t *testing.T) {
	src := &stubSource{data: []byte(sampleDocument)}
	s := NewStore(src)
	require.True(t, s.Load(context.Background()))

	src.data = nil
	src.err = assert.AnError
	assert.Equal(t, ReloadFailed, s.Reload(context.Background()))
	assert.False(t, s.Loaded())
	assert.Equal(t, FallbackName, s.View().Name())

	src.data = []byte(sampleDocument)
	src.err = nil
	assert.Equal(t, ReloadOK+" Loaded 5 sections.", s.Reload(context.Background()))
	assert.Equal(t, "Riley Doe", s.View().Name())
}

func TestStore_ConcurrentReloadIsDropped(t *testing.T) {
	src := &stubSource{data: []byte(sampleDocument), block: make(chan struct{})}
	s := NewStore(src)

	first := make(chan string, 1)
	go func() { first <- s.Reload(context.Background()) }()

	require.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, ReloadInProgress, s.Reload(context.Background()))

	close(src.block)
	assert.Equal(t, ReloadOK+" Loaded 5 sections.", <-first)
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestStore_ConcurrentLoadsShareFetch(t *testing.T) {
	src := &stubSource{data: []byte(sampleDocument), block: make(chan struct{})}
	s := NewStore(src)

	var wg sync.WaitGroup
	results := make([]bool, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Load(context.Background())
		}(i)
	}

	require.Eventually(t, func() bool { return src.calls.Load() >= 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(src.block)
	wg.Wait()

	for _, ok := range results {
		assert.True(t, ok)
	}
	assert.LessOrEqual(t, src.calls.Load(), int32(5))
	assert.True(t, s.Loaded())
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/portfolio.json":
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			_, _ = w.Write([]byte(sampleDocument))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewSource(srv.URL+"/portfolio.json", time.Second)
	require.IsType(t, &HTTPSource{}, src)

	s := NewStore(src)
	assert.True(t, s.Load(context.Background()))
	assert.Equal(t, "riley@example.com", s.View().Email())

	missing := NewStore(NewSource(srv.URL+"/missing.json", time.Second))
	assert.False(t, missing.Load(context.Background()))
	assert.Equal(t, FallbackEmail, missing.View().Email())
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	assert.Nil(t, NewSource("  ", time.Second))

	for _, location := range []string{path, "file://" + path} {
		src := NewSource(location, time.Second)
		require.IsType(t, &FileSource{}, src)
		data, err := src.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sampleDocument, string(data))
	}

	_, err := (&FileSource{Path: filepath.Join(dir, "nope.json")}).Fetch(context.Background())
	assert.Error(t, err)
}

func TestGitHubClient_Profile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/rileydoe" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"login":"rileydoe","name":"Riley","public_repos":31,"public_gists":4,"followers":120,"following":8,"html_url":"https://github.com/rileydoe"}`))
	}))
	defer srv.Close()

	client := NewGitHubClient(srv.URL+"/", time.Second)

	profile, err := client.Profile(context.Background(), "rileydoe")
	require.NoError(t, err)
	assert.Equal(t, int64(31), profile.PublicRepos)
	assert.Equal(t, int64(120), profile.Followers)
	assert.Equal(t, int64(8), profile.Following)
	assert.Equal(t, int64(4), profile.PublicGists)
	assert.Equal(t, "https://github.com/rileydoe", profile.HTMLURL)

	_, err = client.Profile(context.Background(), "ghost")
	assert.ErrorContains(t, err, "404")

	_, err = client.Profile(context.Background(), " ")
	assert.Error(t, err)

	assert.Equal(t, DefaultGitHubAPI, NewGitHubClient("", time.Second).BaseURL)
}
