package portfolio

import (
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"folioshell/pkg/foliotypes"
)

// View reads fields out of a cached portfolio document. Each accessor is defaulted on its own:
// a missing document, a missing key or a value of the wrong type all yield the built-in content.
// The zero View has no document and returns fallbacks everywhere.
type View struct {
	doc gjson.Result
}

var _ foliotypes.Portfolio = View{}

// NewView wraps a raw JSON document. Invalid JSON produces a View with no document.
func NewView(data []byte) View {
	if !gjson.ValidBytes(data) {
		return View{}
	}
	return View{doc: gjson.ParseBytes(data)}
}

// HasDocument reports whether a document backs the view.
func (v View) HasDocument() bool {
	return v.doc.IsObject()
}

func (v View) str(path, fallback string) string {
	r := v.doc.Get(path)
	if r.Type != gjson.String || strings.TrimSpace(r.Str) == "" {
		return fallback
	}
	return r.Str
}

// Name returns personal.name.
func (v View) Name() string { return v.str("personal.name", FallbackName) }

// Title returns personal.title.
func (v View) Title() string { return v.str("personal.title", FallbackTitle) }

// Bio returns personal.bio, markdown.
func (v View) Bio() string { return v.str("personal.bio", FallbackBio) }

// Email returns personal.email.
func (v View) Email() string { return v.str("personal.email", FallbackEmail) }

// Location returns personal.location.
func (v View) Location() string { return v.str("personal.location", FallbackLocation) }

// Availability returns personal.availability.
func (v View) Availability() string {
	return v.str("personal.availability", FallbackAvailability)
}

// GitHubUser returns personal.github.
func (v View) GitHubUser() string { return v.str("personal.github", FallbackGitHubUser) }

// Phone returns personal.phone.
func (v View) Phone() string { return v.str("personal.phone", FallbackPhone) }

// Website returns personal.website.
func (v View) Website() string { return v.str("personal.website", FallbackWebsite) }

// Timezone returns personal.timezone.
func (v View) Timezone() string { return v.str("personal.timezone", FallbackTimezone) }

// Tagline returns personal.tagline.
func (v View) Tagline() string { return v.str("personal.tagline", FallbackTagline) }

// ResumeURL returns personal.resume.
func (v View) ResumeURL() string { return v.str("personal.resume", FallbackResumeURL) }

// PromptUser returns the lower-cased first word of personal.name when the document has one.
func (v View) PromptUser() (string, bool) {
	r := v.doc.Get("personal.name")
	if r.Type != gjson.String {
		return "", false
	}
	fields := strings.Fields(r.Str)
	if len(fields) == 0 {
		return "", false
	}
	return strings.ToLower(fields[0]), true
}

// Loaded implements foliotypes.Portfolio.
func (v View) Loaded() bool { return v.HasDocument() }

// Size is the length of the raw document.
func (v View) Size() int {
	if !v.HasDocument() {
		return 0
	}
	return len(v.doc.Raw)
}

// Sections returns the top-level keys in document order.
func (v View) Sections() []string {
	if !v.HasDocument() {
		return nil
	}
	var keys []string
	v.doc.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// Section returns the value of a top-level key, indented.
func (v View) Section(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || !v.HasDocument() {
		return "", false
	}
	var found gjson.Result
	v.doc.ForEach(func(key, value gjson.Result) bool {
		if strings.EqualFold(key.String(), name) {
			found = value
			return false
		}
		return true
	})
	if !found.Exists() {
		return "", false
	}
	return strings.TrimRight(gjson.Get(found.Raw, "@pretty").Raw, "\n"), true
}

func (v View) skillsDoc() (gjson.Result, bool) {
	r := v.doc.Get("skills")
	return r, r.IsObject()
}

// SkillCategories returns the category names in document order.
func (v View) SkillCategories() []string {
	r, ok := v.skillsDoc()
	if !ok {
		return append([]string(nil), fallbackSkillOrder...)
	}
	var cats []string
	r.ForEach(func(key, value gjson.Result) bool {
		if value.IsArray() {
			cats = append(cats, key.String())
		}
		return true
	})
	if len(cats) == 0 {
		return append([]string(nil), fallbackSkillOrder...)
	}
	return cats
}

// MatchCategory resolves query against names: an exact case-insensitive match wins, otherwise
// the first name containing query. Blank queries never match.
func MatchCategory(names []string, query string) (string, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", false
	}
	for _, n := range names {
		if strings.ToLower(n) == query {
			return n, true
		}
	}
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), query) {
			return n, true
		}
	}
	return "", false
}

// Skills returns the skills of the category matched by query (see MatchCategory), or nil when
// no category matches.
func (v View) Skills(query string) []foliotypes.Skill {
	category, ok := MatchCategory(v.SkillCategories(), query)
	if !ok {
		return nil
	}
	r, ok := v.skillsDoc()
	if !ok {
		return cloneSkills(fallbackSkills[category])
	}

	list := r.Get(gjsonKey(category))
	if !list.IsArray() {
		return cloneSkills(fallbackSkills[category])
	}

	var skills []foliotypes.Skill
	for _, item := range list.Array() {
		name := item.Get("name").String()
		if name == "" {
			continue
		}
		skills = append(skills, foliotypes.Skill{
			Name:       name,
			Level:      clampLevel(int(item.Get("level").Int())),
			Experience: item.Get("experience").String(),
		})
	}
	return skills
}

// Projects returns the projects. A non-empty filter keeps projects whose category or status
// equals it, or whose category contains it, ignoring case.
func (v View) Projects(filter string) []foliotypes.Project {
	filter = strings.ToLower(strings.TrimSpace(filter))

	var all []foliotypes.Project
	r := v.doc.Get("projects")
	if r.IsArray() {
		for _, item := range r.Array() {
			title := item.Get("title").String()
			if title == "" {
				continue
			}
			p := foliotypes.Project{
				Title:       title,
				Description: item.Get("description").String(),
				Category:    item.Get("category").String(),
				Status:      item.Get("status").String(),
				GitHub:      item.Get("github").String(),
				Demo:        item.Get("demo").String(),
			}
			for _, tech := range item.Get("technologies").Array() {
				if s := tech.String(); s != "" {
					p.Technologies = append(p.Technologies, s)
				}
			}
			all = append(all, p)
		}
	} else {
		all = cloneProjects(fallbackProjects)
	}

	if filter == "" {
		return all
	}
	var filtered []foliotypes.Project
	for _, p := range all {
		if strings.ToLower(p.Status) == filter || strings.Contains(strings.ToLower(p.Category), filter) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ProjectFilters lists the distinct categories and statuses, lower-cased, categories first.
func (v View) ProjectFilters() []string {
	seen := make(map[string]bool)
	var cats, statuses []string
	projects := v.Projects("")
	for _, p := range projects {
		if c := strings.ToLower(p.Category); c != "" && !seen[c] {
			seen[c] = true
			cats = append(cats, c)
		}
	}
	for _, p := range projects {
		if st := strings.ToLower(p.Status); st != "" && !seen[st] {
			seen[st] = true
			statuses = append(statuses, st)
		}
	}
	sort.Strings(statuses)
	return append(cats, statuses...)
}

// Social returns platform links in document order.
func (v View) Social() []foliotypes.Link {
	r := v.doc.Get("social")
	if !r.IsObject() {
		return append([]foliotypes.Link(nil), fallbackSocial...)
	}
	var links []foliotypes.Link
	r.ForEach(func(key, value gjson.Result) bool {
		if url := value.String(); url != "" {
			links = append(links, foliotypes.Link{Name: key.String(), URL: url})
		}
		return true
	})
	return links
}

// Stats returns metrics in document order. Non-string values are rendered as JSON text.
func (v View) Stats() []foliotypes.Stat {
	r := v.doc.Get("stats")
	if !r.IsObject() {
		return append([]foliotypes.Stat(nil), fallbackStats...)
	}
	var stats []foliotypes.Stat
	r.ForEach(func(key, value gjson.Result) bool {
		val := value.String()
		if value.Type == gjson.JSON {
			val = value.Raw
		}
		stats = append(stats, foliotypes.Stat{Name: key.String(), Value: val})
		return true
	})
	return stats
}

// Services returns the services array.
func (v View) Services() []foliotypes.Service {
	r := v.doc.Get("services")
	if !r.IsArray() {
		return cloneServices(fallbackServices)
	}
	var out []foliotypes.Service
	for _, item := range r.Array() {
		title := item.Get("title").String()
		if title == "" {
			continue
		}
		out = append(out, foliotypes.Service{
			Title:       title,
			Description: item.Get("description").String(),
			PriceRange:  item.Get("price_range").String(),
			Features:    stringList(item.Get("features")),
		})
	}
	return out
}

// Education returns the education array.
func (v View) Education() []foliotypes.Education {
	r := v.doc.Get("education")
	if !r.IsArray() {
		return append([]foliotypes.Education(nil), fallbackEducation...)
	}
	var out []foliotypes.Education
	for _, item := range r.Array() {
		degree := item.Get("degree").String()
		if degree == "" {
			continue
		}
		out = append(out, foliotypes.Education{
			Degree:      degree,
			Institution: item.Get("institution").String(),
			Period:      item.Get("period").String(),
			Status:      item.Get("status").String(),
			Focus:       item.Get("focus").String(),
		})
	}
	return out
}

// Certifications returns the certifications array.
func (v View) Certifications() []foliotypes.Certification {
	r := v.doc.Get("certifications")
	if !r.IsArray() {
		return append([]foliotypes.Certification(nil), fallbackCertifications...)
	}
	var out []foliotypes.Certification
	for _, item := range r.Array() {
		name := item.Get("name").String()
		if name == "" {
			continue
		}
		out = append(out, foliotypes.Certification{
			Name:   name,
			Issuer: item.Get("issuer").String(),
			Date:   item.Get("date").String(),
		})
	}
	return out
}

// Experience returns the experience array.
func (v View) Experience() []foliotypes.Experience {
	r := v.doc.Get("experience")
	if !r.IsArray() {
		out := make([]foliotypes.Experience, len(fallbackExperience))
		for i, e := range fallbackExperience {
			e.Achievements = append([]string(nil), e.Achievements...)
			out[i] = e
		}
		return out
	}
	var out []foliotypes.Experience
	for _, item := range r.Array() {
		title := item.Get("title").String()
		if title == "" {
			continue
		}
		out = append(out, foliotypes.Experience{
			Title:        title,
			Company:      item.Get("company").String(),
			Period:       item.Get("period").String(),
			Description:  item.Get("description").String(),
			Achievements: stringList(item.Get("achievements")),
		})
	}
	return out
}

// Settings returns the settings object. Each flag falls back on its own.
func (v View) Settings() foliotypes.Settings {
	s := fallbackSettings
	r := v.doc.Get("settings")
	if !r.IsObject() {
		return s
	}
	if t := r.Get("theme"); t.Type == gjson.String && t.Str != "" {
		s.Theme = t.Str
	}
	flag := func(path string, dst *bool) {
		if f := r.Get(path); f.IsBool() {
			*dst = f.Bool()
		}
	}
	flag("enable_animations", &s.Animations)
	flag("enable_terminal", &s.Terminal)
	flag("maintenance_mode", &s.Maintenance)
	return s
}

// stringList collects the non-empty strings of a JSON array.
func stringList(r gjson.Result) []string {
	var out []string
	for _, item := range r.Array() {
		if s := item.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// gjsonKey escapes a literal object key for use as a gjson path.
func gjsonKey(key string) string {
	var sb strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			sb.WriteRune('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func clampLevel(level int) int {
	switch {
	case level < 0:
		return 0
	case level > 100:
		return 100
	default:
		return level
	}
}

func cloneSkills(in []foliotypes.Skill) []foliotypes.Skill {
	if in == nil {
		return nil
	}
	return append([]foliotypes.Skill(nil), in...)
}

func cloneServices(in []foliotypes.Service) []foliotypes.Service {
	out := make([]foliotypes.Service, len(in))
	for i, s := range in {
		s.Features = append([]string(nil), s.Features...)
		out[i] = s
	}
	return out
}

func cloneProjects(in []foliotypes.Project) []foliotypes.Project {
	out := make([]foliotypes.Project, len(in))
	for i, p := range in {
		p.Technologies = append([]string(nil), p.Technologies...)
		out[i] = p
	}
	return out
}
