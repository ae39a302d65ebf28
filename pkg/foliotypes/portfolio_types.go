package foliotypes

// Skill is one entry of a skill category.
type Skill struct {
	Name       string
	Level      int // 0-100
	Experience string
}

// Project is one portfolio project.
type Project struct {
	Title        string
	Description  string
	Category     string
	Status       string
	Technologies []string
	GitHub       string
	Demo         string
}

// Link is a named URL, used for social profiles.
type Link struct {
	Name string
	URL  string
}

// Stat is a named metric.
type Stat struct {
	Name  string
	Value string
}

// Service is one offering listed by the services command.
type Service struct {
	Title       string
	Description string
	PriceRange  string
	Features    []string
}

// Education is one degree or course of study.
type Education struct {
	Degree      string
	Institution string
	Period      string
	Status      string
	Focus       string
}

// Certification is a completed certificate.
type Certification struct {
	Name   string
	Issuer string
	Date   string
}

// Experience is one position held.
type Experience struct {
	Title        string
	Company      string
	Period       string
	Description  string
	Achievements []string
}

// Settings are the site flags carried by the document.
type Settings struct {
	Theme       string
	Animations  bool
	Terminal    bool
	Maintenance bool
}

// Portfolio is the read-only view of the external portfolio document. Every accessor
// returns a usable value; missing fields fall back to embedded defaults.
type Portfolio interface {
	Name() string
	Title() string
	Bio() string
	Email() string
	Location() string
	Availability() string
	Phone() string
	Website() string
	Timezone() string
	Tagline() string
	ResumeURL() string
	SkillCategories() []string
	// Skills resolves query to a category, exact name first and then substring, ignoring case.
	Skills(query string) []Skill
	// Projects filters by category or status; see portfolio.View.Projects.
	Projects(filter string) []Project
	// ProjectFilters lists the values Projects accepts as exact filters.
	ProjectFilters() []string
	Social() []Link
	Stats() []Stat
	Services() []Service
	Education() []Education
	Certifications() []Certification
	Experience() []Experience
	Settings() Settings
	GitHubUser() string

	// Loaded reports whether a fetched document backs the view.
	Loaded() bool
	// Sections lists the top-level keys of the document in order; nil when none is loaded.
	Sections() []string
	// Section returns one top-level value as indented JSON. Keys match case-insensitively.
	Section(name string) (string, bool)
	// Size is the document length in bytes.
	Size() int
}
