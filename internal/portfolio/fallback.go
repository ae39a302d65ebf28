package portfolio

import "folioshell/pkg/foliotypes"

// Built-in content shown whenever the portfolio document, or one of its fields, is missing.
const (
	FallbackName         = "Sam Carter"
	FallbackTitle        = "Full-Stack Developer"
	FallbackEmail        = "hello@samcarter.dev"
	FallbackLocation     = "Remote / Lisbon, Portugal"
	FallbackAvailability = "Open to freelance and full-time roles"
	FallbackGitHubUser   = "samcarter"
	FallbackPhone        = "+351 910 000 000"
	FallbackWebsite      = "https://samcarter.dev"
	FallbackTimezone     = "WET (UTC+0)"
	FallbackTagline      = "I turn vague ideas into small, sturdy software."
	FallbackResumeURL    = "https://samcarter.dev/resume.pdf"
	FallbackBio          = `## Hi, I'm Sam 👋

I build **web applications and developer tools** end to end: from the database schema
to the last pixel of the UI. I like small, well-tested services, readable code and
interfaces that get out of the way.

When I'm not coding I'm probably hiking, brewing coffee a little too seriously, or
tinkering with a mechanical keyboard.`
)

var fallbackSkillOrder = []string{"frontend", "backend", "tools"}

var fallbackSkills = map[string][]foliotypes.Skill{
	"frontend": {
		{Name: "JavaScript", Level: 90, Experience: "6 years"},
		{Name: "TypeScript", Level: 85, Experience: "4 years"},
		{Name: "HTML & CSS", Level: 90, Experience: "7 years"},
		{Name: "React", Level: 80, Experience: "4 years"},
	},
	"backend": {
		{Name: "Go", Level: 85, Experience: "4 years"},
		{Name: "Node.js", Level: 80, Experience: "5 years"},
		{Name: "PHP", Level: 70, Experience: "5 years"},
		{Name: "PostgreSQL", Level: 75, Experience: "5 years"},
	},
	"tools": {
		{Name: "Git", Level: 90, Experience: "7 years"},
		{Name: "Docker", Level: 75, Experience: "4 years"},
		{Name: "Linux", Level: 80, Experience: "6 years"},
	},
}

var fallbackProjects = []foliotypes.Project{
	{
		Title:        "Portfolio Terminal",
		Description:  "This site: an interactive terminal with history, tab completion and themes.",
		Category:     "web",
		Status:       "live",
		Technologies: []string{"Go", "Bubble Tea", "Lip Gloss"},
		GitHub:       "https://github.com/samcarter/portfolio",
	},
	{
		Title:        "Trailhead",
		Description:  "Offline-first hiking log with GPX import and elevation charts.",
		Category:     "mobile",
		Status:       "in progress",
		Technologies: []string{"TypeScript", "React Native", "SQLite"},
		GitHub:       "https://github.com/samcarter/trailhead",
	},
	{
		Title:        "queuectl",
		Description:  "Command-line inspector for message queues with live tailing.",
		Category:     "tools",
		Status:       "live",
		Technologies: []string{"Go", "Cobra"},
		GitHub:       "https://github.com/samcarter/queuectl",
		Demo:         "https://queuectl.samcarter.dev",
	},
}

var fallbackSocial = []foliotypes.Link{
	{Name: "github", URL: "https://github.com/samcarter"},
	{Name: "linkedin", URL: "https://www.linkedin.com/in/samcarter"},
	{Name: "twitter", URL: "https://twitter.com/samcarter_dev"},
}

var fallbackStats = []foliotypes.Stat{
	{Name: "years_coding", Value: "7"},
	{Name: "projects_shipped", Value: "24"},
	{Name: "coffee_cups", Value: "∞"},
}

var fallbackServices = []foliotypes.Service{
	{
		Title:       "Web Application Development",
		Description: "From prototype to production: APIs, dashboards and the glue in between.",
		PriceRange:  "$500 - $3000",
		Features:    []string{"Responsive front end", "REST or GraphQL API", "Deployment and monitoring"},
	},
	{
		Title:       "Command-Line Tooling",
		Description: "Internal CLIs and automation that remove the boring parts of a workflow.",
		PriceRange:  "$300 - $1500",
		Features:    []string{"Cross-platform binaries", "Shell completion", "Documentation and tests"},
	},
}

var fallbackEducation = []foliotypes.Education{
	{
		Degree:      "BSc in Computer Science",
		Institution: "University of Lisbon",
		Period:      "2015 - 2019",
		Status:      "Completed",
		Focus:       "Distributed systems",
	},
}

var fallbackCertifications = []foliotypes.Certification{
	{Name: "Certified Kubernetes Application Developer", Issuer: "CNCF", Date: "2023"},
}

var fallbackExperience = []foliotypes.Experience{
	{
		Title:       "Senior Software Engineer",
		Company:     "Harbor Labs",
		Period:      "2022 - Present",
		Description: "Platform team, internal developer tooling.",
		Achievements: []string{
			"Cut CI time from 25 to 8 minutes",
			"Built the service catalog used by 40 teams",
		},
	},
	{
		Title:        "Freelance Developer",
		Company:      "Self-employed",
		Period:       "2019 - 2022",
		Description:  "Web applications and automation for small businesses.",
		Achievements: []string{"Shipped 18 client projects"},
	},
}

var fallbackSettings = foliotypes.Settings{
	Theme:      "default",
	Animations: true,
	Terminal:   true,
}
