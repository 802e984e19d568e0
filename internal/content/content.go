// Package content holds the display records rendered by the portfolio page.
// Records are built once from defaults or a YAML override file and are never
// mutated afterwards.
package content

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

type NavItem struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

type Header struct {
	Logo string    `yaml:"logo" json:"logo"`
	Nav  []NavItem `yaml:"nav" json:"nav"`
}

type Hero struct {
	Name         string `yaml:"name" json:"name"`
	Title        string `yaml:"title" json:"title"`
	Introduction string `yaml:"introduction" json:"introduction"`
	PhotoURL     string `yaml:"photo_url" json:"photo_url"`
}

type About struct {
	Title    string   `yaml:"title" json:"title"`
	Subtitle string   `yaml:"subtitle" json:"subtitle"`
	Bio      string   `yaml:"bio" json:"bio"`
	PhotoURL string   `yaml:"photo_url" json:"photo_url"`
	Summary  []string `yaml:"summary" json:"summary"`
}

type EducationItem struct {
	Degree      string `yaml:"degree" json:"degree"`
	Institution string `yaml:"institution" json:"institution"`
	Location    string `yaml:"location" json:"location"`
	StartDate   string `yaml:"start_date" json:"start_date,omitempty"`
	EndDate     string `yaml:"end_date" json:"end_date"`
	Description string `yaml:"description" json:"description"`
}

type Education struct {
	Title    string          `yaml:"title" json:"title"`
	Subtitle string          `yaml:"subtitle" json:"subtitle"`
	Items    []EducationItem `yaml:"items" json:"items"`
}

type Skill struct {
	Name string `yaml:"name" json:"name"`
	// Proficiency is a display percentage and is rendered as given.
	Proficiency int `yaml:"proficiency" json:"proficiency"`
}

type SkillCategory struct {
	Name   string  `yaml:"name" json:"name"`
	Icon   string  `yaml:"icon" json:"icon"`
	Skills []Skill `yaml:"skills" json:"skills"`
}

type Skills struct {
	Title      string          `yaml:"title" json:"title"`
	Subtitle   string          `yaml:"subtitle" json:"subtitle"`
	Categories []SkillCategory `yaml:"categories" json:"categories"`
}

// Project is a piece of work shown inside an experience entry. The role,
// responsibility and achievement fields are optional detail for the card.
type Project struct {
	ID               string   `yaml:"id" json:"id"`
	Title            string   `yaml:"title" json:"title"`
	Description      string   `yaml:"description" json:"description"`
	Technologies     []string `yaml:"technologies" json:"technologies"`
	Image            string   `yaml:"image" json:"image"`
	Role             string   `yaml:"role" json:"role,omitempty"`
	Duration         string   `yaml:"duration" json:"duration,omitempty"`
	Responsibilities []string `yaml:"responsibilities" json:"responsibilities,omitempty"`
	Achievements     []string `yaml:"achievements" json:"achievements,omitempty"`
	Link             string   `yaml:"link" json:"link,omitempty"`
}

// HasDetail reports whether the card has anything to show when expanded.
func (p Project) HasDetail() bool {
	return p.Role != "" || len(p.Responsibilities) > 0 || len(p.Achievements) > 0
}

type Experience struct {
	ID          string    `yaml:"id" json:"id"`
	Company     string    `yaml:"company" json:"company"`
	Position    string    `yaml:"position" json:"position"`
	Duration    string    `yaml:"duration" json:"duration"`
	Description string    `yaml:"description" json:"description"`
	Projects    []Project `yaml:"projects" json:"projects"`
}

type Experiences struct {
	Title   string       `yaml:"title" json:"title"`
	Entries []Experience `yaml:"entries" json:"entries"`
}

type Certification struct {
	ID            string   `yaml:"id" json:"id"`
	Title         string   `yaml:"title" json:"title"`
	Organization  string   `yaml:"organization" json:"organization"`
	Date          string   `yaml:"date" json:"date"`
	Logo          string   `yaml:"logo" json:"logo"`
	Description   string   `yaml:"description" json:"description"`
	CredentialURL string   `yaml:"credential_url" json:"credential_url,omitempty"`
	CredentialID  string   `yaml:"credential_id" json:"credential_id,omitempty"`
	Skills        []string `yaml:"skills" json:"skills,omitempty"`
}

type Certifications struct {
	Title    string          `yaml:"title" json:"title"`
	Subtitle string          `yaml:"subtitle" json:"subtitle"`
	Items    []Certification `yaml:"items" json:"items"`
}

type Contact struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Email    string `yaml:"email" json:"email"`
}

type SocialLinks struct {
	GitHub    string `yaml:"github" json:"github,omitempty"`
	LinkedIn  string `yaml:"linkedin" json:"linkedin,omitempty"`
	Instagram string `yaml:"instagram" json:"instagram,omitempty"`
	Twitter   string `yaml:"twitter" json:"twitter,omitempty"`
}

type Footer struct {
	Owner   string      `yaml:"owner" json:"owner"`
	Email   string      `yaml:"email" json:"email"`
	Tagline string      `yaml:"tagline" json:"tagline"`
	Links   SocialLinks `yaml:"links" json:"links"`
}

// Site is everything the page renders.
type Site struct {
	Header         Header         `yaml:"header" json:"header"`
	Hero           Hero           `yaml:"hero" json:"hero"`
	About          About          `yaml:"about" json:"about"`
	Education      Education      `yaml:"education" json:"education"`
	Skills         Skills         `yaml:"skills" json:"skills"`
	Experience     Experiences    `yaml:"experience" json:"experience"`
	Certifications Certifications `yaml:"certifications" json:"certifications"`
	Contact        Contact        `yaml:"contact" json:"contact"`
	Footer         Footer         `yaml:"footer" json:"footer"`
}

// FindExperience looks up an experience entry by id.
func (s *Site) FindExperience(id string) (Experience, bool) {
	for _, e := range s.Experience.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Experience{}, false
}

// FindProject searches the projects of every experience entry.
func (s *Site) FindProject(id string) (Project, bool) {
	for _, e := range s.Experience.Entries {
		for _, p := range e.Projects {
			if p.ID == id {
				return p, true
			}
		}
	}
	return Project{}, false
}

func (s *Site) FindCertification(id string) (Certification, bool) {
	for _, c := range s.Certifications.Items {
		if c.ID == id {
			return c, true
		}
	}
	return Certification{}, false
}

// ErrInvalidContent is wrapped by every Validate failure.
var ErrInvalidContent = errors.New("invalid content")

// Validate checks that every experience, project and certification has a
// non-empty id that is unique among records of its kind. Ids appear in
// routes and key per-visitor card state.
func (s *Site) Validate() error {
	experiences := make(map[string]bool)
	projects := make(map[string]bool)
	for i, e := range s.Experience.Entries {
		if err := checkID(experiences, "experience", i, e.ID); err != nil {
			return err
		}
		for j, p := range e.Projects {
			if err := checkID(projects, "project", j, p.ID); err != nil {
				return fmt.Errorf("experience %q: %w", e.ID, err)
			}
		}
	}

	certifications := make(map[string]bool)
	for i, c := range s.Certifications.Items {
		if err := checkID(certifications, "certification", i, c.ID); err != nil {
			return err
		}
	}
	return nil
}

func checkID(seen map[string]bool, kind string, index int, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s #%d has no id", ErrInvalidContent, kind, index+1)
	}
	if seen[id] {
		return fmt.Errorf("%w: duplicate %s id %q", ErrInvalidContent, kind, id)
	}
	seen[id] = true
	return nil
}

// Load returns the default site overlaid with the YAML file at path.
// Sections present in the file replace the defaults; absent ones are kept.
func Load(path string) (*Site, error) {
	site := Default()
	if path == "" {
		return site, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(site); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode content file %s: %w", path, err)
	}
	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return site, nil
}

// Avatar builds a dicebear avatar URL. The result is used as an opaque image source.
func Avatar(style, seed string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/%s/svg?seed=%s", url.PathEscape(style), url.QueryEscape(seed))
}
