// Package content defines the portfolio document rendered by every section.
// A Portfolio is loaded once at start-up and treated as immutable.
package content

import (
	"regexp"
	"strings"
	"time"
)

// Portfolio is the complete content of the page.
type Portfolio struct {
	Owner        Owner         `koanf:"owner" json:"owner"`
	Hero         Hero          `koanf:"hero" json:"hero"`
	Contact      Contact       `koanf:"contact" json:"contact"`
	Experience   []Job         `koanf:"experience" json:"experience"`
	Education    []School      `koanf:"education" json:"education"`
	Achievements []Achievement `koanf:"achievements" json:"achievements"`
	Projects     []Project     `koanf:"projects" json:"projects"`
	Featured     []Featured    `koanf:"featured" json:"featured"`
	Skills       []Skill       `koanf:"skills" json:"skills"`
	Graphics     Graphics      `koanf:"graphics" json:"graphics"`

	// Source is the file the content was read from, empty for the
	// built-in document.
	Source string `koanf:"-" json:"-"`
	// UpdatedAt is the modification time of Source.
	UpdatedAt time.Time `koanf:"-" json:"-"`
}

type Owner struct {
	Name string `koanf:"name" json:"name"`
	Role string `koanf:"role" json:"role"`
}

// Initial returns the first letter of the owner's name, used as the logo.
func (o Owner) Initial() string {
	for _, r := range strings.TrimSpace(o.Name) {
		return strings.ToUpper(string(r))
	}
	return ""
}

// ShortName returns the last word of the owner's name, shown beside the logo.
func (o Owner) ShortName() string {
	fields := strings.Fields(o.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

type Hero struct {
	Badge      string   `koanf:"badge" json:"badge"`
	Greeting   string   `koanf:"greeting" json:"greeting"`
	Titles     []string `koanf:"titles" json:"titles"`
	Summary    string   `koanf:"summary" json:"summary"`
	ScrollHint string   `koanf:"scroll_hint" json:"scrollHint"`
}

// Title returns the i-th rotating title prefixed with the article, wrapping
// around the list.
func (h Hero) Title(i int) string {
	if len(h.Titles) == 0 {
		return ""
	}
	i %= len(h.Titles)
	if i < 0 {
		i += len(h.Titles)
	}
	return "A" + h.Titles[i]
}

type Link struct {
	Label string `koanf:"label" json:"label"`
	URL   string `koanf:"url" json:"url"`
}

type Contact struct {
	Email    string `koanf:"email" json:"email"`
	Phone    string `koanf:"phone" json:"phone"`
	Location string `koanf:"location" json:"location"`
	Links    []Link `koanf:"links" json:"links"`
}

var nonDialable = regexp.MustCompile(`[^+\d]`)

// DialString returns the phone number with everything except digits and
// '+' removed.
func (c Contact) DialString() string {
	return nonDialable.ReplaceAllString(c.Phone, "")
}

// WhatsAppURL returns the click-to-chat link for the phone number.
func (c Contact) WhatsAppURL() string {
	if c.Phone == "" {
		return ""
	}
	return "https://wa.me/" + c.DialString()
}

// TelURL returns the tel: link for the phone number.
func (c Contact) TelURL() string {
	if c.Phone == "" {
		return ""
	}
	return "tel:" + c.DialString()
}

// MailURL returns the mailto: link for the email address.
func (c Contact) MailURL() string {
	if c.Email == "" {
		return ""
	}
	return "mailto:" + c.Email
}

// LinkURL returns the URL of the link with the given label, ignoring case.
func (c Contact) LinkURL(label string) string {
	for _, l := range c.Links {
		if strings.EqualFold(l.Label, label) {
			return l.URL
		}
	}
	return ""
}

type Job struct {
	ID       string   `koanf:"id" json:"id"`
	Title    string   `koanf:"title" json:"title"`
	Company  string   `koanf:"company" json:"company"`
	Period   string   `koanf:"period" json:"period"`
	Location string   `koanf:"location" json:"location"`
	Points   []string `koanf:"points" json:"points"`
}

type School struct {
	ID          string `koanf:"id" json:"id"`
	Kind        string `koanf:"kind" json:"kind"` // "degree", "school" or "award"
	Degree      string `koanf:"degree" json:"degree"`
	Institution string `koanf:"institution" json:"institution"`
	Period      string `koanf:"period" json:"period"`
	Description string `koanf:"description" json:"description"`
}

type Detail struct {
	Label string `koanf:"label" json:"label"`
	Value string `koanf:"value" json:"value"`
}

type Achievement struct {
	ID      string   `koanf:"id" json:"id"`
	Title   string   `koanf:"title" json:"title"`
	Kind    string   `koanf:"kind" json:"kind"`
	Golden  bool     `koanf:"golden" json:"golden"`
	Details []Detail `koanf:"details" json:"details"`
}

type Project struct {
	ID     string   `koanf:"id" json:"id"`
	Title  string   `koanf:"title" json:"title"`
	Period string   `koanf:"period" json:"period"`
	Kind   string   `koanf:"kind" json:"kind"`
	Points []string `koanf:"points" json:"points"`
	Repo   string   `koanf:"repo" json:"repo,omitempty"`
}

type Featured struct {
	ID      string   `koanf:"id" json:"id"`
	Title   string   `koanf:"title" json:"title"`
	Tagline string   `koanf:"tagline" json:"tagline"`
	Points  []string `koanf:"points" json:"points"`
	Tech    []string `koanf:"tech" json:"tech"`
	Live    string   `koanf:"live" json:"live,omitempty"`
	Repo    string   `koanf:"repo" json:"repo,omitempty"`
}

type Skill struct {
	Name     string `koanf:"name" json:"name"`
	Category string `koanf:"category" json:"category"`
}

// SkillGroup is the skills of one category.
type SkillGroup struct {
	Category string
	Skills   []Skill
}

// SkillGroups groups skills by category in first-seen order.
func (p *Portfolio) SkillGroups() []SkillGroup {
	var groups []SkillGroup
	pos := make(map[string]int)
	for _, s := range p.Skills {
		i, ok := pos[s.Category]
		if !ok {
			i = len(groups)
			pos[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

type Tile struct {
	ID      string `koanf:"id" json:"id"`
	Caption string `koanf:"caption" json:"caption"`
	Image   string `koanf:"image" json:"image"`
}

type Partner struct {
	Name  string `koanf:"name" json:"name"`
	Image string `koanf:"image" json:"image"`
}

type Graphics struct {
	Title    string    `koanf:"title" json:"title"`
	Tiles    []Tile    `koanf:"tiles" json:"tiles"`
	Partners []Partner `koanf:"partners" json:"partners"`
}


		out = append(out, t)
	}
	return out
}

// ExperienceIDs returns the ids of the experience entries in order.
func (p *Portfolio) ExperienceIDs() []string {
	ids := make([]string, len(p.Experience))
	for i, j := range p.Experience {
		ids[i] = j.ID
	}
	return ids
}

// EducationIDs returns the ids of the education entries in order.
func (p *Portfolio) EducationIDs() []string {
	ids := make([]string, len(p.Education))
	for i, s := range p.Education {
		ids[i] = s.ID
	}
	return ids
}
