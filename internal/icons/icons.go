package icons

import "strings"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	GitHub    string
	LinkedIn  string
	Instagram string
	Facebook  string
	Link      string
	Email     string
	Phone     string
	WhatsApp  string
	Location  string
	Briefcase string
	Degree    string
	School    string
	Award     string
	Trophy    string
	Code      string
	Star      string
	Bullet    string
}

var (
	nerdIcons = Icons{
		GitHub:    " ", // nf-fa-github
		LinkedIn:  " ", // nf-fa-linkedin
		Instagram: " ", // nf-fa-instagram
		Facebook:  " ", // nf-fa-facebook
		Link:      " ", // nf-fa-link
		Email:     " ", // nf-fa-envelope
		Phone:     " ", // nf-fa-phone
		WhatsApp:  " ", // nf-fa-whatsapp
		Location:  " ", // nf-fa-map_marker
		Briefcase: " ", // nf-fa-briefcase
		Degree:    " ", // nf-fa-graduation_cap
		School:    " ", // nf-fa-book
		Award:     " ", // nf-fa-award
		Trophy:    " ", // nf-fa-trophy
		Code:      " ", // nf-fa-code
		Star:      " ", // nf-fa-star
		Bullet:    " ", // nf-fa-chevron_right
	}

	unicodeIcons = Icons{
		GitHub:    "🐙 ",
		LinkedIn:  "💼 ",
		Instagram: "📷 ",
		Facebook:  "📘 ",
		Link:      "🔗 ",
		Email:     "✉ ",
		Phone:     "☎ ",
		WhatsApp:  "💬 ",
		Location:  "📍 ",
		Briefcase: "💼 ",
		Degree:    "🎓 ",
		School:    "📚 ",
		Award:     "🏅 ",
		Trophy:    "🏆 ",
		Code:      "⌨ ",
		Star:      "★ ",
		Bullet:    "• ",
	}

	noneIcons = Icons{
		Bullet: "- ",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// ForLink returns the icon for a contact link label such as "GitHub".
// Unknown labels get the generic link icon.
func ForLink(label string) string {
	switch strings.ToLower(label) {
	case "github":
		return current.GitHub
	case "linkedin":
		return current.LinkedIn
	case "instagram":
		return current.Instagram
	case "facebook":
		return current.Facebook
	case "email":
		return current.Email
	case "phone":
		return current.Phone
	case "whatsapp":
		return current.WhatsApp
	}
	return current.Link
}

// ForEducation returns the icon for an education entry kind.
func ForEducation(kind string) string {
	switch kind {
	case "degree":
		return current.Degree
	case "award":
		return current.Award
	}
	return current.School
}

// FormatLink formats a link label with its icon.
func FormatLink(label string) string {
	return ForLink(label) + label
}

func Email() string     { return current.Email }
func Phone() string     { return current.Phone }
func Location() string  { return current.Location }
func Briefcase() string { return current.Briefcase }
func Trophy() string    { return current.Trophy }
func Code() string      { return current.Code }
func Star() string      { return current.Star }

// Bullet returns the list bullet. It is never empty.
func Bullet() string {
	return current.Bullet
}
