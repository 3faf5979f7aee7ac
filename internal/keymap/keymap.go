// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "page", "row", "menu"
}

// All contains all key bindings for dispatch and help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionMenu, []string{"m"}, "Navigation menu", "global"},
	{ActionJumpHome, []string{"1"}, "Go to Home", "global"},
	{ActionJumpAbout, []string{"2"}, "Go to About", "global"},
	{ActionJumpProjects, []string{"3"}, "Go to Projects", "global"},
	{ActionJumpContact, []string{"4"}, "Go to Contact", "global"},

	// Page
	{ActionScrollDown, []string{"j", "down"}, "Scroll down", "page"},
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", "page"},
	{ActionHalfPageDown, []string{"ctrl+d"}, "Half page down", "page"},
	{ActionHalfPageUp, []string{"ctrl+u"}, "Half page up", "page"},
	{ActionPageDown, []string{"pgdown", " "}, "Page down", "page"},
	{ActionPageUp, []string{"pgup"}, "Page up", "page"},
	{ActionJumpStart, []string{"g", "home"}, "Top of page", "page"},
	{ActionJumpEnd, []string{"G", "end"}, "Bottom of page", "page"},

	// Rows
	{ActionFocusNextRow, []string{"tab"}, "Focus next row", "row"},
	{ActionFocusPrevRow, []string{"shift+tab"}, "Focus previous row", "row"},
	{ActionRowLeft, []string{"h", "left"}, "Scroll row left", "row"},
	{ActionRowRight, []string{"l", "right"}, "Scroll row right", "row"},
	{ActionClearFocus, []string{"esc"}, "Release row", "row"},

	// Menu
	{ActionMoveDown, []string{"j", "down"}, "Next link", "menu"},
	{ActionMoveUp, []string{"k", "up"}, "Previous link", "menu"},
	{ActionSelect, []string{"enter"}, "Open link", "menu"},
	{ActionClose, []string{"esc", "m"}, "Close menu", "menu"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForContexts returns the bindings of the given contexts in order.
// Later contexts do not override earlier ones.
func ForContexts(contexts ...string) []Binding {
	var result []Binding
	for _, c := range contexts {
		result = append(result, ByContext(c)...)
	}
	return result
}
