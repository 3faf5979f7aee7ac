// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"
	ActionMenu Action = "menu"

	// Page scrolling
	ActionScrollUp     Action = "scroll_up"
	ActionScrollDown   Action = "scroll_down"
	ActionHalfPageUp   Action = "half_page_up"
	ActionHalfPageDown Action = "half_page_down"
	ActionPageUp       Action = "page_up"
	ActionPageDown     Action = "page_down"
	ActionJumpStart    Action = "jump_start"
	ActionJumpEnd      Action = "jump_end"

	// Navbar anchors
	ActionJumpHome     Action = "jump_home"
	ActionJumpAbout    Action = "jump_about"
	ActionJumpProjects Action = "jump_projects"
	ActionJumpContact  Action = "jump_contact"

	// Horizontal rows
	ActionFocusNextRow Action = "focus_next_row" // tab
	ActionFocusPrevRow Action = "focus_prev_row" // shift+tab
	ActionRowLeft      Action = "row_left"
	ActionRowRight     Action = "row_right"
	ActionClearFocus   Action = "clear_focus" // esc

	// Menu navigation
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionSelect   Action = "select"
	ActionClose    Action = "close"
)
