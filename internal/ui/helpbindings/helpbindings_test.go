package helpbindings

import (
	"strings"
	"testing"

	"github.com/llehouerou/folio/internal/ui/action"
	"github.com/llehouerou/folio/internal/ui/testutil"
)

func newTestHelpPopup(contexts []string, height int) (*Model, *testutil.PopupHarness) {
	m := New()
	m.SetContexts(contexts)
	m.SetSize(80, height)
	return &m, testutil.NewPopupHarness(&m)
}

func assertClosed(t *testing.T, h *testutil.PopupHarness) {
	t.Helper()
	msg := testutil.ExecuteCmd(h.LastCommand())
	actionMsg, ok := msg.(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	if _, ok := actionMsg.Action.(Close); !ok {
		t.Fatalf("expected Close, got %T", actionMsg.Action)
	}
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"q", "?", "esc"} {
		t.Run(key, func(t *testing.T) {
			_, h := newTestHelpPopup([]string{"global"}, 24)
			if key == "esc" {
				h.SendEscape()
			} else {
				h.SendKey(key)
			}
			assertClosed(t, h)
		})
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	m, h := newTestHelpPopup([]string{"global", "page", "row", "menu"}, 20)

	h.SendDown()
	h.SendKey("j")
	if m.offset.Pos() != 2 {
		t.Fatalf("offset = %d after two downs, want 2", m.offset.Pos())
	}

	h.SendKey("k")
	if m.offset.Pos() != 1 {
		t.Errorf("offset = %d after up, want 1", m.offset.Pos())
	}

	h.SendKey("G")
	last := m.offset.Pos()
	h.SendDown()
	if m.offset.Pos() != last {
		t.Error("scrolling past the end should not move")
	}
}

func TestHelpBindings_ScrollUpAtTopDoesNothing(t *testing.T) {
	m, h := newTestHelpPopup([]string{"global"}, 24)

	h.SendUp()
	if m.offset.Pos() != 0 {
		t.Errorf("offset = %d, want 0 when at top", m.offset.Pos())
	}
}

func TestHelpBindings_View(t *testing.T) {
	_, h := newTestHelpPopup([]string{"row", "global"}, 100)

	for _, want := range []string{"Help", "Global", "Card Rows", "Focus next row", "close"} {
		if !h.ViewContains(want) {
			t.Errorf("view missing %q", want)
		}
	}

	view := testutil.StripANSI(h.View())
	if strings.Index(view, "Global") > strings.Index(view, "Card Rows") {
		t.Error("Global should appear before Card Rows regardless of SetContexts order")
	}
}

func TestHelpBindings_SpaceKeyLabel(t *testing.T) {
	_, h := newTestHelpPopup([]string{"page"}, 100)

	if !h.ViewContains("pgdown, space") {
		t.Error("space bar should be named in the key list")
	}
}

func TestHelpBindings_EmptyViewWhenNoSize(t *testing.T) {
	m := New()
	m.SetContexts([]string{"global"})

	if m.View() != "" {
		t.Errorf("view = %q, want empty when no size", m.View())
	}
}

func TestHelpBindings_SetContextsResetsScroll(t *testing.T) {
	m, h := newTestHelpPopup([]string{"global", "page", "row", "menu"}, 20)

	h.SendDown()
	m.SetContexts([]string{"global"})

	if m.offset.Pos() != 0 {
		t.Errorf("offset = %d after SetContexts, want 0", m.offset.Pos())
	}
}

func TestHelpBindings_Filter(t *testing.T) {
	m, h := newTestHelpPopup([]string{"global", "page", "row"}, 100)

	h.SendKey("/")
	for _, r := range "row" {
		h.SendKey(string(r))
	}

	if m.Filter() != "row" {
		t.Fatalf("filter = %q, want %q", m.Filter(), "row")
	}
	for _, want := range []string{"Focus next row", "Scroll row left", "/ row"} {
		if !h.ViewContains(want) {
			t.Errorf("view missing %q", want)
		}
	}
	if h.ViewContains("Show help") {
		t.Error("non-matching bindings should be hidden")
	}
	if h.ViewContains("Global") {
		t.Error("categories without matches should be hidden")
	}
}

func TestHelpBindings_FilterMatchesKeys(t *testing.T) {
	m, h := newTestHelpPopup([]string{"global", "page"}, 100)

	h.SendKey("/")
	h.SendKey("G")
	h.SendEnter()

	if m.filtering {
		t.Fatal("enter should leave filter mode")
	}
	if !h.ViewContains("Bottom of page") {
		t.Error("binding bound to G should match")
	}

	// Outside filter mode, q closes again.
	h.SendKey("q")
	assertClosed(t, h)
}

func TestHelpBindings_FilterEscClears(t *testing.T) {
	m, h := newTestHelpPopup([]string{"global"}, 100)

	h.SendKey("/")
	h.SendKey("q")
	if m.Filter() != "q" {
		t.Fatalf("q should be typed into the filter, got %q", m.Filter())
	}

	h.ClearCommands()
	h.SendEscape()

	if m.filtering || m.Filter() != "" {
		t.Errorf("esc should clear the filter, got filtering=%v filter=%q", m.filtering, m.Filter())
	}
	if msg := testutil.ExecuteCmd(h.LastCommand()); msg != nil {
		t.Errorf("esc in filter mode should not close, got %T", msg)
	}
	if !h.ViewContains("Show help") {
		t.Error("all bindings should be back")
	}
}

func TestHelpBindings_FilterNoMatch(t *testing.T) {
	_, h := newTestHelpPopup([]string{"global"}, 100)

	h.SendKey("/")
	h.SendKey("z")
	h.SendKey("z")

	if !h.ViewContains("No matching keys") {
		t.Error("empty result should say so")
	}
}
