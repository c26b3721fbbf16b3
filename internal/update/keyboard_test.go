package update

import "testing"

func openKeyboardModel() Model {
	m := NewModel()
	m.FocusIndex = 2
	m.actionX()
	return m
}

func TestKeyboardRowChangeReclampsColumn(t *testing.T) {
	m := openKeyboardModel()

	// Far right on a 10-wide row, then down to the 2-wide bottom row.
	m.Keyboard.Row = 1
	m.Keyboard.Col = 9
	for m.Keyboard.Row < len(oskLayout)-1 {
		m.keyboardDown()
	}
	if m.Keyboard.Col != 1 {
		t.Fatalf("expected col re-clamped to 1, got %d", m.Keyboard.Col)
	}
}

func TestKeyboardCursorClampsAtEdges(t *testing.T) {
	m := openKeyboardModel()

	for i := 0; i < 20; i++ {
		m.keyboardUp()
		m.keyboardLeft()
	}
	if m.Keyboard.Row != 0 || m.Keyboard.Col != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", m.Keyboard.Row, m.Keyboard.Col)
	}

	for i := 0; i < 20; i++ {
		m.keyboardDown()
	}
	if m.Keyboard.Row != len(oskLayout)-1 {
		t.Fatalf("expected last row, got %d", m.Keyboard.Row)
	}
	for i := 0; i < 20; i++ {
		m.keyboardRight()
	}
	if m.Keyboard.Col != oskRowWidth(m.Keyboard.Row)-1 {
		t.Fatalf("col out of bounds: %d", m.Keyboard.Col)
	}
}

func TestKeyboardCharAndSpaceAppend(t *testing.T) {
	m := openKeyboardModel()

	m.Keyboard.Row = 1
	m.Keyboard.Col = 0 // "q"
	m.activateKeyboardKey()

	m.Keyboard.Row = len(oskLayout) - 1
	m.Keyboard.Col = 0 // space
	m.activateKeyboardKey()

	if got := m.titleInput.Value(); got != "q " {
		t.Fatalf("expected %q, got %q", "q ", got)
	}
}

func TestKeyboardDeleteBackspaces(t *testing.T) {
	m := openKeyboardModel()
	m.titleInput.SetValue("abc")

	m.Keyboard.Row = 2
	m.Keyboard.Col = oskRowWidth(2) - 1 // del
	m.activateKeyboardKey()
	if got := m.titleInput.Value(); got != "ab" {
		t.Fatalf("expected %q, got %q", "ab", got)
	}

	// Backspace on empty input stays empty.
	m.titleInput.SetValue("")
	m.activateKeyboardKey()
	if got := m.titleInput.Value(); got != "" {
		t.Fatalf("expected empty input, got %q", got)
	}
}

func TestKeyboardConfirmCommitsEntry(t *testing.T) {
	m := openKeyboardModel()
	m.titleInput.SetValue("Hades")

	m.Keyboard.Row = 3
	m.Keyboard.Col = oskRowWidth(3) - 1 // ok
	m.activateKeyboardKey()

	if len(m.Library.Items) != 1 || m.Library.Items[0].Title != "Hades" {
		t.Fatalf("unexpected library after confirm: %+v", m.Library.Items)
	}
	if !m.Keyboard.Visible {
		t.Fatal("confirm should leave the overlay open for further entry")
	}
}

func TestKeyboardCloseKeyDismissesOverlay(t *testing.T) {
	m := openKeyboardModel()
	m.Keyboard.Row = len(oskLayout) - 1
	m.Keyboard.Col = 1 // close
	m.activateKeyboardKey()
	if m.Keyboard.Visible {
		t.Fatal("expected overlay closed")
	}
}
