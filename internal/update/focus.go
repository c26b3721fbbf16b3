package update

import (
	"fmt"

	"github.com/sandeepkv93/gamedex/internal/model"
)

type TargetKind string

const (
	TargetOpen   TargetKind = "open"
	TargetSave   TargetKind = "save"
	TargetInput  TargetKind = "input"
	TargetAdd    TargetKind = "add"
	TargetToggle TargetKind = "toggle"
	TargetDelete TargetKind = "delete"
)

// Target is one focusable control. GameID is set for per-entry targets.
type Target struct {
	Kind   TargetKind
	GameID string
}

// focusTargets enumerates the focusable controls in activation order:
// the fixed controls first, then toggle and delete per entry in display
// order. Highlighting walks the same list, so the cursor and the
// on-screen marker can never disagree.
func (m Model) focusTargets() []Target {
	targets := []Target{
		{Kind: TargetOpen},
		{Kind: TargetSave},
		{Kind: TargetInput},
		{Kind: TargetAdd},
	}
	for _, g := range m.displayGames() {
		targets = append(targets,
			Target{Kind: TargetToggle, GameID: g.ID},
			Target{Kind: TargetDelete, GameID: g.ID},
		)
	}
	return targets
}

func (m Model) displayGames() []model.Game {
	return model.DisplayOrder(m.Library.Items)
}

func (m Model) focusedTarget() Target {
	targets := m.focusTargets()
	if len(targets) == 0 {
		return Target{}
	}
	idx := m.FocusIndex
	if idx < 0 {
		idx = 0
	}
	if idx >= len(targets) {
		idx = len(targets) - 1
	}
	return targets[idx]
}

// clampFocus re-establishes 0 <= FocusIndex < targetCount. Called
// after every cursor move and after any mutation that shrinks the
// target list.
func (m *Model) clampFocus() {
	count := len(m.focusTargets())
	if count == 0 {
		m.FocusIndex = 0
		return
	}
	if m.FocusIndex < 0 {
		m.FocusIndex = 0
	}
	if m.FocusIndex >= count {
		m.FocusIndex = count - 1
	}
}

func (m *Model) moveFocusUp() {
	m.FocusIndex--
	m.clampFocus()
}

func (m *Model) moveFocusDown() {
	m.FocusIndex++
	m.clampFocus()
}

// actionUp and friends are the semantic navigation commands shared by
// the pad router and the terminal key handler. While the keyboard
// overlay is open they steer the grid instead of the linear cursor.
func (m *Model) actionUp() {
	if m.Keyboard.Visible {
		m.keyboardUp()
		return
	}
	m.moveFocusUp()
}

func (m *Model) actionDown() {
	if m.Keyboard.Visible {
		m.keyboardDown()
		return
	}
	m.moveFocusDown()
}

func (m *Model) actionLeft() {
	if m.Keyboard.Visible {
		m.keyboardLeft()
	}
}

func (m *Model) actionRight() {
	if m.Keyboard.Visible {
		m.keyboardRight()
	}
}

// actionA activates the focused control, or the selected key while the
// overlay is open.
func (m *Model) actionA() {
	if m.Keyboard.Visible {
		m.activateKeyboardKey()
		return
	}
	m.activateFocused()
}

// actionB closes the overlay when open; otherwise it leaves title
// capture mode.
func (m *Model) actionB() {
	if m.Keyboard.Visible {
		m.closeKeyboard()
		return
	}
	if m.CaptureMode {
		m.leaveCaptureMode()
	}
}

// actionX opens the on-screen keyboard, but only from the text-input
// target and only when no overlay is already up.
func (m *Model) actionX() {
	if m.Keyboard.Visible {
		return
	}
	if m.focusedTarget().Kind != TargetInput {
		return
	}
	m.openKeyboard()
}

func (m *Model) actionStart() {
	m.HelpVisible = !m.HelpVisible
}

func (m *Model) activateFocused() {
	target := m.focusedTarget()
	switch target.Kind {
	case TargetOpen:
		m.loadLibrary()
	case TargetSave:
		m.saveNow()
	case TargetInput:
		m.enterCaptureMode()
	case TargetAdd:
		m.addGame(m.titleInput.Value())
	case TargetToggle:
		m.toggleGame(target.GameID)
	case TargetDelete:
		m.deleteGame(target.GameID)
	}
}

func (m *Model) enterCaptureMode() {
	m.CaptureMode = true
	m.titleInput.Focus()
	m.Status = StatusBar{Text: "title entry active", IsError: false}
}

func (m *Model) leaveCaptureMode() {
	m.CaptureMode = false
	m.titleInput.Blur()
}

func (m Model) focusSummary() string {
	target := m.focusedTarget()
	if target.GameID != "" {
		return fmt.Sprintf("%s %s", target.Kind, target.GameID)
	}
	return string(target.Kind)
}
