package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/gamedex/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		pollTickCmd(m.pollGen, m.pollInterval()),
		waitForSaveCmd(m.saver.C()),
	)
}

// waitForSaveCmd blocks on the debouncer's channel and surfaces the
// elapsed quiet period as a message; re-armed after every delivery.
func waitForSaveCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return SaveDueMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		next, cmd := m.handleKey(typed)
		return next.withSpinner(cmd)

	case PollTickMsg:
		next, cmd := m.onPollTick(typed)
		return next.withSpinner(cmd)

	case SaveDueMsg:
		m.performSave()
		return m, waitForSaveCmd(m.saver.C())

	case spinner.TickMsg:
		if m.dirty {
			var cmd tea.Cmd
			m.saveSpinner, cmd = m.saveSpinner.Update(typed)
			return m, cmd
		}
		m.spinnerRunning = false
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil

	case SetLibraryMsg:
		m.SetLibrary(typed.Games)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.teardown()
	}

	if m.Palette.Active {
		if msg.String() == m.Keys.Help {
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}
		return m.handlePaletteKey(msg), nil
	}

	// The overlay owns navigation while visible; terminal arrows and
	// the pad's d-pad funnel into the same grid commands.
	if m.Keyboard.Visible {
		switch msg.String() {
		case "up":
			m.keyboardUp()
		case "down":
			m.keyboardDown()
		case "left":
			m.keyboardLeft()
		case "right":
			m.keyboardRight()
		case "enter":
			m.activateKeyboardKey()
		case "esc":
			m.actionB()
		}
		return m, nil
	}

	if m.CaptureMode {
		switch msg.String() {
		case "esc":
			m.actionB()
			return m, nil
		case "enter":
			m.addGame(m.titleInput.Value())
			m.leaveCaptureMode()
			return m, nil
		}
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		_ = cmd
		return m, nil
	}

	switch msg.String() {
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.Focus()
		m.commandInput.SetValue("")
		m.Status = StatusBar{Text: "command palette active", IsError: false}
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
	case m.Keys.Keyboard:
		m.actionX()
	case m.Keys.Quit:
		return m.teardown()
	case "up", "k":
		m.actionUp()
	case "down", "j":
		m.actionDown()
	case "left", "h":
		m.actionLeft()
	case "right", "l":
		m.actionRight()
	case "enter", " ":
		m.actionA()
	case "esc":
		m.actionB()
	}
	return m, nil
}

// teardown stops the poll loop, flushes any pending save, and shuts
// the debouncer before quitting.
func (m Model) teardown() (Model, tea.Cmd) {
	m.stopPolling()
	if m.dirty {
		m.saver.Cancel()
		m.performSave()
	}
	m.saver.Stop()
	m.Quitting = true
	return m, tea.Quit
}

// withSpinner starts the unsaved-changes spinner when a mutation left
// the model dirty and no spinner tick is already in flight.
func (m Model) withSpinner(cmd tea.Cmd) (Model, tea.Cmd) {
	if m.dirty && !m.spinnerRunning {
		m.spinnerRunning = true
		return m, tea.Batch(cmd, m.saveSpinner.Tick)
	}
	return m, cmd
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	rightPane := m.renderCommandPalette() + m.renderHelpIfVisible()
	if m.Keyboard.Visible {
		rightPane = m.renderKeyboardOverlay() + rightPane
	}

	notification := ""
	if m.dirty {
		notification = m.saveSpinner.View() + " unsaved changes"
	}

	pads := "no pads"
	if m.padsConnected {
		pads = "pad connected"
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("gamedex | %s | focus: %s", pads, m.focusSummary()),
		LeftPane:     m.renderLibraryPanel(),
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notification,
		Footer:       fmt.Sprintf("keys: arrows move | enter select | %s keyboard | esc back | %s cmd | %s help | %s quit", m.Keys.Keyboard, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}
