package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/gamedex/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.allBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) allBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "up/down", Action: "move focus"},
		{Key: "enter", Action: "activate focused control"},
		{Key: "esc", Action: "close keyboard / leave title entry"},
		{Key: m.Keys.Keyboard, Action: "open on-screen keyboard (on title input)"},
		{Key: m.Keys.Palette, Action: "command palette"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
		{Key: "pad d-pad/stick", Action: "move focus"},
		{Key: "pad A", Action: "activate"},
		{Key: "pad B", Action: "back / close keyboard"},
		{Key: "pad X", Action: "open on-screen keyboard"},
		{Key: "pad Start", Action: "toggle help"},
	}
}

func (m Model) helpBindings() []key.Binding {
	all := m.allBindings()
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
