package update

import (
	"github.com/sandeepkv93/gamedex/internal/views"
)

func (m Model) renderLibraryPanel() string {
	target := m.focusedTarget()
	data := views.LibraryPanelData{
		FileName:     m.store.Name(),
		OpenFocused:  target.Kind == TargetOpen,
		SaveFocused:  target.Kind == TargetSave,
		InputFocused: target.Kind == TargetInput,
		AddFocused:   target.Kind == TargetAdd,
		InputView:    m.titleInput.View(),
		CaptureMode:  m.CaptureMode,
	}
	for _, g := range m.displayGames() {
		data.Entries = append(data.Entries, views.LibraryEntryData{
			ID:            g.ID,
			Title:         g.Title,
			Completed:     g.Completed,
			ToggleFocused: target.Kind == TargetToggle && target.GameID == g.ID,
			DeleteFocused: target.Kind == TargetDelete && target.GameID == g.ID,
		})
	}
	return views.RenderLibraryPanel(data)
}

func (m Model) renderKeyboardOverlay() string {
	data := views.KeyboardOverlayData{}
	for r, row := range oskLayout {
		cells := make([]views.KeyCellData, 0, len(row))
		for c, key := range row {
			cells = append(cells, views.KeyCellData{
				Label:    key.Label,
				Wide:     key.Wide,
				Selected: m.Keyboard.Row == r && m.Keyboard.Col == c,
			})
		}
		data.Rows = append(data.Rows, cells)
	}
	data.InputView = m.titleInput.View()
	return views.RenderKeyboardOverlay(data)
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}
