package views

import (
	"fmt"
	"strings"
)

type LibraryEntryData struct {
	ID            string
	Title         string
	Completed     bool
	ToggleFocused bool
	DeleteFocused bool
}

type LibraryPanelData struct {
	FileName     string
	OpenFocused  bool
	SaveFocused  bool
	InputFocused bool
	AddFocused   bool
	InputView    string
	CaptureMode  bool
	Entries      []LibraryEntryData
}

type KeyCellData struct {
	Label    string
	Selected bool
	Wide     bool
}

type KeyboardOverlayData struct {
	Rows      [][]KeyCellData
	InputView string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderLibraryPanel(data LibraryPanelData) string {
	var b strings.Builder
	name := data.FileName
	if name == "" {
		name = "(no library file)"
	}
	b.WriteString(fmt.Sprintf("library: %s\n", name))
	b.WriteString(controlLine("open library", data.OpenFocused))
	b.WriteString(controlLine("save library", data.SaveFocused))

	inputLabel := "title"
	if data.CaptureMode {
		inputLabel = "title (typing)"
	}
	b.WriteString(focusMarker(data.InputFocused) + inputLabel + ": " + data.InputView + "\n")
	b.WriteString(controlLine("add entry", data.AddFocused))

	b.WriteString("\nentries:\n")
	if len(data.Entries) == 0 {
		b.WriteString("(library empty)")
		return strings.TrimSpace(b.String())
	}
	for i, entry := range data.Entries {
		b.WriteString(renderEntryLine(i+1, entry))
	}
	return strings.TrimSpace(b.String())
}

func renderEntryLine(position int, entry LibraryEntryData) string {
	box := "[ ]"
	if entry.Completed {
		box = "[x]"
	}
	title := entry.Title
	if entry.Completed {
		title = doneStyle.Render(title)
	}
	toggle := focusMarker(entry.ToggleFocused) + box
	del := focusMarker(entry.DeleteFocused) + "[del]"
	if entry.ToggleFocused {
		toggle = selectedStyle.Render(toggle)
	}
	if entry.DeleteFocused {
		del = selectedStyle.Render(del)
	}
	return fmt.Sprintf("%2d. %s %s %s\n", position, toggle, title, del)
}

func controlLine(label string, focused bool) string {
	line := focusMarker(focused) + "[" + label + "]"
	if focused {
		line = selectedStyle.Render(line)
	}
	return line + "\n"
}

func focusMarker(focused bool) string {
	if focused {
		return "> "
	}
	return "  "
}

func RenderKeyboardOverlay(data KeyboardOverlayData) string {
	var b strings.Builder
	b.WriteString("keyboard:\n")
	b.WriteString(data.InputView + "\n")
	for _, row := range data.Rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			label := cell.Label
			if cell.Wide {
				label = fmt.Sprintf("  %s  ", label)
			}
			rendered := fmt.Sprintf("[%s]", label)
			if cell.Selected {
				rendered = selectedStyle.Render(rendered)
			}
			cells = append(cells, rendered)
		}
		b.WriteString(strings.Join(cells, " ") + "\n")
	}
	b.WriteString("keys: [del] backspace | [ok] add entry | [close] dismiss\n")
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s_", strings.TrimPrefix(input, "/"))
}

const helpIntro = `## gamedex

Track the games you are playing and the ones you have finished.
Navigate with the arrow keys or a controller d-pad; the analog stick
works the same as the d-pad.`

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString(RenderMarkdown(helpIntro))
	b.WriteString("\n\nbindings:\n")
	for _, binding := range data.Bindings {
		b.WriteString(binding + "\n")
	}
	if data.HelpView != "" {
		b.WriteString("\n" + data.HelpView)
	}
	return strings.TrimSpace(b.String())
}
