package update

type oskKeyKind int

const (
	oskChar oskKeyKind = iota
	oskDelete
	oskConfirm
	oskSpace
	oskClose
)

type oskKey struct {
	Label string
	Rune  rune
	Kind  oskKeyKind
	Wide  bool
}

func charKey(r rune) oskKey {
	return oskKey{Label: string(r), Rune: r, Kind: oskChar}
}

func charRow(chars string) []oskKey {
	row := make([]oskKey, 0, len(chars))
	for _, r := range chars {
		row = append(row, charKey(r))
	}
	return row
}

// oskLayout is the fixed keyboard grid: digits, three letter rows (the
// last cells are backspace and confirm), then two wide keys.
var oskLayout = [][]oskKey{
	charRow("1234567890"),
	charRow("qwertyuiop"),
	append(charRow("asdfghjkl"), oskKey{Label: "del", Kind: oskDelete}),
	append(charRow("zxcvbnm.-"), oskKey{Label: "ok", Kind: oskConfirm}),
	{
		{Label: "space", Rune: ' ', Kind: oskSpace, Wide: true},
		{Label: "close", Kind: oskClose, Wide: true},
	},
}

func oskRowWidth(row int) int {
	if row < 0 || row >= len(oskLayout) {
		return 0
	}
	return len(oskLayout[row])
}

func (m *Model) openKeyboard() {
	m.Keyboard = KeyboardState{Visible: true}
	m.Status = StatusBar{Text: "keyboard open", IsError: false}
}

func (m *Model) closeKeyboard() {
	m.Keyboard = KeyboardState{}
	m.Status = StatusBar{Text: "keyboard closed", IsError: false}
}

func (m *Model) keyboardUp() {
	m.setKeyboardRow(m.Keyboard.Row - 1)
}

func (m *Model) keyboardDown() {
	m.setKeyboardRow(m.Keyboard.Row + 1)
}

// setKeyboardRow clamps the row, then re-clamps the column against the
// new row's width: landing on a shorter row pulls the cursor left,
// never out of bounds.
func (m *Model) setKeyboardRow(row int) {
	if row < 0 {
		row = 0
	}
	if row > len(oskLayout)-1 {
		row = len(oskLayout) - 1
	}
	m.Keyboard.Row = row
	if width := oskRowWidth(row); m.Keyboard.Col > width-1 {
		m.Keyboard.Col = width - 1
	}
}

func (m *Model) keyboardLeft() {
	if m.Keyboard.Col > 0 {
		m.Keyboard.Col--
	}
}

func (m *Model) keyboardRight() {
	if m.Keyboard.Col < oskRowWidth(m.Keyboard.Row)-1 {
		m.Keyboard.Col++
	}
}

func (m Model) selectedKeyboardKey() oskKey {
	return oskLayout[m.Keyboard.Row][m.Keyboard.Col]
}

func (m *Model) activateKeyboardKey() {
	key := m.selectedKeyboardKey()
	switch key.Kind {
	case oskChar, oskSpace:
		m.titleInput.SetValue(m.titleInput.Value() + string(key.Rune))
	case oskDelete:
		value := m.titleInput.Value()
		if len(value) > 0 {
			runes := []rune(value)
			m.titleInput.SetValue(string(runes[:len(runes)-1]))
		}
	case oskConfirm:
		m.addGame(m.titleInput.Value())
	case oskClose:
		m.closeKeyboard()
	}
}
