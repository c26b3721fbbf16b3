package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/gamedex/internal/debounce"
	"github.com/sandeepkv93/gamedex/internal/gamepad"
	"github.com/sandeepkv93/gamedex/internal/model"
	"github.com/sandeepkv93/gamedex/internal/storage"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type LibraryState struct {
	Items  []model.Game
	NextID int
}

type KeyboardState struct {
	Visible bool
	Row     int
	Col     int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type GlobalKeyMap struct {
	Palette  string
	Help     string
	Keyboard string
	Quit     string
}

type Model struct {
	Library     LibraryState
	FocusIndex  int
	Keyboard    KeyboardState
	CaptureMode bool
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	source  gamepad.Source
	tracker *gamepad.Tracker
	saver   *debounce.Debouncer
	store   *storage.FileStore
	repo    storage.Repository
	cfg     RuntimeConfig

	// Poll loop liveness: a tick carrying a stale generation, or one
	// arriving after stopPolling, dispatches nothing.
	pollGen       int
	pollStopped   bool
	padsConnected bool

	dirty          bool
	spinnerRunning bool

	titleInput   textinput.Model
	commandInput textinput.Model
	saveSpinner  spinner.Model
	helpModel    help.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type SetLibraryMsg struct {
	Games []model.Game
}

// PollTickMsg drives one snapshot poll. Gen guards against ticks
// scheduled before a teardown or restart.
type PollTickMsg struct {
	Gen int
}

// SaveDueMsg arrives when the debounce quiet period has elapsed.
type SaveDueMsg struct{}

func NewModel() Model {
	return NewModelWithConfig(nil, storage.NewFileStore(""), gamepad.NullSource{}, DefaultRuntimeConfig())
}

func NewModelWithConfig(repo storage.Repository, store *storage.FileStore, source gamepad.Source, cfg RuntimeConfig) Model {
	m := Model{
		Library: LibraryState{NextID: 1},
		Keys: GlobalKeyMap{
			Palette:  "/",
			Help:     "?",
			Keyboard: "x",
			Quit:     "q",
		},
		source:  source,
		tracker: gamepad.NewTracker(),
		saver:   debounce.New(cfg.SaveDebounce()),
		store:   store,
		repo:    repo,
		cfg:     cfg,
	}
	m.initComponents()
	m.saver.Start()
	return m
}

func (m *Model) initComponents() {
	title := textinput.New()
	title.Placeholder = "game title"
	title.CharLimit = 120
	m.titleInput = title

	command := textinput.New()
	command.Placeholder = "add <title> | done <target> | delete <target> | open <path> | saveas <path>"
	m.commandInput = command

	m.saveSpinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.helpModel = help.New()
}

// SetLibrary replaces the in-memory list, the sole source of truth,
// and re-clamps the cursor against the new target count.
func (m *Model) SetLibrary(games []model.Game) {
	m.Library.Items = append([]model.Game(nil), games...)
	m.Library.NextID = nextIDAfter(games)
	m.clampFocus()
}

func nextIDAfter(games []model.Game) int {
	next := 1
	for _, g := range games {
		var n int
		if _, err := fmt.Sscanf(g.ID, "game-%d", &n); err == nil && n >= next {
			next = n + 1
		}
	}
	return next
}
