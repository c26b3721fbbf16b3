package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/gamedex/internal/gamepad"
)

func pollTickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return PollTickMsg{Gen: gen} })
}

// onPollTick runs one frame of the poll loop: snapshot, edge diff,
// dispatch, reschedule. A tick that outlived a teardown or restart
// (stale generation) returns without touching anything.
func (m Model) onPollTick(msg PollTickMsg) (Model, tea.Cmd) {
	if m.pollStopped || msg.Gen != m.pollGen {
		return m, nil
	}

	snap := m.source.Poll()
	m.padsConnected = snap.Connected()

	router := gamepad.NewRouter(m.padHandlers())
	for _, edges := range m.tracker.Advance(snap) {
		router.Dispatch(edges)
	}

	return m, pollTickCmd(m.pollGen, m.pollInterval())
}

// pollInterval drops to the coarse idle rate when no pad is connected
// and returns to per-frame polling once one reappears.
func (m Model) pollInterval() time.Duration {
	if m.padsConnected {
		return m.cfg.ActivePollInterval()
	}
	return m.cfg.IdlePollInterval()
}

// stopPolling tears the loop down. Idempotent: repeated calls keep the
// stopped flag set, and the generation bump retires any in-flight tick.
func (m *Model) stopPolling() {
	if m.pollStopped {
		return
	}
	m.pollStopped = true
	m.pollGen++
	m.tracker.Reset()
}

// padHandlers binds the router's semantic actions to the model. Y and
// Select stay unbound; the router treats missing callbacks as no-ops.
func (m *Model) padHandlers() gamepad.Handlers {
	return gamepad.Handlers{
		A:     m.actionA,
		B:     m.actionB,
		X:     m.actionX,
		Start: m.actionStart,
		Up:    m.actionUp,
		Down:  m.actionDown,
		Left:  m.actionLeft,
		Right: m.actionRight,
	}
}
