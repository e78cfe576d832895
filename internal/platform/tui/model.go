package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetra/internal/engine"
	"github.com/vovakirdan/tui-tetra/internal/registry"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

// Runtime holds the terminal-side settings for a session.
type Runtime struct {
	Width    int
	Height   int
	TickRate int
}

// messageDuration is how long feedback toasts stay on screen.
const messageDuration = 2500 * time.Millisecond

// toast is a transient feedback line shown next to the playfield.
type toast struct {
	text  string
	until time.Time
}

// GameModel is the Bubble Tea model that runs a single game.
type GameModel struct {
	info   registry.ModeInfo
	opts   registry.Options
	game   *engine.Game
	screen *Screen
	store  *storage.Store
	rt     Runtime

	keyMapper *KeyMapper
	taps      engine.ButtonsPressed
	paused    bool
	played    time.Duration
	lastTick  time.Time
	messages  []toast

	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model running the given game.
func NewGameModel(info registry.ModeInfo, opts registry.Options, game *engine.Game, store *storage.Store, rt Runtime) GameModel {
	return GameModel{
		info:      info,
		opts:      opts,
		game:      game,
		screen:    NewScreen(rt.Width, rt.Height),
		store:     store,
		rt:        rt,
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.rt.Width = msg.Width
		m.rt.Height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if !m.game.Ended() {
			m.game.Forfeit()
		}
		m.quitting = true
		return m, tea.Quit
	case "p":
		if !m.game.Ended() {
			m.paused = !m.paused
		}
		return m, nil
	case "r":
		if m.game.Ended() {
			return m.restart()
		}
		return m, nil
	case "b", "esc":
		if m.game.Ended() || m.paused {
			m.backToMenu = true
		}
		return m, nil
	}

	if !m.paused {
		m.keyMapper.MapKeyToTaps(msg, &m.taps)
	}
	return m, nil
}

// restart begins a fresh run of the same mode with a new seed.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	opts := m.opts
	opts.Config.Seed = time.Now().UnixNano()

	game, err := registry.Create(m.info.ID, opts)
	if err != nil {
		// Registered modes only fail on bad options; keep the old game.
		return m, nil
	}

	m.game = game
	m.taps = engine.ButtonsPressed{}
	m.paused = false
	m.played = 0
	m.lastTick = time.Time{}
	m.messages = nil
	m.scoreSaved = false
	return m, tickCmd(m.rt.TickRate)
}

// handleTick advances the game clock and runs the simulation.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	if m.lastTick.IsZero() {
		m.lastTick = now
	}

	if !m.paused && !m.game.Ended() {
		m.played += now.Sub(m.lastTick)

		// Submit the keys tapped since the previous tick as a one-tick
		// button press; an empty frame next tick releases them. Terminal
		// key repeat turns held keys into a stream of press edges.
		frame := m.taps
		m.taps = engine.ButtonsPressed{}

		feedback, err := m.game.Update(&frame, m.played)
		if err == nil {
			m.collectFeedback(feedback, now)
		}
	}
	m.lastTick = now

	// Drop expired toasts
	kept := m.messages[:0]
	for _, t := range m.messages {
		if now.Before(t.until) {
			kept = append(kept, t)
		}
	}
	m.messages = kept

	// Save the result on game over (once); forfeits are not recorded
	if m.game.Ended() && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	return m, tickCmd(m.rt.TickRate)
}

// collectFeedback turns engine feedback into screen toasts.
func (m *GameModel) collectFeedback(events []engine.FeedbackEvent, now time.Time) {
	for _, ev := range events {
		var text string
		switch ev.Feedback.Kind {
		case engine.FeedbackAccolade:
			text = formatAccolade(ev.Feedback.Accolade)
		case engine.FeedbackMessage:
			text = ev.Feedback.Message
		default:
			continue
		}
		if text == "" {
			continue
		}
		m.messages = append(m.messages, toast{text: text, until: now.Add(messageDuration)})
		if len(m.messages) > 5 {
			m.messages = m.messages[len(m.messages)-5:]
		}
	}
}

// clearNames indexes line clear counts to their common names.
var clearNames = [...]string{1: "Single", 2: "Double", 3: "Triple", 4: "Quadruple"}

// formatAccolade renders a scoring accolade as a toast line.
func formatAccolade(a *engine.Accolade) string {
	if a == nil {
		return ""
	}

	text := ""
	if a.Spin {
		text = a.Shape.String() + "-Spin "
	}
	if a.LineClears >= 1 && a.LineClears < len(clearNames) {
		text += clearNames[a.LineClears]
	} else {
		text += fmt.Sprintf("%d Lines", a.LineClears)
	}
	if a.PerfectClear {
		text += " Perfect Clear!"
	}
	if a.Combo > 1 {
		text += fmt.Sprintf(" combo x%d", a.Combo)
	}
	if a.BackToBack > 1 {
		text += fmt.Sprintf(" b2b x%d", a.BackToBack)
	}
	return fmt.Sprintf("%s  +%d", text, a.ScoreBonus)
}

// saveResult persists the finished game to the results store.
func (m *GameModel) saveResult() {
	st := m.game.State()
	if st.End == nil || m.store == nil {
		return
	}
	if st.End.Reason == engine.GameOverForfeit {
		return
	}

	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveResult(storage.Result{
		ModeID:   m.info.ID,
		Score:    st.Score,
		Lines:    st.LinesCleared,
		Level:    st.Level,
		Duration: int(m.played.Seconds()),
		Won:      st.End.Win,
	})
}

// View renders the game to a styled string.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(info registry.ModeInfo, opts registry.Options, game *engine.Game, store *storage.Store, rt Runtime) error {
	model := NewGameModel(info, opts, game, store, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
