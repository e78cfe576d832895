// Package tui provides the Bubble Tea integration for the tetra terminal
// frontend. It handles the UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Tick rate bounds. A game session runs at whatever rate its Runtime asks
// for, clamped so a zero value from an unset flag cannot divide the tick
// interval to zero and a huge value cannot spin the event loop.
const (
	defaultTickRate = 60
	maxTickRate     = 240
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval converts a ticks-per-second rate into the wall-clock
// interval between simulation ticks, applying the rate bounds.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	if tickRate > maxTickRate {
		tickRate = maxTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
