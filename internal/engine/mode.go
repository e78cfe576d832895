package engine

import (
	"fmt"
	"time"
)

// TimeLimit ends the game once the game clock reaches After.
type TimeLimit struct {
	// Win declares whether reaching the limit completes the game
	// successfully or ends it as a mode-limit game over.
	Win   bool
	After time.Duration
}

// CountLimit ends the game once the tracked stat reaches At.
type CountLimit struct {
	Win bool
	At  int
}

// Limits are the ways a round may end besides topping out. Each limit
// declares its own win/lose direction explicitly; nothing is inferred from
// the stat it tracks. All nil means an endless game.
type Limits struct {
	Time   *TimeLimit
	Pieces *CountLimit
	Lines  *CountLimit
	Level  *CountLimit
	Score  *CountLimit
}

// GameMode is the playing configuration of a single round: what is being
// played, where it starts, and how it can end.
type GameMode struct {
	Name           string
	StartLevel     int
	IncrementLevel bool
	Limits         Limits
}

// Validate rejects gamemodes the engine cannot meaningfully run.
func (m *GameMode) Validate() error {
	if m.StartLevel < 1 {
		return fmt.Errorf("engine: gamemode %q start level must be at least 1, got %d", m.Name, m.StartLevel)
	}
	if l := m.Limits.Time; l != nil && l.After <= 0 {
		return fmt.Errorf("engine: gamemode %q has a non-positive time limit", m.Name)
	}
	for _, c := range []struct {
		stat string
		lim  *CountLimit
	}{
		{"pieces", m.Limits.Pieces},
		{"lines", m.Limits.Lines},
		{"level", m.Limits.Level},
		{"score", m.Limits.Score},
	} {
		if c.lim != nil && c.lim.At <= 0 {
			return fmt.Errorf("engine: gamemode %q has a non-positive %s limit", m.Name, c.stat)
		}
	}
	return nil
}

// ModeMarathon is the classic climb: levels increment and the game is won
// on reaching level 20.
func ModeMarathon() GameMode {
	return GameMode{
		Name:           "Marathon",
		StartLevel:     1,
		IncrementLevel: true,
		Limits:         Limits{Level: &CountLimit{Win: true, At: levelAt20G + 1}},
	}
}

// ModeSprint is the 40-lines race at a fixed level.
func ModeSprint(startLevel int) GameMode {
	return GameMode{
		Name:       "40-Lines",
		StartLevel: startLevel,
		Limits:     Limits{Lines: &CountLimit{Win: true, At: 40}},
	}
}

// ModeUltra is the three-minute time trial.
func ModeUltra(startLevel int) GameMode {
	return GameMode{
		Name:       "Time Trial",
		StartLevel: startLevel,
		Limits:     Limits{Time: &TimeLimit{Win: true, After: 3 * time.Minute}},
	}
}

// ModeMaster starts at 20G and runs for 300 lines.
func ModeMaster() GameMode {
	return GameMode{
		Name:           "Master",
		StartLevel:     levelAt20G + 1,
		IncrementLevel: true,
		Limits:         Limits{Lines: &CountLimit{Win: true, At: 300}},
	}
}

// ModeZen is endless: no limits, no level progression.
func ModeZen() GameMode {
	return GameMode{
		Name:       "Endless",
		StartLevel: 1,
	}
}
