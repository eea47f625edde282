package mpris

import (
	"strings"

	"github.com/sunplex07/ndfr/internal/domain"
	"go.uber.org/zap"
)

// Manager talks to MPRIS media players over an established D-Bus
// session-bus connection. It implements discovery, state snapshots and
// playback control against the org.mpris.MediaPlayer2.Player interface.
type Manager struct {
	logger *zap.Logger
	conn   DBusClient // Interface for testability
}

// NewManager creates a Manager on top of an existing bus connection
func NewManager(logger *zap.Logger, conn DBusClient) *Manager {
	return &Manager{
		logger: logger,
		conn:   conn,
	}
}

// Discover queries D-Bus for currently running MPRIS players and
// returns their bus names, every Playing player first, then every
// Paused one, each group in bus-listing order. Players in any other
// state are left out; they can still be addressed directly by name.
//
// Discovery never fails: an unreachable bus or a candidate that
// vanished between listing and query simply yields fewer entries.
func (m *Manager) Discover() []string {
	names, err := m.conn.ListNames()
	if err != nil {
		m.logger.Warn("Failed to list bus names", zap.Error(err))
		return nil
	}

	var playing, paused []string
	for _, name := range names {
		if !strings.HasPrefix(name, domain.MprisPrefix) {
			continue
		}

		variant, err := m.conn.GetProperty(name, playerObjectPath, playerInterface+".PlaybackStatus")
		if err != nil {
			m.logger.Debug("Dropping unreadable player candidate",
				zap.String("player", name),
				zap.Error(err))
			continue
		}

		status, ok := variant.Value().(string)
		if !ok {
			m.logger.Debug("Dropping player with non-string status",
				zap.String("player", name))
			continue
		}

		switch domain.PlaybackStatus(status) {
		case domain.StatusPlaying:
			playing = append(playing, name)
		case domain.StatusPaused:
			paused = append(paused, name)
		}
	}

	m.logger.Debug("Player discovery complete",
		zap.Int("playing", len(playing)),
		zap.Int("paused", len(paused)))
	return append(playing, paused...)
}

// asInt64 narrows a property value to int64. MPRIS players report
// time values as either int64 or uint64; uint64 values above MaxInt64
// wrap negative, a known limitation carried through on purpose.
func asInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case uint64:
		return int64(v)
	default:
		return 0
	}
}
