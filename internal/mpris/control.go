package mpris

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

// PlayPause toggles playback on the named player. Fire and forget: the
// request is sent and any transport error is ignored, matching the
// best-effort contract of the control surface.
func (m *Manager) PlayPause(player string) error {
	if err := m.conn.Call(player, playerObjectPath, playerInterface+".PlayPause"); err != nil {
		m.logger.Debug("PlayPause call failed",
			zap.String("player", player),
			zap.Error(err))
	}
	return nil
}

// SetPosition seeks the named player to an absolute position in
// microseconds. MPRIS only offers a relative Seek here, so the target
// is converted to an offset against a fresh position read. Playback
// may advance between that read and the seek; no retry is attempted.
func (m *Manager) SetPosition(player string, targetUsec int64) error {
	if err := m.checkSeekable(player); err != nil {
		return err
	}
	current, err := m.currentPosition(player)
	if err != nil {
		return err
	}
	return m.seek(player, targetUsec-current)
}

// SetPositionPercent seeks the named player to a percentage of its
// track length. The length must be known and positive.
func (m *Manager) SetPositionPercent(player string, percent float64) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("percent out of range: %v", percent)
	}
	if err := m.checkSeekable(player); err != nil {
		return err
	}
	length, err := m.trackLength(player)
	if err != nil {
		return err
	}
	current, err := m.currentPosition(player)
	if err != nil {
		return err
	}
	target := int64(percent / 100.0 * float64(length))
	return m.seek(player, target-current)
}

func (m *Manager) checkSeekable(player string) error {
	variant, err := m.conn.GetProperty(player, playerObjectPath, playerInterface+".CanSeek")
	if err != nil {
		return fmt.Errorf("failed to read CanSeek: %w", err)
	}
	if canSeek, ok := variant.Value().(bool); !ok || !canSeek {
		return fmt.Errorf("player %s is not seekable", player)
	}
	return nil
}

func (m *Manager) currentPosition(player string) (int64, error) {
	variant, err := m.conn.GetProperty(player, playerObjectPath, playerInterface+".Position")
	if err != nil {
		return 0, fmt.Errorf("failed to read Position: %w", err)
	}
	return asInt64(variant.Value()), nil
}

func (m *Manager) trackLength(player string) (int64, error) {
	variant, err := m.conn.GetProperty(player, playerObjectPath, playerInterface+".Metadata")
	if err != nil {
		return 0, fmt.Errorf("failed to read Metadata: %w", err)
	}
	metadata, ok := variant.Value().(map[string]dbus.Variant)
	if !ok {
		return 0, fmt.Errorf("player %s reported no metadata", player)
	}
	lengthVar, ok := metadata["mpris:length"]
	if !ok {
		return 0, fmt.Errorf("player %s reported no track length", player)
	}
	length := asInt64(lengthVar.Value())
	if length <= 0 {
		return 0, fmt.Errorf("player %s reported track length %d", player, length)
	}
	return length, nil
}

func (m *Manager) seek(player string, offsetUsec int64) error {
	if err := m.conn.Call(player, playerObjectPath, playerInterface+".Seek", offsetUsec); err != nil {
		return fmt.Errorf("seek failed: %w", err)
	}
	return nil
}
