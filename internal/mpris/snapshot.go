package mpris

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/sunplex07/ndfr/internal/domain"
	"go.uber.org/zap"
)

// Snapshot fetches the full reported state of each player, preserving
// input order. A player whose properties cannot be read at all is
// skipped; individually missing properties degrade to zero values.
func (m *Manager) Snapshot(players []string) domain.SnapshotList {
	out := make(domain.SnapshotList, 0, len(players))
	for _, name := range players {
		snap, err := m.readPlayer(name)
		if err != nil {
			m.logger.Debug("Skipping unreachable player",
				zap.String("player", name),
				zap.Error(err))
			continue
		}
		out = append(out, snap)
	}
	return out
}

// readPlayer reads status, position and metadata in a single
// Properties.GetAll round trip.
func (m *Manager) readPlayer(name string) (domain.PlayerSnapshot, error) {
	props, err := m.conn.GetAllProperties(name, playerObjectPath, playerInterface)
	if err != nil {
		return domain.PlayerSnapshot{}, fmt.Errorf("failed to read player properties: %w", err)
	}

	snap := domain.PlayerSnapshot{
		PlayerID: name,
		Icon:     domain.IconName(name),
	}

	if variant, ok := props["PlaybackStatus"]; ok {
		if status, ok := variant.Value().(string); ok {
			snap.Status = status
		}
	}

	if variant, ok := props["Position"]; ok {
		snap.Position = asInt64(variant.Value())
	}

	if variant, ok := props["Metadata"]; ok {
		// SAFE CAST: Some players may return nil or unexpected types if not playing anything
		if metadata, ok := variant.Value().(map[string]dbus.Variant); ok {
			applyMetadata(&snap, metadata)
		}
	}

	return snap, nil
}

// applyMetadata extracts the fields this helper reports from the MPRIS
// metadata map. Missing keys leave the defaults in place.
func applyMetadata(snap *domain.PlayerSnapshot, metadata map[string]dbus.Variant) {
	if lengthVar, ok := metadata["mpris:length"]; ok {
		snap.Length = asInt64(lengthVar.Value())
	}

	if titleVar, ok := metadata["xesam:title"]; ok {
		if title, ok := titleVar.Value().(string); ok {
			snap.Title = title
		}
	}

	// The artist list is deliberately reduced to its first entry.
	// Values of any other type, including a bare string, are ignored:
	// the consumer contract only covers the spec-compliant "as" shape.
	if artistVar, ok := metadata["xesam:artist"]; ok {
		if artists, ok := artistVar.Value().([]string); ok && len(artists) > 0 {
			snap.Artist = artists[0]
		}
	}
}
