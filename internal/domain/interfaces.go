package domain

// Directory enumerates the media players currently on the bus.
// Implementations should handle D-Bus/MPRIS communication.
type Directory interface {
	// Discover returns the qualifying player bus names, all Playing
	// players first, then all Paused ones, in bus-listing order.
	// It never fails; an unreachable bus yields an empty list.
	Discover() []string
}

// Snapshotter reads the full reported state of a set of players.
type Snapshotter interface {
	// Snapshot fetches one PlayerSnapshot per reachable player,
	// preserving input order. Unreachable players are skipped.
	Snapshot(players []string) SnapshotList
}

// Controller issues playback-control commands to a single player.
type Controller interface {
	// PlayPause toggles playback. Fire and forget: the player's
	// reaction is not confirmed.
	PlayPause(player string) error

	// SetPosition seeks to an absolute position in microseconds,
	// expressed to the player as an offset from its current position.
	SetPosition(player string, targetUsec int64) error

	// SetPositionPercent seeks to a percentage of the track length.
	// percent must be within [0, 100] and the length must be known.
	SetPositionPercent(player string, percent float64) error
}
