package domain

import (
	"fmt"
	"strings"
)

// MprisPrefix is the namespace under which compliant media players
// register their bus names.
const MprisPrefix = "org.mpris.MediaPlayer2."

// PlaybackStatus represents the current state of a media player
type PlaybackStatus string

const (
	// StatusPlaying indicates the media is currently playing
	StatusPlaying PlaybackStatus = "Playing"
	// StatusPaused indicates the media is paused
	StatusPaused PlaybackStatus = "Paused"
	// StatusStopped indicates the media is stopped
	StatusStopped PlaybackStatus = "Stopped"
)

// PlayerSnapshot is one player's reported state at a point in time.
// Position and Length are microseconds as reported by the player;
// uint64 source values are narrowed to int64, which can wrap for
// values above MaxInt64. That matches what consumers already expect.
type PlayerSnapshot struct {
	// PlayerID is the player's well-known bus name
	PlayerID string
	// Status is the playback status string, carried verbatim
	Status string
	// Position in microseconds
	Position int64
	// Length of the current track in microseconds, 0 if unknown
	Length int64
	// Title of the current track, empty if absent
	Title string
	// Artist is the first entry of the artist list, empty otherwise
	Artist string
	// Icon is PlayerID with the MPRIS prefix stripped, a display hint
	Icon string
}

// SnapshotList is an ordered collection of player snapshots.
type SnapshotList []PlayerSnapshot

// Encode serializes the list to a single-line JSON array with a fixed
// field order, so that identical state always produces identical text.
// The emit loop relies on that for change detection.
//
// String values are interpolated raw: a title or artist containing a
// double quote or backslash corrupts the line. The deployed consumer
// was built against this format, so it is kept as is.
func (s SnapshotList) Encode() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `{"player_id":"%s","status":"%s","position":%d,"length":%d,"title":"%s","artist":"%s","icon":"%s"}`,
			p.PlayerID, p.Status, p.Position, p.Length, p.Title, p.Artist, p.Icon)
	}
	b.WriteByte(']')
	return b.String()
}

// IconName derives the display hint for a bus name. Names outside the
// MPRIS namespace yield an empty hint.
func IconName(playerID string) string {
	if strings.HasPrefix(playerID, MprisPrefix) {
		return playerID[len(MprisPrefix):]
	}
	return ""
}
