package main

import (
	"testing"

	"go.uber.org/zap"

	"github.com/sunplex07/ndfr/internal/domain"
)

// fakeDirectory serves a fixed discovery result.
type fakeDirectory struct {
	players []string
}

func (f *fakeDirectory) Discover() []string { return f.players }

// recordingController captures the last control request.
type recordingController struct {
	playPaused string
	seekPlayer string
	seekTarget int64
	percent    float64
	calls      int
}

func (r *recordingController) PlayPause(player string) error {
	r.playPaused = player
	r.calls++
	return nil
}

func (r *recordingController) SetPosition(player string, targetUsec int64) error {
	r.seekPlayer = player
	r.seekTarget = targetUsec
	r.calls++
	return nil
}

func (r *recordingController) SetPositionPercent(player string, percent float64) error {
	r.seekPlayer = player
	r.percent = percent
	r.calls++
	return nil
}

func testApp(players ...string) (*app, *recordingController) {
	ctl := &recordingController{}
	return &app{
		logger:  zap.NewNop(),
		players: &fakeDirectory{players: players},
		control: ctl,
	}, ctl
}

func TestPlayPauseCommand(t *testing.T) {
	tests := []struct {
		name       string
		discovered []string
		args       []string
		expectErr  bool
		expected   string
	}{
		{
			name:       "Explicit player wins",
			discovered: []string{"org.mpris.MediaPlayer2.other"},
			args:       []string{"org.mpris.MediaPlayer2.named"},
			expected:   "org.mpris.MediaPlayer2.named",
		},
		{
			name:       "Default is first discovered",
			discovered: []string{"org.mpris.MediaPlayer2.a", "org.mpris.MediaPlayer2.b"},
			args:       []string{},
			expected:   "org.mpris.MediaPlayer2.a",
		},
		{
			name:       "No player at all fails",
			discovered: nil,
			args:       []string{},
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ctl := testApp(tt.discovered...)
			cmd := playPauseCommand(a)

			err := cmd.RunE(cmd, tt.args)
			if tt.expectErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				if ctl.calls != 0 {
					t.Error("Controller must not be called when no target resolves")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if ctl.playPaused != tt.expected {
				t.Errorf("Expected target %q, got %q", tt.expected, ctl.playPaused)
			}
		})
	}
}

func TestSetPositionCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectErr      bool
		expectedPlayer string
		expectedTarget int64
	}{
		{
			name:           "Player and position",
			args:           []string{"org.mpris.MediaPlayer2.named", "8000000"},
			expectedPlayer: "org.mpris.MediaPlayer2.named",
			expectedTarget: 8000000,
		},
		{
			name:           "Position only targets default",
			args:           []string{"3000000"},
			expectedPlayer: "org.mpris.MediaPlayer2.default",
			expectedTarget: 3000000,
		},
		{
			name:      "Non-numeric position fails",
			args:      []string{"org.mpris.MediaPlayer2.named", "soon"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ctl := testApp("org.mpris.MediaPlayer2.default")
			cmd := setPositionCommand(a)

			err := cmd.RunE(cmd, tt.args)
			if tt.expectErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				if ctl.calls != 0 {
					t.Error("Controller must not be called on a parse failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if ctl.seekPlayer != tt.expectedPlayer || ctl.seekTarget != tt.expectedTarget {
				t.Errorf("Expected %s @ %d, got %s @ %d",
					tt.expectedPlayer, tt.expectedTarget, ctl.seekPlayer, ctl.seekTarget)
			}
		})
	}
}

func TestSetPositionPercentCommand(t *testing.T) {
	a, ctl := testApp("org.mpris.MediaPlayer2.default")
	cmd := setPositionPercentCommand(a)

	if err := cmd.RunE(cmd, []string{"42.5"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ctl.seekPlayer != "org.mpris.MediaPlayer2.default" || ctl.percent != 42.5 {
		t.Errorf("Expected default player @ 42.5%%, got %s @ %v", ctl.seekPlayer, ctl.percent)
	}

	if err := cmd.RunE(cmd, []string{"org.mpris.MediaPlayer2.x", "half"}); err == nil {
		t.Error("Expected error for non-numeric percent")
	}
}

// Interface checks: the CLI depends on domain contracts only.
var (
	_ domain.Directory  = (*fakeDirectory)(nil)
	_ domain.Controller = (*recordingController)(nil)
)
