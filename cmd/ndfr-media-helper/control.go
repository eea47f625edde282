package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func playPauseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play-pause [player_id]",
		Short: "Toggle playback of the named or default player",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := ""
			if len(args) == 1 {
				explicit = args[0]
			}
			player, err := a.resolveTarget(explicit)
			if err != nil {
				return err
			}
			return a.control.PlayPause(player)
		},
	}
}

func setPositionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-position [player_id] <usecs>",
		Short: "Seek to an absolute position in microseconds",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, raw, err := a.targetAndValue(args)
			if err != nil {
				return err
			}
			target, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid position %q: %w", raw, err)
			}
			return a.control.SetPosition(player, target)
		},
	}
}

func setPositionPercentCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-position-percent [player_id] <percent>",
		Short: "Seek to a percentage of the track length",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, raw, err := a.targetAndValue(args)
			if err != nil {
				return err
			}
			percent, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("invalid percent %q: %w", raw, err)
			}
			return a.control.SetPositionPercent(player, percent)
		},
	}
}

// targetAndValue splits [player_id] <value> argument forms: with two
// args the player is explicit, with one it falls back to discovery.
func (a *app) targetAndValue(args []string) (player, value string, err error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}
	player, err = a.resolveTarget("")
	if err != nil {
		return "", "", err
	}
	return player, args[0], nil
}
