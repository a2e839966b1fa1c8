package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"detectivequest/cmd/game/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Investigate the mansion",
	Long: `Investigate the mansion: move left or right through the rooms, collect
clues and accuse a suspect once you end the exploration.

With --plain the moves are read line by line from stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	a, cleanup, err := createApp(settings)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, span := a.startCase()
	defer span.End()
	a.ctx = ctx

	if settings.Plain {
		return runPlain(a, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	model := ui.NewModel(ctx, a.controller, a.loggers, a.info)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run the game: %w", err)
	}

	if m, ok := final.(ui.Model); ok && m.Verdict() != nil {
		fmt.Fprintln(cmd.OutOrStdout(), ui.VerdictLine(*m.Verdict()))
	}
	return nil
}
