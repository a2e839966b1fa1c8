package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"detectivequest/internal/game/mansion"
	"detectivequest/internal/game/scenario"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Print the mansion layout with the clue in each room",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadScenario(settings.Scenario)
		if err != nil {
			return err
		}
		return printRooms(s, cmd.OutOrStdout())
	},
}

func printRooms(s *scenario.Scenario, out io.Writer) error {
	root, err := s.BuildMansion()
	if err != nil {
		return fmt.Errorf("failed to build mansion: %w", err)
	}
	defer mansion.Release(root, nil)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	roomStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	clueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	suspectStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	fmt.Fprintln(out, titleStyle.Render(s.Title))
	mansion.Walk(root, func(loc *mansion.Location, depth int) {
		line := strings.Repeat("  ", depth) + roomStyle.Render(loc.Name)
		if loc.HasClue() {
			line += ": " + clueStyle.Render(loc.Clue)
		}
		fmt.Fprintln(out, line)
	})

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Associations"))
	for _, a := range s.Associations {
		fmt.Fprintf(out, "%s -> %s\n", a.Clue, suspectStyle.Render(a.Suspect))
	}
	fmt.Fprintf(out, "\n%d room(s)\n", mansion.Count(root))
	return nil
}
