package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"detectivequest/cmd/game/ui"
	"detectivequest/internal/game/investigation"
)

// runPlain plays one case over line-oriented streams. End of input counts
// as the end command; without an accusation line no verdict is given.
func runPlain(a *app, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	c := a.controller

	fmt.Fprintf(out, "=== %s ===\n", a.info.Scenario)
	fmt.Fprintln(out, "Commands: left (l), right (r), end (e).")
	fmt.Fprintln(out)
	printLines(out, ui.Describe(c.Look()))

	for !c.Ended() {
		fmt.Fprint(out, "Your choice: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		tok, err := investigation.ParseToken(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, "Invalid option, try again.")
			continue
		}
		if tok == investigation.TokenEnd {
			break
		}

		st, err := c.Step(a.ctx, tok)
		if errors.Is(err, investigation.ErrInvalidInput) {
			fmt.Fprintf(out, "You cannot go %s from %s.\n", tok, st.Location)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		printLines(out, ui.Describe(st))
	}
	if err := scanner.Err(); err != nil {
		a.loggers.Debug.Printf("stdin read failed, ending exploration: %v", err)
	}

	st, _ := c.Step(a.ctx, investigation.TokenEnd)
	fmt.Fprintf(out, "\nYou end the exploration in %s.\n\n", st.Location)
	printLines(out, ui.ReportLines(c))

	fmt.Fprint(out, "> ")
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) == "" {
		fmt.Fprintln(out, "\nNo accusation made.")
		return nil
	}

	v := c.Judge(a.ctx, scanner.Text())
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.VerdictLine(v))

	if a.loggers.Journal != nil {
		if err := a.loggers.Journal.LogVerdict(ui.VerdictEntry(a.info, c, v)); err != nil {
			a.loggers.Debug.Printf("Failed to log verdict: %v", err)
		}
	}
	return nil
}

func printLines(out io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
