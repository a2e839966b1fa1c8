// Detective Quest: walk a mansion, collect clues and accuse a suspect.
// Built with the Bubble Tea TUI framework; --plain reads moves from stdin.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"detectivequest/internal/config"
)

var (
	flagConfigDir string
	settings      config.Config
)

var rootCmd = &cobra.Command{
	Use:           "detective",
	Short:         "Detective Quest, a mansion investigation game",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.New(flagConfigDir)
		if err := bindFlags(cmd, v); err != nil {
			return err
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		settings = cfg
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfigDir, "config-dir", ".", "directory holding detective.yaml")
	pf.String("scenario", "", "scenario YAML file (default: built-in mansion)")
	pf.String("journal", "", "case journal database (default: ./cases.db)")
	pf.Int("index-capacity", 0, "suspect index bucket count (default: 101)")
	pf.Bool("debug", false, "write debug output")
	pf.String("debug-log", "", "debug log file (default: debug.log)")
	pf.Bool("plain", false, "read moves line by line from stdin instead of the TUI")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(roomsCmd)
}

// bindFlags lets explicitly set flags override env and config values.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	keys := map[string]string{
		"scenario":       config.KeyScenario,
		"journal":        config.KeyJournal,
		"index-capacity": config.KeyIndexCapacity,
		"debug":          config.KeyDebug,
		"debug-log":      config.KeyDebugLog,
		"plain":          config.KeyPlain,
	}
	for name, key := range keys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
