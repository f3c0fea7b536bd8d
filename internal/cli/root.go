// Package cli implements the charkit command line.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/charkit/config"
	"github.com/randalmurphal/charkit/tokens"
)

// Build information, set from main.
var (
	Version     = "dev"
	BuildCommit = "unknown"
	BuildDate   = "unknown"
)

// app holds the state shared by every command of one invocation.
type app struct {
	configPath string
	logLevel   string
	jsonOutput bool

	cfg    *config.Config
	logger *slog.Logger
	out    *OutputFormatter
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "charkit",
		Short: "charkit - weighted character-limit counting",
		Long: `charkit counts text the way character-limited platforms do: every URL
weighs 23, CJK characters weigh 2 and everything else weighs 1. The displayed
count is half the weight, rounded up.

It can count and split text, gate a set of form values on their limits, watch a
file while it is edited and replay a submit against an HTML form.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (.yaml, .toml or .json)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output in JSON format")

	root.AddCommand(
		newCountCmd(a),
		newSplitCmd(a),
		newCheckCmd(a),
		newWatchCmd(a),
		newFormCmd(a),
		newSchemaCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return WrapError(err, "Failed to load config "+a.configPath,
				"Run 'charkit schema' to see the expected format")
		}
		cfg = loaded
	}

	levelName := cfg.LogLevel
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := config.ParseLevel(levelName)
	if err != nil {
		return WrapError(err, "Invalid --log-level", "Use one of debug, info, warn, error")
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.out = NewOutputFormatterWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
	return nil
}

// budget returns the configured budget, with maxWeight overriding the
// profile's limit when positive.
func (a *app) budget(maxWeight int) *tokens.Budget {
	p := a.cfg.ProfileSettings()
	if maxWeight > 0 {
		p.MaxWeight = maxWeight
	}
	return p.Budget()
}
