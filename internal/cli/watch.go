package cli

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/charkit/config"
	"github.com/randalmurphal/charkit/tokens"
	"github.com/randalmurphal/charkit/truncate"
)

func newWatchCmd(a *app) *cobra.Command {
	var maxWeight int

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Recount a file every time it is saved",
		Long: `Print the count of a text file now and after every write, until interrupted.

Examples:
  charkit watch draft.txt
  charkit watch draft.txt --max 140 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			splitter := truncate.NewForBudget(a.budget(maxWeight))

			report := func() {
				data, err := os.ReadFile(path)
				if err != nil {
					a.logger.Warn("read failed", slog.String("path", path), slog.Any("error", err))
					return
				}
				a.printSplit(path, splitter, string(data))
			}

			report()
			err := config.WatchFile(cmd.Context(), path, report)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&maxWeight, "max", "m", 0, "Weight limit (default from profile)")
	return cmd
}

// watchLine is one line of watch output.
type watchLine struct {
	Path        string `json:"path"`
	Weight      int    `json:"weight"`
	Display     int    `json:"display"`
	Limit       int    `json:"limit"`
	Overflowing bool   `json:"overflowing"`
	Exceeded    string `json:"exceeded,omitempty"`
}

func (a *app) printSplit(path string, s *truncate.Splitter, text string) {
	r := s.Split(text)
	line := watchLine{
		Path:        path,
		Weight:      r.Weight,
		Display:     tokens.DisplayCount(r.Weight),
		Limit:       s.MaxWeight() / 2,
		Overflowing: r.Overflowing,
		Exceeded:    r.Exceeded,
	}

	if a.jsonOutput {
		if err := a.out.JSON(line); err != nil {
			a.logger.Warn("write failed", slog.Any("error", err))
		}
		return
	}
	if line.Overflowing {
		a.out.Warn("%s: %d/%d over, exceeded %s", path, line.Display, line.Limit, strconv.Quote(line.Exceeded))
		return
	}
	a.out.Info("%s: %d/%d", path, line.Display, line.Limit)
}
