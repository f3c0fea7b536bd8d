package cli

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/charkit/truncate"
)

func newSplitCmd(a *app) *cobra.Command {
	var (
		file      string
		maxWeight int
	)

	cmd := &cobra.Command{
		Use:   "split [text...]",
		Short: "Split text into the kept part and the overflow",
		Long: `Split text at the weight limit into the part that fits and the part that
exceeds it. Nothing is dropped: kept + exceeded is the input.

For single-line text the boundary is marked with a caret under the first
exceeded character, aligned for wide characters.

Examples:
  charkit split --max 10 "hello world!!"
  charkit split --file draft.txt --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}

			r := truncate.NewForBudget(a.budget(maxWeight)).Split(text)
			if a.jsonOutput {
				return a.out.JSON(r)
			}

			a.out.Info("kept:     %s", strconv.Quote(r.Kept))
			a.out.Info("exceeded: %s", strconv.Quote(r.Exceeded))
			if r.Overflowing && !strings.ContainsAny(text, "\r\n") {
				a.out.Info("%s", text)
				a.out.Info("%s", boundaryMarker(r.Kept))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read text from file")
	cmd.Flags().IntVarP(&maxWeight, "max", "m", 0, "Weight limit (default from profile)")
	return cmd
}

// boundaryMarker returns a line with a caret in the terminal column right
// after kept.
func boundaryMarker(kept string) string {
	return strings.Repeat(" ", runewidth.StringWidth(kept)) + "^"
}
