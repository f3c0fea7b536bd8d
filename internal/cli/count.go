package cli

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/charkit/tokens"
)

// countReport is the output of the count command.
type countReport struct {
	tokens.Measurement
	MaxWeight   int  `json:"max_weight"`
	Limit       int  `json:"limit"`
	Remaining   int  `json:"remaining"`
	Over        int  `json:"over"`
	Overflowing bool `json:"overflowing"`
}

func newCountCmd(a *app) *cobra.Command {
	var (
		file       string
		maxWeight  int
		showTokens bool
	)

	cmd := &cobra.Command{
		Use:   "count [text...]",
		Short: "Count the weighted length of text",
		Long: `Count the weighted length of text read from the arguments, --file or stdin.

The display count is half the weight rounded up and is compared against half
the limit; the overflow check uses the full weight.

Examples:
  charkit count "hello world"
  charkit count --file draft.txt --max 280
  echo "日本語" | charkit count --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}

			b := a.budget(maxWeight)
			m := tokens.Measure(text, b.Counter())
			if !showTokens {
				m.Tokens = nil
			}
			report := countReport{
				Measurement: m,
				MaxWeight:   b.MaxWeight,
				Limit:       b.DisplayLimit(),
				Remaining:   b.Remaining(m.Weight),
				Over:        b.Over(m.Weight),
				Overflowing: !b.FitsWeight(m.Weight),
			}
			a.logger.Debug("counted", slog.Int("weight", m.Weight), slog.Int("max_weight", b.MaxWeight))

			if a.jsonOutput {
				return a.out.JSON(report)
			}

			a.out.Info("%d/%d", report.Display, report.Limit)
			a.out.Table([]string{"WEIGHT", "MAX", "UNITS", "RUNES", "GRAPHEMES", "STATUS"}, [][]string{{
				strconv.Itoa(report.Weight), strconv.Itoa(report.MaxWeight), strconv.Itoa(report.Units),
				strconv.Itoa(report.Runes), strconv.Itoa(report.Graphemes), status(report.Overflowing),
			}})
			if showTokens {
				rows := make([][]string, 0, len(m.Tokens))
				for _, tok := range m.Tokens {
					rows = append(rows, []string{tok.Kind.String(), strconv.Quote(tok.Text), strconv.Itoa(b.Counter().Weight(tok))})
				}
				a.out.Table([]string{"KIND", "TEXT", "WEIGHT"}, rows)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read text from file")
	cmd.Flags().IntVarP(&maxWeight, "max", "m", 0, "Weight limit (default from profile)")
	cmd.Flags().BoolVar(&showTokens, "tokens", false, "Show the token breakdown")
	return cmd
}
