package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/charkit/htmlform"
)

func newFormCmd(a *app) *cobra.Command {
	var (
		valuesPath string
		outPath    string
		printHTML  bool
	)

	cmd := &cobra.Command{
		Use:   "form <page.html>",
		Short: "Replay a submit against an HTML form",
		Long: `Load an HTML page, discover its counted fields ({id}_editor elements with
data-max-length), optionally type values into them, recount every field and
attempt a submit. The rewritten page holds the overflow spans, counters,
validation messages and hidden input values a browser would show.

Examples:
  charkit form page.html
  charkit form page.html --values values.yaml --out result.html
  charkit form page.html --html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return WrapError(err, "Failed to open "+args[0], "")
			}
			defer file.Close()

			form, err := htmlform.Parse(file)
			if err != nil {
				return err
			}
			fields := form.Fields()
			if len(fields) == 0 {
				return NewCLIError("No counted fields found in "+args[0],
					"Fields need an element with id {id}_editor, class editor and contenteditable")
			}

			if valuesPath != "" {
				values, err := readValues(valuesPath)
				if err != nil {
					return err
				}
				for id, text := range values {
					ed, err := form.FieldEditor(id)
					if err != nil {
						a.logger.Warn("value for unknown field ignored", slog.String("field", id))
						continue
					}
					ed.SetText(text)
				}
			}

			report, submitErr := a.submit(form, fields, form.Message)
			if report.Fields == nil {
				return submitErr
			}

			if outPath != "" || printHTML {
				html, err := form.HTML()
				if err != nil {
					return fmt.Errorf("render html: %w", err)
				}
				if outPath != "" {
					if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
						return WrapError(err, "Failed to write "+outPath, "")
					}
				}
				if printHTML {
					a.out.Raw(html)
					return submitErr
				}
			}

			if a.jsonOutput {
				if err := a.out.JSON(report); err != nil {
					return err
				}
			} else {
				a.printReport(report)
			}
			return submitErr
		},
	}

	cmd.Flags().StringVar(&valuesPath, "values", "", "YAML or JSON file of field id to text")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the rewritten page to a file")
	cmd.Flags().BoolVar(&printHTML, "html", false, "Print the rewritten page instead of the report")
	return cmd
}
