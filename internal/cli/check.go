package cli

import (
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/charkit/editor"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <values-file>",
		Short: "Check form values against their limits",
		Long: `Check a set of field values the way a form submit would.

The values file is YAML or JSON mapping field ids to text. Fields come from the
config; without configured fields every key of the values file is checked
against the profile's limit. The command exits non-zero when any field
overflows.

Examples:
  charkit check values.yaml
  charkit check --config form.toml values.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readValues(args[0])
			if err != nil {
				return err
			}

			fields := a.cfg.Descriptors()
			if len(fields) == 0 {
				fields = descriptorsFor(values, a.budget(0).MaxWeight)
			}

			page := editor.NewMemoryPage()
			known := make(map[string]bool, len(fields))
			for _, f := range fields {
				page.AddField(f.ID, values[f.ID])
				known[f.ID] = true
			}
			for id := range values {
				if !known[id] {
					a.logger.Warn("value for unconfigured field ignored", slog.String("field", id))
				}
			}

			report, err := a.submit(page, fields, func(name string) string {
				return page.Messages[name]
			})
			if report.Fields != nil {
				if a.jsonOutput {
					if jerr := a.out.JSON(report); jerr != nil {
						return jerr
					}
				} else {
					a.printReport(report)
				}
			}
			return err
		},
	}
}

// descriptorsFor returns one descriptor per value key, sorted by id.
func descriptorsFor(values valuesFile, maxWeight int) []editor.FieldDescriptor {
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fields := make([]editor.FieldDescriptor, 0, len(ids))
	for _, id := range ids {
		fields = append(fields, editor.FieldDescriptor{ID: id, MaxWeight: maxWeight})
	}
	return fields
}
