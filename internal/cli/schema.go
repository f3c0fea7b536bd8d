package cli

import (
	"github.com/spf13/cobra"

	"github.com/randalmurphal/charkit/config"
)

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Schema()
			if err != nil {
				return err
			}
			a.out.Raw(string(data) + "\n")
			return nil
		},
	}
}
