package cmd

import (
	"encoding/json"
	"os"

	"github.com/framex-cli/framex/extract"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON schema of the report produced by extract --json.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the extract --json report",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := jsonschema.Reflector{
			ExpandedStruct: true,
		}

		schema := reflector.Reflect(&extract.Result{})
		schema.Title = "framex extraction result"

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
