package cmd

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/epishuffle/epishuffle/catalog"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolP("selection", "s", false, "Generate the JSON Schema for pick results instead")
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON schema of a show definition file.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of show definition files",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return t.Name()
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("selection")):
			schema = reflector.Reflect(&catalog.Selection{})
		default:
			schema = reflector.Reflect(&catalog.Definition{})
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(schema))
	},
}
