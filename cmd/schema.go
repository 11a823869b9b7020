package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lensx/pkg/predictor"
)

var schemaCmd = &cobra.Command{
	Use:         "schema",
	Short:       "Print the JSON Schema of model artifact files",
	Annotations: map[string]string{skipAppAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := predictor.SchemaJSON()
		if err != nil {
			return fmt.Errorf("render schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
