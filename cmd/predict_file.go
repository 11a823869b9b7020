package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lensx/internal/clix"
	"lensx/internal/render"
)

var predictFileCmd = &cobra.Command{
	Use:   "predict-file <task> <file>",
	Short: "Classify every line of a .csv or .txt file",
	Long: `Reads a headerless, single-column .csv or .txt file, classifies each row
with the task's model and prints the rows with a Prediction column.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := clix.ParseTask(args)
		if err != nil {
			return err
		}
		format, err := clix.ParseFormat(cmd.Flags())
		if err != nil {
			return err
		}
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		path := args[1]
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		ctx := cmd.Context()
		batch, err := appInstance.InputProcessor.Upload(ctx, path, f)
		if err != nil {
			return err
		}
		table, err := appInstance.InferenceService.PredictBatch(ctx, id, batch)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if format == clix.FormatCSV {
			return render.WriteCSV(out, table)
		}
		render.WriteTable(out, table)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(predictFileCmd)
	predictFileCmd.Flags().String("format", clix.FormatTable, "Output format: table or csv")
}
