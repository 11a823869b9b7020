package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lensx/internal/clix"
	"lensx/internal/models"
	"lensx/internal/render"
)

var predictCmd = &cobra.Command{
	Use:   "predict <task> <text>",
	Short: "Classify one text with a task's model",
	Long: `Runs a single text through one of the four classifiers.
Tasks: ` + clix.TaskNames() + `. Extra arguments are joined with spaces.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := clix.ParseTask(args)
		if err != nil {
			return err
		}
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		text := strings.Join(args[1:], " ")
		rendered, err := appInstance.InferenceService.PredictText(cmd.Context(), id, text)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch rendered.Kind {
		case models.ArtifactImage:
			paint := color.New(color.FgGreen, color.Bold)
			if rendered.Label == render.LabelNegative {
				paint = color.New(color.FgRed, color.Bold)
			}
			paint.Fprintln(out, rendered.Caption)
			fmt.Fprintf(out, "image: %s\n", appInstance.Config.AssetPath(rendered.Image))
		default:
			color.New(color.FgGreen, color.Bold).Fprintln(out, rendered.Message)
		}

		if rendered.Confidence != nil {
			fmt.Fprintf(out, "confidence: %.1f%%\n", *rendered.Confidence*100)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)
}
