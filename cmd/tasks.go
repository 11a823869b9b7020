package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lensx/internal/render"
)

var tasksNamesOnly bool

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the classification tasks and their models",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if tasksNamesOnly {
			for _, id := range appInstance.Registry.IDs() {
				fmt.Fprintln(out, id)
			}
			return nil
		}
		render.WriteTasks(out, appInstance.Registry.Tasks(), appInstance.Registry.Artifacts())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tasksCmd)
	tasksCmd.Flags().BoolVar(&tasksNamesOnly, "names", false, "Print task names only, one per line")
}
