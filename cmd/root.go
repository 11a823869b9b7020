package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lensx/internal/app"
	"lensx/internal/config"
	"lensx/internal/fileingest"
	"lensx/internal/logging"
	"lensx/internal/models"
	"lensx/internal/registry"
	"lensx/pkg/predictor"
)

// skipAppAnnotation marks commands that run without a loaded App.
const skipAppAnnotation = "lensx/skip-app"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "lensx",
	Short: "LENS eXpert text classifiers",
	Long: `lensx serves and runs four pre-trained text classifiers: spam detection,
language detection, food-review sentiment and news-topic classification.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.HasParent() || skipsApp(cmd) {
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Models and images are loaded once here; a missing file stops every
		// command before it runs.
		appInstance, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext returns the App stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "version", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	if cmd.HasParent() && cmd.Parent().Name() == "completion" {
		return true
	}
	return cmd.Annotations[skipAppAnnotation] != ""
}

// loadConfig reads the config and applies its logging settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigFrom(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:         "doctor",
	Short:       "Check that every model and image is present and loads",
	Annotations: map[string]string{skipAppAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		ok := color.GreenString("ok")

		fmt.Fprintln(out, "Checking configuration...")
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(out, "  %s: %v\n", color.RedString("FAIL"), err)
			return fmt.Errorf("doctor: invalid config")
		}
		fmt.Fprintf(out, "  %s\n", ok)

		failed := 0
		fmt.Fprintln(out, "Checking images...")
		for _, path := range cfg.ImagePaths() {
			if err := fileingest.CheckFiles(path); err != nil {
				failed++
				fmt.Fprintf(out, "  %s %s: %v\n", color.RedString("FAIL"), path, err)
				continue
			}
			fmt.Fprintf(out, "  %s %s\n", ok, path)
		}

		fmt.Fprintln(out, "Checking models...")
		paths := registry.ArtifactPaths(cfg)
		for _, id := range models.TaskOrder {
			path := paths[id]
			if err := checkModel(path); err != nil {
				failed++
				fmt.Fprintf(out, "  %s %s (%s): %v\n", color.RedString("FAIL"), id, path, err)
				continue
			}
			fmt.Fprintf(out, "  %s %s (%s)\n", ok, id, path)
		}

		if failed > 0 {
			log.WithField("failed", failed).Error("Doctor found problems")
			return fmt.Errorf("doctor: %d check(s) failed", failed)
		}
		fmt.Fprintln(out, color.GreenString("All checks passed."))
		return nil
	},
}

func checkModel(path string) error {
	if err := fileingest.CheckFiles(path); err != nil {
		return err
	}
	_, err := predictor.Load(path)
	return err
}
