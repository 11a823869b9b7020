package cmd

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lensx/internal/apihandlers"
)

var (
	serveAddr string // Listen address
	servePort string // Listen port
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the LENS eXpert page and JSON API",
	Long: `Starts an HTTP server with the four-panel page at / and the JSON API
under /api/v1. Models are loaded once at startup and shared by all requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		cfg := appInstance.Config

		// Flags override the config file only when given.
		addr, port := cfg.Server.Addr, cfg.Server.Port
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		gin.SetMode(cfg.Server.Mode)
		router, err := apihandlers.NewRouter(appInstance, log.StandardLogger())
		if err != nil {
			return err
		}

		listenAddr := fmt.Sprintf("%s:%s", addr, port)
		log.Infof("Starting LENS eXpert on http://%s", listenAddr)

		srv := &http.Server{Addr: listenAddr, Handler: router}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("HTTP server stopped")
			return fmt.Errorf("failed to run server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost", "Address to listen on (e.g., '0.0.0.0' for all interfaces)")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")
}
