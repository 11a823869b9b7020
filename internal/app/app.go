package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"lensx/internal/config"
	"lensx/internal/fileingest"
	"lensx/internal/inputprocessor"
	"lensx/internal/registry"
	"lensx/internal/services"
)

type App struct {
	Config *config.Config

	// Registry is built once in NewApp and only read afterwards.
	Registry *registry.Registry

	InputProcessor   inputprocessor.Processor
	InferenceService *services.InferenceService
}

// NewApp loads every model and checks every image. Any missing artifact
// fails startup; there is no degraded mode.
func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	app := &App{Config: cfg}
	if err := app.checkAssets(); err != nil {
		return nil, err
	}
	if err := app.initRegistry(); err != nil {
		return nil, err
	}
	app.initCoreServices()

	log.Println("Application initialization complete.")
	return app, nil
}

// --- Private Helper Methods ---

func (a *App) checkAssets() error {
	if err := fileingest.CheckFiles(a.Config.ImagePaths()...); err != nil {
		return fmt.Errorf("check assets: %w", err)
	}
	return nil
}

func (a *App) initRegistry() error {
	reg, err := registry.Load(a.Config)
	if err != nil {
		return fmt.Errorf("init registry: %w", err)
	}
	a.Registry = reg
	return nil
}

func (a *App) initCoreServices() {
	a.InputProcessor = inputprocessor.New(a.Config.Server.MaxUploadBytes)
	a.InferenceService = services.NewInferenceService(a.Registry)
}
