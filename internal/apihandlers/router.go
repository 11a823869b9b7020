package apihandlers

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"lensx/internal/app"
	"lensx/internal/middleware"
)

const assetsPrefix = "/assets"

//go:embed templates/*.html
var templatesFS embed.FS

// NewRouter wires the page, the JSON API and the static assets. The caller
// sets the gin mode before calling it.
func NewRouter(appInstance *app.App, logger *log.Logger) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recovery(logger))
	router.MaxMultipartMemory = appInstance.Config.Server.MaxUploadBytes
	router.SetHTMLTemplate(tmpl)

	h := NewAPIHandler(appInstance)

	router.GET("/", h.IndexHandler)
	pages := router.Group("/tasks/:task")
	{
		pages.POST("/predict", h.PagePredictHandler)
		pages.POST("/upload", h.PageUploadHandler)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/tasks", h.ListTasksHandler)
		taskGroup := v1.Group("/tasks/:task")
		{
			taskGroup.POST("/predict", h.PredictHandler)
			taskGroup.POST("/upload", h.UploadHandler)
		}
	}

	router.Static(assetsPrefix, appInstance.Config.Assets.Dir)
	router.GET("/health", h.HealthHandler)

	return router, nil
}
