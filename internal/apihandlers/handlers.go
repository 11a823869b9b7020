package apihandlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"lensx/internal/app"
	"lensx/internal/models"
	"lensx/internal/render"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(appInstance *app.App) *APIHandler {
	return &APIHandler{App: appInstance}
}

type taskView struct {
	models.Task
	Artifact string `json:"artifact"`
}

// ListTasksHandler handles GET /api/v1/tasks
func (h *APIHandler) ListTasksHandler(c *gin.Context) {
	artifacts := h.App.Registry.Artifacts()
	tasks := h.App.Registry.Tasks()
	out := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskView{Task: t, Artifact: artifacts[t.ID]})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// PredictRequest is the body of a single-text prediction. Text is a pointer
// so that an explicit empty string is accepted and a missing field is not.
type PredictRequest struct {
	Text *string `json:"text"`
}

type PredictResponse struct {
	models.Rendered
	ImageURL string `json:"image_url,omitempty"`
}

// PredictHandler handles POST /api/v1/tasks/:task/predict
func (h *APIHandler) PredictHandler(c *gin.Context) {
	id, err := models.ParseTaskID(c.Param("task"))
	if err != nil {
		HandleError(c, err)
		return
	}

	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Text == nil {
		BadRequest(c, `Invalid request body: field "text" is required`)
		return
	}

	rendered, err := h.App.InferenceService.PredictText(c.Request.Context(), id, *req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": PredictResponse{Rendered: *rendered, ImageURL: assetURL(rendered.Image)}})
}

// UploadHandler handles POST /api/v1/tasks/:task/upload. The result is a
// JSON table, or a CSV attachment with ?format=csv.
func (h *APIHandler) UploadHandler(c *gin.Context) {
	id, err := models.ParseTaskID(c.Param("task"))
	if err != nil {
		HandleError(c, err)
		return
	}

	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		BadRequest(c, fmt.Sprintf("unknown format %q, expected json or csv", format))
		return
	}

	table, err := h.predictUpload(c, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	if format == "csv" {
		var buf bytes.Buffer
		if err := render.WriteCSV(&buf, table); err != nil {
			HandleError(c, fmt.Errorf("write csv: %w", err))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_predictions.csv"`, id))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": table})
}

// predictUpload reads the multipart "file" field and runs the batch.
func (h *APIHandler) predictUpload(c *gin.Context, id models.TaskID) (*models.Table, error) {
	// Resolve the task first so an unknown task is 404 whatever the body.
	if _, err := h.App.Registry.Task(id); err != nil {
		return nil, err
	}

	header, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: missing multipart field \"file\"", models.ErrEmptyUpload)
	}
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	ctx := c.Request.Context()
	batch, err := h.App.InputProcessor.Upload(ctx, header.Filename, f)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"task": id, "file": header.Filename, "rows": batch.Len()}).Debug("Upload parsed")
	return h.App.InferenceService.PredictBatch(ctx, id, batch)
}

// HealthHandler handles GET /health
func (h *APIHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "tasks": len(h.App.Registry.Tasks())})
}

func assetURL(name string) string {
	if name == "" {
		return ""
	}
	return assetsPrefix + "/" + name
}
