package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lensx/internal/models"
)

const pageTemplate = "index.html"

// panelView is one task panel. Only the panel the user acted on carries a
// result or an error; the others render in their awaiting-input state.
type panelView struct {
	Task     models.Task
	Text     string
	Result   *models.Rendered
	ImageURL string
	Table    *models.Table
	Error    string
	Active   bool
}

type pageView struct {
	Title        string
	SidebarImage string
	Contact      []string
	Panels       []*panelView
	Notice       string
}

func (h *APIHandler) newPage() *pageView {
	cfg := h.App.Config
	page := &pageView{
		Title:        cfg.Page.Title,
		SidebarImage: assetURL(cfg.Assets.SidebarImage),
		Contact:      cfg.Page.Contact,
	}
	for _, t := range h.App.Registry.Tasks() {
		page.Panels = append(page.Panels, &panelView{Task: t})
	}
	return page
}

func (p *pageView) panel(id models.TaskID) *panelView {
	for _, panel := range p.Panels {
		if panel.Task.ID == id {
			panel.Active = true
			return panel
		}
	}
	return nil
}

// IndexHandler handles GET /
func (h *APIHandler) IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, pageTemplate, h.newPage())
}

// PagePredictHandler handles POST /tasks/:task/predict with form field "text".
func (h *APIHandler) PagePredictHandler(c *gin.Context) {
	page, panel, ok := h.pagePanel(c)
	if !ok {
		return
	}

	panel.Text = c.PostForm("text")
	rendered, err := h.App.InferenceService.PredictText(c.Request.Context(), panel.Task.ID, panel.Text)
	if err != nil {
		h.panelError(c, page, panel, err)
		return
	}
	panel.Result = rendered
	panel.ImageURL = assetURL(rendered.Image)
	c.HTML(http.StatusOK, pageTemplate, page)
}

// PageUploadHandler handles POST /tasks/:task/upload with multipart field "file".
func (h *APIHandler) PageUploadHandler(c *gin.Context) {
	page, panel, ok := h.pagePanel(c)
	if !ok {
		return
	}

	table, err := h.predictUpload(c, panel.Task.ID)
	if err != nil {
		h.panelError(c, page, panel, err)
		return
	}
	panel.Table = table
	c.HTML(http.StatusOK, pageTemplate, page)
}

func (h *APIHandler) pagePanel(c *gin.Context) (*pageView, *panelView, bool) {
	page := h.newPage()
	id, err := models.ParseTaskID(c.Param("task"))
	if err == nil {
		if panel := page.panel(id); panel != nil {
			return page, panel, true
		}
		err = models.ErrUnknownTask
	}
	_ = c.Error(err)
	page.Notice = err.Error()
	c.HTML(http.StatusNotFound, pageTemplate, page)
	return nil, nil, false
}

// panelError shows err inside the panel that caused it. Internal errors keep
// their detail in the log.
func (h *APIHandler) panelError(c *gin.Context, page *pageView, panel *panelView, err error) {
	_ = c.Error(err)
	status := statusFor(err)
	panel.Error = err.Error()
	if status == http.StatusInternalServerError {
		logInternal(c, err)
		panel.Error = "Something went wrong while predicting. Please try again."
	}
	c.HTML(status, pageTemplate, page)
}
