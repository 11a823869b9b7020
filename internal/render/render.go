// Package render maps raw labels to what the user sees.
package render

import (
	"fmt"

	"lensx/internal/models"
)

// Column names of a rendered batch table.
const (
	ColumnMsg        = "Msg"
	ColumnPrediction = "Prediction"
)

// Binary label sentinels.
const (
	LabelNegative = "0"
	LabelPositive = "1"
)

// outcome picks the side of a binary task for label. Anything other than the
// two sentinels is an error: binary tasks have no third state.
func outcome(task *models.Task, label models.Label) (*models.Outcome, error) {
	switch label {
	case LabelNegative:
		return task.Negative, nil
	case LabelPositive:
		return task.Positive, nil
	default:
		return nil, fmt.Errorf("%w: task %s got %q", models.ErrUnexpectedLabel, task.ID, label)
	}
}

// Display returns the Prediction column text for label.
func Display(task *models.Task, label models.Label) (string, error) {
	if task.Kind == models.KindMultiClass {
		return label, nil
	}
	o, err := outcome(task, label)
	if err != nil {
		return "", err
	}
	return o.Display, nil
}

// Single renders the result of a one-sample prediction: an image for binary
// tasks, a success banner for multi-class ones.
func Single(task *models.Task, label models.Label) (*models.Rendered, error) {
	r := &models.Rendered{Task: task.ID, Label: label}
	switch task.Kind {
	case models.KindBinary:
		o, err := outcome(task, label)
		if err != nil {
			return nil, err
		}
		r.Kind = models.ArtifactImage
		r.Display = o.Display
		r.Image = o.Image
		r.Caption = o.Caption
	case models.KindMultiClass:
		r.Kind = models.ArtifactBanner
		r.Display = label
		r.Message = task.BannerPrefix + label
	default:
		return nil, fmt.Errorf("task %s has unknown kind %v", task.ID, task.Kind)
	}
	return r, nil
}

// Table appends a Prediction column to batch. labels must be order-aligned
// with the batch samples.
func Table(task *models.Task, batch *models.Batch, labels []models.Label) (*models.Table, error) {
	if len(labels) != batch.Len() {
		return nil, fmt.Errorf("%w: %d samples, %d labels", models.ErrLabelCountMismatch, batch.Len(), len(labels))
	}
	t := &models.Table{
		Task:    task.ID,
		Columns: []string{ColumnMsg, ColumnPrediction},
		Rows:    make([]models.Row, len(labels)),
	}
	for i, label := range labels {
		display, err := Display(task, label)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		t.Rows[i] = models.Row{
			Index:      i + 1,
			Msg:        batch.Samples[i],
			Label:      label,
			Prediction: display,
		}
	}
	return t, nil
}
