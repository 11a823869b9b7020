package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"lensx/internal/models"
	"lensx/internal/render"
	"lensx/pkg/predictor"
)

// TaskSource resolves task ids to descriptors and predictors.
type TaskSource interface {
	Task(id models.TaskID) (*models.Task, error)
	Predictor(id models.TaskID) (predictor.Predictor, error)
}

// InferenceService routes collected input to the right predictor and hands
// the labels to the renderer.
type InferenceService struct {
	tasks TaskSource
}

func NewInferenceService(tasks TaskSource) *InferenceService {
	return &InferenceService{tasks: tasks}
}

// PredictText classifies one typed sample. The text is forwarded unchanged,
// empty strings included. Confidence is filled in when the predictor
// reports it alongside the label.
func (s *InferenceService) PredictText(ctx context.Context, id models.TaskID, text string) (*models.Rendered, error) {
	task, p, err := s.resolve(id)
	if err != nil {
		return nil, err
	}
	labels, conf, err := s.predict(ctx, task, p, []models.Sample{text})
	if err != nil {
		return nil, err
	}
	rendered, err := render.Single(task, labels[0])
	if err != nil {
		log.WithError(err).WithField("task", id).Error("Render failed")
		return nil, err
	}
	if conf != nil {
		rendered.Confidence = &conf[0]
	}
	return rendered, nil
}

// PredictBatch classifies every sample of batch with a single predictor call.
func (s *InferenceService) PredictBatch(ctx context.Context, id models.TaskID, batch *models.Batch) (*models.Table, error) {
	task, p, err := s.resolve(id)
	if err != nil {
		return nil, err
	}
	labels, _, err := s.predict(ctx, task, p, batch.Samples)
	if err != nil {
		return nil, err
	}
	table, err := render.Table(task, batch, labels)
	if err != nil {
		log.WithError(err).WithField("task", id).Error("Render failed")
		return nil, err
	}
	return table, nil
}

func (s *InferenceService) resolve(id models.TaskID) (*models.Task, predictor.Predictor, error) {
	task, err := s.tasks.Task(id)
	if err != nil {
		return nil, nil, err
	}
	p, err := s.tasks.Predictor(id)
	if err != nil {
		return nil, nil, err
	}
	return task, p, nil
}

// predict calls the predictor once and enforces one label per sample. A
// violation is an internal error and is never padded or truncated.
// Confidences are nil unless the predictor reports them.
func (s *InferenceService) predict(ctx context.Context, task *models.Task, p predictor.Predictor, samples []models.Sample) ([]models.Label, []float64, error) {
	var (
		labels []models.Label
		conf   []float64
		err    error
	)
	if cp, ok := p.(predictor.ConfidencePredictor); ok {
		labels, conf, err = cp.PredictWithConfidence(ctx, samples)
	} else {
		labels, err = p.Predict(ctx, samples)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("predict %s: %w", task.ID, err)
	}
	if len(labels) != len(samples) {
		err := fmt.Errorf("%w: task %s, %d samples, %d labels", models.ErrLabelCountMismatch, task.ID, len(samples), len(labels))
		log.WithFields(log.Fields{"task": task.ID, "samples": len(samples), "labels": len(labels)}).Error("Predictor broke its contract")
		return nil, nil, err
	}
	if conf != nil && len(conf) != len(samples) {
		log.WithFields(log.Fields{"task": task.ID, "samples": len(samples), "confidences": len(conf)}).Warn("Dropping misaligned confidences")
		conf = nil
	}
	log.WithFields(log.Fields{"task": task.ID, "samples": len(samples)}).Debug("Prediction complete")
	return labels, conf, nil
}
