package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lensx/internal/models"
	"lensx/pkg/predictor"
)

type mockPredictor struct {
	mock.Mock
}

func (m *mockPredictor) Predict(ctx context.Context, samples []string) ([]string, error) {
	args := m.Called(ctx, samples)
	labels, _ := args.Get(0).([]string)
	return labels, args.Error(1)
}

// staticSource serves one predictor for every known task.
type staticSource struct {
	tasks map[models.TaskID]*models.Task
	p     predictor.Predictor
}

func (s *staticSource) Task(id models.TaskID) (*models.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, models.ErrUnknownTask
	}
	c := *t
	return &c, nil
}

func (s *staticSource) Predictor(id models.TaskID) (predictor.Predictor, error) {
	if _, ok := s.tasks[id]; !ok {
		return nil, models.ErrUnknownTask
	}
	return s.p, nil
}

func newService(p predictor.Predictor) *InferenceService {
	return NewInferenceService(&staticSource{
		tasks: models.DefaultTasks(models.Images{Spam: "spam.jpg", NotSpam: "not_spam.png", Liked: "liked.jpeg", Disliked: "images.jpeg"}),
		p:     p,
	})
}

func TestPredictText_WrapsSampleInOneElementBatch(t *testing.T) {
	m := new(mockPredictor)
	m.On("Predict", mock.Anything, []string{""}).Return([]string{"1"}, nil).Once()

	r, err := newService(m).PredictText(context.Background(), models.TaskSpam, "")
	require.NoError(t, err)

	assert.Equal(t, models.ArtifactImage, r.Kind)
	assert.Equal(t, "not_spam.png", r.Image)
	m.AssertExpectations(t)
}

func TestPredictText_MultiClassVerbatim(t *testing.T) {
	m := new(mockPredictor)
	m.On("Predict", mock.Anything, []string{"Ciao a tutti"}).Return([]string{"Italian"}, nil)

	r, err := newService(m).PredictText(context.Background(), models.TaskLanguage, "Ciao a tutti")
	require.NoError(t, err)
	assert.Equal(t, "Italian", r.Display)
	assert.Equal(t, "Detected Language: Italian", r.Message)
}

func TestPredictBatch_SingleCallInOrder(t *testing.T) {
	samples := []string{"free entry win", "hi mom see you tonight", "claim now"}
	m := new(mockPredictor)
	m.On("Predict", mock.Anything, samples).Return([]string{"0", "1", "0"}, nil).Once()

	table, err := newService(m).PredictBatch(context.Background(), models.TaskSpam, &models.Batch{Samples: samples})
	require.NoError(t, err)

	require.Len(t, table.Rows, 3)
	for i, row := range table.Rows {
		assert.Equal(t, i+1, row.Index)
		assert.Equal(t, samples[i], row.Msg)
	}
	assert.Equal(t, "❌ Spam", table.Rows[0].Prediction)
	assert.Equal(t, "✅ Not Spam", table.Rows[1].Prediction)
	m.AssertNumberOfCalls(t, "Predict", 1)
}

func TestPredictBatch_LabelCountMismatch(t *testing.T) {
	m := new(mockPredictor)
	m.On("Predict", mock.Anything, mock.Anything).Return([]string{"BUSINESS"}, nil)

	_, err := newService(m).PredictBatch(context.Background(), models.TaskNews, &models.Batch{Samples: []string{"a", "b"}})
	assert.ErrorIs(t, err, models.ErrLabelCountMismatch)

	_, err = newService(m).PredictText(context.Background(), models.TaskNews, "a")
	assert.NoError(t, err)
}

func TestPredictText_UnexpectedBinaryLabel(t *testing.T) {
	m := new(mockPredictor)
	m.On("Predict", mock.Anything, mock.Anything).Return([]string{"maybe"}, nil)

	_, err := newService(m).PredictText(context.Background(), models.TaskSentiment, "ok food")
	assert.ErrorIs(t, err, models.ErrUnexpectedLabel)
}

func TestPredict_Errors(t *testing.T) {
	boom := errors.New("boom")
	m := new(mockPredictor)
	m.On("Predict", mock.Anything, mock.Anything).Return(nil, boom)
	svc := newService(m)

	_, err := svc.PredictText(context.Background(), models.TaskSpam, "x")
	assert.ErrorIs(t, err, boom)

	_, err = svc.PredictText(context.Background(), "weather", "x")
	assert.ErrorIs(t, err, models.ErrUnknownTask)
	m.AssertNumberOfCalls(t, "Predict", 1)
}

// scoredPredictor reports a fixed confidence and counts its calls.
type scoredPredictor struct {
	label string
	conf  []float64
	calls int
}

func (p *scoredPredictor) Predict(ctx context.Context, samples []string) ([]string, error) {
	labels, _, err := p.PredictWithConfidence(ctx, samples)
	return labels, err
}

func (p *scoredPredictor) PredictWithConfidence(ctx context.Context, samples []string) ([]string, []float64, error) {
	p.calls++
	labels := make([]string, len(samples))
	for i := range labels {
		labels[i] = p.label
	}
	return labels, p.conf, nil
}

func TestPredictText_Confidence(t *testing.T) {
	scored := &scoredPredictor{label: "1", conf: []float64{0.8}}
	r, err := newService(scored).PredictText(context.Background(), models.TaskSpam, "hi mom")
	require.NoError(t, err)
	require.NotNil(t, r.Confidence)
	assert.InDelta(t, 0.8, *r.Confidence, 1e-9)
	assert.Equal(t, 1, scored.calls)

	misaligned := &scoredPredictor{label: "1", conf: []float64{0.8, 0.2}}
	r, err = newService(misaligned).PredictText(context.Background(), models.TaskSpam, "hi mom")
	require.NoError(t, err)
	assert.Nil(t, r.Confidence)

	plain := predictor.Func(func(ctx context.Context, s []string) ([]string, error) { return []string{"0"}, nil })
	r, err = newService(plain).PredictText(context.Background(), models.TaskSpam, "x")
	require.NoError(t, err)
	assert.Nil(t, r.Confidence)
}
