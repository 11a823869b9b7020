// Package registry holds the four task predictors. A Registry is built once
// at startup and never changes afterwards, so it can be shared by every
// request without locking.
package registry

import (
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"

	"lensx/internal/config"
	"lensx/internal/fileingest"
	"lensx/internal/models"
	"lensx/pkg/predictor"
)

type entry struct {
	task      models.Task
	predictor predictor.Predictor
	artifact  string
}

type Registry struct {
	entries map[models.TaskID]entry
}

// Binding pairs a task with its predictor for New.
type Binding struct {
	Task      *models.Task
	Predictor predictor.Predictor
	Artifact  string
}

// New builds a registry from explicit bindings. Every task in
// models.TaskOrder must be bound exactly once.
func New(bindings ...Binding) (*Registry, error) {
	r := &Registry{entries: make(map[models.TaskID]entry, len(bindings))}
	for _, b := range bindings {
		if b.Task == nil || b.Predictor == nil {
			return nil, fmt.Errorf("registry: incomplete binding for %q", b.Artifact)
		}
		if _, dup := r.entries[b.Task.ID]; dup {
			return nil, fmt.Errorf("registry: task %s bound twice", b.Task.ID)
		}
		r.entries[b.Task.ID] = entry{task: cloneTask(b.Task), predictor: b.Predictor, artifact: b.Artifact}
	}
	for _, id := range models.TaskOrder {
		if _, ok := r.entries[id]; !ok {
			return nil, fmt.Errorf("registry: no predictor for task %s", id)
		}
	}
	return r, nil
}

// ArtifactPaths returns the model file of every task, as configured.
func ArtifactPaths(cfg *config.Config) map[models.TaskID]string {
	return map[models.TaskID]string{
		models.TaskSpam:      cfg.ModelPath(cfg.Models.Spam),
		models.TaskLanguage:  cfg.ModelPath(cfg.Models.Language),
		models.TaskSentiment: cfg.ModelPath(cfg.Models.Sentiment),
		models.TaskNews:      cfg.ModelPath(cfg.Models.News),
	}
}

// TasksFromConfig builds the task descriptors with the configured images.
func TasksFromConfig(cfg *config.Config) map[models.TaskID]*models.Task {
	return models.DefaultTasks(models.Images{
		Spam:     cfg.Assets.SpamImage,
		NotSpam:  cfg.Assets.NotSpamImage,
		Liked:    cfg.Assets.LikedImage,
		Disliked: cfg.Assets.DislikedImage,
	})
}

// Load reads all four artifacts. Any missing or unreadable artifact fails the
// whole load; there is no partial registry.
func Load(cfg *config.Config) (*Registry, error) {
	paths := ArtifactPaths(cfg)
	if err := fileingest.CheckFiles(maps.Values(paths)...); err != nil {
		return nil, fmt.Errorf("load models: %w", err)
	}

	tasks := TasksFromConfig(cfg)
	bindings := make([]Binding, 0, len(models.TaskOrder))
	for _, id := range models.TaskOrder {
		nb, err := predictor.Load(paths[id])
		if err != nil {
			return nil, fmt.Errorf("load %s model: %w", id, err)
		}
		log.WithFields(log.Fields{
			"task":     id,
			"artifact": paths[id],
			"model":    nb.Name(),
			"classes":  len(nb.Classes()),
		}).Info("Loaded model")
		bindings = append(bindings, Binding{Task: tasks[id], Predictor: nb, Artifact: paths[id]})
	}
	return New(bindings...)
}

// Predictor returns the predictor bound to id.
func (r *Registry) Predictor(id models.TaskID) (predictor.Predictor, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownTask, id)
	}
	return e.predictor, nil
}

// Task returns a copy of the descriptor of id.
func (r *Registry) Task(id models.TaskID) (*models.Task, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownTask, id)
	}
	t := cloneTask(&e.task)
	return &t, nil
}

// Tasks returns copies of all descriptors in page order.
func (r *Registry) Tasks() []models.Task {
	out := make([]models.Task, 0, len(models.TaskOrder))
	for _, id := range models.TaskOrder {
		e := r.entries[id]
		out = append(out, cloneTask(&e.task))
	}
	return out
}

// IDs returns the registered task ids sorted by name.
func (r *Registry) IDs() []models.TaskID {
	ids := maps.Keys(r.entries)
	slices.Sort(ids)
	return ids
}

// Artifacts maps each task to the artifact it was loaded from.
func (r *Registry) Artifacts() map[models.TaskID]string {
	out := make(map[models.TaskID]string, len(r.entries))
	for id, e := range r.entries {
		out[id] = e.artifact
	}
	return out
}

func cloneTask(t *models.Task) models.Task {
	c := *t
	if t.Positive != nil {
		p := *t.Positive
		c.Positive = &p
	}
	if t.Negative != nil {
		n := *t.Negative
		c.Negative = &n
	}
	return c
}
