package models

import (
	"fmt"
	"strings"
)

// TaskID names one of the four classification panels.
type TaskID string

const (
	TaskSpam      TaskID = "spam"
	TaskLanguage  TaskID = "language"
	TaskSentiment TaskID = "sentiment"
	TaskNews      TaskID = "news"
)

// TaskOrder is the order panels appear on the page.
var TaskOrder = []TaskID{TaskSpam, TaskLanguage, TaskSentiment, TaskNews}

// Kind selects the render path of a task.
type Kind int

const (
	KindBinary Kind = iota
	KindMultiClass
)

func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindMultiClass:
		return "multiclass"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is how one side of a binary task is shown.
type Outcome struct {
	Display string `json:"display"` // Prediction column text
	Image   string `json:"image"`   // file name under the assets dir
	Caption string `json:"caption"`
}

// Task describes a panel. Positive and Negative are only set for binary tasks;
// BannerPrefix is only used by multi-class tasks.
type Task struct {
	ID           TaskID   `json:"id"`
	Title        string   `json:"title"`
	Heading      string   `json:"heading"`
	Prompt       string   `json:"prompt"`
	Color        string   `json:"color"`
	Kind         Kind     `json:"kind"`
	Positive     *Outcome `json:"positive,omitempty"`
	Negative     *Outcome `json:"negative,omitempty"`
	BannerPrefix string   `json:"banner_prefix,omitempty"`
}

// ParseTaskID normalises user input such as "Spam" or " news ".
func ParseTaskID(s string) (TaskID, error) {
	id := TaskID(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range TaskOrder {
		if id == known {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTask, s)
}

// Images holds the file names of the outcome pictures.
type Images struct {
	Spam     string
	NotSpam  string
	Liked    string
	Disliked string
}

// DefaultTasks builds the four task descriptors. Kinds are fixed here, not
// inferred from label values.
func DefaultTasks(img Images) map[TaskID]*Task {
	return map[TaskID]*Task{
		TaskSpam: {
			ID:      TaskSpam,
			Title:   "📨 Spam Classifier",
			Heading: "📨 Welcome to the Spam Classifier",
			Prompt:  "📩 Paste or type your email/message to check for spam:",
			Color:   "#DC143C",
			Kind:    KindBinary,
			Negative: &Outcome{
				Display: "❌ Spam",
				Image:   img.Spam,
				Caption: "Spam Detected ❌",
			},
			Positive: &Outcome{
				Display: "✅ Not Spam",
				Image:   img.NotSpam,
				Caption: "Not Spam ✅",
			},
		},
		TaskLanguage: {
			ID:           TaskLanguage,
			Title:        "🌐 Language Detection",
			Heading:      "🌐 Welcome to Language Detection",
			Prompt:       "📝 Enter a sentence or paragraph to detect the language:",
			Color:        "#00008B",
			Kind:         KindMultiClass,
			BannerPrefix: "Detected Language: ",
		},
		TaskSentiment: {
			ID:      TaskSentiment,
			Title:   "🍽️ Food Review Sentiment",
			Heading: "🍽️ Welcome to Food Review Sentiments",
			Prompt:  "🍔 Share a food review and we'll detect if it's positive or negative:",
			Color:   "#FF8C00",
			Kind:    KindBinary,
			Negative: &Outcome{
				Display: "👎 Disliked",
				Image:   img.Disliked,
				Caption: "👎 Disliked",
			},
			Positive: &Outcome{
				Display: "👍 Liked",
				Image:   img.Liked,
				Caption: "👍 Liked",
			},
		},
		TaskNews: {
			ID:           TaskNews,
			Title:        "🗞️ News Classification",
			Heading:      "🗞️ Welcome to News Classification",
			Prompt:       "📰 Enter a news headline or article to classify the topic:",
			Color:        "#006400",
			Kind:         KindMultiClass,
			BannerPrefix: "📰 ",
		},
	}
}
