package models

// Sample is one unit of text to classify.
type Sample = string

// Label is the raw predictor output for one sample.
type Label = string

// Batch is the ordered samples of one upload.
type Batch struct {
	Source  string   `json:"source,omitempty"`
	Samples []Sample `json:"samples"`
}

// Len returns the number of samples.
func (b *Batch) Len() int {
	return len(b.Samples)
}

// ArtifactKind says how a single prediction is displayed.
type ArtifactKind string

const (
	ArtifactImage  ArtifactKind = "image"
	ArtifactBanner ArtifactKind = "banner"
)

// Rendered is the display artifact for a single-text prediction.
type Rendered struct {
	Task    TaskID       `json:"task"`
	Kind    ArtifactKind `json:"kind"`
	Label   Label        `json:"label"`
	Display string       `json:"display"`
	Image   string       `json:"image,omitempty"`
	Caption string       `json:"caption,omitempty"`
	Message string       `json:"message,omitempty"`

	// Confidence is set when the predictor reports one.
	Confidence *float64 `json:"confidence,omitempty"`
}

// Row is one line of a rendered batch table. Index is 1-based.
type Row struct {
	Index      int    `json:"index"`
	Msg        string `json:"msg"`
	Label      Label  `json:"label"`
	Prediction string `json:"prediction"`
}

// Table is a batch augmented with a Prediction column.
type Table struct {
	Task    TaskID   `json:"task"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}
