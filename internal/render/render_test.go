package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lensx/internal/models"
)

var tasks = models.DefaultTasks(models.Images{
	Spam: "spam.jpg", NotSpam: "not_spam.png", Liked: "liked.jpeg", Disliked: "images.jpeg",
})

func TestSingle_Binary(t *testing.T) {
	spam := tasks[models.TaskSpam]

	r, err := Single(spam, "0")
	require.NoError(t, err)
	assert.Equal(t, models.ArtifactImage, r.Kind)
	assert.Equal(t, "spam.jpg", r.Image)
	assert.Equal(t, "Spam Detected ❌", r.Caption)
	assert.Equal(t, "❌ Spam", r.Display)

	r, err = Single(spam, "1")
	require.NoError(t, err)
	assert.Equal(t, "not_spam.png", r.Image)
	assert.Equal(t, "✅ Not Spam", r.Display)

	r, err = Single(tasks[models.TaskSentiment], "1")
	require.NoError(t, err)
	assert.Equal(t, "liked.jpeg", r.Image)
	assert.Equal(t, "👍 Liked", r.Caption)
}

func TestSingle_BinaryRejectsThirdState(t *testing.T) {
	for _, label := range []string{"2", "", "spam", "1.0"} {
		_, err := Single(tasks[models.TaskSpam], label)
		assert.ErrorIs(t, err, models.ErrUnexpectedLabel, "label %q", label)
	}
}

func TestSingle_MultiClassIsVerbatim(t *testing.T) {
	for _, label := range []string{"French", "  weird label ", "", "0"} {
		r, err := Single(tasks[models.TaskLanguage], label)
		require.NoError(t, err)
		assert.Equal(t, models.ArtifactBanner, r.Kind)
		assert.Equal(t, label, r.Display)
		assert.Equal(t, "Detected Language: "+label, r.Message)
	}

	r, err := Single(tasks[models.TaskNews], "SPORTS")
	require.NoError(t, err)
	assert.Equal(t, "📰 SPORTS", r.Message)
}

func TestTable(t *testing.T) {
	batch := &models.Batch{Samples: []string{"free entry win", "hi mom see you tonight"}}

	tbl, err := Table(tasks[models.TaskSpam], batch, []string{"0", "1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Msg", "Prediction"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, models.Row{Index: 1, Msg: "free entry win", Label: "0", Prediction: "❌ Spam"}, tbl.Rows[0])
	assert.Equal(t, models.Row{Index: 2, Msg: "hi mom see you tonight", Label: "1", Prediction: "✅ Not Spam"}, tbl.Rows[1])
}

func TestTable_Errors(t *testing.T) {
	batch := &models.Batch{Samples: []string{"a", "b"}}

	_, err := Table(tasks[models.TaskNews], batch, []string{"X"})
	assert.ErrorIs(t, err, models.ErrLabelCountMismatch)

	_, err = Table(tasks[models.TaskSentiment], batch, []string{"1", "7"})
	require.ErrorIs(t, err, models.ErrUnexpectedLabel)
	assert.Contains(t, err.Error(), "row 2")
}

func TestWriteCSV(t *testing.T) {
	tbl := &models.Table{
		Columns: []string{ColumnMsg, ColumnPrediction},
		Rows: []models.Row{
			{Index: 1, Msg: "hello, world", Prediction: "English"},
			{Index: 2, Msg: "bonjour", Prediction: "French"},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))

	assert.Equal(t, "Index,Msg,Prediction\n1,\"hello, world\",English\n2,bonjour,French\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	tbl := &models.Table{
		Columns: []string{ColumnMsg, ColumnPrediction},
		Rows:    []models.Row{{Index: 1, Msg: "stocks rally", Prediction: "BUSINESS"}},
	}
	var buf bytes.Buffer
	WriteTable(&buf, tbl)

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "PREDICTION")
	assert.Contains(t, out, "stocks rally")
	assert.Contains(t, out, "BUSINESS")
}
