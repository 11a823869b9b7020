package inputprocessor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lensx/internal/models"
)

func upload(t *testing.T, name, body string) (*models.Batch, error) {
	t.Helper()
	return New(1 << 20).Upload(context.Background(), name, strings.NewReader(body))
}

func TestUpload_CSV(t *testing.T) {
	b, err := upload(t, "messages.CSV", "free entry win\nhi mom see you tonight\n")
	require.NoError(t, err)

	assert.Equal(t, "messages.CSV", b.Source)
	assert.Equal(t, []string{"free entry win", "hi mom see you tonight"}, b.Samples)
}

func TestUpload_QuotesInsideText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"quoted word", "Call me \"now\" for a prize\nhi mom\n", []string{`Call me "now" for a prize`, "hi mom"}},
		{"inch mark", "5\" screen phone on sale\n", []string{`5" screen phone on sale`}},
		{"leading quote", "\"Hello\" he said\nhi mom\n", []string{`"Hello" he said`, "hi mom"}},
		{"unclosed quote", "\"open\nnext\n", []string{`"open`, "next"}},
		{"quoted with escaped quote", "\"she said \"\"hi\"\"\"\nok\n", []string{`she said "hi"`, "ok"}},
	}
	for _, tt := range tests {
		for _, file := range []string{"m.csv", "m.txt"} {
			t.Run(tt.name+" "+file, func(t *testing.T) {
				b, err := upload(t, file, tt.body)
				require.NoError(t, err)
				assert.Equal(t, tt.want, b.Samples)
			})
		}
	}
}

func TestUpload_CSVQuotedFields(t *testing.T) {
	b, err := upload(t, "m.csv", "\"hello, world\"\r\n\"two\nlines\"\r\nplain\r\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"hello, world", "two\nlines", "plain"}, b.Samples)
}

func TestUpload_TXTIsOneFieldPerRow(t *testing.T) {
	b, err := upload(t, "reviews.txt", "great food\r\nloved it\n\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"great food", "loved it"}, b.Samples)

	_, err = upload(t, "reviews.txt", "a,b\nc\n")
	require.ErrorIs(t, err, models.ErrMalformedRow)
	assert.Contains(t, err.Error(), "line 1 has 2 fields")
}

func TestUpload_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr error
		wantMsg string
	}{
		{"extra column", "m.csv", "one\ntwo,three\n", models.ErrMalformedRow, "line 2 has 2 fields"},
		{"blank row csv", "m.csv", "one\n\ntwo\n", models.ErrMalformedRow, "line 2 has no fields"},
		{"leading blank csv", "m.csv", "\none\n", models.ErrMalformedRow, "line 1"},
		{"empty quoted field", "m.csv", "one\n\"\"\n", models.ErrMalformedRow, "empty field"},
		{"extra column txt", "m.txt", "great food, rude staff\n", models.ErrMalformedRow, "expected 1"},
		{"blank row txt", "m.txt", "one\n\ntwo", models.ErrMalformedRow, "line 2 has no fields"},
		{"empty file", "m.txt", "\n\n", models.ErrEmptyUpload, ""},
		{"wrong extension", "m.xlsx", "one", models.ErrUnsupportedFormat, ""},
		{"no extension", "upload", "one", models.ErrUnsupportedFormat, ""},
		{"binary", "m.csv", "a\x00b", models.ErrInvalidEncoding, ""},
		{"bad utf8", "m.txt", "caf\xe9", models.ErrInvalidEncoding, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := upload(t, tt.file, tt.body)
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, models.IsUploadError(err))
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestUpload_TooLarge(t *testing.T) {
	p := New(8)

	_, err := p.Upload(context.Background(), "m.txt", strings.NewReader("0123456789\n"))
	assert.ErrorIs(t, err, models.ErrUploadTooLarge)

	b, err := p.Upload(context.Background(), "m.txt", strings.NewReader("0123456\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())
}

func TestBlankLine(t *testing.T) {
	assert.Equal(t, 0, blankLine("a\nb"))
	assert.Equal(t, 0, blankLine("\"a\n\nb\"\nc"))
	assert.Equal(t, 3, blankLine("a\nb\n\nc"))
	assert.Equal(t, 2, blankLine("a\r\n\r\nb"))
	assert.Equal(t, 3, blankLine("5\" screen\nb\n\nc"))
	assert.Equal(t, 0, blankLine("\"a \"\"x\"\"\n\nb\"\nc"))
}

func TestNormalizeQuotes(t *testing.T) {
	assert.Equal(t, "plain\n\"ok, fine\"", normalizeQuotes("plain\n\"ok, fine\""))
	assert.Equal(t, "\"\"\"Hello\"\" he said\"\nx", normalizeQuotes("\"Hello\" he said\nx"))
	assert.Equal(t, "a \"b\" c", normalizeQuotes("a \"b\" c"))
}
