package inputprocessor

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"lensx/internal/models"
	"lensx/internal/util"
)

// Supported upload extensions.
const (
	FormatCSV = ".csv"
	FormatTXT = ".txt"
)

// Processor turns uploaded files into batches of samples. Typed text needs
// no processing and goes straight to the inference service.
type Processor interface {
	// Upload parses an uploaded file into one sample per row.
	Upload(ctx context.Context, filename string, r io.Reader) (*models.Batch, error)
}

// New creates the default processor. Uploads larger than maxBytes are
// rejected; zero or less disables the limit.
func New(maxBytes int64) Processor {
	return &defaultProcessor{maxBytes: maxBytes}
}

type defaultProcessor struct {
	maxBytes int64
}

func (p *defaultProcessor) Upload(ctx context.Context, filename string, r io.Reader) (*models.Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != FormatCSV && ext != FormatTXT {
		return nil, fmt.Errorf("%w: %q (expected .csv or .txt)", models.ErrUnsupportedFormat, filename)
	}

	data, err := p.read(r)
	if err != nil {
		return nil, err
	}
	text, err := util.DecodeText(data, filename)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %s", models.ErrEmptyUpload, filename)
	}

	// .txt and .csv are read the same way: one field per row, no header.
	samples, err := parseRows(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	log.WithFields(log.Fields{"file": filename, "rows": len(samples)}).Debug("parsed upload")
	return &models.Batch{Source: filename, Samples: samples}, nil
}

func (p *defaultProcessor) read(r io.Reader) ([]byte, error) {
	if p.maxBytes <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, p.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > p.maxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", models.ErrUploadTooLarge, p.maxBytes)
	}
	return data, nil
}

// parseRows reads a headerless, single-column file. Bare quotes inside a
// field are text, so `Call me "now"` and `5" screen` are single samples.
func parseRows(text string) ([]string, error) {
	text = normalizeQuotes(strings.TrimRight(text, "\r\n"))
	if line := blankLine(text); line > 0 {
		return nil, fmt.Errorf("%w: line %d has no fields", models.ErrMalformedRow, line)
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = 1
	cr.LazyQuotes = true

	var samples []string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("%w: line %d has %d fields, expected 1", models.ErrMalformedRow, pe.Line, len(rec))
			}
			return nil, fmt.Errorf("%w: %v", models.ErrMalformedRow, err)
		}
		if rec[0] == "" {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has an empty field", models.ErrMalformedRow, line)
		}
		samples = append(samples, rec[0])
	}
	return samples, nil
}

// normalizeQuotes rewrites a field that opens with a quote but does not close
// it right before a separator, such as `"Hello" he said` or `"open`, into a
// properly quoted field. Otherwise the lazy reader would run that field on
// into the following rows. Line numbers are unchanged.
func normalizeQuotes(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	atFieldStart := true
	for i := 0; i < len(text); {
		if atFieldStart && text[i] == '"' {
			end, ok := quotedFieldEnd(text, i)
			if ok {
				b.WriteString(text[i:end])
			} else {
				end = strings.IndexAny(text[i:], ",\r\n")
				if end < 0 {
					end = len(text)
				} else {
					end += i
				}
				b.WriteString(`"` + strings.ReplaceAll(text[i:end], `"`, `""`) + `"`)
			}
			i = end
			atFieldStart = false
			continue
		}
		c := text[i]
		b.WriteByte(c)
		atFieldStart = c == ',' || c == '\n'
		i++
	}
	return b.String()
}

// quotedFieldEnd returns the offset just past the closing quote of the quoted
// field opening at start, provided a separator or the end of text follows it.
func quotedFieldEnd(text string, start int) (int, bool) {
	for k := start + 1; k < len(text); k++ {
		if text[k] != '"' {
			continue
		}
		if k+1 < len(text) && text[k+1] == '"' {
			k++
			continue
		}
		if k+1 == len(text) || strings.IndexByte(",\r\n", text[k+1]) >= 0 {
			return k + 1, true
		}
		return 0, false
	}
	return 0, false
}

// blankLine returns the 1-based number of the first empty line outside a
// quoted field, or 0. encoding/csv skips such lines silently. A quote opens a
// quoted field only at the start of a field; inside one, a doubled quote is
// text and a single quote closes it.
func blankLine(text string) int {
	inQuotes, atFieldStart := false, true
	line, width := 1, 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inQuotes {
			switch {
			case c == '"' && i+1 < len(text) && text[i+1] == '"':
				i++
			case c == '"':
				inQuotes = false
			case c == '\n':
				line++
			}
			continue
		}
		switch c {
		case '\r':
			continue
		case '\n':
			if width == 0 {
				return line
			}
			width = 0
			line++
			atFieldStart = true
			continue
		case '"':
			if atFieldStart {
				inQuotes = true
			}
		}
		width++
		atFieldStart = c == ','
	}
	return 0
}

// Ensure defaultProcessor satisfies the Processor interface.
var _ Processor = (*defaultProcessor)(nil)
