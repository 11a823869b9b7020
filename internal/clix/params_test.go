package clix

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lensx/internal/models"
)

func TestParseTask(t *testing.T) {
	id, err := ParseTask([]string{" News ", "ignored"})
	require.NoError(t, err)
	assert.Equal(t, models.TaskNews, id)

	_, err = ParseTask(nil)
	assert.ErrorContains(t, err, "spam|language|sentiment|news")

	_, err = ParseTask([]string{"weather"})
	assert.ErrorIs(t, err, models.ErrUnknownTask)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{nil, FormatTable, false},
		{[]string{"--format", "CSV"}, FormatCSV, false},
		{[]string{"--format=table"}, FormatTable, false},
		{[]string{"--format", "xml"}, "", true},
	}
	for _, tt := range tests {
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("format", "", "")
		require.NoError(t, flags.Parse(tt.args))

		got, err := ParseFormat(flags)
		if tt.wantErr {
			assert.Error(t, err, tt.args)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
