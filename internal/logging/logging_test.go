package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SetupWriter(&buf, "warn", "json"))
	t.Cleanup(func() { _ = SetupWriter(&bytes.Buffer{}, "info", "text") })

	log.Info("hidden")
	log.WithField("task", "spam").Warn("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "spam", entry["task"])
	assert.Equal(t, "warning", entry["level"])
}

func TestSetupWriter_BadLevel(t *testing.T) {
	assert.Error(t, SetupWriter(&bytes.Buffer{}, "chatty", "text"))
}
