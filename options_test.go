package repeat_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/repeat"
)

func TestWithLoggerTracesRenders(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	repeat.SetVerbose(true)
	t.Cleanup(func() { repeat.SetVerbose(false) })

	view := newFakeViewport(true, 100, 100)
	m, err := repeat.NewManager(newFakeSource(column(10, 100, 50)...), view, repeat.WithLogger(logger))
	require.NoError(t, err)
	m.Resize()

	out := buf.String()
	assert.Contains(t, out, "repeat resize")
	assert.Contains(t, out, "repeat render")
	assert.Contains(t, out, "viewportSize=500")
}

func TestRenderTraceNeedsVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	repeat.SetVerbose(false)

	view := newFakeViewport(true, 100, 100)
	m, err := repeat.NewManager(newFakeSource(column(10, 100, 50)...), view, repeat.WithLogger(logger))
	require.NoError(t, err)
	m.Resize()

	assert.NotContains(t, buf.String(), "repeat render")
}
