package errors

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/colors"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	t.Cleanup(func() { os.Stderr = oldStderr })

	fn()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)

	return buf.String()
}

func TestConsoleHandlerWritesProblemsToStderr(t *testing.T) {
	colors.SetQuiet(false)
	h := NewConsoleHandler()

	out := captureStderr(t, func() {
		Report(h, catalog.ErrReasonNotFound)
		h.Warning("xlsx unavailable")
	})

	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "reason not found (list the reasons with 'noshow reasons')")
	assert.Contains(t, out, "Warning:")
	assert.Contains(t, out, "xlsx unavailable")
}
