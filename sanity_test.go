package groundwork

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/groundwork/internal/logging"
)

// These sanity checks verify the harness, not application behavior:
// go test discovery, testify's failure semantics, and the sink wiring.

func TestSanityCheck_BasicMath(t *testing.T) {
	assert.Equal(t, 4, 2+2)
}

func TestSanityCheck_LoggingWorks(t *testing.T) {
	var buf bytes.Buffer
	restore, err := logging.Setup(&buf, logging.Options{})
	require.NoError(t, err)
	defer restore()

	require.NotPanics(t, func() {
		slog.Info("test log from inside go test")
	})

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "test log from inside go test")
}
