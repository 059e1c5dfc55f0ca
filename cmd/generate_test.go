package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_PrintsTranscriptWithoutSummary(t *testing.T) {
	inTempDir(t)
	writeDoc(t, testDoc)

	adapter := func(path, quantum string, extra ...string) (string, error) {
		return fmt.Sprintf("wait:%s.5\nresp:%s.0\n", quantum, quantum), nil
	}

	var buf bytes.Buffer
	require.NoError(t, RunGenerate(&buf, "tests.md", adapter, nil))
	out := buf.String()

	assert.Contains(t, out, "*payload*")
	assert.Contains(t, out, "*results*")
	assert.Contains(t, out, "4, 4.5, 4.0")
	assert.Contains(t, out, "*generator*")
	// Generate has no summary block.
	assert.NotContains(t, out, "suite:")
	assert.NotContains(t, out, "score:")
}

func TestGenerate_AllSectionsAlwaysReported(t *testing.T) {
	inTempDir(t)
	writeDoc(t, testDoc)

	adapter := func(path, quantum string, extra ...string) (string, error) {
		return "wait:1\nresp:2\n", nil
	}

	var buf bytes.Buffer
	require.NoError(t, RunGenerate(&buf, "tests.md", adapter, nil))

	assert.Contains(t, buf.String(), "## CPU Burst")
	assert.Contains(t, buf.String(), "## IO Burst")
}
