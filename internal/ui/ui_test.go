package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript_WritesEveryLine(t *testing.T) {
	var buf bytes.Buffer
	Transcript(&buf, []string{
		"# Suite",
		"## Section",
		"### Run with quantum 4",
		"plain output",
	})

	assert.Equal(t, "# Suite\n## Section\n### Run with quantum 4\nplain output\n", buf.String())
}

func TestRule_FortyDashes(t *testing.T) {
	var buf bytes.Buffer
	Rule(&buf)

	assert.Equal(t, bytes.Repeat([]byte("-"), 40), bytes.TrimRight(buf.Bytes(), "\n"))
}
