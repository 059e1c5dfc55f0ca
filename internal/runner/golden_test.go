package runner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// The generate transcript is the harness's user-facing wire format:
// lock it down against a golden file.
func TestGenerate_GoldenTranscript(t *testing.T) {
	content := "# Scheduler tests\n" +
		"## Round robin\n" +
		"```\npid,arrival,burst\n1,0,4\n2,1,5\n```\n" +
		"```\n2, 1.5, 2.5\n```\n" +
		"```\n2,4\n```\n"
	tree := parseDoc(t, content)

	adapter := func(path, quantum string, extra ...string) (string, error) {
		return fmt.Sprintf("wait:%s.5\nresp:%s.0\n", quantum, quantum), nil
	}

	lines := Walk(tree, NewGenerate(adapter), nil, false)

	g := goldie.New(t)
	g.Assert(t, "generate_transcript", []byte(strings.Join(lines, "\n")+"\n"))
}
