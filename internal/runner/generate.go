package runner

import (
	"fmt"

	"github.com/schedtools/st/internal/parser"
)

// Generate replays each generator value through the adapter and emits a
// transcript whose results block holds the captured output, so a user
// can paste it back into the document as fresh expectations. It never
// scores: every section is always reported.
type Generate struct {
	adapter Adapter
}

func NewGenerate(adapter Adapter) *Generate {
	return &Generate{adapter: adapter}
}

func (g *Generate) Report() Report { return NullReport{} }

func (g *Generate) RunSection(unit *parser.Unit) (bool, []string) {
	out := []string{"*payload*", "```"}
	out = append(out, unit.Payload...)
	out = append(out, "```", "", "*results*", "```")

	path, cleanup, err := writePayload(unit.Payload)
	if err != nil {
		out = append(out, fmt.Sprintf("Crashed: %v", err))
	} else {
		defer cleanup()
		for _, qval := range generatorValues(unit) {
			raw, err := g.adapter(path, qval)
			if err != nil {
				out = append(out, fmt.Sprintf("Crashed (quantum=%s): %v", qval, err))
				continue
			}
			wait, resp, err := splitMetrics(raw)
			if err != nil {
				out = append(out, fmt.Sprintf("Crashed (quantum=%s): %v", qval, err))
				continue
			}
			out = append(out, fmt.Sprintf("%s, %s, %s", qval, wait, resp))
		}
	}

	out = append(out, "```", "", "*generator*", "```")
	out = append(out, unit.Generator...)
	out = append(out, "```", "")

	return false, out
}
