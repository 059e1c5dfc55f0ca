package runner

import (
	"fmt"
	"strings"

	"github.com/schedtools/st/internal/parser"
	"github.com/schedtools/st/internal/table"
)

// Profile times one adapter call per generator value and reproduces the
// program's full output as titled subsections. Timing covers failed
// calls too; correctness is not checked.
type Profile struct {
	adapter Adapter
	stats   *Stats
}

func NewProfile(testPath string, adapter Adapter) *Profile {
	return &Profile{adapter: adapter, stats: NewStats(testPath)}
}

func (p *Profile) Report() Report { return p.stats }

func (p *Profile) Stats() *Stats { return p.stats }

var profileAligns = []table.Align{table.Right, table.Right, table.Right}

func (p *Profile) RunSection(unit *parser.Unit) (bool, []string) {
	path, cleanup, err := writePayload(unit.Payload)
	if err != nil {
		return false, []string{fmt.Sprintf("Crashed: %v", err), ""}
	}
	defer cleanup()

	// The payload's first row is its own header; the rest are the
	// process rows rendered up front for context.
	rows := [][]string{{"pid", "arrival", "burst"}}
	for _, line := range rest(unit.Payload) {
		rows = append(rows, strings.Split(line, ","))
	}
	out := table.Render(rows, profileAligns, 0)
	out = append(out, "")

	for _, qval := range generatorValues(unit) {
		raw, err := p.timedCall(path, qval)
		if err != nil {
			out = append(out, fmt.Sprintf("Crashed (quantum=%s): %v", qval, err))
			continue
		}
		out = append(out, fmt.Sprintf("### Run with quantum %s", qval), "```")
		out = append(out, strings.Split(trimTrailingNewline(raw), "\n")...)
		out = append(out, "```", "")
	}

	return false, out
}

// timedCall records elapsed time whether or not the adapter fails.
func (p *Profile) timedCall(path, qval string) (string, error) {
	p.stats.Start()
	defer p.stats.Record()
	return p.adapter(path, qval, "1")
}

func rest(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	return lines[1:]
}
