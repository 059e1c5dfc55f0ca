package runner

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/schedtools/st/internal/parser"
	"github.com/schedtools/st/internal/table"
)

// Verify runs every results triple against the adapter and checks both
// metrics for exact equality. No epsilon: the expectations file is
// regenerated from the same binary, so formatting drift is a finding,
// not noise.
type Verify struct {
	adapter Adapter
	verbose bool
	score   *Score
}

func NewVerify(testPath string, adapter Adapter, verbose bool) *Verify {
	return &Verify{adapter: adapter, verbose: verbose, score: NewScore(testPath)}
}

func (v *Verify) Report() Report { return v.score }

func (v *Verify) Score() *Score { return v.score }

var verifyAligns = []table.Align{table.Right, table.Left, table.Right, table.Right, table.Left}

func (v *Verify) RunSection(unit *parser.Unit) (bool, []string) {
	path, cleanup, err := writePayload(unit.Payload)
	if err != nil {
		v.score.Add(false)
		return false, []string{fmt.Sprintf("Crashed: %v", err), ""}
	}
	defer cleanup()

	rows := [][]string{{"qm", "average", "received", "expected", "status"}}
	var out []string
	passedAll := true
	errIter := 0

	crash := func(qval string, err error) {
		passedAll = false
		errIter++
		rows = append(rows, []string{qval, "none", "crashed", "n/a", fmt.Sprintf("see error %d", errIter)})
		out = append(out, fmt.Sprintf("%d. Crashed (quantum=%s): %v", errIter, qval, err))
	}

	for _, record := range unit.Results {
		fields := strings.Split(record, ",")
		if len(fields) != 3 {
			crash(record, fmt.Errorf("want 3 comma-separated fields, got %d", len(fields)))
			continue
		}
		qval := fields[0]

		wantWait, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			crash(qval, fmt.Errorf("bad expected value: %w", err))
			continue
		}
		wantResp, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			crash(qval, fmt.Errorf("bad expected value: %w", err))
			continue
		}

		raw, err := v.adapter(path, qval)
		if err != nil {
			crash(qval, err)
			continue
		}
		gotWaitRaw, gotRespRaw, err := splitMetrics(raw)
		if err != nil {
			crash(qval, err)
			continue
		}
		gotWait, err := strconv.ParseFloat(strings.TrimSpace(gotWaitRaw), 64)
		if err != nil {
			crash(qval, fmt.Errorf("bad metric value: %w", err))
			continue
		}
		gotResp, err := strconv.ParseFloat(strings.TrimSpace(gotRespRaw), 64)
		if err != nil {
			crash(qval, fmt.Errorf("bad metric value: %w", err))
			continue
		}

		passedAll = v.check(&rows, qval, "wait", gotWait, wantWait) && passedAll
		passedAll = v.check(&rows, qval, "response", gotResp, wantResp) && passedAll
	}

	if errIter > 0 {
		out = append(out, "")
	}
	out = append(out, table.Render(rows, verifyAligns, 0)...)
	out = append(out, "")

	v.score.Add(passedAll)
	return passedAll, out
}

// check compares one metric and appends its table row. Passing rows
// only show up in verbose mode.
func (v *Verify) check(rows *[][]string, qval, metric string, got, want float64) bool {
	status := "pass"
	passed := got == want
	if !passed {
		status = "FAIL"
	}
	if v.verbose || !passed {
		*rows = append(*rows, []string{qval, metric, formatFloat(got), formatFloat(want), status})
	}
	return passed
}

// formatFloat keeps a decimal point on integral values so the table
// matches the expectations file, which always writes 20.0, never 20.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsNaN(f) && !math.IsInf(f, 0) {
		s += ".0"
	}
	return s
}
