package runner

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"time"

	"github.com/schedtools/st/internal/ui"
)

// Report renders the dashed summary block after a run.
type Report interface {
	Print(w io.Writer)
}

func suiteLabel(testPath string) string {
	rel, err := filepath.Rel(".", testPath)
	if err != nil {
		return testPath
	}
	return "./" + rel
}

func printBlock(w io.Writer, lines []string) {
	fmt.Fprintln(w)
	ui.Rule(w)
	for _, line := range lines {
		fmt.Fprintln(w, "* "+line)
	}
	fmt.Fprintln(w)
}

// Score accumulates unit pass/fail outcomes for a verify run.
type Score struct {
	testPath string
	entries  []bool
}

func NewScore(testPath string) *Score {
	return &Score{testPath: testPath}
}

func (s *Score) Add(passed bool) {
	s.entries = append(s.entries, passed)
}

func (s *Score) Passed() int {
	n := 0
	for _, passed := range s.entries {
		if passed {
			n++
		}
	}
	return n
}

func (s *Score) Total() int { return len(s.entries) }

func (s *Score) Print(w io.Writer) {
	printBlock(w, []string{
		fmt.Sprintf("%-8s%s", "suite:", suiteLabel(s.testPath)),
		fmt.Sprintf("%-8s%d/%d", "score:", s.Passed(), s.Total()),
	})
}

// Stats accumulates adapter call durations across a profile run.
type Stats struct {
	testPath string
	started  time.Time
	running  bool
	records  []time.Duration
}

func NewStats(testPath string) *Stats {
	return &Stats{testPath: testPath}
}

func (s *Stats) Start() {
	s.started = time.Now()
	s.running = true
}

// Record closes the interval opened by Start. Calling it without a
// matching Start is a programming error.
func (s *Stats) Record() {
	if !s.running {
		panic("runner: Record called before Start")
	}
	s.records = append(s.records, time.Since(s.started))
	s.running = false
}

func (s *Stats) Count() int { return len(s.records) }

func (s *Stats) Total() time.Duration {
	var total time.Duration
	for _, d := range s.records {
		total += d
	}
	return total
}

// TotalMillis reports the summed elapsed time in milliseconds.
func (s *Stats) TotalMillis() float64 {
	return float64(s.Total()) / float64(time.Millisecond)
}

// AverageMillis reports the mean elapsed time in milliseconds, NaN when
// nothing was recorded.
func (s *Stats) AverageMillis() float64 {
	if len(s.records) == 0 {
		return math.NaN()
	}
	return s.TotalMillis() / float64(len(s.records))
}

func (s *Stats) Print(w io.Writer) {
	printBlock(w, []string{
		fmt.Sprintf("%-14s%s", "suite:", suiteLabel(s.testPath)),
		fmt.Sprintf("%-14s%g ms", "average time:", s.AverageMillis()),
		fmt.Sprintf("%-14s%g ms", "total time:", s.TotalMillis()),
	})
}

// NullReport is the generate strategy's summary: there is none.
type NullReport struct{}

func (NullReport) Print(io.Writer) {}
