// Package runner walks a parsed test tree under one of three
// strategies: verify checks adapter output against expectations,
// generate regenerates an expectations transcript, and profile times
// adapter calls.
package runner

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/schedtools/st/internal/parser"
)

// Strategy runs one test unit and reports its transcript lines.
type Strategy interface {
	RunSection(unit *parser.Unit) (bool, []string)
	Report() Report
}

var hashPrefix = regexp.MustCompile(`^#+ `)

// Walk iterates the tree in document order, applying the section
// filter and the quiet-success rule, and returns the full transcript.
// Passing sections are silent unless verbose is set; failing ones are
// always printed.
func Walk(tree *parser.Tree, s Strategy, sections []string, verbose bool) []string {
	filter := make(map[string]struct{}, len(sections))
	for _, name := range sections {
		filter[strings.ToLower(name)] = struct{}{}
	}

	var buf []string
	for _, suite := range tree.Suites() {
		buf = append(buf, suite.Title)
		for _, unit := range suite.Units() {
			if filtered(unit.Name, filter) {
				continue
			}
			passed, msg := s.RunSection(unit)
			if passed && !verbose {
				continue
			}
			buf = append(buf, unit.Name)
			buf = append(buf, msg...)
		}
	}

	if n := len(buf); n > 0 && buf[n-1] == "" {
		buf = buf[:n-1]
	}
	return buf
}

// filtered reports whether a section should be skipped: the filter is
// matched case-insensitively against the name with its `#` markers
// stripped, and an empty filter admits everything.
func filtered(name string, filter map[string]struct{}) bool {
	if len(filter) == 0 {
		return false
	}
	key := strings.ToLower(hashPrefix.ReplaceAllString(name, ""))
	_, ok := filter[key]
	return !ok
}

// writePayload materializes a unit's payload into a temp file, one
// line per entry. The cleanup func scopes the file to a single unit's
// execution.
func writePayload(payload []string) (string, func(), error) {
	f, err := os.CreateTemp("", "st-payload-")
	if err != nil {
		return "", nil, fmt.Errorf("creating payload file: %w", err)
	}
	cleanup := func() { os.Remove(f.Name()) }

	for _, line := range payload {
		if _, err := f.WriteString(line + "\n"); err != nil {
			f.Close()
			cleanup()
			return "", nil, fmt.Errorf("writing payload file: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("writing payload file: %w", err)
	}
	return f.Name(), cleanup, nil
}

// generatorValues flattens a unit's generator block into its quantum
// values: lines are joined before splitting, so a list may span lines.
func generatorValues(unit *parser.Unit) []string {
	return strings.Split(strings.Join(unit.Generator, ","), ",")
}

func trimTrailingNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}

// splitMetrics pulls the two metric values out of adapter output shaped
// as "label1:value1\nlabel2:value2". Values are returned raw.
func splitMetrics(raw string) (string, string, error) {
	lines := strings.Split(trimTrailingNewline(raw), "\n")
	if len(lines) < 2 {
		return "", "", fmt.Errorf("want 2 output lines, got %d", len(lines))
	}
	wait, ok := metricValue(lines[0])
	if !ok {
		return "", "", fmt.Errorf("no metric in output line `%s'", lines[0])
	}
	resp, ok := metricValue(lines[1])
	if !ok {
		return "", "", fmt.Errorf("no metric in output line `%s'", lines[1])
	}
	return wait, resp, nil
}

func metricValue(line string) (string, bool) {
	_, value, found := strings.Cut(line, ":")
	return value, found
}
