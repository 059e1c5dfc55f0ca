package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// ignoredPat matches lines that never drive the state machine outside a
// fence: blanks, *annotation* captions, and > quotes. Every alternative
// is anchored so a directive with an inline *phrase* is not swallowed.
var ignoredPat = regexp.MustCompile(`^$|^\*[\w ]+\*|^>`)

const fence = "```"

// target is one open node on the write stack. While a section's fences
// are being filled, unit points at the section under suite.
type target struct {
	suite *Suite
	unit  *Unit
}

type parser struct {
	filename string
	tree     *Tree
	stack    []target
	state    state
}

// Parse reads a test document and returns the suite tree. Any grammar
// violation or duplicate key aborts with an error; a partial tree is
// never returned.
func Parse(filename string, content []byte) (*Tree, error) {
	p := &parser{filename: filename, tree: newTree(), state: stateStart}

	lines := strings.Split(string(content), "\n")
	// A trailing newline leaves one empty artifact after Split; drop it
	// so fenced blocks don't pick up a phantom line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for _, line := range lines {
		if p.capture(line) {
			continue
		}
		if ignoredPat.MatchString(strings.TrimRight(line, " \t\r")) {
			continue
		}
		if err := p.advance(line); err != nil {
			return nil, err
		}
	}

	if p.state != stateGeneratorEnd && p.state != stateStart {
		return nil, fmt.Errorf("%s: unexpected end of document inside %s block", p.filename, p.state)
	}
	return p.tree, nil
}

// capture appends fence-interior lines verbatim. The closing-fence
// check runs first so the delimiter itself is never stored.
func (p *parser) capture(line string) bool {
	if line == fence {
		return false
	}
	switch p.state {
	case statePayload:
		u := p.top().unit
		u.Payload = append(u.Payload, line)
	case stateResults:
		u := p.top().unit
		u.Results = append(u.Results, line)
	case stateGenerator:
		u := p.top().unit
		u.Generator = append(u.Generator, line)
	default:
		return false
	}
	return true
}

func (p *parser) advance(line string) error {
	from := p.state
	next := from
	for _, t := range fsm[from] {
		if t.pattern.MatchString(line) {
			next = t.next
			break
		}
	}
	if next == from {
		return fmt.Errorf("%s: incorrectly formatted test cases, failed at `%s'", p.filename, line)
	}
	if err := p.apply(from, next, line); err != nil {
		return err
	}
	p.state = next
	return nil
}

// apply performs the tree mutation tied to a (from, next) edge.
func (p *parser) apply(from, next state, line string) error {
	switch next {
	case stateTitle:
		if from == stateGeneratorEnd {
			p.pop() // finished unit
			p.pop() // finished suite
		}
		s, ok := p.tree.addSuite(line)
		if !ok {
			return p.duplicate(line)
		}
		p.push(target{suite: s})

	case stateSection:
		if from == stateGeneratorEnd {
			p.pop() // finished unit
		}
		s := p.top().suite
		u, ok := s.addUnit(line)
		if !ok {
			return p.duplicate(line)
		}
		p.push(target{suite: s, unit: u})

	case statePayload:
		u := p.top().unit
		if u.Payload != nil {
			return p.duplicate("payload")
		}
		u.Payload = []string{}

	case stateResults:
		u := p.top().unit
		if u.Results != nil {
			return p.duplicate("results")
		}
		u.Results = []string{}

	case stateGenerator:
		u := p.top().unit
		if u.Generator != nil {
			return p.duplicate("generator")
		}
		u.Generator = []string{}

	case statePayloadEnd, stateResultsEnd, stateGeneratorEnd:
		// fence just closed, awaiting the next directive
	}
	return nil
}

func (p *parser) duplicate(key string) error {
	return fmt.Errorf("`%s' is a duplicate entry in %s", key, p.filename)
}

func (p *parser) push(t target) { p.stack = append(p.stack, t) }

func (p *parser) pop() { p.stack = p.stack[:len(p.stack)-1] }

func (p *parser) top() target { return p.stack[len(p.stack)-1] }
