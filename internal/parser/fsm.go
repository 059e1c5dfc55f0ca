package parser

import "regexp"

type state int

const (
	stateStart state = iota
	stateTitle
	stateSection
	statePayload
	statePayloadEnd
	stateResults
	stateResultsEnd
	stateGenerator
	stateGeneratorEnd
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateTitle:
		return "title"
	case stateSection:
		return "section"
	case statePayload:
		return "payload"
	case statePayloadEnd:
		return "payload-end"
	case stateResults:
		return "results"
	case stateResultsEnd:
		return "results-end"
	case stateGenerator:
		return "generator"
	case stateGeneratorEnd:
		return "generator-end"
	}
	return "unknown"
}

var (
	titlePat   = regexp.MustCompile(`^# `)
	sectionPat = regexp.MustCompile(`^## `)
	fencePat   = regexp.MustCompile("^```")
)

type transition struct {
	pattern *regexp.Regexp
	next    state
}

// fsm lists, per state, the line patterns that may advance it. A line
// matching none of them is a grammar error. A title is legal only at
// the top of the document or right after a generator fence closes.
var fsm = map[state][]transition{
	stateStart:        {{titlePat, stateTitle}},
	stateTitle:        {{sectionPat, stateSection}},
	stateSection:      {{fencePat, statePayload}},
	statePayload:      {{fencePat, statePayloadEnd}},
	statePayloadEnd:   {{fencePat, stateResults}},
	stateResults:      {{fencePat, stateResultsEnd}},
	stateResultsEnd:   {{fencePat, stateGenerator}},
	stateGenerator:    {{fencePat, stateGeneratorEnd}},
	stateGeneratorEnd: {{sectionPat, stateSection}, {titlePat, stateTitle}},
}
