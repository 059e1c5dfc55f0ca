package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const verifyDoc = "# Scheduler tests\n" +
	"## CPU Burst\n```\npid,arrival,burst\n1,0,5\n```\n```\n4, 12.5, 20.0\n```\n```\n4\n```\n"

func TestVerify_ExactMatchPasses(t *testing.T) {
	tree := parseDoc(t, verifyDoc)
	v := NewVerify("tests.md", okAdapter("wait:12.5\nresp:20.0\n"), false)

	unit := tree.Suites()[0].Units()[0]
	passed, _ := v.RunSection(unit)

	assert.True(t, passed)
	assert.Equal(t, 1, v.Score().Passed())
	assert.Equal(t, 1, v.Score().Total())
}

func TestVerify_VerboseShowsPassingRows(t *testing.T) {
	tree := parseDoc(t, verifyDoc)
	v := NewVerify("tests.md", okAdapter("wait:12.5\nresp:20.0\n"), true)

	_, lines := v.RunSection(tree.Suites()[0].Units()[0])

	assert.Contains(t, lines, "|  4 | wait     |     12.5 |     12.5 | pass   |")
	assert.Contains(t, lines, "|  4 | response |     20.0 |     20.0 | pass   |")
}

func TestVerify_WaitMismatchFails(t *testing.T) {
	tree := parseDoc(t, verifyDoc)
	v := NewVerify("tests.md", okAdapter("wait:12.6\nresp:20.0\n"), false)

	passed, lines := v.RunSection(tree.Suites()[0].Units()[0])

	assert.False(t, passed)
	assert.Equal(t, 0, v.Score().Passed())
	assert.Contains(t, lines, "|  4 | wait    |     12.6 |     12.5 | FAIL   |")
}

func TestVerify_ResponseMismatchFails(t *testing.T) {
	tree := parseDoc(t, verifyDoc)
	v := NewVerify("tests.md", okAdapter("wait:12.5\nresp:20.01\n"), false)

	passed, lines := v.RunSection(tree.Suites()[0].Units()[0])

	assert.False(t, passed)
	joined := ""
	for _, l := range lines {
		joined += l + "\n"
	}
	assert.Contains(t, joined, "FAIL")
	assert.NotContains(t, joined, "pass ")
}

func TestVerify_NoToleranceOnTinyDrift(t *testing.T) {
	tree := parseDoc(t, verifyDoc)
	v := NewVerify("tests.md", okAdapter("wait:12.500000001\nresp:20.0\n"), false)

	passed, _ := v.RunSection(tree.Suites()[0].Units()[0])

	assert.False(t, passed)
}

func TestVerify_AdapterCrashCountsAsFailure(t *testing.T) {
	tree := parseDoc(t, verifyDoc)
	v := NewVerify("tests.md", failingAdapter("exit status 2"), false)

	passed, lines := v.RunSection(tree.Suites()[0].Units()[0])

	assert.False(t, passed)
	assert.Contains(t, lines, "1. Crashed (quantum=4): exit status 2")
	assert.Contains(t, lines, "|  4 | none    |  crashed |      n/a | see error 1 |")
}

func TestVerify_CrashDoesNotAbortRemainingCases(t *testing.T) {
	content := "# Suite\n" +
		"## S\n```\nh\n1,0,5\n```\n```\n2, 1.0, 2.0\n4, 1.0, 2.0\n```\n```\n2,4\n```\n"
	tree := parseDoc(t, content)

	adapter := func(path, quantum string, extra ...string) (string, error) {
		if quantum == "2" {
			return "", assert.AnError
		}
		return "wait:1.0\nresp:2.0\n", nil
	}
	v := NewVerify("tests.md", adapter, false)

	passed, lines := v.RunSection(tree.Suites()[0].Units()[0])

	assert.False(t, passed)
	// Second case still ran and passed both metrics, so only the crash
	// row appears in the table.
	assert.Contains(t, lines[0], "1. Crashed (quantum=2)")
	assert.Contains(t, lines, "")
}

func TestVerify_MalformedAdapterOutputIsRecoverable(t *testing.T) {
	tree := parseDoc(t, verifyDoc)
	v := NewVerify("tests.md", okAdapter("garbage\n"), false)

	passed, lines := v.RunSection(tree.Suites()[0].Units()[0])

	assert.False(t, passed)
	assert.Contains(t, lines[0], "Crashed (quantum=4)")
}

func TestVerify_MalformedResultsRecordIsRecoverable(t *testing.T) {
	content := "# Suite\n## S\n```\nh\n1,0,5\n```\n```\n4, 1.0\n```\n```\n4\n```\n"
	tree := parseDoc(t, content)
	v := NewVerify("tests.md", okAdapter("wait:1.0\nresp:2.0\n"), false)

	passed, lines := v.RunSection(tree.Suites()[0].Units()[0])

	assert.False(t, passed)
	assert.Contains(t, lines[0], "want 3 comma-separated fields")
}

func TestFormatFloat_IntegralValuesKeepDecimalPoint(t *testing.T) {
	assert.Equal(t, "20.0", formatFloat(20))
	assert.Equal(t, "-3.0", formatFloat(-3))
	assert.Equal(t, "12.5", formatFloat(12.5))
	assert.Equal(t, "1e+21", formatFloat(1e21))
}

func TestVerify_UnitScoredOncePerSection(t *testing.T) {
	content := "# Suite\n" +
		section("One", "h\n1,0,5", "4, 1.0, 2.0", "4") +
		section("Two", "h\n1,0,5", "4, 9.0, 9.0", "4")
	tree := parseDoc(t, content)
	v := NewVerify("tests.md", okAdapter("wait:1.0\nresp:2.0\n"), false)

	Walk(tree, v, nil, false)

	assert.Equal(t, 2, v.Score().Total())
	assert.Equal(t, 1, v.Score().Passed())
}
