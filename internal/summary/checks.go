package summary

import (
	"github.com/marcin-skalski/pr-summary/internal/github"
	"github.com/marcin-skalski/pr-summary/internal/table"
)

type CheckStatus int

const (
	ChecksFailed CheckStatus = iota
	ChecksPending
	ChecksPassed
)

func (s CheckStatus) String() string {
	switch s {
	case ChecksPassed:
		return "passed"
	case ChecksPending:
		return "pending"
	default:
		return "failed"
	}
}

func (s CheckStatus) Emoji() string {
	switch s {
	case ChecksPassed:
		return "🟢"
	case ChecksPending:
		return "🟡"
	default:
		return "🔴"
	}
}

func (s CheckStatus) Tone() table.Tone {
	switch s {
	case ChecksPassed:
		return table.ToneGood
	case ChecksPending:
		return table.ToneWarn
	default:
		return table.ToneBad
	}
}

// ClassifyChecks reports passed when every run concluded success (zero runs
// included), pending when not passed and some run is not completed, and
// failed otherwise.
func ClassifyChecks(runs []github.CheckRun) CheckStatus {
	passed := true
	for _, r := range runs {
		if r.Conclusion != "success" {
			passed = false
			break
		}
	}
	if passed {
		return ChecksPassed
	}

	for _, r := range runs {
		if r.Status != "completed" {
			return ChecksPending
		}
	}
	return ChecksFailed
}

// ClassifyChecksWithSuites is ClassifyChecks with the extra condition that
// pending also needs at least one incomplete check suite.
func ClassifyChecksWithSuites(runs []github.CheckRun, suites []github.CheckSuite) CheckStatus {
	s := ClassifyChecks(runs)
	if s == ChecksPending && !anySuiteIncomplete(suites) {
		return ChecksFailed
	}
	return s
}

func anySuiteIncomplete(suites []github.CheckSuite) bool {
	for _, s := range suites {
		if s.Status != "completed" {
			return true
		}
	}
	return false
}
