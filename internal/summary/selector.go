package summary

import (
	"errors"
	"fmt"
	"time"

	"github.com/marcin-skalski/pr-summary/internal/github"
)

var ErrMissingTimestamp = errors.New("pull request has no timestamp")

// DefaultMaxAge is the age past which a PR is left out of the table.
const DefaultMaxAge = 60 * 24 * time.Hour

type AgeBasis string

const (
	AgeFromUpdated AgeBasis = "updated"
	AgeFromCreated AgeBasis = "created"
)

// skipReason returns why pr is left out, or "" when it qualifies.
func skipReason(pr github.PRInfo, now time.Time, maxAge time.Duration, basis AgeBasis) (string, error) {
	if pr.IsDraft {
		return "draft", nil
	}

	ts := pr.UpdatedAt
	if basis == AgeFromCreated {
		ts = pr.CreatedAt
	}
	if ts.IsZero() {
		return "", fmt.Errorf("PR #%d %s_at: %w", pr.Number, basis, ErrMissingTimestamp)
	}

	if now.Sub(ts) > maxAge {
		return "stale", nil
	}
	return "", nil
}
