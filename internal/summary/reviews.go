package summary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/marcin-skalski/pr-summary/internal/github"
)

var ErrUnknownReviewState = errors.New("unknown review state")

const needsReview = "Needs review"

// ReviewLabel describes the first review that is neither open nor pending.
func ReviewLabel(reviews []github.Review) (string, error) {
	for _, r := range reviews {
		if r.State == github.ReviewOpen || r.State == github.ReviewPending {
			continue
		}

		switch r.State {
		case github.ReviewApproved:
			return "Approved" + by(r.Reviewer), nil
		case github.ReviewChangesRequested:
			return "Changes requested" + by(r.Reviewer), nil
		case github.ReviewCommented:
			return "Commented" + by(r.Reviewer), nil
		case github.ReviewDismissed:
			return "Dismissed", nil
		case "":
			return needsReview, nil
		default:
			return "", fmt.Errorf("%w: %q", ErrUnknownReviewState, string(r.State))
		}
	}
	return needsReview, nil
}

func by(login string) string {
	if strings.TrimSpace(login) == "" {
		return ""
	}
	return " by " + login
}

// MergeableLabel turns the API's mergeable_state into a table label.
func MergeableLabel(state string) string {
	switch strings.ToLower(state) {
	case "":
		return "Unknown"
	case "dirty":
		return "Conflicts"
	case "blocked", "unknown":
		return "No"
	}

	var b strings.Builder
	for _, part := range strings.Split(strings.ToLower(state), "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
