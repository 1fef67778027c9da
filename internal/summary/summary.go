// Package summary selects open pull requests and derives the check, review
// and mergeable columns of the summary table.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marcin-skalski/pr-summary/internal/github"
)

// Headers are the table columns, in order. Row.Cells follows the same order.
var Headers = []string{"PR", "Author", "Mergeable", "Review state"}

// Source is the subset of the GitHub client the builder reads from.
type Source interface {
	ListOpenPRs(ctx context.Context, owner, repo string) ([]github.PRInfo, error)
	GetPR(ctx context.Context, owner, repo string, number int) (*github.PRInfo, error)
	LastCommitSHA(ctx context.Context, owner, repo string, number int) (string, error)
	ListCheckRuns(ctx context.Context, owner, repo, ref string) ([]github.CheckRun, error)
	ListCheckSuites(ctx context.Context, owner, repo, ref string) ([]github.CheckSuite, error)
	ListReviews(ctx context.Context, owner, repo string, number int) ([]github.Review, error)
}

type Options struct {
	Owner       string
	Repo        string
	PR          int // 0 lists every open PR
	MaxAge      time.Duration
	AgeBasis    AgeBasis
	CheckSuites bool
}

type Row struct {
	Number    int
	URL       string
	Author    string
	Checks    CheckStatus
	Mergeable string
	Review    string
}

func (r Row) Cells() []string {
	return []string{
		fmt.Sprintf("[#%d](%s) %s", r.Number, r.URL, r.Checks.Emoji()),
		r.Author,
		r.Mergeable,
		r.Review,
	}
}

type Builder struct {
	src    Source
	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

func New(src Source, opts Options, logger *slog.Logger) *Builder {
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}
	if opts.AgeBasis == "" {
		opts.AgeBasis = AgeFromUpdated
	}
	return &Builder{
		src:    src,
		opts:   opts,
		logger: logger.With("repo", opts.Owner+"/"+opts.Repo),
		now:    time.Now,
	}
}

// Rows builds one row per qualifying PR. The first error aborts the run and
// no rows are returned.
func (b *Builder) Rows(ctx context.Context) ([]Row, error) {
	prs, detailed, err := b.candidates(ctx)
	if err != nil {
		return nil, err
	}

	b.logger.Info("collecting data", "prs", len(prs))

	now := b.now()
	rows := make([]Row, 0, len(prs))
	for _, pr := range prs {
		reason, err := skipReason(pr, now, b.opts.MaxAge, b.opts.AgeBasis)
		if err != nil {
			return nil, err
		}
		if reason != "" {
			b.logger.Debug("skipping PR", "pr", pr.Number, "reason", reason)
			continue
		}

		row, err := b.buildRow(ctx, pr, detailed)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// candidates returns the PRs to consider and whether they came from the
// single-PR endpoint, which already carries the mergeable state.
func (b *Builder) candidates(ctx context.Context) ([]github.PRInfo, bool, error) {
	if b.opts.PR != 0 {
		pr, err := b.src.GetPR(ctx, b.opts.Owner, b.opts.Repo, b.opts.PR)
		if err != nil {
			return nil, false, err
		}
		return []github.PRInfo{*pr}, true, nil
	}

	prs, err := b.src.ListOpenPRs(ctx, b.opts.Owner, b.opts.Repo)
	if err != nil {
		return nil, false, err
	}
	return prs, false, nil
}

func (b *Builder) buildRow(ctx context.Context, pr github.PRInfo, detailed bool) (Row, error) {
	logger := b.logger.With("pr", pr.Number)

	sha, err := b.src.LastCommitSHA(ctx, b.opts.Owner, b.opts.Repo, pr.Number)
	if err != nil {
		return Row{}, err
	}

	runs, err := b.src.ListCheckRuns(ctx, b.opts.Owner, b.opts.Repo, sha)
	if err != nil {
		return Row{}, err
	}

	checks := ClassifyChecks(runs)
	if b.opts.CheckSuites {
		suites, err := b.src.ListCheckSuites(ctx, b.opts.Owner, b.opts.Repo, sha)
		if err != nil {
			return Row{}, err
		}
		checks = ClassifyChecksWithSuites(runs, suites)
	}

	reviews, err := b.src.ListReviews(ctx, b.opts.Owner, b.opts.Repo, pr.Number)
	if err != nil {
		return Row{}, err
	}
	review, err := ReviewLabel(reviews)
	if err != nil {
		return Row{}, fmt.Errorf("PR #%d: %w", pr.Number, err)
	}

	// The list endpoint leaves mergeable_state empty.
	if !detailed {
		full, err := b.src.GetPR(ctx, b.opts.Owner, b.opts.Repo, pr.Number)
		if err != nil {
			return Row{}, err
		}
		pr = *full
	}

	logger.Debug("evaluated PR", "sha", sha, "checks", checks.String(), "runs", len(runs), "review", review)

	return Row{
		Number:    pr.Number,
		URL:       pr.URL,
		Author:    pr.Author,
		Checks:    checks,
		Mergeable: MergeableLabel(pr.MergeableState),
		Review:    review,
	}, nil
}
