package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v66/github"
)

// ErrNoCommits is returned when a pull request has an empty commit list.
var ErrNoCommits = errors.New("pull request has no commits")

const (
	pageSize       = 100
	requestTimeout = 30 * time.Second
)

type Client struct {
	api    *gh.Client
	logger *slog.Logger
}

// NewClient returns a client authenticated with token. apiURL overrides the
// API root (e.g. https://ghe.example.com/api/v3/); empty means api.github.com.
func NewClient(token, apiURL string, logger *slog.Logger) (*Client, error) {
	api := gh.NewClient(&http.Client{Timeout: requestTimeout}).WithAuthToken(token)

	if apiURL != "" {
		u, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("parse api url %q: %w", apiURL, err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		api.BaseURL = u
	}

	return &Client{api: api, logger: logger}, nil
}

type PRInfo struct {
	Number         int
	URL            string
	Author         string
	IsDraft        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	MergeableState string
}

type CheckRun struct {
	Name       string
	Status     string
	Conclusion string
}

type CheckSuite struct {
	Status     string
	Conclusion string
}

type ReviewState string

const (
	ReviewApproved         ReviewState = "APPROVED"
	ReviewChangesRequested ReviewState = "CHANGES_REQUESTED"
	ReviewCommented        ReviewState = "COMMENTED"
	ReviewDismissed        ReviewState = "DISMISSED"
	ReviewPending          ReviewState = "PENDING"
	ReviewOpen             ReviewState = "OPEN"
)

type Review struct {
	Reviewer string // empty when the account is gone
	State    ReviewState
}

func (c *Client) ListOpenPRs(ctx context.Context, owner, repo string) ([]PRInfo, error) {
	opts := &gh.PullRequestListOptions{
		State:       "open",
		ListOptions: gh.ListOptions{PerPage: pageSize},
	}

	var prs []PRInfo
	for {
		c.logger.Debug("list PRs", "repo", owner+"/"+repo, "page", opts.Page)
		page, resp, err := c.api.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list PRs: %w", err)
		}
		for _, pr := range page {
			prs = append(prs, toPRInfo(pr))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return prs, nil
}

func (c *Client) GetPR(ctx context.Context, owner, repo string, number int) (*PRInfo, error) {
	c.logger.Debug("get PR", "repo", owner+"/"+repo, "pr", number)
	pr, _, err := c.api.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("get PR #%d: %w", number, err)
	}

	info := toPRInfo(pr)
	return &info, nil
}

// LastCommitSHA walks every page of the PR's commit list and returns the SHA
// of the final commit.
func (c *Client) LastCommitSHA(ctx context.Context, owner, repo string, number int) (string, error) {
	opts := &gh.ListOptions{PerPage: pageSize}

	var last string
	for {
		commits, resp, err := c.api.PullRequests.ListCommits(ctx, owner, repo, number, opts)
		if err != nil {
			return "", fmt.Errorf("list commits PR #%d: %w", number, err)
		}
		if len(commits) > 0 {
			last = commits[len(commits)-1].GetSHA()
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if last == "" {
		return "", fmt.Errorf("PR #%d: %w", number, ErrNoCommits)
	}
	return last, nil
}

func (c *Client) ListCheckRuns(ctx context.Context, owner, repo, ref string) ([]CheckRun, error) {
	opts := &gh.ListCheckRunsOptions{ListOptions: gh.ListOptions{PerPage: pageSize}}

	var runs []CheckRun
	for {
		res, resp, err := c.api.Checks.ListCheckRunsForRef(ctx, owner, repo, ref, opts)
		if err != nil {
			return nil, fmt.Errorf("list check runs %s: %w", ref, err)
		}
		for _, r := range res.CheckRuns {
			runs = append(runs, CheckRun{
				Name:       r.GetName(),
				Status:     strings.ToLower(r.GetStatus()),
				Conclusion: strings.ToLower(r.GetConclusion()),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return runs, nil
}

func (c *Client) ListCheckSuites(ctx context.Context, owner, repo, ref string) ([]CheckSuite, error) {
	opts := &gh.ListCheckSuiteOptions{ListOptions: gh.ListOptions{PerPage: pageSize}}

	var suites []CheckSuite
	for {
		res, resp, err := c.api.Checks.ListCheckSuitesForRef(ctx, owner, repo, ref, opts)
		if err != nil {
			return nil, fmt.Errorf("list check suites %s: %w", ref, err)
		}
		for _, s := range res.CheckSuites {
			suites = append(suites, CheckSuite{
				Status:     strings.ToLower(s.GetStatus()),
				Conclusion: strings.ToLower(s.GetConclusion()),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return suites, nil
}

// ListReviews returns reviews in the order the API lists them.
func (c *Client) ListReviews(ctx context.Context, owner, repo string, number int) ([]Review, error) {
	opts := &gh.ListOptions{PerPage: pageSize}

	var reviews []Review
	for {
		page, resp, err := c.api.PullRequests.ListReviews(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("list reviews PR #%d: %w", number, err)
		}
		for _, r := range page {
			reviews = append(reviews, Review{
				Reviewer: r.GetUser().GetLogin(),
				State:    ReviewState(strings.ToUpper(r.GetState())),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return reviews, nil
}

func toPRInfo(pr *gh.PullRequest) PRInfo {
	return PRInfo{
		Number: pr.GetNumber(),
		URL:    pr.GetHTMLURL(),
		Author: pr.GetUser().GetLogin(),
		// A PR without a draft flag is treated as a draft.
		IsDraft:        pr.Draft == nil || *pr.Draft,
		CreatedAt:      pr.GetCreatedAt().Time,
		UpdatedAt:      pr.GetUpdatedAt().Time,
		MergeableState: pr.GetMergeableState(),
	}
}
