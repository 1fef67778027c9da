package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcin-skalski/pr-summary/internal/github"
	"github.com/marcin-skalski/pr-summary/internal/table"
)

func TestClassifyChecks(t *testing.T) {
	tests := []struct {
		name string
		runs []github.CheckRun
		want CheckStatus
	}{
		{"no runs", nil, ChecksPassed},
		{"all success", []github.CheckRun{
			{Status: "completed", Conclusion: "success"},
			{Status: "completed", Conclusion: "success"},
		}, ChecksPassed},
		{"one running", []github.CheckRun{
			{Status: "completed", Conclusion: "success"},
			{Status: "in_progress"},
		}, ChecksPending},
		{"failure and queued", []github.CheckRun{
			{Status: "completed", Conclusion: "failure"},
			{Status: "queued"},
		}, ChecksPending},
		{"one failure", []github.CheckRun{
			{Status: "completed", Conclusion: "success"},
			{Status: "completed", Conclusion: "failure"},
		}, ChecksFailed},
		{"skipped is not success", []github.CheckRun{
			{Status: "completed", Conclusion: "skipped"},
		}, ChecksFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyChecks(tt.runs))
		})
	}
}

func TestClassifyChecksWithSuites(t *testing.T) {
	running := []github.CheckRun{{Status: "in_progress"}}
	passing := []github.CheckRun{{Status: "completed", Conclusion: "success"}}

	tests := []struct {
		name   string
		runs   []github.CheckRun
		suites []github.CheckSuite
		want   CheckStatus
	}{
		{"suite incomplete", running, []github.CheckSuite{{Status: "in_progress"}}, ChecksPending},
		{"suites complete", running, []github.CheckSuite{{Status: "completed"}}, ChecksFailed},
		{"no suites", running, nil, ChecksFailed},
		{"passed ignores suites", passing, []github.CheckSuite{{Status: "queued"}}, ChecksPassed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyChecksWithSuites(tt.runs, tt.suites))
		})
	}
}

func TestCheckStatus_Display(t *testing.T) {
	assert.Equal(t, "🟢", ChecksPassed.Emoji())
	assert.Equal(t, "🟡", ChecksPending.Emoji())
	assert.Equal(t, "🔴", ChecksFailed.Emoji())

	assert.Equal(t, "passed", ChecksPassed.String())
	assert.Equal(t, "pending", ChecksPending.String())
	assert.Equal(t, "failed", ChecksFailed.String())

	assert.Equal(t, table.ToneGood, ChecksPassed.Tone())
	assert.Equal(t, table.ToneWarn, ChecksPending.Tone())
	assert.Equal(t, table.ToneBad, ChecksFailed.Tone())
}
