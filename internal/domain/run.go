package domain

import "time"

// Dataset names match the extraction paths the caller can enable.
const (
	DatasetWorklogAuthors    = "worklog_authors"
	DatasetWorklogs          = "worklogs"
	DatasetWorklogAttributes = "worklog_attributes"
	DatasetApprovalsJira     = "approvals_jira"
	DatasetApprovalsTempo    = "approvals_tempo"
	DatasetTeams             = "teams"
)

// RunStats holds statistics about one dataset extraction.
type RunStats struct {
	Dataset  string
	Fetched  int
	Written  int
	Skipped  int
	Errors   int
	Duration time.Duration
}
