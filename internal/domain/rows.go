package domain

// Worklog is one time-tracking entry as Tempo reports it, flattened for the
// worklogs table. TempoID is the Tempo-native identifier; the Jira-native id
// for the same entry only exists through an explicit id-mapping call.
type Worklog struct {
	TempoID          int64  `db:"tempo_id"`
	IssueID          int64  `db:"issue_id"`
	AuthorAccountID  string `db:"author_account_id"`
	StartDateTimeUTC string `db:"start_date_time_utc"`
	TimeSpentSeconds int64  `db:"time_spent_seconds"`
	Created          string `db:"created"`
	Updated          string `db:"updated"`
}

// WorklogAuthor links a Jira worklog id to the account that authored it.
type WorklogAuthor struct {
	JiraWorklogID int64  `db:"jira_worklog_id"`
	AccountID     string `db:"account_id"`
}

// Approval is one team timesheet approval period. Tempo issues no identifier
// for these, so ID is a surrogate key derived from (team, period start,
// period end) and is stable across repeated extractions.
type Approval struct {
	ID          int64  `db:"id"`
	TeamID      int64  `db:"team_id"`
	PeriodStart string `db:"period_start"`
	PeriodEnd   string `db:"period_end"`
	AccountID   string `db:"account_id"`
	Status      string `db:"status"`
}

// ApprovalWorklog is the join relation between an approval period and one of
// the worklogs it covers.
type ApprovalWorklog struct {
	ApprovalID int64 `db:"approval_id"`
	WorklogID  int64 `db:"worklog_id"`
}

type Team struct {
	ID         int64  `db:"id"`
	TeamLeadID string `db:"team_lead_id"`
	TeamName   string `db:"team_name"`
}

type TeamMembership struct {
	TeamID    int64  `db:"team_id"`
	AccountID string `db:"account_id"`
}

// AttributeConfig describes one configured Tempo work attribute. Values is the
// attribute's allowed-values list serialized as JSON, empty when unset.
type AttributeConfig struct {
	Key    string `db:"attribute_key"`
	Name   string `db:"attribute_name"`
	Type   string `db:"attribute_type"`
	Values string `db:"attribute_values"`
}

// WorklogAttribute is one attribute value attached to one Tempo worklog.
type WorklogAttribute struct {
	TempoWorklogID int64  `db:"tempo_worklog_id"`
	Key            string `db:"attribute_key"`
	Value          string `db:"attribute_value"`
}
