package tempo

import "encoding/json"

// Account is the nested user reference most Tempo records carry.
type Account struct {
	AccountID string `json:"accountId"`
}

type Team struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Lead Account `json:"lead"`
}

type Membership struct {
	Team struct {
		ID int64 `json:"id"`
	} `json:"team"`
	Member Account `json:"member"`
}

// Period is a half-open approval window [From, To].
type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ApprovalStatus struct {
	Key   string   `json:"key"`
	Actor *Account `json:"actor"`
}

// Approval is one team timesheet approval as Tempo returns it. The worklogs
// covered by the period are not inlined; Worklogs.Self is a paged link.
type Approval struct {
	Period   Period         `json:"period"`
	Status   ApprovalStatus `json:"status"`
	User     Account        `json:"user"`
	Reviewer *Account       `json:"reviewer"`
	Worklogs struct {
		Self string `json:"self"`
	} `json:"worklogs"`
}

// Worklog is one Tempo worklog record. Older API responses split the start
// timestamp into StartDate and StartTime instead of StartDateTimeUTC; both
// shapes show up in the wild and callers must cope with either.
type Worklog struct {
	TempoWorklogID int64 `json:"tempoWorklogId"`
	Issue          struct {
		ID int64 `json:"id"`
	} `json:"issue"`
	Author           Account `json:"author"`
	TimeSpentSeconds int64   `json:"timeSpentSeconds"`
	StartDateTimeUTC string  `json:"startDateTimeUtc"`
	StartDate        string  `json:"startDate"`
	StartTime        string  `json:"startTime"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

type worklogRef struct {
	TempoWorklogID int64 `json:"tempoWorklogId"`
}

type idMapping struct {
	TempoWorklogID int64 `json:"tempoWorklogId"`
	JiraWorklogID  int64 `json:"jiraWorklogId"`
}

type WorkAttribute struct {
	Key    string          `json:"key"`
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Values json.RawMessage `json:"values"`
}

type AttributeValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type WorklogAttributeValues struct {
	TempoWorklogID      int64            `json:"tempoWorklogId"`
	WorkAttributeValues []AttributeValue `json:"workAttributeValues"`
}
