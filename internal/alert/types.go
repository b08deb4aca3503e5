package alert

import "time"

// CrisisAlertInput represents a critical system or business alert.
type CrisisAlertInput struct {
	ProjectID       string
	ProjectName     string
	Severity        string // critical, warning, info
	AlertType       string // spike, drop, sentiment
	Metric          string
	CurrentValue    float64
	Threshold       float64
	AffectedAspects []string
	SampleMentions  []string
	TimeWindow      string
	ActionRequired  string
	GeneratedAt     time.Time
}

// DataOnboardingInput is a status update for a data source import.
type DataOnboardingInput struct {
	ProjectID   string
	SourceID    string
	SourceName  string
	SourceType  string
	Status      string // completed, failed; others are ignored
	RecordCount int
	ErrorCount  int
	Message     string
	Duration    time.Duration
}

// CampaignEventInput is a campaign state change.
type CampaignEventInput struct {
	CampaignID   string
	CampaignName string
	EventType    string // created, started, paused, finished
	ResourceName string
	ResourceURL  string
	User         string
	UserAvatar   string
	Message      string
	Timestamp    time.Time
}
