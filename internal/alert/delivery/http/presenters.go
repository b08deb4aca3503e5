package http

import (
	"time"

	"smap-embeds/internal/alert"
)

type CrisisReq struct {
	ProjectID       string    `json:"project_id" binding:"required"`
	ProjectName     string    `json:"project_name" binding:"required"`
	Severity        string    `json:"severity" binding:"required,oneof=critical warning info"`
	AlertType       string    `json:"alert_type"`
	Metric          string    `json:"metric"`
	CurrentValue    float64   `json:"current_value"`
	Threshold       float64   `json:"threshold"`
	AffectedAspects []string  `json:"affected_aspects"`
	SampleMentions  []string  `json:"sample_mentions"`
	TimeWindow      string    `json:"time_window"`
	ActionRequired  string    `json:"action_required"`
	GeneratedAt     time.Time `json:"generated_at"`
}

func (r CrisisReq) toInput() alert.CrisisAlertInput {
	return alert.CrisisAlertInput{
		ProjectID:       r.ProjectID,
		ProjectName:     r.ProjectName,
		Severity:        r.Severity,
		AlertType:       r.AlertType,
		Metric:          r.Metric,
		CurrentValue:    r.CurrentValue,
		Threshold:       r.Threshold,
		AffectedAspects: r.AffectedAspects,
		SampleMentions:  r.SampleMentions,
		TimeWindow:      r.TimeWindow,
		ActionRequired:  r.ActionRequired,
		GeneratedAt:     r.GeneratedAt,
	}
}

type OnboardingReq struct {
	ProjectID   string `json:"project_id" binding:"required"`
	SourceID    string `json:"source_id"`
	SourceName  string `json:"source_name" binding:"required"`
	SourceType  string `json:"source_type"`
	Status      string `json:"status" binding:"required"`
	RecordCount int    `json:"record_count"`
	ErrorCount  int    `json:"error_count"`
	Message     string `json:"message"`
	// DurationMS is the import duration in milliseconds.
	DurationMS int64 `json:"duration_ms"`
}

func (r OnboardingReq) toInput() alert.DataOnboardingInput {
	return alert.DataOnboardingInput{
		ProjectID:   r.ProjectID,
		SourceID:    r.SourceID,
		SourceName:  r.SourceName,
		SourceType:  r.SourceType,
		Status:      r.Status,
		RecordCount: r.RecordCount,
		ErrorCount:  r.ErrorCount,
		Message:     r.Message,
		Duration:    time.Duration(r.DurationMS) * time.Millisecond,
	}
}

type CampaignReq struct {
	CampaignID   string    `json:"campaign_id" binding:"required"`
	CampaignName string    `json:"campaign_name" binding:"required"`
	EventType    string    `json:"event_type" binding:"required"`
	ResourceName string    `json:"resource_name"`
	ResourceURL  string    `json:"resource_url"`
	User         string    `json:"user"`
	UserAvatar   string    `json:"user_avatar"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}

func (r CampaignReq) toInput() alert.CampaignEventInput {
	return alert.CampaignEventInput{
		CampaignID:   r.CampaignID,
		CampaignName: r.CampaignName,
		EventType:    r.EventType,
		ResourceName: r.ResourceName,
		ResourceURL:  r.ResourceURL,
		User:         r.User,
		UserAvatar:   r.UserAvatar,
		Message:      r.Message,
		Timestamp:    r.Timestamp,
	}
}
