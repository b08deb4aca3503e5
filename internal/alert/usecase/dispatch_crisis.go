package usecase

import (
	"context"
	"fmt"
	"strings"

	"smap-embeds/internal/alert"
	"smap-embeds/pkg/embeds"

	"github.com/friendsofgo/errors"
)

func (uc *implUseCase) DispatchCrisisAlert(ctx context.Context, input alert.CrisisAlertInput) error {
	if input.ProjectID == "" {
		return errors.Wrap(alert.ErrInvalidInput, "project id is required")
	}

	fields := []embeds.Field{
		uc.field("Severity", strings.ToUpper(input.Severity), true),
		uc.field("Alert Type", strings.ToUpper(input.AlertType), true),
		uc.field("Metric", input.Metric, true),
		uc.field("Value vs Threshold", fmt.Sprintf("**%s** / %s", formatFloat(input.CurrentValue), formatFloat(input.Threshold)), true),
		uc.field("Time Window", input.TimeWindow, true),
		uc.field("Action Required", input.ActionRequired, false),
	}

	if len(input.AffectedAspects) > 0 {
		fields = append(fields, uc.field("Affected Aspects", strings.Join(input.AffectedAspects, ", "), false))
	}

	if len(input.SampleMentions) > 0 {
		mentions := input.SampleMentions[:min(maxSampleMentions, len(input.SampleMentions))]
		quoted := make([]string, len(mentions))
		for i, m := range mentions {
			quoted[i] = "> " + m
		}
		fields = append(fields, uc.field("Sample Mentions", strings.Join(quoted, "\n"), false))
	}

	ts := input.GeneratedAt
	if ts.IsZero() {
		ts = uc.now()
	}

	return uc.dispatch(ctx, "DispatchCrisisAlert", embeds.Options{
		Title:       uc.title(fmt.Sprintf("🚨 Crisis Alert: %s", input.ProjectName)),
		Description: fmt.Sprintf("Unusual activity detected in project **%s** (%s).", input.ProjectName, input.ProjectID),
		Colour:      severityColour(input.Severity),
		Timestamp:   ts,
		Footer:      "Notification Service • Crisis Monitor",
		Fields:      fields,
	})
}
