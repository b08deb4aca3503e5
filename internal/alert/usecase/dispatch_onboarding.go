package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"smap-embeds/internal/alert"
	"smap-embeds/pkg/embeds"
)

// DispatchDataOnboarding only notifies for final states.
func (uc *implUseCase) DispatchDataOnboarding(ctx context.Context, input alert.DataOnboardingInput) error {
	status := strings.ToLower(input.Status)
	if status != "completed" && status != "failed" {
		return nil
	}

	fields := []embeds.Field{
		uc.field("Source", fmt.Sprintf("%s (%s)", input.SourceName, input.SourceType), true),
		uc.field("Records Processed", strconv.Itoa(input.RecordCount), true),
		uc.field("Errors", strconv.Itoa(input.ErrorCount), true),
		uc.field("Duration", input.Duration.String(), true),
	}
	if input.Message != "" {
		fields = append(fields, uc.field("Details", input.Message, false))
	}

	title := "Data Onboarding: Completed"
	if status == "failed" {
		title = fmt.Sprintf("Data Onboarding FAILED: %s", input.SourceName)
	}

	return uc.dispatch(ctx, "DispatchDataOnboarding", embeds.Options{
		Title:       uc.title(title),
		Description: fmt.Sprintf("Data ingestion for **%s** has finished.", input.ProjectID),
		Colour:      statusColour(status),
		Timestamp:   uc.now(),
		Footer:      "Notification Service • Data Pipeline",
		Fields:      fields,
	})
}
