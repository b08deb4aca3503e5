package alert

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	DispatchCrisisAlert(ctx context.Context, input CrisisAlertInput) error
	DispatchDataOnboarding(ctx context.Context, input DataOnboardingInput) error
	DispatchCampaignEvent(ctx context.Context, input CampaignEventInput) error
}
