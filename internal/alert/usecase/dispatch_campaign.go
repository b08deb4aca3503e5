package usecase

import (
	"context"
	"fmt"

	"smap-embeds/internal/alert"
	"smap-embeds/pkg/discord"
	"smap-embeds/pkg/embeds"
)

// campaignUser lets the triggering user show up as the embed author.
type campaignUser struct {
	name   string
	avatar string
}

func (u campaignUser) DisplayName() string { return u.name }
func (u campaignUser) AvatarURL() string   { return u.avatar }

func (uc *implUseCase) DispatchCampaignEvent(ctx context.Context, input alert.CampaignEventInput) error {
	fields := []embeds.Field{
		uc.field("Event Type", input.EventType, true),
		uc.field("Campaign", input.CampaignName, true),
		uc.field("User", input.User, true),
	}

	if input.ResourceName != "" {
		val := input.ResourceName
		if input.ResourceURL != "" {
			val = fmt.Sprintf("[%s](%s)", input.ResourceName, input.ResourceURL)
		}
		fields = append(fields, uc.field("Resource", val, false))
	}
	if input.Message != "" {
		fields = append(fields, uc.field("Message", input.Message, false))
	}

	ts := input.Timestamp
	if ts.IsZero() {
		ts = uc.now()
	}

	var author any
	if input.User != "" {
		author = embeds.AuthorFromUser(campaignUser{name: input.User, avatar: input.UserAvatar})
	}

	return uc.dispatch(ctx, "DispatchCampaignEvent", embeds.Options{
		Title:       uc.title(fmt.Sprintf("Campaign Event: %s", input.CampaignName)),
		Description: fmt.Sprintf("Activity detected in campaign **%s** (%s).", input.CampaignName, input.CampaignID),
		Colour:      embeds.Colour(discord.ColorInfo),
		Timestamp:   ts,
		Author:      author,
		Footer:      "Notification Service • Campaign Manager",
		Fields:      fields,
	})
}
