package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"smap-embeds/internal/alert"
	"smap-embeds/pkg/discord"
	"smap-embeds/pkg/embeds"
	"smap-embeds/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDiscord struct {
	mock.Mock
}

func (m *mockDiscord) Execute(ctx context.Context, msg discord.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockDiscord) SendMessage(ctx context.Context, content string) error {
	return m.Called(ctx, content).Error(0)
}

func (m *mockDiscord) ReportBug(ctx context.Context, message string) error {
	return m.Called(ctx, message).Error(0)
}

func (m *mockDiscord) GetWebhookURL() string { return "" }
func (m *mockDiscord) Close() error          { return nil }

var fixedNow = time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

func newTestUseCase(d discord.IDiscord, limits *embeds.Limits) *implUseCase {
	uc := New(log.NewNop(), embeds.NewBuilder(limits), d).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

// captured returns the single embed of the message sent through d.
func captured(t *testing.T, d *mockDiscord) discord.Embed {
	t.Helper()
	require.Len(t, d.Calls, 1)
	msg := d.Calls[0].Arguments.Get(1).(discord.Message)
	require.Len(t, msg.Embeds, 1)
	return msg.Embeds[0]
}

func TestDispatchCrisisAlert(t *testing.T) {
	d := &mockDiscord{}
	d.On("Execute", mock.Anything, mock.Anything).Return(nil)
	uc := newTestUseCase(d, nil)

	err := uc.DispatchCrisisAlert(context.Background(), alert.CrisisAlertInput{
		ProjectID:      "p1",
		ProjectName:    "Launch",
		Severity:       "warning",
		AlertType:      "spike",
		Metric:         "mention_count",
		CurrentValue:   120,
		Threshold:      100,
		SampleMentions: []string{"a", "b", "c", "d"},
	})
	require.NoError(t, err)

	got := captured(t, d)
	assert.Equal(t, "🚨 Crisis Alert: Launch", got.Title)
	assert.Equal(t, discord.ColorWarning, got.Color)
	assert.Equal(t, "2024-05-17T09:30:00Z", got.Timestamp)
	assert.Equal(t, "Notification Service • Crisis Monitor", got.Footer.Text)

	byName := map[string]string{}
	for _, f := range got.Fields {
		byName[f.Name] = f.Value
	}
	assert.Equal(t, "WARNING", byName["Severity"])
	assert.Equal(t, "**120.00** / 100.00", byName["Value vs Threshold"])
	assert.Equal(t, "N/A", byName["Time Window"])
	assert.Equal(t, "> a\n> b\n> c", byName["Sample Mentions"])
}

func TestDispatchCrisisAlertInvalid(t *testing.T) {
	d := &mockDiscord{}
	uc := newTestUseCase(d, nil)

	err := uc.DispatchCrisisAlert(context.Background(), alert.CrisisAlertInput{})
	assert.ErrorIs(t, err, alert.ErrInvalidInput)
	d.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestDispatchCrisisAlertTruncatesToLimits(t *testing.T) {
	limits := embeds.DefaultLimits()
	limits.FieldValue = 20
	limits.Title = 10

	d := &mockDiscord{}
	d.On("Execute", mock.Anything, mock.Anything).Return(nil)
	uc := newTestUseCase(d, limits)

	err := uc.DispatchCrisisAlert(context.Background(), alert.CrisisAlertInput{
		ProjectID:      "p1",
		ProjectName:    "Launch",
		SampleMentions: []string{strings.Repeat("é", 50)},
	})
	require.NoError(t, err)

	got := captured(t, d)
	assert.Equal(t, "🚨 Crisi...", got.Title)
	for _, f := range got.Fields {
		assert.LessOrEqual(t, len([]rune(f.Value)), 20, f.Name)
	}
}

func TestDispatchDataOnboarding(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		wantSent  bool
		wantTitle string
		wantColor int
	}{
		{name: "completed", status: "Completed", wantSent: true, wantTitle: "Data Onboarding: Completed", wantColor: discord.ColorSuccess},
		{name: "failed", status: "failed", wantSent: true, wantTitle: "Data Onboarding FAILED: Page", wantColor: discord.ColorError},
		{name: "running is ignored", status: "running"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &mockDiscord{}
			d.On("Execute", mock.Anything, mock.Anything).Return(nil)
			uc := newTestUseCase(d, nil)

			err := uc.DispatchDataOnboarding(context.Background(), alert.DataOnboardingInput{
				ProjectID:   "p1",
				SourceName:  "Page",
				SourceType:  "facebook_page",
				Status:      tt.status,
				RecordCount: 10,
				Duration:    90 * time.Second,
			})
			require.NoError(t, err)

			if !tt.wantSent {
				d.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
				return
			}
			got := captured(t, d)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantColor, got.Color)
			assert.Equal(t, "1m30s", got.Fields[3].Value)
		})
	}
}

func TestDispatchCampaignEvent(t *testing.T) {
	d := &mockDiscord{}
	d.On("Execute", mock.Anything, mock.Anything).Return(nil)
	uc := newTestUseCase(d, nil)

	err := uc.DispatchCampaignEvent(context.Background(), alert.CampaignEventInput{
		CampaignID:   "c1",
		CampaignName: "Spring",
		EventType:    "started",
		ResourceName: "Keywords",
		ResourceURL:  "https://example.com/k",
		User:         "alice",
		UserAvatar:   "https://cdn.example.com/alice.png",
	})
	require.NoError(t, err)

	got := captured(t, d)
	require.NotNil(t, got.Author)
	assert.Equal(t, "alice", got.Author.Name)
	assert.Equal(t, "https://cdn.example.com/alice.png", got.Author.IconURL)
	assert.Equal(t, "[Keywords](https://example.com/k)", got.Fields[3].Value)
}

func TestDispatchFailure(t *testing.T) {
	d := &mockDiscord{}
	d.On("Execute", mock.Anything, mock.Anything).Return(&discord.StatusError{StatusCode: 500})
	uc := newTestUseCase(d, nil)

	err := uc.DispatchCampaignEvent(context.Background(), alert.CampaignEventInput{CampaignName: "x"})
	assert.ErrorIs(t, err, alert.ErrDispatchFailed)
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{in: "hello", max: 10, want: "hello"},
		{in: "hello world", max: 8, want: "hello..."},
		{in: "héllo", max: 2, want: "hé"},
		{in: "ééééé", max: 4, want: "é..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateText(tt.in, tt.max))
	}
}
