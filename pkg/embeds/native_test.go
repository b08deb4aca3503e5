package embeds

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	adiscord "github.com/diamondburned/arikawa/v3/discord"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smap-embeds/pkg/discord"
)

var roundTripTime = time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

func TestNativeRoundTrip(t *testing.T) {
	logo := discord.NewFile("logo.png", strings.NewReader("png"))

	tests := []struct {
		name   string
		opts   Options
		native *discord.Embed
	}{
		{
			name:   "title and author",
			opts:   Options{Title: "Hi", Author: "Bob"},
			native: discord.NewEmbed().SetTitle("Hi").SetAuthor("Bob", "", "").SetColor(discord.ColorDark),
		},
		{
			name: "everything",
			opts: Options{
				Title:       "Release",
				Description: "v1.2.0 is out",
				URL:         "https://example.com/release",
				Colour:      "#2ecc71",
				Timestamp:   roundTripTime,
				Author:      testUser{name: "ci-bot", avatar: "https://cdn.example.com/ci.png"},
				Footer:      Footer{Text: "pipeline", Icon: Uploaded(logo)},
				Image:       "https://example.com/banner.png",
				Thumbnail:   logo,
				Fields: []Field{
					{Name: "Changes", Value: "12", Inline: true},
					{Name: "Notes", Value: "see changelog"},
				},
			},
			native: discord.NewEmbed().
				SetTitle("Release").
				SetDescription("v1.2.0 is out").
				SetURL("https://example.com/release").
				SetColor(0x2ECC71).
				SetTimestamp(roundTripTime).
				SetAuthor("ci-bot", "", "https://cdn.example.com/ci.png").
				SetFooter("pipeline", "attachment://logo.png").
				SetImage("https://example.com/banner.png").
				SetThumbnail("attachment://logo.png").
				AddField("Changes", "12", true).
				AddField("Notes", "see changelog", false),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.opts)
			require.NoError(t, err)

			if diff := cmp.Diff(*tt.native, e.Native()); diff != "" {
				t.Errorf("Native() mismatch (-want +got):\n%s", diff)
			}

			got, err := json.Marshal(e)
			require.NoError(t, err)
			want, err := json.Marshal(tt.native)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got))
		})
	}
}

func TestArikawaRoundTrip(t *testing.T) {
	e, err := New(Options{
		Title:     "Hi",
		Colour:    0x123456,
		Timestamp: roundTripTime,
		Author:    Author{Name: "Bob", URL: "https://example.com/bob"},
		Image:     "https://example.com/a.png",
		Fields:    []Field{{Name: "k", Value: "v", Inline: true}},
	})
	require.NoError(t, err)

	want := adiscord.NewEmbed()
	want.Title = "Hi"
	want.Color = 0x123456
	want.Timestamp = adiscord.NewTimestamp(roundTripTime)
	want.Author = &adiscord.EmbedAuthor{Name: "Bob", URL: "https://example.com/bob"}
	want.Image = &adiscord.EmbedImage{URL: "https://example.com/a.png"}
	want.Fields = []adiscord.EmbedField{{Name: "k", Value: "v", Inline: true}}

	wantJSON, err := json.Marshal(want)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(e.Arikawa())
	require.NoError(t, err)
	assert.JSONEq(t, string(wantJSON), string(gotJSON))
}

func TestFromNative(t *testing.T) {
	server := discord.Embed{
		Title:     "From Discord",
		Type:      discord.EmbedTypeRich,
		Color:     0xFF0000,
		Timestamp: "2024-05-17T09:30:00Z",
		Author:    &discord.EmbedAuthor{Name: "Bob", IconURL: "https://cdn.example.com/b.png", ProxyIconURL: "https://proxy.example.com/b.png"},
		Image:     &discord.EmbedImage{URL: "https://example.com/a.png", ProxyURL: "https://proxy.example.com/a.png", Height: 10, Width: 20},
		Video:     &discord.EmbedVideo{URL: "https://example.com/v.mp4"},
		Provider:  &discord.EmbedProvider{Name: "Example", URL: "https://example.com"},
		Fields:    []discord.EmbedField{{Name: "a", Value: "b"}},
	}

	e, err := FromNative(server)
	require.NoError(t, err)
	assert.Equal(t, roundTripTime, e.Timestamp())
	assert.Equal(t, "https://proxy.example.com/b.png", e.Author().ProxyIconURL)
	assert.Equal(t, KindVideo, e.Video().Kind)
	assert.Equal(t, "Example", e.Provider().Name)

	var kinds []MediaKind
	for _, m := range e.Medias() {
		kinds = append(kinds, m.Kind)
	}
	assert.Equal(t, []MediaKind{KindImage, KindVideo, KindAuthorIcon}, kinds)

	if diff := cmp.Diff(server, e.Native()); diff != "" {
		t.Errorf("FromNative(x).Native() mismatch (-want +got):\n%s", diff)
	}

	_, err = FromNative(discord.Embed{Timestamp: "yesterday"})
	assert.Error(t, err)
}
