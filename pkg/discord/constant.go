package discord

import "time"

const (
	defaultAPIBase = "https://discord.com/api"

	ColorBlue   = 3447003
	ColorGreen  = 3066993
	ColorYellow = 16776960
	ColorRed    = 15158332
	ColorPurple = 10181046
	ColorOrange = 15105570
	ColorGray   = 9807270
	ColorDark   = 0x36393F

	ColorInfo    = ColorBlue
	ColorSuccess = ColorGreen
	ColorWarning = ColorYellow
	ColorError   = ColorRed

	// EmbedTypeRich is the only embed type a webhook may create.
	EmbedTypeRich = "rich"

	MaxMessageLength    = 2000
	MaxEmbedsPerMessage = 10
	ReportBugDescLen    = 4096

	attachmentScheme = "attachment://"
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetryCount = 3
	DefaultRetryDelay = 1 * time.Second
)

const (
	DefaultUsername = "SMAP Bot"
	UserAgent       = "SMAP-Bot/1.0"
	ReportBugTitle  = "SMAP Service Error Report"
)

var webhookPrefixes = []string{
	"https://discord.com/api/webhooks/",
	"https://discordapp.com/api/webhooks/",
	"https://ptb.discord.com/api/webhooks/",
	"https://canary.discord.com/api/webhooks/",
}
