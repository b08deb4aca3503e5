package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"smap-embeds/pkg/discord"

	"github.com/gin-gonic/gin"
)

const reportTimeout = 30 * time.Second

// sendDiscordMessageAsync reports in the background. The request context is
// not reused because it ends with the response. Failures are logged by the
// webhook client.
func sendDiscordMessageAsync(c *gin.Context, d discord.IDiscord, message string) {
	if d == nil || message == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()
		for _, msg := range splitMessageForDiscord(message, reportChunkLen) {
			if err := d.ReportBug(ctx, msg); err != nil {
				return
			}
		}
	}()
}

// splitMessageForDiscord cuts message on line boundaries into chunks of at most maxLen runes.
func splitMessageForDiscord(message string, maxLen int) []string {
	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
			current.Reset()
			currentLen = 0
		}
	}

	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		lineLen := utf8.RuneCountInString(line)
		if currentLen+lineLen > maxLen {
			flush()
			for lineLen > maxLen {
				r := []rune(line)
				chunks = append(chunks, string(r[:maxLen]))
				line = string(r[maxLen:])
				lineLen -= maxLen
			}
		}
		current.WriteString(line)
		currentLen += lineLen
	}
	flush()
	return chunks
}

func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	url := c.Request.URL.String()
	method := c.Request.Method
	params := c.Request.URL.Query().Encode()

	var bodyBytes []byte
	if c.Request.Body != nil {
		bodyBytes, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}

	var sb strings.Builder
	sb.WriteString("================ SMAP EMBEDS ERROR ================\n")
	sb.WriteString(fmt.Sprintf("Route   : %s\n", url))
	sb.WriteString(fmt.Sprintf("Method  : %s\n", method))
	sb.WriteString("----------------------------------------------------\n")

	if params != "" {
		sb.WriteString(fmt.Sprintf("Params  : %s\n", params))
	}

	if len(bodyBytes) > 0 {
		sb.WriteString("Body    :\n")
		var prettyBody bytes.Buffer
		if err := json.Indent(&prettyBody, bodyBytes, "    ", "  "); err == nil {
			sb.WriteString(prettyBody.String() + "\n")
		} else {
			sb.WriteString("    " + string(bodyBytes) + "\n")
		}
		sb.WriteString("----------------------------------------------------\n")
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))

	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}

	sb.WriteString("====================================================\n")
	return sb.String()
}
