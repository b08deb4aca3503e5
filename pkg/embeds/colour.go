package embeds

import (
	"fmt"
	"strconv"
	"strings"

	adiscord "github.com/diamondburned/arikawa/v3/discord"

	"smap-embeds/pkg/discord"
)

// Colour is a 0xRRGGBB value.
type Colour int

const (
	DefaultColour Colour = discord.ColorDark
	maxColour     Colour = 0xFFFFFF
)

var namedColours = map[string]Colour{
	"default":      0,
	"teal":         0x1ABC9C,
	"dark_teal":    0x11806A,
	"brand_green":  0x57F287,
	"green":        0x2ECC71,
	"dark_green":   0x1F8B4C,
	"blue":         0x3498DB,
	"dark_blue":    0x206694,
	"purple":       0x9B59B6,
	"dark_purple":  0x71368A,
	"magenta":      0xE91E63,
	"dark_magenta": 0xAD1457,
	"gold":         0xF1C40F,
	"dark_gold":    0xC27C0E,
	"orange":       0xE67E22,
	"dark_orange":  0xA84300,
	"brand_red":    0xED4245,
	"red":          0xE74C3C,
	"dark_red":     0x992D22,
	"lighter_grey": 0x95A5A6,
	"dark_grey":    0x607D8B,
	"light_grey":   0x979C9F,
	"darker_grey":  0x546E7A,
	"og_blurple":   0x7289DA,
	"blurple":      0x5865F2,
	"greyple":      0x99AAB5,
	"dark_theme":   DefaultColour,
	"fuchsia":      0xEB459E,
	"yellow":       0xFEE75C,
	"dark_embed":   0x2B2D31,
	"light_embed":  0xEEEFF1,
}

func (c Colour) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Colour) String() string {
	return fmt.Sprintf("#%06x", int(c))
}

// ParseColour reads "#rrggbb", "0xrrggbb", "rgb(r, g, b)" or a name such as "dark_theme".
func ParseColour(s string) (Colour, error) {
	v := strings.TrimSpace(s)
	switch {
	case v == "":
		return 0, fmt.Errorf("%w: empty string", ErrInvalidColour)
	case strings.HasPrefix(v, "#"):
		return parseHex(s, v[1:])
	case strings.HasPrefix(v, "0x"):
		return parseHex(s, strings.TrimPrefix(v[2:], "#"))
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseRGB(s, v[4:len(v)-1])
	}
	name := strings.ReplaceAll(strings.ToLower(v), " ", "_")
	if c, ok := namedColours[name]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: unknown colour format %q", ErrInvalidColour, s)
}

func parseHex(orig, digits string) (Colour, error) {
	if len(digits) != 6 {
		return 0, fmt.Errorf("%w: hex colour %q is not 6 digits", ErrInvalidColour, orig)
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColour, orig)
	}
	return Colour(n), nil
}

func parseRGB(orig, inner string) (Colour, error) {
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q needs three components", ErrInvalidColour, orig)
	}
	var c Colour
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return 0, fmt.Errorf("%w: %q has an invalid component", ErrInvalidColour, orig)
		}
		c = c<<8 | Colour(n)
	}
	return c, nil
}

func normalizeColour(v any) (Colour, error) {
	var c Colour
	switch x := v.(type) {
	case nil:
		return DefaultColour, nil
	case Colour:
		c = x
	case int:
		c = Colour(x)
	case int32:
		c = Colour(x)
	case int64:
		c = Colour(x)
	case uint32:
		c = Colour(x)
	case float64:
		// JSON numbers.
		if x != float64(int64(x)) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidColour, x)
		}
		c = Colour(x)
	case adiscord.Color:
		c = Colour(x)
	case string:
		return ParseColour(x)
	default:
		return 0, typeError("colour", v)
	}
	if c < 0 || c > maxColour {
		return 0, fmt.Errorf("%w: %d is outside 0x000000-0xffffff", ErrInvalidColour, int(c))
	}
	return c, nil
}
