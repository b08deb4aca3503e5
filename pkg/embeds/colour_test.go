package embeds

import (
	"errors"
	"testing"

	adiscord "github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Colour
		wantErr bool
	}{
		{name: "hash hex", in: "#ff8800", want: 0xFF8800},
		{name: "0x hex", in: "0x36393f", want: DefaultColour},
		{name: "0x hash hex", in: "0x#0000FF", want: 0x0000FF},
		{name: "rgb", in: "rgb(255, 0, 16)", want: 0xFF0010},
		{name: "named", in: "dark_theme", want: DefaultColour},
		{name: "named with space", in: "Dark Red", want: 0x992D22},
		{name: "short hex", in: "#fff", wantErr: true},
		{name: "bad hex", in: "#gggggg", wantErr: true},
		{name: "rgb out of range", in: "rgb(256, 0, 0)", wantErr: true},
		{name: "rgb two parts", in: "rgb(1, 2)", wantErr: true},
		{name: "unknown name", in: "random", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColour(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColour)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeColour(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		want     Colour
		wantType bool
		wantErr  error
	}{
		{name: "nil is default", in: nil, want: DefaultColour},
		{name: "int", in: 0x123456, want: 0x123456},
		{name: "json number", in: float64(255), want: 255},
		{name: "colour", in: Colour(7), want: 7},
		{name: "arikawa colour", in: adiscord.Color(0xABCDEF), want: 0xABCDEF},
		{name: "string", in: "#000001", want: 1},
		{name: "out of range", in: 0x1000000, wantErr: ErrInvalidColour},
		{name: "fraction", in: 1.5, wantErr: ErrInvalidColour},
		{name: "unsupported", in: []int{1, 2, 3}, wantType: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeColour(tt.in)
			switch {
			case tt.wantType:
				var typeErr *TypeError
				require.True(t, errors.As(err, &typeErr))
				assert.Equal(t, "colour", typeErr.Slot)
				assert.Equal(t, "[]int", typeErr.Got)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestColourFormatting(t *testing.T) {
	r, g, b := Colour(0x36393F).RGB()
	assert.Equal(t, []uint8{0x36, 0x39, 0x3F}, []uint8{r, g, b})
	assert.Equal(t, "#36393f", DefaultColour.String())
}
