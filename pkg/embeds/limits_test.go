package embeds

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLimits(t *testing.T) {
	l := DefaultLimits()
	assert.Equal(t, 256, l.Title)
	assert.Equal(t, 4096, l.Description)
	assert.Equal(t, 25, l.Fields)
	assert.Equal(t, 256, l.FieldName)
	assert.Equal(t, 1024, l.FieldValue)
	assert.Equal(t, 2048, l.FooterText)
	assert.Equal(t, 256, l.AuthorName)
	assert.Equal(t, 6000, l.Embed)
	assert.Equal(t, 10, l.Embeds)

	l.Title = 1
	assert.Equal(t, 256, DefaultLimits().Title, "defaults must not be shared")
}

func TestLimitsOf(t *testing.T) {
	l := DefaultLimits()
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr error
	}{
		{name: "canonical", in: "field_value", want: 1024},
		{name: "author alias", in: "author", want: 256},
		{name: "footer alias", in: "footer", want: 2048},
		{name: "field alias", in: "field", want: 25},
		{name: "total alias", in: "total", want: 6000},
		{name: "case and space", in: " Title ", want: 256},
		{name: "unknown", in: "colour", wantErr: ErrUnknownLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Of(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLimitsUnknownNameListsValidNames(t *testing.T) {
	_, err := DefaultLimits().Of("nope")
	require.Error(t, err)
	for _, name := range LimitNames() {
		assert.Contains(t, err.Error(), name)
	}
}

func TestLimitsEdit(t *testing.T) {
	tests := []struct {
		name    string
		changes map[string]int
		wantErr error
		check   func(t *testing.T, l *Limits)
	}{
		{
			name:    "several at once",
			changes: map[string]int{"title": 10, "author": 5},
			check: func(t *testing.T, l *Limits) {
				assert.Equal(t, 10, l.Title)
				assert.Equal(t, 5, l.AuthorName)
			},
		},
		{
			name:    "negative rejected",
			changes: map[string]int{"title": 10, "description": -1},
			wantErr: ErrNegativeLimit,
			check: func(t *testing.T, l *Limits) {
				assert.Equal(t, 256, l.Title, "edit is all or nothing")
			},
		},
		{
			name:    "unknown rejected",
			changes: map[string]int{"title": 10, "colour": 3},
			wantErr: ErrUnknownLimit,
			check: func(t *testing.T, l *Limits) {
				assert.Equal(t, 256, l.Title)
			},
		},
		{
			name:    "zero allowed",
			changes: map[string]int{"fields": 0},
			check: func(t *testing.T, l *Limits) {
				assert.Equal(t, 0, l.Fields)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLimits()
			err := l.Edit(tt.changes)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				assert.NoError(t, err)
			}
			tt.check(t, l)
		})
	}
}

func TestLimitsEditReportsFirstUnknownName(t *testing.T) {
	changes := map[string]int{"zeta": 1, "alpha": 1, "mid": 1, "title": 1}
	for range 20 {
		err := DefaultLimits().Edit(changes)
		require.ErrorIs(t, err, ErrUnknownLimit)
		assert.Contains(t, err.Error(), `"alpha"`)
	}
}

func TestLimitsSetAndClone(t *testing.T) {
	l := DefaultLimits()
	c := l.Clone()
	require.NoError(t, l.Set("embeds", 3))
	assert.Equal(t, 3, l.Embeds)
	assert.Equal(t, 10, c.Embeds)
}
