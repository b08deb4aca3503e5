package embeds

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Limit names accepted by Limits.Of, Limits.Set and Limits.Edit.
const (
	LimitTitle       = "title"
	LimitDescription = "description"
	LimitFields      = "fields"
	LimitFieldName   = "field_name"
	LimitFieldValue  = "field_value"
	LimitFooterText  = "footer_text"
	LimitAuthorName  = "author_name"
	LimitEmbed       = "embed"
	LimitEmbeds      = "embeds"
)

var limitAliases = map[string]string{
	"author": LimitAuthorName,
	"footer": LimitFooterText,
	"field":  LimitFields,
	"total":  LimitEmbed,
}

// Limits holds the maximum sizes Discord accepts. The defaults are copied by hand
// from Discord's documentation and can go stale; edit them rather than waiting for a release.
type Limits struct {
	Title       int
	Description int
	Fields      int
	FieldName   int
	FieldValue  int
	FooterText  int
	AuthorName  int
	// Embed caps the summed characters of every text in one embed.
	Embed int
	// Embeds caps the number of embeds in one message.
	Embeds int

	LastUpdated time.Time
}

var defaultLimits = Limits{
	Title:       256,
	Description: 4096,
	Fields:      25,
	FieldName:   256,
	FieldValue:  1024,
	FooterText:  2048,
	AuthorName:  256,
	Embed:       6000,
	Embeds:      10,
	LastUpdated: time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC),
}

// DefaultLimits returns a fresh copy of the built-in limits.
func DefaultLimits() *Limits {
	l := defaultLimits
	return &l
}

// LimitNames lists the canonical limit names, sorted.
func LimitNames() []string {
	names := []string{
		LimitTitle, LimitDescription, LimitFields, LimitFieldName, LimitFieldValue,
		LimitFooterText, LimitAuthorName, LimitEmbed, LimitEmbeds,
	}
	sort.Strings(names)
	return names
}

func (l *Limits) Clone() *Limits {
	c := *l
	return &c
}

func (l *Limits) slot(name string) (*int, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := limitAliases[key]; ok {
		key = alias
	}
	switch key {
	case LimitTitle:
		return &l.Title, nil
	case LimitDescription:
		return &l.Description, nil
	case LimitFields:
		return &l.Fields, nil
	case LimitFieldName:
		return &l.FieldName, nil
	case LimitFieldValue:
		return &l.FieldValue, nil
	case LimitFooterText:
		return &l.FooterText, nil
	case LimitAuthorName:
		return &l.AuthorName, nil
	case LimitEmbed:
		return &l.Embed, nil
	case LimitEmbeds:
		return &l.Embeds, nil
	}
	return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownLimit, name, strings.Join(LimitNames(), ", "))
}

// Of returns the limit called name. Aliases: author, footer, field, total.
func (l *Limits) Of(name string) (int, error) {
	p, err := l.slot(name)
	if err != nil {
		return 0, err
	}
	return *p, nil
}

func (l *Limits) Set(name string, n int) error {
	return l.Edit(map[string]int{name: n})
}

// Edit applies every change or none of them.
func (l *Limits) Edit(changes map[string]int) error {
	names := make([]string, 0, len(changes))
	for name := range changes {
		names = append(names, name)
	}
	sort.Strings(names)

	slots := make(map[*int]int, len(changes))
	for _, name := range names {
		n := changes[name]
		p, err := l.slot(name)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeLimit, name, n)
		}
		slots[p] = n
	}
	for p, n := range slots {
		*p = n
	}
	return nil
}
