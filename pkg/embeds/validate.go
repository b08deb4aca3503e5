package embeds

import "unicode/utf8"

// Len is the character count Discord applies its total limit to.
func (e *Embed) Len() int {
	n := utf8.RuneCountInString(e.title) + utf8.RuneCountInString(e.description)
	n += e.footer.Len() + e.author.Len()
	for _, f := range e.fields {
		n += f.Len()
	}
	return n
}

// Validate checks the embed against the current limits, even when it was built with SkipLimits.
func (e *Embed) Validate() error {
	return validate(e.limits, e)
}

func (e *Embed) check() error {
	return e.checkSince(&Embed{})
}

// checkSince validates only what differs from prev, so a limit lowered after
// construction does not block unrelated edits.
func (e *Embed) checkSince(prev *Embed) error {
	if !e.checkLimits {
		return nil
	}
	return validateChanges(e.limits, prev, e)
}

func validate(l *Limits, e *Embed) error {
	return validateChanges(l, &Embed{}, e)
}

func validateChanges(l *Limits, prev, next *Embed) error {
	if l == nil {
		l = DefaultLimits()
	}
	texts := []struct {
		name      string
		limit     int
		old, text string
	}{
		{LimitTitle, l.Title, prev.title, next.title},
		{LimitDescription, l.Description, prev.description, next.description},
		{LimitAuthorName, l.AuthorName, prev.author.Name, next.author.Name},
		{LimitFooterText, l.FooterText, prev.footer.Text, next.footer.Text},
	}
	for _, t := range texts {
		if t.text == t.old {
			continue
		}
		if n := utf8.RuneCountInString(t.text); n > t.limit {
			return newLimitError(t.name, t.limit, n)
		}
	}

	if n := len(next.fields); n > len(prev.fields) && n > l.Fields {
		return newLimitError(LimitFields, l.Fields, n)
	}
	kept := make(map[Field]bool, len(prev.fields))
	for _, f := range prev.fields {
		kept[f] = true
	}
	for i, f := range next.fields {
		if kept[f] {
			continue
		}
		if n := utf8.RuneCountInString(f.Name); n > l.FieldName {
			err := newLimitError(LimitFieldName, l.FieldName, n)
			err.Index = i
			return err
		}
		if n := utf8.RuneCountInString(f.Value); n > l.FieldValue {
			err := newLimitError(LimitFieldValue, l.FieldValue, n)
			err.Index = i
			return err
		}
	}

	if n := next.Len(); n > prev.Len() && n > l.Embed {
		return newLimitError(LimitEmbed, l.Embed, n)
	}
	return nil
}
