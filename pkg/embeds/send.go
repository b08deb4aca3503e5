package embeds

import (
	"context"
	"fmt"

	"smap-embeds/pkg/discord"
)

// Sender delivers a message; discord.IDiscord satisfies it.
type Sender interface {
	Execute(ctx context.Context, msg discord.Message) error
}

// Files lists uploads referenced by the embed, once per file.
func (e *Embed) Files() []discord.File {
	uploads := e.uploads()
	out := make([]discord.File, 0, len(uploads))
	for _, f := range uploads {
		out = append(out, *f)
	}
	return out
}

func (e *Embed) uploads() []*discord.File {
	var out []*discord.File
	seen := map[*discord.File]bool{}
	for _, m := range e.Medias() {
		f := m.File()
		if f == nil || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// Message bundles e and extra into one webhook message, checking the per-message embed limit.
// Two different uploads with the same name fail with ErrDuplicateFile.
func (e *Embed) Message(content string, extra ...*Embed) (discord.Message, error) {
	all := []*Embed{e}
	for _, em := range extra {
		if em != nil {
			all = append(all, em)
		}
	}
	if limit := e.limits; e.checkLimits && limit != nil && len(all) > limit.Embeds {
		return discord.Message{}, newLimitError(LimitEmbeds, limit.Embeds, len(all))
	}

	msg := discord.Message{Content: content}
	byName := map[string]*discord.File{}
	for _, em := range all {
		msg.Embeds = append(msg.Embeds, em.Native())
		for _, f := range em.uploads() {
			if prev, ok := byName[f.Name]; ok {
				if prev != f {
					return discord.Message{}, fmt.Errorf("%w: %q", ErrDuplicateFile, f.Name)
				}
				continue
			}
			byName[f.Name] = f
			msg.Files = append(msg.Files, *f)
		}
	}
	return msg, nil
}

// Send posts e, any extra embeds and every referenced upload through s.
func (e *Embed) Send(ctx context.Context, s Sender, content string, extra ...*Embed) error {
	if s == nil {
		return ErrNoSender
	}
	msg, err := e.Message(content, extra...)
	if err != nil {
		return err
	}
	return s.Execute(ctx, msg)
}
