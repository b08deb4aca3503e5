package http

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"smap-embeds/internal/embed"
	"smap-embeds/pkg/discord"
	"smap-embeds/pkg/embeds"
	"smap-embeds/pkg/errors"
)

// --- Request DTOs ---

type objectReq struct {
	Bucket string `json:"bucket"`
	Object string `json:"object"`
}

// mediaReq decodes either "https://..." or {"url": ..., "object": {...}}.
type mediaReq struct {
	URL    string     `json:"url"`
	Object *objectReq `json:"object"`
}

func (m *mediaReq) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		return json.Unmarshal(data, &m.URL)
	}
	type plain mediaReq
	return json.Unmarshal(data, (*plain)(m))
}

func (m mediaReq) toInput() embed.MediaInput {
	in := embed.MediaInput{URL: m.URL}
	if m.Object != nil {
		in.Object = &embed.ObjectRef{Bucket: m.Object.Bucket, Object: m.Object.Object}
	}
	return in
}

// authorReq decodes either a name or {"name", "url", "icon"}.
type authorReq struct {
	Name string   `json:"name"`
	URL  string   `json:"url"`
	Icon mediaReq `json:"icon"`
}

func (a *authorReq) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		return json.Unmarshal(data, &a.Name)
	}
	type plain authorReq
	return json.Unmarshal(data, (*plain)(a))
}

// footerReq decodes either a text or {"text", "icon"}.
type footerReq struct {
	Text string   `json:"text"`
	Icon mediaReq `json:"icon"`
}

func (f *footerReq) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		return json.Unmarshal(data, &f.Text)
	}
	type plain footerReq
	return json.Unmarshal(data, (*plain)(f))
}

type fieldReq struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedReq struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Colour      any        `json:"colour"`
	Timestamp   *time.Time `json:"timestamp"`
	Author      *authorReq `json:"author"`
	Footer      *footerReq `json:"footer"`
	Image       *mediaReq  `json:"image"`
	Thumbnail   *mediaReq  `json:"thumbnail"`
	Fields      []fieldReq `json:"fields"`
}

func (r embedReq) validate(field string, errs *errors.ValidationErrorCollector) {
	check := func(slot string, m *mediaReq) {
		if m != nil && m.Object != nil && m.Object.Object == "" {
			errs.Add(errors.NewValidationError(ValidationErrorCode, field+"."+slot+".object", "object is required"))
		}
	}
	check("image", r.Image)
	check("thumbnail", r.Thumbnail)
	if r.Author != nil {
		check("author.icon", &r.Author.Icon)
	}
	if r.Footer != nil {
		check("footer.icon", &r.Footer.Icon)
	}
}

func (r embedReq) toInput() embed.EmbedInput {
	in := embed.EmbedInput{
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Colour:      r.Colour,
	}
	if r.Timestamp != nil {
		in.Timestamp = *r.Timestamp
	}
	if r.Author != nil {
		in.Author = &embed.AuthorInput{Name: r.Author.Name, URL: r.Author.URL, Icon: r.Author.Icon.toInput()}
	}
	if r.Footer != nil {
		in.Footer = &embed.FooterInput{Text: r.Footer.Text, Icon: r.Footer.Icon.toInput()}
	}
	if r.Image != nil {
		m := r.Image.toInput()
		in.Image = &m
	}
	if r.Thumbnail != nil {
		m := r.Thumbnail.toInput()
		in.Thumbnail = &m
	}
	for _, f := range r.Fields {
		in.Fields = append(in.Fields, embed.FieldInput{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	return in
}

type PreviewReq struct {
	embedReq
	Limits      map[string]int `json:"limits"`
	CheckLimits *bool          `json:"check_limits"`
}

func (r PreviewReq) validate() error {
	errs := errors.NewValidationErrorCollector()
	r.embedReq.validate("embed", errs)
	if errs.HasError() {
		return errs
	}
	return nil
}

func (r PreviewReq) toInput() embed.PreviewInput {
	return embed.PreviewInput{
		Embed:      r.embedReq.toInput(),
		Limits:     r.Limits,
		SkipLimits: skipLimits(r.CheckLimits),
	}
}

// SendReq is the first embed plus message options; Embeds are appended after it.
type SendReq struct {
	embedReq
	Content     string         `json:"content"`
	Username    string         `json:"username"`
	AvatarURL   string         `json:"avatar_url"`
	Embeds      []embedReq     `json:"embeds"`
	Limits      map[string]int `json:"limits"`
	CheckLimits *bool          `json:"check_limits"`
}

func (r SendReq) validate() error {
	errs := errors.NewValidationErrorCollector()
	r.embedReq.validate("embed", errs)
	for i, e := range r.Embeds {
		e.validate("embeds["+strconv.Itoa(i)+"]", errs)
	}
	if errs.HasError() {
		return errs
	}
	return nil
}

func (r SendReq) toInput() embed.SendInput {
	in := embed.SendInput{
		Content:    r.Content,
		Username:   r.Username,
		AvatarURL:  r.AvatarURL,
		Limits:     r.Limits,
		SkipLimits: skipLimits(r.CheckLimits),
		Embeds:     []embed.EmbedInput{r.embedReq.toInput()},
	}
	for _, e := range r.Embeds {
		in.Embeds = append(in.Embeds, e.toInput())
	}
	return in
}

// --- Response DTOs ---

type PreviewResp struct {
	Embed  discord.Embed `json:"embed"`
	Length int           `json:"length"`
	Files  []string      `json:"files"`
}

func newPreviewResp(o embed.PreviewOutput) PreviewResp {
	return PreviewResp{Embed: o.Embed, Length: o.Length, Files: o.Files}
}

type SendResp struct {
	Embeds int      `json:"embeds"`
	Files  []string `json:"files"`
}

func newSendResp(o embed.SendOutput) SendResp {
	return SendResp{Embeds: o.Embeds, Files: o.Files}
}

type LimitsResp struct {
	Limits      map[string]int `json:"limits"`
	LastUpdated string         `json:"last_updated"`
}

func newLimitsResp(l *embeds.Limits) LimitsResp {
	out := LimitsResp{Limits: make(map[string]int), LastUpdated: l.LastUpdated.Format(time.DateOnly)}
	for _, name := range embeds.LimitNames() {
		n, _ := l.Of(name)
		out.Limits[name] = n
	}
	return out
}

func isJSONString(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '"'
}

func skipLimits(check *bool) bool {
	return check != nil && !*check
}
