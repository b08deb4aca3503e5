package embeds

// User is anything with a display name and an avatar, such as a guild member.
type User interface {
	DisplayName() string
	AvatarURL() string
}
