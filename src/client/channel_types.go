package client

import "personal/discord_entities/src/entities"

type Overwrite struct {
	ID    Snowflake `json:"id"`
	Type  int       `json:"type"`
	Allow string    `json:"allow"`
	Deny  string    `json:"deny"`
}

type ThreadMetadata struct {
	Archived            bool    `json:"archived"`
	AutoArchiveDuration int     `json:"auto_archive_duration"`
	ArchiveTimestamp    string  `json:"archive_timestamp"`
	Locked              bool    `json:"locked"`
	Invitable           *bool   `json:"invitable,omitempty"`
	CreateTimestamp     *string `json:"create_timestamp,omitempty"`
}

type ThreadMember struct {
	ID            *Snowflake `json:"id,omitempty"`
	UserID        *Snowflake `json:"user_id,omitempty"`
	JoinTimestamp string     `json:"join_timestamp"`
	Flags         int        `json:"flags"`
}

type User struct {
	ID            Snowflake `json:"id"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discriminator"`
	Avatar        *string   `json:"avatar"`
	Bot           *bool     `json:"bot,omitempty"`
	System        *bool     `json:"system,omitempty"`
	GlobalName    *string   `json:"global_name,omitempty"`
}

// Channel is a channel object. Type is resolved through the entity registry, so
// a kind this client does not know decodes as entities.ChannelTypeUnknown.
type Channel struct {
	ID                         Snowflake            `json:"id"`
	Type                       entities.ChannelType `json:"type"`
	GuildID                    *Snowflake           `json:"guild_id,omitempty"`
	Position                   *int                 `json:"position,omitempty"`
	PermissionOverwrites       []Overwrite          `json:"permission_overwrites,omitempty"`
	Name                       *string              `json:"name,omitempty"`
	Topic                      *string              `json:"topic,omitempty"`
	NSFW                       *bool                `json:"nsfw,omitempty"`
	LastMessageID              *Snowflake           `json:"last_message_id,omitempty"`
	Bitrate                    *int                 `json:"bitrate,omitempty"`
	UserLimit                  *int                 `json:"user_limit,omitempty"`
	RateLimitPerUser           *int                 `json:"rate_limit_per_user,omitempty"`
	Recipients                 []User               `json:"recipients,omitempty"`
	OwnerID                    *Snowflake           `json:"owner_id,omitempty"`
	ParentID                   *Snowflake           `json:"parent_id,omitempty"`
	LastPinTimestamp           *string              `json:"last_pin_timestamp,omitempty"` // ISO8601
	RTCRegion                  *string              `json:"rtc_region,omitempty"`
	MessageCount               *int                 `json:"message_count,omitempty"`
	MemberCount                *int                 `json:"member_count,omitempty"`
	ThreadMetadata             *ThreadMetadata      `json:"thread_metadata,omitempty"`
	Member                     *ThreadMember        `json:"member,omitempty"`
	DefaultAutoArchiveDuration *int                 `json:"default_auto_archive_duration,omitempty"`
	Flags                      *int                 `json:"flags,omitempty"`
}

type MessageReference struct {
	MessageID *Snowflake `json:"message_id,omitempty"`
	ChannelID *Snowflake `json:"channel_id,omitempty"`
	GuildID   *Snowflake `json:"guild_id,omitempty"`
}

// Message is a message object with its kind resolved through the entity
// registry.
type Message struct {
	ID               Snowflake            `json:"id"`
	ChannelID        Snowflake            `json:"channel_id"`
	GuildID          *Snowflake           `json:"guild_id,omitempty"`
	Author           User                 `json:"author"`
	Content          string               `json:"content"`
	Timestamp        string               `json:"timestamp"`
	Type             entities.MessageType `json:"type"`
	Pinned           bool                 `json:"pinned"`
	StickerItems     []StickerItem        `json:"sticker_items,omitempty"`
	MessageReference *MessageReference    `json:"message_reference,omitempty"`
}

// CanDelete reports whether Discord allows this message to be deleted.
func (m *Message) CanDelete() bool { return m.Type.CanDelete() }

// StickerItem is the reduced sticker object attached to messages.
type StickerItem struct {
	ID         Snowflake              `json:"id"`
	Name       string                 `json:"name"`
	FormatType entities.StickerFormat `json:"format_type"`
}

// IconURL fails with entities.ErrInvalidState for stickers of unknown format.
func (s StickerItem) IconURL() (string, error) {
	return entities.IconURL(string(s.ID), s.FormatType)
}

type Sticker struct {
	ID          Snowflake              `json:"id"`
	PackID      *Snowflake             `json:"pack_id,omitempty"`
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	Tags        string                 `json:"tags"`
	Type        entities.StickerType   `json:"type"`
	FormatType  entities.StickerFormat `json:"format_type"`
	Available   *bool                  `json:"available,omitempty"`
	GuildID     *Snowflake             `json:"guild_id,omitempty"`
	User        *User                  `json:"user,omitempty"`
	SortValue   *int                   `json:"sort_value,omitempty"`
}

// IconURL fails with entities.ErrInvalidState for stickers of unknown format.
func (s *Sticker) IconURL() (string, error) {
	return entities.IconURL(string(s.ID), s.FormatType)
}
