// Package audit names the audit log change keys that channel updates can be
// cross-referenced against.
package audit

// Key identifies one kind of change recorded in a guild's audit log.
//
// Several keys share a change-key string on the wire (a channel name and a role
// name are both "name"), so keys are compared by identity, not by Name.
type Key int

const (
	ChannelType Key = iota + 1
	ChannelName
	ChannelParent
	ChannelTopic
	ChannelNSFW
	ChannelSlowmode
	ChannelBitrate
	ChannelUserLimit

	ThreadAutoArchiveDuration
	ThreadArchived
	ThreadLocked
	ThreadInvitable
)

type keyInfo struct {
	constName string
	changeKey string
}

var keyTable = map[Key]keyInfo{
	ChannelType:      {"CHANNEL_TYPE", "type"},
	ChannelName:      {"CHANNEL_NAME", "name"},
	ChannelParent:    {"CHANNEL_PARENT", "parent_id"},
	ChannelTopic:     {"CHANNEL_TOPIC", "topic"},
	ChannelNSFW:      {"CHANNEL_NSFW", "nsfw"},
	ChannelSlowmode:  {"CHANNEL_SLOWMODE", "rate_limit_per_user"},
	ChannelBitrate:   {"CHANNEL_BITRATE", "bitrate"},
	ChannelUserLimit: {"CHANNEL_USER_LIMIT", "user_limit"},

	ThreadAutoArchiveDuration: {"THREAD_AUTO_ARCHIVE_DURATION", "auto_archive_duration"},
	ThreadArchived:            {"THREAD_ARCHIVED", "archived"},
	ThreadLocked:              {"THREAD_LOCKED", "locked"},
	ThreadInvitable:           {"THREAD_INVITABLE", "invitable"},
}

// Name returns the change key Discord uses for this entry in audit log payloads,
// or "" for a Key outside the table.
func (k Key) Name() string {
	return keyTable[k].changeKey
}

// Valid reports whether k is one of the declared keys.
func (k Key) Valid() bool {
	_, ok := keyTable[k]
	return ok
}

func (k Key) String() string {
	if info, ok := keyTable[k]; ok {
		return info.constName
	}
	return "UNKNOWN"
}
