package entities

import "personal/discord_entities/src/audit"

// ChannelField is an attribute of a channel that an update event can change.
//
// Most fields are mirrored by an audit log entry. Those without one (position,
// region, archive timestamp) are not tracked by Discord's audit log, and
// AuditLogKey reports false for them.
type ChannelField int

const (
	ChannelFieldType ChannelField = iota
	ChannelFieldName
	ChannelFieldParent
	ChannelFieldPosition

	// Text channels.
	ChannelFieldTopic
	ChannelFieldNSFW
	ChannelFieldSlowmode

	// Audio channels.
	ChannelFieldBitrate
	ChannelFieldRegion
	ChannelFieldUserLimit

	// Threads.
	ChannelFieldAutoArchiveDuration
	ChannelFieldArchived
	ChannelFieldArchivedTimestamp
	ChannelFieldLocked
	ChannelFieldInvitable
)

type channelFieldInfo struct {
	constName string
	fieldName string
	auditKey  audit.Key
}

// A zero auditKey means the field has no audit log entry.
var channelFieldTable = []channelFieldInfo{
	ChannelFieldType:     {"TYPE", "type", audit.ChannelType},
	ChannelFieldName:     {"NAME", "name", audit.ChannelName},
	ChannelFieldParent:   {"PARENT", "parent", audit.ChannelParent},
	ChannelFieldPosition: {"POSITION", "position", 0},

	ChannelFieldTopic:    {"TOPIC", "topic", audit.ChannelTopic},
	ChannelFieldNSFW:     {"NSFW", "nsfw", audit.ChannelNSFW},
	ChannelFieldSlowmode: {"SLOWMODE", "slowmode", audit.ChannelSlowmode},

	ChannelFieldBitrate:   {"BITRATE", "bitrate", audit.ChannelBitrate},
	ChannelFieldRegion:    {"REGION", "region", 0},
	ChannelFieldUserLimit: {"USER_LIMIT", "userlimit", audit.ChannelUserLimit},

	ChannelFieldAutoArchiveDuration: {"AUTO_ARCHIVE_DURATION", "autoArchiveDuration", audit.ThreadAutoArchiveDuration},
	ChannelFieldArchived:            {"ARCHIVED", "archived", audit.ThreadArchived},
	ChannelFieldArchivedTimestamp:   {"ARCHIVED_TIMESTAMP", "archiveTimestamp", 0},
	ChannelFieldLocked:              {"LOCKED", "locked", audit.ThreadLocked},
	ChannelFieldInvitable:           {"INVITABLE", "invitable", audit.ThreadInvitable},
}

var channelFieldsByName = func() map[string]ChannelField {
	m := make(map[string]ChannelField, len(channelFieldTable))
	for i, info := range channelFieldTable {
		m[info.fieldName] = ChannelField(i)
	}
	return m
}()

// ChannelFields returns every ChannelField in declaration order.
func ChannelFields() []ChannelField {
	out := make([]ChannelField, len(channelFieldTable))
	for i := range channelFieldTable {
		out[i] = ChannelField(i)
	}
	return out
}

// ChannelFieldFromName looks a field up by its FieldName.
func ChannelFieldFromName(name string) (ChannelField, bool) {
	f, ok := channelFieldsByName[name]
	return f, ok
}

func (f ChannelField) valid() bool {
	return f >= 0 && int(f) < len(channelFieldTable)
}

// FieldName is the generic name of the field, unique across fields.
func (f ChannelField) FieldName() string {
	if !f.valid() {
		return ""
	}
	return channelFieldTable[f].fieldName
}

// AuditLogKey returns the audit log key that records changes to this field.
// ok is false when Discord does not track the field in its audit log.
func (f ChannelField) AuditLogKey() (key audit.Key, ok bool) {
	if !f.valid() {
		return 0, false
	}
	key = channelFieldTable[f].auditKey
	return key, key != 0
}

// Constant is the upper-case constant name, e.g. "USER_LIMIT".
func (f ChannelField) Constant() string {
	if !f.valid() {
		return "UNKNOWN"
	}
	return channelFieldTable[f].constName
}

func (f ChannelField) String() string {
	if !f.valid() {
		return "ChannelField.UNKNOWN"
	}
	info := channelFieldTable[f]
	return "ChannelField." + info.constName + "(" + info.fieldName + ")"
}
