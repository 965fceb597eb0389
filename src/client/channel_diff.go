package client

import "personal/discord_entities/src/entities"

// DiffChannels lists the fields that differ between two snapshots of the same
// channel, in ChannelField declaration order. Thread fields are compared only
// when both snapshots carry thread metadata. A nil snapshot stands for a channel
// with UNKNOWN type and no fields set, so every field present on the other side
// is reported.
func DiffChannels(prev, next *Channel) []entities.ChannelField {
	empty := &Channel{Type: entities.ChannelTypeUnknown}
	if prev == nil {
		prev = empty
	}
	if next == nil {
		next = empty
	}

	var changed []entities.ChannelField
	mark := func(f entities.ChannelField, differs bool) {
		if differs {
			changed = append(changed, f)
		}
	}

	mark(entities.ChannelFieldType, prev.Type != next.Type)
	mark(entities.ChannelFieldName, !ptrEqual(prev.Name, next.Name))
	mark(entities.ChannelFieldParent, !ptrEqual(prev.ParentID, next.ParentID))
	mark(entities.ChannelFieldPosition, !ptrEqual(prev.Position, next.Position))
	mark(entities.ChannelFieldTopic, !ptrEqual(prev.Topic, next.Topic))
	mark(entities.ChannelFieldNSFW, !ptrEqual(prev.NSFW, next.NSFW))
	mark(entities.ChannelFieldSlowmode, !ptrEqual(prev.RateLimitPerUser, next.RateLimitPerUser))
	mark(entities.ChannelFieldBitrate, !ptrEqual(prev.Bitrate, next.Bitrate))
	mark(entities.ChannelFieldRegion, !ptrEqual(prev.RTCRegion, next.RTCRegion))
	mark(entities.ChannelFieldUserLimit, !ptrEqual(prev.UserLimit, next.UserLimit))

	if o, n := prev.ThreadMetadata, next.ThreadMetadata; o != nil && n != nil {
		mark(entities.ChannelFieldAutoArchiveDuration, o.AutoArchiveDuration != n.AutoArchiveDuration)
		mark(entities.ChannelFieldArchived, o.Archived != n.Archived)
		mark(entities.ChannelFieldArchivedTimestamp, o.ArchiveTimestamp != n.ArchiveTimestamp)
		mark(entities.ChannelFieldLocked, o.Locked != n.Locked)
		mark(entities.ChannelFieldInvitable, !ptrEqual(o.Invitable, n.Invitable))
	}

	return changed
}

// AuditedFields keeps the fields whose changes Discord records in the audit
// log, i.e. the ones worth cross-referencing against an audit log fetch.
func AuditedFields(fields []entities.ChannelField) []entities.ChannelField {
	var out []entities.ChannelField
	for _, f := range fields {
		if _, ok := f.AuditLogKey(); ok {
			out = append(out, f)
		}
	}
	return out
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
