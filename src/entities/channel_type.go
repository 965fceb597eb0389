package entities

import "sort"

// ChannelType is the category of a Discord channel. Its value is the code
// Discord uses for it in the "type" field of a channel object.
type ChannelType int

const (
	ChannelTypeText               ChannelType = 0
	ChannelTypePrivate            ChannelType = 1
	ChannelTypeVoice              ChannelType = 2
	ChannelTypeGroup              ChannelType = 3
	ChannelTypeCategory           ChannelType = 4
	ChannelTypeNews               ChannelType = 5
	ChannelTypeStage              ChannelType = 13
	ChannelTypeGuildNewsThread    ChannelType = 10
	ChannelTypeGuildPublicThread  ChannelType = 11
	ChannelTypeGuildPrivateThread ChannelType = 12

	// ChannelTypeUnknown stands in for any code this package does not know yet.
	ChannelTypeUnknown ChannelType = -1
)

type channelTypeInfo struct {
	name       string
	sortBucket int
	guild      bool
}

var channelTypes = []ChannelType{
	ChannelTypeText,
	ChannelTypePrivate,
	ChannelTypeVoice,
	ChannelTypeGroup,
	ChannelTypeCategory,
	ChannelTypeNews,
	ChannelTypeStage,
	ChannelTypeGuildNewsThread,
	ChannelTypeGuildPublicThread,
	ChannelTypeGuildPrivateThread,
	ChannelTypeUnknown,
}

// Sort bucket -1 groups kinds that are not ordered in a channel list; -2 is
// reserved for Unknown.
var channelTypeTable = map[ChannelType]channelTypeInfo{
	ChannelTypeText:               {"TEXT", 0, true},
	ChannelTypePrivate:            {"PRIVATE", -1, false},
	ChannelTypeVoice:              {"VOICE", 1, true},
	ChannelTypeGroup:              {"GROUP", -1, false},
	ChannelTypeCategory:           {"CATEGORY", 2, true},
	ChannelTypeNews:               {"NEWS", 0, true},
	ChannelTypeStage:              {"STAGE", 1, true},
	ChannelTypeGuildNewsThread:    {"GUILD_NEWS_THREAD", -1, true},
	ChannelTypeGuildPublicThread:  {"GUILD_PUBLIC_THREAD", -1, true},
	ChannelTypeGuildPrivateThread: {"GUILD_PRIVATE_THREAD", -1, true},
	ChannelTypeUnknown:            {"UNKNOWN", -2, false},
}

// ChannelTypeFromID returns the ChannelType for a wire code, or
// ChannelTypeUnknown if the code is not recognised.
func ChannelTypeFromID(id int) ChannelType {
	return fromID(channelTypes, id, ChannelTypeUnknown)
}

// ChannelTypes returns every declared ChannelType, Unknown included, in
// declaration order. The slice is a copy.
func ChannelTypes() []ChannelType {
	out := make([]ChannelType, len(channelTypes))
	copy(out, channelTypes)
	return out
}

// ChannelTypesInBucket returns the channel types that share a sort bucket. The
// result is empty, not nil, when no type uses the bucket.
func ChannelTypesInBucket(bucket int) ChannelTypeSet {
	set := make(ChannelTypeSet)
	for _, t := range channelTypes {
		if t.SortBucket() == bucket {
			set[t] = struct{}{}
		}
	}
	return set
}

func (t ChannelType) info() channelTypeInfo {
	if info, ok := channelTypeTable[t]; ok {
		return info
	}
	return channelTypeTable[ChannelTypeUnknown]
}

// ID returns the wire code. A value outside the table reports -1.
func (t ChannelType) ID() int {
	if _, ok := channelTypeTable[t]; !ok {
		return int(ChannelTypeUnknown)
	}
	return int(t)
}

// SortBucket groups channel types for ordering in a channel list.
func (t ChannelType) SortBucket() int { return t.info().sortBucket }

// IsGuild reports whether channels of this type only exist inside a guild.
func (t ChannelType) IsGuild() bool { return t.info().guild }

// IsAudio reports whether channels of this type support audio connections.
func (t ChannelType) IsAudio() bool {
	switch t {
	case ChannelTypeVoice, ChannelTypeStage:
		return true
	default:
		return false
	}
}

// IsMessage reports whether messages can be sent to channels of this type.
func (t ChannelType) IsMessage() bool {
	switch t {
	case ChannelTypeText, ChannelTypeVoice, ChannelTypeNews, ChannelTypePrivate, ChannelTypeGroup:
		return true
	default:
		return t.IsThread()
	}
}

// IsThread reports whether this is one of the three guild thread types.
func (t ChannelType) IsThread() bool {
	switch t {
	case ChannelTypeGuildNewsThread, ChannelTypeGuildPublicThread, ChannelTypeGuildPrivateThread:
		return true
	default:
		return false
	}
}

func (t ChannelType) String() string { return t.info().name }

// UnmarshalJSON resolves the wire code through ChannelTypeFromID.
func (t *ChannelType) UnmarshalJSON(data []byte) error {
	id, ok, err := decodeID(data)
	if err != nil || !ok {
		return err
	}
	*t = ChannelTypeFromID(id)
	return nil
}

// ChannelTypeSet is an unordered set of channel types.
type ChannelTypeSet map[ChannelType]struct{}

// Contains reports whether t is in the set.
func (s ChannelTypeSet) Contains(t ChannelType) bool {
	_, ok := s[t]
	return ok
}

// Sorted returns the members ordered by wire code, for stable display.
func (s ChannelTypeSet) Sorted() []ChannelType {
	out := make([]ChannelType, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
