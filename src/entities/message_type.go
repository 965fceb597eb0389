package entities

// MessageType is the kind of a Discord message, as sent in the "type" field of a
// message object.
type MessageType int

const (
	MessageTypeDefault                                 MessageType = 0
	MessageTypeRecipientAdd                            MessageType = 1
	MessageTypeRecipientRemove                         MessageType = 2
	MessageTypeCall                                    MessageType = 3
	MessageTypeChannelNameChange                       MessageType = 4
	MessageTypeChannelIconChange                       MessageType = 5
	MessageTypeChannelPinnedAdd                        MessageType = 6
	MessageTypeGuildMemberJoin                         MessageType = 7
	MessageTypeGuildMemberBoost                        MessageType = 8
	MessageTypeGuildBoostTier1                         MessageType = 9
	MessageTypeGuildBoostTier2                         MessageType = 10
	MessageTypeGuildBoostTier3                         MessageType = 11
	MessageTypeChannelFollowAdd                        MessageType = 12
	MessageTypeGuildDiscoveryDisqualified              MessageType = 14
	MessageTypeGuildDiscoveryRequalified               MessageType = 15
	MessageTypeGuildDiscoveryGracePeriodInitialWarning MessageType = 16
	MessageTypeGuildDiscoveryGracePeriodFinalWarning   MessageType = 17
	MessageTypeThreadCreated                           MessageType = 18
	MessageTypeInlineReply                             MessageType = 19
	MessageTypeSlashCommand                            MessageType = 20
	MessageTypeThreadStarterMessage                    MessageType = 21
	MessageTypeGuildInviteReminder                     MessageType = 22
	MessageTypeContextCommand                          MessageType = 23
	MessageTypeAutoModerationAction                    MessageType = 24

	MessageTypeUnknown MessageType = -1
)

type messageTypeInfo struct {
	name      string
	system    bool
	deletable bool
}

var messageTypes = []MessageType{
	MessageTypeDefault,
	MessageTypeRecipientAdd,
	MessageTypeRecipientRemove,
	MessageTypeCall,
	MessageTypeChannelNameChange,
	MessageTypeChannelIconChange,
	MessageTypeChannelPinnedAdd,
	MessageTypeGuildMemberJoin,
	MessageTypeGuildMemberBoost,
	MessageTypeGuildBoostTier1,
	MessageTypeGuildBoostTier2,
	MessageTypeGuildBoostTier3,
	MessageTypeChannelFollowAdd,
	MessageTypeGuildDiscoveryDisqualified,
	MessageTypeGuildDiscoveryRequalified,
	MessageTypeGuildDiscoveryGracePeriodInitialWarning,
	MessageTypeGuildDiscoveryGracePeriodFinalWarning,
	MessageTypeThreadCreated,
	MessageTypeInlineReply,
	MessageTypeSlashCommand,
	MessageTypeThreadStarterMessage,
	MessageTypeGuildInviteReminder,
	MessageTypeContextCommand,
	MessageTypeAutoModerationAction,
	MessageTypeUnknown,
}

var messageTypeTable = map[MessageType]messageTypeInfo{
	MessageTypeDefault:                                 {"DEFAULT", false, true},
	MessageTypeRecipientAdd:                            {"RECIPIENT_ADD", true, false},
	MessageTypeRecipientRemove:                         {"RECIPIENT_REMOVE", true, false},
	MessageTypeCall:                                    {"CALL", true, false},
	MessageTypeChannelNameChange:                       {"CHANNEL_NAME_CHANGE", true, false},
	MessageTypeChannelIconChange:                       {"CHANNEL_ICON_CHANGE", true, false},
	MessageTypeChannelPinnedAdd:                        {"CHANNEL_PINNED_ADD", true, true},
	MessageTypeGuildMemberJoin:                         {"GUILD_MEMBER_JOIN", true, true},
	MessageTypeGuildMemberBoost:                        {"GUILD_MEMBER_BOOST", true, true},
	MessageTypeGuildBoostTier1:                         {"GUILD_BOOST_TIER_1", true, true},
	MessageTypeGuildBoostTier2:                         {"GUILD_BOOST_TIER_2", true, true},
	MessageTypeGuildBoostTier3:                         {"GUILD_BOOST_TIER_3", true, true},
	MessageTypeChannelFollowAdd:                        {"CHANNEL_FOLLOW_ADD", true, true},
	MessageTypeGuildDiscoveryDisqualified:              {"GUILD_DISCOVERY_DISQUALIFIED", true, false},
	MessageTypeGuildDiscoveryRequalified:               {"GUILD_DISCOVERY_REQUALIFIED", true, false},
	MessageTypeGuildDiscoveryGracePeriodInitialWarning: {"GUILD_DISCOVERY_GRACE_PERIOD_INITIAL_WARNING", true, false},
	MessageTypeGuildDiscoveryGracePeriodFinalWarning:   {"GUILD_DISCOVERY_GRACE_PERIOD_FINAL_WARNING", true, false},
	MessageTypeThreadCreated:                           {"THREAD_CREATED", true, true},
	MessageTypeInlineReply:                             {"INLINE_REPLY", false, true},
	MessageTypeSlashCommand:                            {"SLASH_COMMAND", false, true},
	MessageTypeThreadStarterMessage:                    {"THREAD_STARTER_MESSAGE", false, false},
	MessageTypeGuildInviteReminder:                     {"GUILD_INVITE_REMINDER", true, true},
	MessageTypeContextCommand:                          {"CONTEXT_COMMAND", false, true},
	MessageTypeAutoModerationAction:                    {"AUTO_MODERATION_ACTION", true, true},
	MessageTypeUnknown:                                 {"UNKNOWN", false, true},
}

// MessageTypeFromID returns the MessageType for a wire code, or
// MessageTypeUnknown if the code is not recognised.
func MessageTypeFromID(id int) MessageType {
	return fromID(messageTypes, id, MessageTypeUnknown)
}

// MessageTypes returns every declared MessageType, Unknown included.
func MessageTypes() []MessageType {
	out := make([]MessageType, len(messageTypes))
	copy(out, messageTypes)
	return out
}

func (t MessageType) info() messageTypeInfo {
	if info, ok := messageTypeTable[t]; ok {
		return info
	}
	return messageTypeTable[MessageTypeUnknown]
}

func (t MessageType) ID() int {
	if _, ok := messageTypeTable[t]; !ok {
		return int(MessageTypeUnknown)
	}
	return int(t)
}

// IsSystem reports whether messages of this type are sent by Discord itself
// rather than by a user.
func (t MessageType) IsSystem() bool { return t.info().system }

// CanDelete reports whether messages of this type may be deleted. Thread
// starter messages and most group/discovery notices must stay.
func (t MessageType) CanDelete() bool { return t.info().deletable }

func (t MessageType) String() string { return t.info().name }

// UnmarshalJSON resolves the wire code through MessageTypeFromID.
func (t *MessageType) UnmarshalJSON(data []byte) error {
	id, ok, err := decodeID(data)
	if err != nil || !ok {
		return err
	}
	*t = MessageTypeFromID(id)
	return nil
}
