package entities

import (
	"encoding/json"
	"testing"
)

func TestMessageTypeWireCodes(t *testing.T) {
	tests := []struct {
		id   int
		want MessageType
	}{
		{0, MessageTypeDefault},
		{6, MessageTypeChannelPinnedAdd},
		{12, MessageTypeChannelFollowAdd},
		{14, MessageTypeGuildDiscoveryDisqualified},
		{17, MessageTypeGuildDiscoveryGracePeriodFinalWarning},
		{19, MessageTypeInlineReply},
		{20, MessageTypeSlashCommand},
		{21, MessageTypeThreadStarterMessage},
		{24, MessageTypeAutoModerationAction},
	}
	for _, tt := range tests {
		got := MessageTypeFromID(tt.id)
		if got != tt.want {
			t.Errorf("MessageTypeFromID(%d) = %v, want %v", tt.id, got, tt.want)
		}
		if got.ID() != tt.id {
			t.Errorf("MessageTypeFromID(%d).ID() = %d", tt.id, got.ID())
		}
	}
}

func TestMessageTypeUnknownCodes(t *testing.T) {
	for _, id := range []int{13, 25, 46, -7} {
		got := MessageTypeFromID(id)
		if got != MessageTypeUnknown {
			t.Errorf("MessageTypeFromID(%d) = %v, want UNKNOWN", id, got)
		}
		if again := MessageTypeFromID(id); again != got {
			t.Errorf("MessageTypeFromID(%d) not idempotent", id)
		}
	}
}

func TestMessageTypeRoundTrip(t *testing.T) {
	seen := make(map[int]MessageType)
	for _, mt := range MessageTypes() {
		if got := MessageTypeFromID(mt.ID()); got != mt {
			t.Errorf("round trip of %v gave %v", mt, got)
		}
		if prev, dup := seen[mt.ID()]; dup {
			t.Errorf("%v and %v share id %d", prev, mt, mt.ID())
		}
		seen[mt.ID()] = mt
	}
}

func TestMessageTypeCanDelete(t *testing.T) {
	fixed := map[MessageType]bool{
		MessageTypeRecipientAdd:                            true,
		MessageTypeRecipientRemove:                         true,
		MessageTypeCall:                                    true,
		MessageTypeChannelNameChange:                       true,
		MessageTypeChannelIconChange:                       true,
		MessageTypeGuildDiscoveryDisqualified:              true,
		MessageTypeGuildDiscoveryRequalified:               true,
		MessageTypeGuildDiscoveryGracePeriodInitialWarning: true,
		MessageTypeGuildDiscoveryGracePeriodFinalWarning:   true,
		MessageTypeThreadStarterMessage:                    true,
	}
	for _, mt := range MessageTypes() {
		if mt.CanDelete() == fixed[mt] {
			t.Errorf("%v.CanDelete() = %v, want %v", mt, mt.CanDelete(), !fixed[mt])
		}
	}
}

func TestMessageTypeIsSystem(t *testing.T) {
	user := []MessageType{
		MessageTypeDefault,
		MessageTypeInlineReply,
		MessageTypeSlashCommand,
		MessageTypeThreadStarterMessage,
		MessageTypeContextCommand,
		MessageTypeUnknown,
	}
	for _, mt := range user {
		if mt.IsSystem() {
			t.Errorf("%v should not be a system message", mt)
		}
	}
	for _, mt := range []MessageType{MessageTypeGuildMemberJoin, MessageTypeAutoModerationAction, MessageTypeThreadCreated} {
		if !mt.IsSystem() {
			t.Errorf("%v should be a system message", mt)
		}
	}
}

func TestMessageTypeUnmarshalJSON(t *testing.T) {
	var msg struct {
		Type MessageType `json:"type"`
	}
	if err := json.Unmarshal([]byte(`{"type":19}`), &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != MessageTypeInlineReply {
		t.Errorf("decoded %v, want INLINE_REPLY", msg.Type)
	}
	if err := json.Unmarshal([]byte(`{"type":46}`), &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != MessageTypeUnknown || msg.Type.String() != "UNKNOWN" {
		t.Errorf("decoded %v, want UNKNOWN", msg.Type)
	}
}
