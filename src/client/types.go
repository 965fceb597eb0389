package client

import (
	"encoding/json"

	"personal/discord_entities/src/opcodes"
)

type Snowflake string

// Gateway intents requested on identify.
const (
	IntentGuilds         = 1 << 0
	IntentGuildMessages  = 1 << 9
	IntentDirectMessages = 1 << 12
	IntentMessageContent = 1 << 15

	Intents = IntentGuilds | IntentGuildMessages | IntentDirectMessages | IntentMessageContent
)

// Dispatch event names the client decodes into typed entities.
const (
	EventReady         = "READY"
	EventResumed       = "RESUMED"
	EventChannelCreate = "CHANNEL_CREATE"
	EventChannelUpdate = "CHANNEL_UPDATE"
	EventChannelDelete = "CHANNEL_DELETE"
	EventThreadCreate  = "THREAD_CREATE"
	EventMessageCreate = "MESSAGE_CREATE"
)

type GatewayResponse struct {
	Url string `json:"url"`
}

type HelloMessage struct {
	Op opcodes.Opcode `json:"op"`
	D  HelloData      `json:"d"`
}

type HelloData struct {
	HeartbeatInterval int `json:"heartbeat_interval"`
}

type IdentifyMessage struct {
	Op opcodes.Opcode `json:"op"`
	D  IdentifyData   `json:"d"`
}

type IdentifyProperties struct {
	Os      string `json:"os"`
	Browser string `json:"browser"`
	Device  string `json:"device"`
}

type IdentifyData struct {
	Token          string             `json:"token"`
	Properties     IdentifyProperties `json:"properties"`
	Compress       bool               `json:"compress"`
	LargeThreshold int                `json:"large_threshold,omitempty"`
	Shard          []int              `json:"shard"`
	Presence       interface{}        `json:"presence,omitempty"`
	Intents        int                `json:"intents"`
}

type ReadyData struct {
	SessionId string `json:"session_id"`
	ResumeUrl string `json:"resume_gateway_url"`
}

type HeartbeatMessage struct {
	Op opcodes.Opcode `json:"op"`
	D  int64          `json:"d"`
}

type Packet struct {
	Op opcodes.Opcode  `json:"op"`
	T  string          `json:"t"`
	D  json.RawMessage `json:"d"`
	S  int64           `json:"s"`
}
