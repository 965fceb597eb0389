package client

import (
	"encoding/json"
	"fmt"

	"personal/discord_entities/src/entities"

	"github.com/rs/zerolog"
)

// Handlers receive decoded dispatch events. They run synchronously on the
// listening goroutine; nil handlers are skipped.
type Handlers struct {
	Ready         func(ReadyData)
	ChannelCreate func(*Channel)
	ChannelUpdate func(*Channel)
	ChannelDelete func(*Channel)
	ThreadCreate  func(*Channel)
	MessageCreate func(*Message)
}

func (c *Client) onEvent(name string, data json.RawMessage) error {
	switch name {
	case EventReady:
		var ready ReadyData
		if err := json.Unmarshal(data, &ready); err != nil {
			return fmt.Errorf("could not unmarshal %s event data: %w", name, err)
		}

		c.mu.Lock()
		c.sessionId = ready.SessionId
		c.resumeGateway = ready.ResumeUrl
		c.mu.Unlock()

		c.log.Info().Str("session_id", ready.SessionId).Msg("onEvent: received READY event")

		c.lastHeartbeatAcked.Store(true)
		if err := c.sendHeartbeat(); err != nil {
			c.log.Warn().Err(err).Msg("onEvent: failed to send initial heartbeat")
		}

		if c.handlers.Ready != nil {
			c.handlers.Ready(ready)
		}

	case EventResumed:
		c.log.Info().Msg("onEvent: received RESUMED event")

	case EventChannelCreate, EventChannelUpdate, EventChannelDelete, EventThreadCreate:
		var channel Channel
		if err := json.Unmarshal(data, &channel); err != nil {
			return fmt.Errorf("could not unmarshal %s event data: %w", name, err)
		}
		c.logChannel(name, &channel)
		if handler := c.channelHandler(name); handler != nil {
			handler(&channel)
		}

	case EventMessageCreate:
		var message Message
		if err := json.Unmarshal(data, &message); err != nil {
			return fmt.Errorf("could not unmarshal %s event data: %w", name, err)
		}
		c.logMessage(&message)
		if c.handlers.MessageCreate != nil {
			c.handlers.MessageCreate(&message)
		}

	default:
		c.log.Debug().Str("event", name).Msg("onEvent: unhandled event type")
	}

	return nil
}

func (c *Client) channelHandler(name string) func(*Channel) {
	switch name {
	case EventChannelCreate:
		return c.handlers.ChannelCreate
	case EventChannelUpdate:
		return c.handlers.ChannelUpdate
	case EventChannelDelete:
		return c.handlers.ChannelDelete
	case EventThreadCreate:
		return c.handlers.ThreadCreate
	}
	return nil
}

func (c *Client) logChannel(event string, channel *Channel) {
	if channel.Type == entities.ChannelTypeUnknown {
		c.log.Warn().
			Str("event", event).
			Str("channel_id", string(channel.ID)).
			Msg("onEvent: channel kind not recognised, handling as UNKNOWN")
		return
	}
	c.log.Debug().
		Str("event", event).
		Str("channel_id", string(channel.ID)).
		Stringer("kind", channel.Type).
		Bool("thread", channel.Type.IsThread()).
		Bool("audio", channel.Type.IsAudio()).
		Msg("onEvent: channel event")
}

func (c *Client) logMessage(message *Message) {
	level := zerolog.DebugLevel
	if message.Type == entities.MessageTypeUnknown {
		level = zerolog.WarnLevel
	}
	c.log.WithLevel(level).
		Str("message_id", string(message.ID)).
		Stringer("kind", message.Type).
		Bool("system", message.Type.IsSystem()).
		Int("stickers", len(message.StickerItems)).
		Msg("onEvent: message created")

	for _, item := range message.StickerItems {
		if _, err := item.IconURL(); err != nil {
			c.log.Warn().Err(err).Str("sticker_id", string(item.ID)).Msg("onEvent: sticker has no renderable asset")
		}
	}
}
