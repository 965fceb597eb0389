package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"personal/discord_entities/src/entities"
)

// GetChannel fetches a channel by id.
func (c *Client) GetChannel(ctx context.Context, channelID Snowflake) (*Channel, error) {
	var channel Channel
	if err := c.get(ctx, "/channels/"+string(channelID), &channel); err != nil {
		return nil, err
	}
	if channel.Type == entities.ChannelTypeUnknown {
		c.log.Warn().Str("channel_id", string(channelID)).Msg("GetChannel: channel kind not recognised, treating as UNKNOWN")
	}
	return &channel, nil
}

// GetSticker fetches a sticker by id.
func (c *Client) GetSticker(ctx context.Context, stickerID Snowflake) (*Sticker, error) {
	var sticker Sticker
	if err := c.get(ctx, "/stickers/"+string(stickerID), &sticker); err != nil {
		return nil, err
	}
	return &sticker, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	requestURL := c.apiURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bot %s", c.token))

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making http request: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return &APIError{StatusCode: res.StatusCode, Path: path, Body: string(resBody)}
	}

	if err := json.Unmarshal(resBody, out); err != nil {
		return fmt.Errorf("could not unmarshal response body: %w", err)
	}
	return nil
}

// APIError is returned for non-200 REST responses.
type APIError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: GET %s: status %d: %s", e.Path, e.StatusCode, e.Body)
}
