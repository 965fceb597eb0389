package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"personal/discord_entities/src/opcodes"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	DiscordAPI     = "https://discord.com/api/v10"
	GatewayVersion = "10"
)

type Client struct {
	token      string
	apiURL     string
	httpClient *http.Client
	prefix     string
	log        zerolog.Logger
	handlers   Handlers

	mu            sync.RWMutex
	gateway       string
	sessionId     string
	resumeGateway string

	heartbeatInterval      atomic.Int64
	lastHeartbeatAcked     atomic.Bool
	lastHeartbeatTimestamp atomic.Int64 // unix nanos of the last heartbeat sent
	heartbeatLatency       atomic.Int64
	sequence               atomic.Int64
	connection             atomic.Pointer[websocket.Conn]

	// gorilla/websocket allows one concurrent writer.
	writeMu sync.Mutex

	messageChannel chan []byte
}

type Option func(*Client)

// WithAPIURL points REST calls at a different base URL.
func WithAPIURL(apiURL string) Option {
	return func(c *Client) { c.apiURL = apiURL }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

func WithHandlers(handlers Handlers) Option {
	return func(c *Client) { c.handlers = handlers }
}

// NewBot builds a client and asks the REST API for the gateway URL to connect to.
func NewBot(ctx context.Context, token string, prefix string, opts ...Option) (*Client, error) {
	client := &Client{
		token:  token,
		prefix: prefix,
		apiURL: DiscordAPI,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(client)
	}

	var response GatewayResponse
	if err := client.get(ctx, "/gateway/bot", &response); err != nil {
		return nil, fmt.Errorf("could not fetch gateway: %w", err)
	}

	client.gateway = response.Url
	client.sequence.Store(-1)
	client.lastHeartbeatAcked.Store(true)

	client.log.Debug().Str("gateway", response.Url).Msg("NewBot: resolved gateway")

	return client, nil
}

// Prefix is the command prefix the bot was configured with.
func (c *Client) Prefix() string { return c.prefix }

// ConnectToGateway establishes a WebSocket connection to Discord's gateway and
// starts the main event loop. It will block until the context is cancelled or
// an error occurs. Reconnecting is left to the caller.
func (c *Client) ConnectToGateway(ctx context.Context) error {
	if c.gateway == "" {
		return fmt.Errorf("gateway URL not set")
	}

	gatewayURL, err := versionedGatewayURL(c.gateway)
	if err != nil {
		return err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, gatewayURL, http.Header{})
	if err != nil {
		return fmt.Errorf("could not connect to WebSocket: %w", err)
	}

	c.connection.Store(conn)
	fail := func(err error) error {
		c.connection.Store(nil)
		conn.Close()
		return err
	}

	_, messageBody, err := conn.ReadMessage()
	if err != nil {
		return fail(fmt.Errorf("could not receive hello message: %w", err))
	}

	var message HelloMessage
	if err := json.Unmarshal(messageBody, &message); err != nil {
		return fail(fmt.Errorf("could not unmarshal hello message: %w", err))
	}

	if message.Op != opcodes.Hello {
		return fail(fmt.Errorf("invalid handshake: expected %v (opcode %d), got %v", opcodes.Hello, opcodes.Hello, message.Op))
	}

	interval := time.Duration(message.D.HeartbeatInterval) * time.Millisecond
	if interval <= 0 {
		return fail(fmt.Errorf("invalid handshake: heartbeat interval %d", message.D.HeartbeatInterval))
	}
	c.heartbeatInterval.Store(int64(interval))

	c.log.Info().Dur("heartbeat_interval", interval).Msg("ConnectToGateway: handshake complete")

	if err := c.identify(); err != nil {
		return fail(fmt.Errorf("failed to identify: %w", err))
	}

	hbCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.startHeartbeat(hbCtx)

	return c.startListening(ctx)
}

func versionedGatewayURL(gateway string) (string, error) {
	u, err := url.Parse(gateway)
	if err != nil {
		return "", fmt.Errorf("invalid gateway URL %q: %w", gateway, err)
	}
	q := u.Query()
	if q.Get("v") == "" {
		q.Set("v", GatewayVersion)
	}
	if q.Get("encoding") == "" {
		q.Set("encoding", "json")
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) write(v interface{}) error {
	conn := c.connection.Load()
	if conn == nil {
		return fmt.Errorf("connection is not open")
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not marshal payload: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func (c *Client) identify() error {
	identifyMessage := IdentifyMessage{
		Op: opcodes.Identify,
		D: IdentifyData{
			Token: c.token,
			Properties: IdentifyProperties{
				Os:      "linux",
				Browser: "discord_entities",
				Device:  "discord_entities",
			},
			Shard:   []int{0, 1},
			Intents: Intents,
		},
	}

	if err := c.write(identifyMessage); err != nil {
		return fmt.Errorf("could not send identify message: %w", err)
	}

	c.log.Debug().Msg("identify: sent identify message")
	return nil
}

func (c *Client) startHeartbeat(ctx context.Context) {
	interval := time.Duration(c.heartbeatInterval.Load())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.log.Debug().Dur("interval", interval).Msg("startHeartbeat: starting heartbeat")

	for {
		select {
		case <-ctx.Done():
			c.log.Debug().Msg("startHeartbeat: context cancelled, stopping heartbeat")
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			if err := c.sendHeartbeat(); err != nil {
				c.log.Warn().Err(err).Msg("startHeartbeat: failed to send heartbeat")
			}
		}
	}
}

func (c *Client) sendHeartbeat() error {
	if !c.lastHeartbeatAcked.Load() {
		return fmt.Errorf("last heartbeat was not acknowledged")
	}

	if c.connection.Load() == nil {
		return fmt.Errorf("connection is nil")
	}

	c.lastHeartbeatAcked.Store(false)
	c.lastHeartbeatTimestamp.Store(time.Now().UnixNano())

	heartbeatMessage := HeartbeatMessage{
		Op: opcodes.Heartbeat,
		D:  c.sequence.Load(),
	}

	if err := c.write(heartbeatMessage); err != nil {
		return fmt.Errorf("could not send heartbeat message: %w", err)
	}

	c.log.Trace().Msg("sendHeartbeat: sent heartbeat message")
	return nil
}

func (c *Client) startListening(ctx context.Context) error {
	conn := c.connection.Load()
	if conn == nil {
		return fmt.Errorf("connection is not open")
	}

	c.log.Debug().Msg("startListening: started listening for messages")

	c.messageChannel = make(chan []byte, 10)
	errCh := make(chan error, 1)

	go func() {
		defer close(c.messageChannel)
		for {
			_, messageBody, err := conn.ReadMessage()
			if err != nil {
				errCh <- fmt.Errorf("could not receive message from WebSocket: %w", err)
				return
			}

			select {
			case c.messageChannel <- messageBody:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			c.log.Info().Msg("startListening: context cancelled, closing connection")
			if conn := c.connection.Swap(nil); conn != nil {
				conn.Close()
			}
			return ctx.Err()

		case err := <-errCh:
			c.dropConnection(conn)
			return err

		case messageBody, ok := <-c.messageChannel:
			if !ok {
				c.dropConnection(conn)
				return fmt.Errorf("message channel closed")
			}

			if err := c.handleMessage(messageBody); err != nil {
				c.log.Error().Err(err).Msg("startListening: error handling message")
			}
		}
	}
}

// dropConnection forgets conn, unless Disconnect or a newer dial already
// replaced it, and closes it.
func (c *Client) dropConnection(conn *websocket.Conn) {
	c.connection.CompareAndSwap(conn, nil)
	conn.Close()
}

func (c *Client) handleMessage(messageBody []byte) error {
	var message Packet
	if err := json.Unmarshal(messageBody, &message); err != nil {
		return fmt.Errorf("could not unmarshal message body: %w (body: %s)", err, string(messageBody))
	}

	switch message.Op {
	case opcodes.HeartbeatACK:
		c.acknowledgeHeartbeat()

	case opcodes.Heartbeat:
		if err := c.sendHeartbeat(); err != nil {
			return fmt.Errorf("failed to send requested heartbeat: %w", err)
		}

	case opcodes.Reconnect:
		return fmt.Errorf("received %v: reconnecting is left to the caller", message.Op)

	case opcodes.Dispatch:
		c.advanceSequence(message.S)
		if err := c.onEvent(message.T, message.D); err != nil {
			return err
		}

	case opcodes.InvalidSession:
		return c.handleInvalidSession(message.D)

	default:
		c.log.Debug().Stringer("op", message.Op).Msg("handleMessage: received unhandled opcode")
	}

	return nil
}

// advanceSequence only ever moves the sequence forward.
func (c *Client) advanceSequence(seq int64) {
	if seq <= 0 {
		return
	}
	for {
		oldSeq := c.sequence.Load()
		if seq <= oldSeq {
			return
		}
		if c.sequence.CompareAndSwap(oldSeq, seq) {
			return
		}
	}
}

func (c *Client) acknowledgeHeartbeat() {
	c.log.Trace().Msg("acknowledgeHeartbeat: received heartbeat ACK")
	c.lastHeartbeatAcked.Store(true)
	if sent := c.lastHeartbeatTimestamp.Load(); sent > 0 {
		c.heartbeatLatency.Store(time.Now().UnixNano() - sent)
	}
}

// HeartbeatLatency is the round trip of the last acknowledged heartbeat, or 0
// before the first ACK.
func (c *Client) HeartbeatLatency() time.Duration {
	return time.Duration(c.heartbeatLatency.Load())
}

func (c *Client) handleInvalidSession(data json.RawMessage) error {
	var canResume bool
	if err := json.Unmarshal(data, &canResume); err != nil {
		return fmt.Errorf("could not unmarshal invalid session data: %w", err)
	}

	if canResume {
		return fmt.Errorf("received invalid session (resumable)")
	}

	return fmt.Errorf("received invalid session (not resumable)")
}

// SessionID returns the session id from the last READY event.
func (c *Client) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionId
}

// ResumeGatewayURL returns the gateway URL Discord asked resumes to use, from
// the last READY event. Resuming itself is left to the caller.
func (c *Client) ResumeGatewayURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resumeGateway
}

func (c *Client) Disconnect() error {
	conn := c.connection.Swap(nil)
	if conn == nil {
		return nil
	}

	c.log.Info().Msg("Disconnect: closing WebSocket connection")

	c.writeMu.Lock()
	err := conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
	c.writeMu.Unlock()
	if err != nil {
		c.log.Warn().Err(err).Msg("Disconnect: failed to send close message")
	}

	if err := conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	c.log.Info().Msg("Disconnect: connection closed successfully")
	return nil
}
