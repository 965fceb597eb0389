package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"personal/discord_entities/src/entities"
	"personal/discord_entities/src/opcodes"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// newGatewayServer serves /gateway/bot and a websocket endpoint that says
// hello, checks the identify payload, then dispatches the given frames.
func newGatewayServer(t *testing.T, frames ...string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/gateway/bot", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GatewayResponse{Url: "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"})
	})

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != GatewayVersion || r.URL.Query().Get("encoding") != "json" {
			t.Errorf("gateway query = %q", r.URL.RawQuery)
		}
		up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
		ws, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()

		if err := ws.WriteJSON(HelloMessage{Op: opcodes.Hello, D: HelloData{HeartbeatInterval: 60000}}); err != nil {
			return
		}

		var identify IdentifyMessage
		if err := ws.ReadJSON(&identify); err != nil {
			return
		}
		if identify.Op != opcodes.Identify || identify.D.Token != "test-token" || identify.D.Intents != Intents {
			t.Errorf("unexpected identify payload %+v", identify)
		}

		for _, frame := range frames {
			if err := ws.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
				return
			}
		}

		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewBotResolvesGateway(t *testing.T) {
	srv := newGatewayServer(t)
	c, err := NewBot(context.Background(), "test-token", "!", WithAPIURL(srv.URL))
	if err != nil {
		t.Fatalf("NewBot: %v", err)
	}
	if !strings.HasSuffix(c.gateway, "/ws") {
		t.Errorf("gateway = %q", c.gateway)
	}
	if c.Prefix() != "!" {
		t.Errorf("Prefix() = %q", c.Prefix())
	}
	if c.sequence.Load() != -1 {
		t.Errorf("initial sequence = %d, want -1", c.sequence.Load())
	}
}

func TestNewBotGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if _, err := NewBot(context.Background(), "test-token", "!", WithAPIURL(srv.URL)); err == nil {
		t.Fatal("expected an error when /gateway/bot is missing")
	}
}

func TestConnectToGatewayDispatchesTypedEvents(t *testing.T) {
	srv := newGatewayServer(t,
		`{"op":0,"t":"CHANNEL_CREATE","s":1,"d":{"id":"1","type":2,"name":"General"}}`,
		`{"op":0,"t":"MESSAGE_CREATE","s":2,"d":{"id":"2","channel_id":"1","type":21,"content":"","author":{"id":"3","username":"bot","discriminator":"0"}}}`,
	)

	channels := make(chan *Channel, 1)
	messages := make(chan *Message, 1)
	c, err := NewBot(context.Background(), "test-token", "!",
		WithAPIURL(srv.URL),
		WithHandlers(Handlers{
			ChannelCreate: func(ch *Channel) { channels <- ch },
			MessageCreate: func(m *Message) { messages <- m },
		}),
	)
	if err != nil {
		t.Fatalf("NewBot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- c.ConnectToGateway(ctx) }()

	select {
	case ch := <-channels:
		if ch.Type != entities.ChannelTypeVoice || !ch.Type.IsAudio() {
			t.Errorf("channel type = %v, want VOICE", ch.Type)
		}
	case err := <-errc:
		t.Fatalf("ConnectToGateway returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for CHANNEL_CREATE")
	}

	select {
	case m := <-messages:
		if m.Type != entities.MessageTypeThreadStarterMessage || m.CanDelete() {
			t.Errorf("message type = %v, want undeletable THREAD_STARTER_MESSAGE", m.Type)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for MESSAGE_CREATE")
	}

	cancel()
	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("ConnectToGateway error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ConnectToGateway did not return after cancel")
	}

	if seq := c.sequence.Load(); seq != 2 {
		t.Errorf("sequence = %d, want 2", seq)
	}
}

func TestConnectToGatewayWithoutURL(t *testing.T) {
	c := newTestClient(t, "", Handlers{})
	if err := c.ConnectToGateway(context.Background()); err == nil {
		t.Error("expected an error without a gateway URL")
	}
}

func TestVersionedGatewayURL(t *testing.T) {
	got, err := versionedGatewayURL("wss://gateway.discord.gg")
	if err != nil {
		t.Fatalf("versionedGatewayURL: %v", err)
	}
	if got != "wss://gateway.discord.gg?encoding=json&v=10" {
		t.Errorf("got %q", got)
	}

	got, err = versionedGatewayURL("wss://gateway.discord.gg/?v=9")
	if err != nil {
		t.Fatalf("versionedGatewayURL: %v", err)
	}
	if !strings.Contains(got, "v=9") || strings.Contains(got, "v=10") {
		t.Errorf("existing version should be kept, got %q", got)
	}
}

func TestDisconnectWithoutConnection(t *testing.T) {
	c := newTestClient(t, "", Handlers{})
	if err := c.Disconnect(); err != nil {
		t.Errorf("Disconnect on an idle client: %v", err)
	}
}

// lockedBuffer lets the heartbeat and listening goroutines share one log sink.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestConnectToGatewayReadFailureReleasesConnection(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
		ws, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		if err := ws.WriteJSON(HelloMessage{Op: opcodes.Hello, D: HelloData{HeartbeatInterval: 10}}); err != nil {
			return
		}
		var identify IdentifyMessage
		ws.ReadJSON(&identify)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	logs := &lockedBuffer{}
	c := newTestClient(t, "", Handlers{})
	c.log = zerolog.New(logs).Level(zerolog.DebugLevel)
	c.gateway = "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	errc := make(chan error, 1)
	go func() { errc <- c.ConnectToGateway(context.Background()) }()

	select {
	case err := <-errc:
		if err == nil {
			t.Fatal("expected an error after the server closed the socket")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ConnectToGateway did not return after the socket closed")
	}

	if c.connection.Load() != nil {
		t.Error("connection should be cleared after a read failure")
	}

	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(logs.String(), "stopping heartbeat") {
		if time.Now().After(deadline) {
			t.Fatalf("heartbeat goroutine did not stop, logs:\n%s", logs.String())
		}
		time.Sleep(10 * time.Millisecond)
	}

	stopped := strings.Count(logs.String(), "failed to send heartbeat")
	time.Sleep(50 * time.Millisecond)
	if got := strings.Count(logs.String(), "failed to send heartbeat"); got != stopped {
		t.Errorf("heartbeat kept running after return: %d failures, then %d", stopped, got)
	}
}
