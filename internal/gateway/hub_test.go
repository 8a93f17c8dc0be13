package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/eugeneboyah/LIb-Score/internal/events"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := hub.Upgrade(w, r); err != nil {
			t.Errorf("upgrade failed: %v", err)
		}
	}))
	t.Cleanup(srv.Close)

	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func testEvent(t *testing.T) events.Event {
	t.Helper()

	event, err := events.New(events.TypeScoreUpdate, uuid.New(), events.ScoreUpdatePayload{
		MatchID:   uuid.New(),
		HomeScore: 1,
		AwayScore: 0,
	}, time.Now())
	if err != nil {
		t.Fatalf("build event: %v", err)
	}
	return event
}

func TestHubBroadcastsToAllSessions(t *testing.T) {
	hub, srv := startHub(t)

	first := dial(t, srv)
	second := dial(t, srv)

	// Wait for both sessions to register
	deadline := time.Now().Add(2 * time.Second)
	for hub.Stats()["total_sessions"] < 2 {
		if time.Now().After(deadline) {
			t.Fatal("sessions never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	sent := testEvent(t)
	if err := hub.Publish(context.Background(), sent); err != nil {
		t.Fatalf("publish: %v", err)
	}

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}

		var got events.Event
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.ID != sent.ID || got.Type != events.TypeScoreUpdate {
			t.Errorf("received event %s/%s, want %s/%s", got.ID, got.Type, sent.ID, sent.Type)
		}
	}
}

func TestLateSubscriberGetsNoReplay(t *testing.T) {
	hub, srv := startHub(t)

	if err := hub.Publish(context.Background(), testEvent(t)); err != nil {
		t.Fatalf("publish: %v", err)
	}

	// Give the hub time to process before anyone connects
	time.Sleep(100 * time.Millisecond)

	late := dial(t, srv)
	late.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	if _, _, err := late.ReadMessage(); err == nil {
		t.Fatal("late subscriber received a replayed event")
	}
}

func TestBroadcastSurvivesDisconnectingSessions(t *testing.T) {
	hub, srv := startHub(t)

	conns := make([]*websocket.Conn, 0, 8)
	for i := 0; i < 8; i++ {
		conns = append(conns, dial(t, srv))
	}

	deadline := time.Now().Add(2 * time.Second)
	for hub.Stats()["total_sessions"] < 8 {
		if time.Now().After(deadline) {
			t.Fatal("sessions never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Tear sessions down while broadcasts are in flight. A disconnect
	// landing between the hub's registry snapshot and the channel send
	// must never take the run loop down.
	event := testEvent(t)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, conn := range conns {
			conn.Close()
			time.Sleep(time.Millisecond)
		}
	}()
	for i := 0; i < 500; i++ {
		if err := hub.Publish(context.Background(), event); err != nil {
			t.Errorf("publish: %v", err)
		}
	}
	wg.Wait()

	// The hub must still serve a fresh session
	fresh := dial(t, srv)

	deadline = time.Now().Add(5 * time.Second)
	for hub.Stats()["total_sessions"] != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("expected 1 live session, have %d", hub.Stats()["total_sessions"])
		}
		time.Sleep(10 * time.Millisecond)
	}

	sent := testEvent(t)
	if err := hub.Publish(context.Background(), sent); err != nil {
		t.Fatalf("publish after churn: %v", err)
	}

	fresh.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		_, data, err := fresh.ReadMessage()
		if err != nil {
			t.Fatalf("read after churn: %v", err)
		}
		var got events.Event
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.ID == sent.ID {
			break
		}
	}
}

func TestHubStats(t *testing.T) {
	hub, srv := startHub(t)

	if got := hub.Stats()["total_sessions"]; got != 0 {
		t.Fatalf("expected 0 sessions, got %d", got)
	}

	dial(t, srv)

	deadline := time.Now().Add(2 * time.Second)
	for hub.Stats()["total_sessions"] != 1 {
		if time.Now().After(deadline) {
			t.Fatal("session never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
