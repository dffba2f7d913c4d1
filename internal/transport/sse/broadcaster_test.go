package sse

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/guessparty/guessparty/internal/model"
	"github.com/guessparty/guessparty/internal/testutil"
)

func testSession() *model.Session {
	return &model.Session{
		ID:           "ABC234",
		Status:       model.StatusActive,
		GameMasterID: "alice",
		Players: []model.Player{
			{ID: "alice", Name: "Alice", Score: 0},
			{ID: "bob", Name: "Bob", Score: 10},
		},
		Question:     "Capital of France?",
		Answer:       "paris",
		CurrentRound: 1,
		MaxRounds:    3,
	}
}

func receive(t *testing.T, client *Client) string {
	t.Helper()
	select {
	case msg := <-client.send:
		return string(msg)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("client did not receive message")
		return ""
	}
}

func TestBroadcaster_RoundEndedRevealsAnswer(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	session := testSession()
	session.Status = model.StatusEnded
	session.EndReason = model.EndReasonCorrect
	session.WinnerID = "bob"

	hub := manager.GetOrCreateHub(session.ID)
	defer manager.RemoveHub(session.ID)
	client := NewClient(hub, "alice")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.RoundEnded(context.Background(), session)

	msg := receive(t, client)
	if !strings.HasPrefix(msg, "event: round_ended\n") {
		t.Errorf("unexpected event: %q", msg)
	}
	if !strings.Contains(msg, `"winner_id":"bob"`) {
		t.Errorf("winner missing from payload: %q", msg)
	}
	if !strings.Contains(msg, `"answer":"paris"`) {
		t.Errorf("answer missing from payload: %q", msg)
	}
}

func TestBroadcaster_RoundStartedOmitsAnswer(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	session := testSession()

	hub := manager.GetOrCreateHub(session.ID)
	defer manager.RemoveHub(session.ID)
	client := NewClient(hub, "bob")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.RoundStarted(session, 60)

	msg := receive(t, client)
	if !strings.HasPrefix(msg, "event: round_started\n") {
		t.Errorf("unexpected event: %q", msg)
	}
	if !strings.Contains(msg, `"question":"Capital of France?"`) {
		t.Errorf("question missing from payload: %q", msg)
	}
	if strings.Contains(msg, "paris") {
		t.Errorf("answer leaked in round_started payload: %q", msg)
	}
}

func TestBroadcaster_PlayerLeftIncludesHandover(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	session := testSession()
	session.Status = model.StatusWaiting
	session.GameMasterID = "bob"

	hub := manager.GetOrCreateHub(session.ID)
	defer manager.RemoveHub(session.ID)
	client := NewClient(hub, "bob")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.PlayerLeft(session, "bob")

	first := receive(t, client)
	if !strings.HasPrefix(first, "event: player_left\n") {
		t.Errorf("unexpected first event: %q", first)
	}

	second := receive(t, client)
	if !strings.HasPrefix(second, "event: game_master_changed\n") {
		t.Errorf("unexpected second event: %q", second)
	}
	if !strings.Contains(second, `"game_master_id":"bob"`) {
		t.Errorf("handover missing from payload: %q", second)
	}
}

func TestBroadcaster_NoHubIsNoOp(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	// No hub registered for this session: must not panic
	broadcaster.PlayerJoined(testSession())
}
