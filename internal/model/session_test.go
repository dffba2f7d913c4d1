package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Paris", "paris"},
		{"  Paris ", "paris"},
		{"PARIS", "paris"},
		{"  the Eiffel Tower\t", "the eiffel tower"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "Normalize(%q)", tt.input)
	}
}

func threePlayerSession() *Session {
	return &Session{
		ID:           "ABC234",
		Status:       StatusWaiting,
		GameMasterID: "alice",
		Players: []Player{
			{ID: "alice", Name: "Alice", Score: 0},
			{ID: "bob", Name: "Bob", Score: 0},
			{ID: "carol", Name: "Carol", Score: 0},
		},
		CurrentRound: 1,
		MaxRounds:    3,
	}
}

func TestNextGameMasterRotatesInJoinOrder(t *testing.T) {
	s := threePlayerSession()

	assert.Equal(t, PlayerID("bob"), s.NextGameMaster())

	s.GameMasterID = "bob"
	assert.Equal(t, PlayerID("carol"), s.NextGameMaster())

	// Wraps around
	s.GameMasterID = "carol"
	assert.Equal(t, PlayerID("alice"), s.NextGameMaster())
}

func TestNextGameMasterWhenCurrentLeft(t *testing.T) {
	s := threePlayerSession()
	s.GameMasterID = "departed"

	assert.Equal(t, PlayerID("alice"), s.NextGameMaster())
}

func TestNextGameMasterEmptyRoster(t *testing.T) {
	s := &Session{}
	assert.Equal(t, PlayerID(""), s.NextGameMaster())
}

func TestGameOver(t *testing.T) {
	s := threePlayerSession()
	assert.False(t, s.GameOver())

	s.CurrentRound = 3
	assert.False(t, s.GameOver())

	s.CurrentRound = 4
	assert.True(t, s.GameOver())
}

func TestStandingsSortedByScoreKeepingJoinOrder(t *testing.T) {
	s := threePlayerSession()
	s.GetPlayer("bob").Score = 20
	s.GetPlayer("carol").Score = 10

	standings := s.Standings()
	assert.Equal(t, PlayerID("bob"), standings[0].ID)
	assert.Equal(t, PlayerID("carol"), standings[1].ID)
	assert.Equal(t, PlayerID("alice"), standings[2].ID)

	// Ties keep join order
	s.GetPlayer("carol").Score = 20
	standings = s.Standings()
	assert.Equal(t, PlayerID("bob"), standings[0].ID)
	assert.Equal(t, PlayerID("carol"), standings[1].ID)
}

func TestWinnersSingle(t *testing.T) {
	s := threePlayerSession()
	s.GetPlayer("carol").Score = 10

	winners := s.Winners()
	assert.Len(t, winners, 1)
	assert.Equal(t, PlayerID("carol"), winners[0].ID)
}

func TestWinnersJointOnTie(t *testing.T) {
	s := threePlayerSession()
	s.GetPlayer("bob").Score = 10
	s.GetPlayer("carol").Score = 10

	winners := s.Winners()
	assert.Len(t, winners, 2)
	assert.Equal(t, PlayerID("bob"), winners[0].ID)
	assert.Equal(t, PlayerID("carol"), winners[1].ID)
}

func TestWinnersAllZeroScores(t *testing.T) {
	s := threePlayerSession()
	assert.Len(t, s.Winners(), 3)
}

func TestHasQuestion(t *testing.T) {
	s := threePlayerSession()
	assert.False(t, s.HasQuestion())

	s.Question = "Capital of France?"
	assert.False(t, s.HasQuestion())

	s.Answer = "paris"
	assert.True(t, s.HasQuestion())
}
