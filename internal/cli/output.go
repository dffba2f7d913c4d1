package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Identity:
		o.printIdentity(v)
	case Session:
		o.printSession(v)
	case GuessResult:
		o.printGuessResult(v)
	case RoundAdvance:
		o.printRoundAdvance(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Identity response type (matches API)
type Identity struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
}

// Player response type
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Session response type
type Session struct {
	ID           string   `json:"id"`
	Status       string   `json:"status"`
	GameMasterID string   `json:"game_master_id"`
	Players      []Player `json:"players"`
	Question     string   `json:"question,omitempty"`
	CurrentRound int      `json:"current_round"`
	MaxRounds    int      `json:"max_rounds"`
	WinnerID     string   `json:"winner_id,omitempty"`
	EndReason    string   `json:"end_reason,omitempty"`
	GameOver     bool     `json:"game_over"`
}

// GuessResult response type
type GuessResult struct {
	Outcome string  `json:"outcome"`
	Session Session `json:"session"`
}

// RoundAdvance response type
type RoundAdvance struct {
	GameOver  bool     `json:"game_over"`
	Session   Session  `json:"session"`
	Standings []Player `json:"standings,omitempty"`
	Winners   []Player `json:"winners,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printIdentity(p Identity) {
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.PlayerID)
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("Status: %s\n", s.Status)
	fmt.Printf("Round: %d/%d\n", s.CurrentRound, s.MaxRounds)
	if s.Question != "" {
		fmt.Printf("Question: %s\n", s.Question)
	}
	if s.WinnerID != "" {
		fmt.Printf("Round winner: %s\n", s.WinnerID)
	}
	if s.EndReason != "" {
		fmt.Printf("End reason: %s\n", s.EndReason)
	}
	if s.GameOver {
		fmt.Println("Game over")
	}
	fmt.Printf("Players (%d):\n", len(s.Players))
	for _, p := range s.Players {
		gmStr := ""
		if p.ID == s.GameMasterID {
			gmStr = " [game master]"
		}
		fmt.Printf("  - %s (%s) - %d points%s\n", p.Name, p.ID, p.Score, gmStr)
	}
}

func (o *Output) printGuessResult(g GuessResult) {
	switch g.Outcome {
	case "winner":
		fmt.Println("Correct! You won the round.")
	case "incorrect":
		fmt.Println("Incorrect, try again.")
	case "ignored":
		fmt.Println("Guess ignored - the round is not active.")
	default:
		fmt.Printf("Outcome: %s\n", g.Outcome)
	}
}

func (o *Output) printRoundAdvance(a RoundAdvance) {
	if !a.GameOver {
		fmt.Printf("Round %d started\n", a.Session.CurrentRound)
		fmt.Printf("Game master: %s\n", a.Session.GameMasterID)
		return
	}

	fmt.Println("Game over!")
	if len(a.Winners) > 0 {
		names := make([]string, len(a.Winners))
		for i, w := range a.Winners {
			names[i] = w.Name
		}
		fmt.Printf("Winner(s): %s\n", strings.Join(names, ", "))
	}
	if len(a.Standings) > 0 {
		fmt.Println("\nFinal Standings:")
		for i, p := range a.Standings {
			fmt.Printf("  %d. %s - %d points\n", i+1, p.Name, p.Score)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
