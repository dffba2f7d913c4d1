package request

// RegisterPlayerRequest is the request body for registering a player identity
type RegisterPlayerRequest struct {
	DisplayName string `json:"display_name"`
}

// CreateSessionRequest is the request body for creating a session
type CreateSessionRequest struct {
	PlayerName string `json:"player_name"`
}

// JoinSessionRequest is the request body for joining a session
type JoinSessionRequest struct {
	PlayerName string `json:"player_name"`
}

// SetQuestionRequest is the request body for setting the round's question
type SetQuestionRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SubmitGuessRequest is the request body for submitting a guess
type SubmitGuessRequest struct {
	Guess string `json:"guess"`
}
