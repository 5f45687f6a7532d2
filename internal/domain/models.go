package domain

import "github.com/google/uuid"

// Question is one entry in the session's fixed sequence. Options keep the
// order they were authored in; Correct indexes into Options. Immutable once
// the bank is built.
type Question struct {
	ID       int      `json:"id"`
	Category string   `json:"category"`
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
	Points   int      `json:"points"` // defaults to 1 if zero
}

// QuestionView is the participant-facing projection of a question. The
// correct index is withheld so clients cannot read the answer off the wire.
type QuestionView struct {
	ID       int      `json:"id"`
	Category string   `json:"category"`
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options"`
	Points   int      `json:"points"`
}

// View strips the correct index from a question.
func (q Question) View() QuestionView {
	options := make([]string, len(q.Options))
	copy(options, q.Options)
	return QuestionView{
		ID:       q.ID,
		Category: q.Category,
		Prompt:   q.Prompt,
		Options:  options,
		Points:   q.Points,
	}
}

// Team groups players under a unique name and accumulates their score.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Score   int      `json:"score"`
	Players []Player `json:"players"`
}

// Player belongs to exactly one team. TeamID is a lookup reference, not
// ownership; the team owns the player list.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	TeamID string `json:"teamId"`
}

// NewID allocates an identity for teams and players.
func NewID() string {
	return uuid.NewString()
}

// GameSnapshot is a consistent read of the session flags for presentation
// layers. AnsweredTeams counts ledger entries for the current question.
type GameSnapshot struct {
	Position       int  `json:"position"`
	QuestionCount  int  `json:"questionCount"`
	Active         bool `json:"active"`
	ResultsVisible bool `json:"resultsVisible"`
	Ended          bool `json:"ended"`
	AnsweredTeams  int  `json:"answeredTeams"`
}
