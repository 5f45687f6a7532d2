package app

import (
	"sync"

	"pub-trivia-service/internal/domain"
)

// Broadcast event names, one per state transition. Events carry no payload;
// clients re-fetch state after receiving one.
const (
	EventGameStarted  = "GameStarted"
	EventNextQuestion = "NextQuestion"
	EventUpdateGame   = "UpdateGame"
	EventGameReset    = "GameReset"
	EventQuizEnded    = "QuizEnded"
)

// Notifier is the push sink for transition broadcasts. Delivery is
// best-effort; the game never waits on it.
type Notifier interface {
	NotifyAll(event string)
	NotifyOthers(callerID, event string)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) NotifyAll(string)            {}
func (NopNotifier) NotifyOthers(string, string) {}

type phase int

const (
	phaseIdle phase = iota
	phaseActive
	phaseResults
	phaseEnded
)

// SubmitStatus reports the outcome of an answer submission to its caller.
type SubmitStatus int

const (
	// SubmitAccepted means the answer was recorded (and scored if correct).
	SubmitAccepted SubmitStatus = iota
	// SubmitDuplicate means the team already answered this question; the
	// first answer stands.
	SubmitDuplicate
	// SubmitClosed means the session is not currently accepting answers.
	SubmitClosed
)

func (s SubmitStatus) String() string {
	switch s {
	case SubmitAccepted:
		return "accepted"
	case SubmitDuplicate:
		return "duplicate"
	default:
		return "closed"
	}
}

// Game is the authoritative session state machine. All mutating operations
// run under one mutex covering validation, the ledger write, and the score
// award, so concurrent submissions and transitions never interleave.
// Broadcasts go out after the lock is released.
type Game struct {
	bank     *QuestionBank
	notifier Notifier

	mu       sync.RWMutex
	roster   *Roster
	position int
	phase    phase
	results  bool
	answers  map[string]int
}

func NewGame(bank *QuestionBank, notifier Notifier) *Game {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Game{
		bank:     bank,
		notifier: notifier,
		roster:   NewRoster(),
		answers:  make(map[string]int),
	}
}

// CreateTeam registers a team by name.
func (g *Game) CreateTeam(name string) (domain.Team, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.roster.CreateTeam(name)
}

// JoinTeam attaches a player to the named team, creating it if needed.
func (g *Game) JoinTeam(teamName, playerName string) (domain.Team, domain.Player) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.roster.JoinTeam(teamName, playerName)
}

// Start opens the first question for answers. Calling it when the session is
// already running or ended is a harmless no-op and emits no broadcast.
func (g *Game) Start() {
	g.mu.Lock()
	if g.phase != phaseIdle {
		g.mu.Unlock()
		return
	}
	g.phase = phaseActive
	g.mu.Unlock()

	g.notifier.NotifyAll(EventGameStarted)
}

// SubmitAnswer records a team's answer for the current question and awards
// the question's points when it matches the correct index. The first answer
// per team per question wins; later submissions report SubmitDuplicate and
// change nothing. Out-of-range option indexes are rejected with
// ErrInvalidOption rather than silently counted as wrong.
func (g *Game) SubmitAnswer(teamID string, option int) (SubmitStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.roster.Has(teamID) {
		return SubmitClosed, domain.ErrUnknownTeam
	}
	if g.phase != phaseActive {
		return SubmitClosed, nil
	}

	question, err := g.bank.Question(g.position)
	if err != nil {
		return SubmitClosed, err
	}
	if option < 0 || option >= len(question.Options) {
		return SubmitClosed, domain.ErrInvalidOption
	}
	if _, answered := g.answers[teamID]; answered {
		return SubmitDuplicate, nil
	}

	g.answers[teamID] = option
	if option == question.Correct {
		if err := g.roster.Award(teamID, question.Points); err != nil {
			return SubmitClosed, err
		}
	}
	return SubmitAccepted, nil
}

// ShowResults closes the current question and makes results visible.
func (g *Game) ShowResults() {
	g.mu.Lock()
	if g.phase != phaseActive {
		g.mu.Unlock()
		return
	}
	g.phase = phaseResults
	g.results = true
	g.mu.Unlock()

	g.notifier.NotifyAll(EventUpdateGame)
}

// Advance moves to the next question: the answer ledger and results flag are
// cleared and the position increments. Past the last question the session
// ends. Advancing an ended session is a no-op.
func (g *Game) Advance() {
	g.mu.Lock()
	if g.phase == phaseEnded {
		g.mu.Unlock()
		return
	}
	g.position++
	g.answers = make(map[string]int)
	g.results = false
	if g.position < g.bank.Len() {
		g.phase = phaseActive
	} else {
		g.phase = phaseEnded
	}
	g.mu.Unlock()

	g.notifier.NotifyAll(EventNextQuestion)
}

// EndNow force-ends the session from any state, leaving the position where it
// is and exposing results. Used for an operator-triggered early stop.
func (g *Game) EndNow() {
	g.mu.Lock()
	if g.phase == phaseEnded {
		g.mu.Unlock()
		return
	}
	g.phase = phaseEnded
	g.results = true
	g.mu.Unlock()

	g.notifier.NotifyAll(EventQuizEnded)
}

// Reset returns the session to its initial state and clears the roster. This
// is the only operation that discards team and score history.
func (g *Game) Reset() {
	g.mu.Lock()
	g.phase = phaseIdle
	g.position = 0
	g.results = false
	g.answers = make(map[string]int)
	g.roster.Clear()
	g.mu.Unlock()

	g.notifier.NotifyAll(EventGameReset)
}

// CurrentQuestion returns the participant view of the question at the current
// position, or ErrQuestionNotFound once the session has run past the last one.
func (g *Game) CurrentQuestion() (domain.QuestionView, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	question, err := g.bank.Question(g.position)
	if err != nil {
		return domain.QuestionView{}, err
	}
	return question.View(), nil
}

// Snapshot returns a consistent read of the session flags.
func (g *Game) Snapshot() domain.GameSnapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return domain.GameSnapshot{
		Position:       g.position,
		QuestionCount:  g.bank.Len(),
		Active:         g.phase == phaseActive,
		ResultsVisible: g.results,
		Ended:          g.phase == phaseEnded,
		AnsweredTeams:  len(g.answers),
	}
}

// Teams returns the scoreboard ordered by score descending.
func (g *Game) Teams() []domain.Team {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.roster.TeamsByScore()
}
