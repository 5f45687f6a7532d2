package app

import (
	"math/rand"

	"pub-trivia-service/internal/domain"
)

// QuestionBank holds the fixed question sequence for one session. Built once,
// never mutated; safe for concurrent reads.
type QuestionBank struct {
	questions []domain.Question
}

// NewQuestionBank shuffles the authored pool with rnd and keeps the first
// count questions. Question IDs are reassigned to match their position in the
// session (1-based, as shown to players); the correct index and points travel
// with each question unchanged.
func NewQuestionBank(pool []domain.Question, count int, rnd *rand.Rand) (*QuestionBank, error) {
	if count <= 0 || count > len(pool) {
		return nil, domain.ErrPoolTooSmall
	}

	shuffled := make([]domain.Question, len(pool))
	copy(shuffled, pool)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	questions := shuffled[:count:count]
	for i := range questions {
		questions[i].ID = i + 1
		if questions[i].Points == 0 {
			questions[i].Points = 1
		}
	}
	return &QuestionBank{questions: questions}, nil
}

// Question returns the question at the 0-based position.
func (b *QuestionBank) Question(position int) (domain.Question, error) {
	if position < 0 || position >= len(b.questions) {
		return domain.Question{}, domain.ErrQuestionNotFound
	}
	return b.questions[position], nil
}

// Len returns the number of questions in the session.
func (b *QuestionBank) Len() int {
	return len(b.questions)
}
