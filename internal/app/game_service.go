package app

import (
	"context"
	"time"

	"ethics-quiz-service/internal/domain"
)

// SessionRepository abstracts how game sessions are stored.
type SessionRepository interface {
	GetOrCreate(id string) *Session
	Get(id string) (*Session, bool)
	Delete(id string)
}

// QuestionBank samples questions from the immutable catalog: filter by
// tier, shuffle, take up to count. A short or empty result is valid.
type QuestionBank interface {
	Sample(ctx context.Context, tier domain.Tier, count int) ([]domain.Question, error)
}

// Rules carries the tunable game constants.
type Rules struct {
	TimeLimit         int
	QuestionsPerRound int
	TickInterval      time.Duration
}

// DefaultRules matches the production game: 20-second countdown, 10
// questions per round, one tick per second.
func DefaultRules() Rules {
	return Rules{
		TimeLimit:         DefaultTimeLimit,
		QuestionsPerRound: DefaultQuestionsPerRound,
		TickInterval:      time.Second,
	}
}

// GameService contains the game use cases: one session per client walking
// the start → playing → finished → hallOfFame loop.
type GameService struct {
	sessions SessionRepository
	bank     QuestionBank
	fame     *HallOfFame
	rules    Rules
}

func NewGameService(sessions SessionRepository, bank QuestionBank, fame *HallOfFame, rules Rules) *GameService {
	if rules.TimeLimit <= 0 {
		rules.TimeLimit = DefaultTimeLimit
	}
	if rules.QuestionsPerRound <= 0 {
		rules.QuestionsPerRound = DefaultQuestionsPerRound
	}
	if rules.TickInterval <= 0 {
		rules.TickInterval = time.Second
	}
	return &GameService{sessions: sessions, bank: bank, fame: fame, rules: rules}
}

// HallOfFame exposes the leaderboard engine for read-side handlers.
func (s *GameService) HallOfFame() *HallOfFame {
	return s.fame
}

// Register creates (or re-wires) the client's session with its audio sink
// and timeout callback. Called once per connection.
func (s *GameService) Register(id string, audio AudioSink, onTimeout func(domain.AnswerOutcome)) *Session {
	session := s.sessions.GetOrCreate(id)
	session.attach(audio, onTimeout, s.rules.TimeLimit, s.rules.TickInterval)
	return session
}

// Drop cancels the session's countdown and forgets it. Called when the
// owning connection goes away.
func (s *GameService) Drop(id string) {
	if session, ok := s.sessions.Get(id); ok {
		session.stop()
	}
	s.sessions.Delete(id)
}

// StartQuiz samples a round of questions for the tier and enters PLAYING.
// A tier with fewer questions than the round size plays the shorter set.
func (s *GameService) StartQuiz(ctx context.Context, id string, tier domain.Tier) (QuestionView, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return QuestionView{}, domain.ErrSessionNotFound
	}
	questions, err := s.bank.Sample(ctx, tier, s.rules.QuestionsPerRound)
	if err != nil {
		return QuestionView{}, err
	}
	if len(questions) == 0 {
		return QuestionView{}, domain.ErrTierUnknown
	}
	return session.start(tier, questions), nil
}

// Answer scores the player's choice for the current question.
func (s *GameService) Answer(ctx context.Context, id string, optionIndex int) (domain.AnswerOutcome, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return domain.AnswerOutcome{}, domain.ErrSessionNotFound
	}
	return session.answer(optionIndex)
}

// Advance moves to the next question; finished reports the transition to
// FINISHED after the last one.
func (s *GameService) Advance(ctx context.Context, id string) (view QuestionView, score int, finished bool, err error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return QuestionView{}, 0, false, domain.ErrSessionNotFound
	}
	view, finished, err = session.advance()
	if err != nil {
		return QuestionView{}, 0, false, err
	}
	return view, session.Score(), finished, nil
}

// Quit abandons the run and returns to START with no leaderboard write.
func (s *GameService) Quit(id string) error {
	session, ok := s.sessions.Get(id)
	if !ok {
		return domain.ErrSessionNotFound
	}
	return session.quit()
}

// Submit validates the player name and grade, records the final score in
// the hall of fame, and enters the hall-of-fame phase. Validation failures
// do not advance the phase.
func (s *GameService) Submit(ctx context.Context, id, name string, grade int) ([]domain.HallOfFameEntry, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	trimmed, err := domain.ValidatePlayerName(name)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateGrade(grade); err != nil {
		return nil, err
	}
	score, tier, err := session.submitSnapshot()
	if err != nil {
		return nil, err
	}

	entry := domain.HallOfFameEntry{
		Name:  trimmed,
		Grade: grade,
		Score: score,
		Date:  session.now().UnixMilli(),
	}
	entries := s.fame.Upsert(ctx, tier, entry)
	session.markSubmitted()
	return entries, nil
}

// PlayAgain resets the session to START and refreshes each tier's best
// entry for the start screen.
func (s *GameService) PlayAgain(ctx context.Context, id string) (map[domain.Tier]*domain.HallOfFameEntry, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if err := session.playAgain(); err != nil {
		return nil, err
	}
	return s.fame.Best(ctx), nil
}
