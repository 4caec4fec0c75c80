package app

import (
	"sync"
	"time"

	"ethics-quiz-service/internal/domain"
	"ethics-quiz-service/internal/game"
)

// Scoring rules. Earlier revisions of the game used lower constants and no
// time bonus; only this final formula is supported.
const (
	BasePoints          = 50
	StreakBonusPerCombo = 20

	DefaultTimeLimit         = 20
	DefaultQuestionsPerRound = 10
)

// Award computes the points for a single answer as a pure function of the
// answer correctness, the streak before this answer, and the countdown
// ticks remaining at the moment of the answer.
func Award(correct bool, streakBefore, timeRemaining int) int {
	if !correct {
		return 0
	}
	return BasePoints + streakBefore*StreakBonusPerCombo + timeRemaining
}

// AudioSink receives fire-and-forget sound cues.
type AudioSink interface {
	Play(cue domain.SoundCue)
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) Play(domain.SoundCue) {}

// QuestionView is the answer-free shape of the current question sent to
// players.
type QuestionView struct {
	Index     int      `json:"index"`
	Total     int      `json:"total"`
	Prompt    string   `json:"prompt"`
	Options   []string `json:"options"`
	TimeLimit int      `json:"timeLimit"`
}

// Session is one player's run through the quiz: a state machine over
// start → playing → finished → hallOfFame, owning score, streak, and the
// per-question countdown.
type Session struct {
	id        string
	now       func() time.Time
	audio     AudioSink
	onTimeout func(domain.AnswerOutcome)
	timeLimit int
	tick      time.Duration

	mu        sync.Mutex
	phase     domain.Phase
	tier      domain.Tier
	questions []domain.Question
	index     int
	score     int
	streak    int
	answered  bool
	clock     game.Countdown
}

func newSession(id string) *Session {
	return newSessionWithClock(id, time.Now)
}

// newSessionWithClock allows deterministic timestamps in tests.
func newSessionWithClock(id string, now func() time.Time) *Session {
	return &Session{
		id:        id,
		now:       now,
		audio:     NopAudio{},
		phase:     domain.PhaseStart,
		timeLimit: DefaultTimeLimit,
		tick:      time.Second,
	}
}

// NewSession is exported for infrastructure layers that need to seed sessions.
func NewSession(id string) *Session {
	return newSession(id)
}

// NewSessionWithClock is test-only for deterministic timestamps.
func NewSessionWithClock(id string, now func() time.Time) *Session {
	return newSessionWithClock(id, now)
}

// attach wires the per-connection collaborators: the audio sink and the
// callback invoked when a countdown expires into a forced timeout.
func (s *Session) attach(audio AudioSink, onTimeout func(domain.AnswerOutcome), timeLimit int, tick time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if audio != nil {
		s.audio = audio
	}
	s.onTimeout = onTimeout
	if timeLimit > 0 {
		s.timeLimit = timeLimit
	}
	if tick > 0 {
		s.tick = tick
	}
}

// start enters PLAYING with a fresh question set and zeroed accumulators.
func (s *Session) start(tier domain.Tier, questions []domain.Question) QuestionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = domain.PhasePlaying
	s.tier = tier
	s.questions = questions
	s.index = 0
	s.score = 0
	s.streak = 0
	s.audio.Play(domain.CueBGMStart)
	s.beginQuestionLocked()
	return s.viewLocked()
}

// beginQuestionLocked arms the countdown for the current question. The
// expiry closure captures the question index; together with the clock's
// own generation token this keeps a stale tick from ever touching a later
// question.
func (s *Session) beginQuestionLocked() {
	s.answered = false
	index := s.index
	s.clock.Start(s.timeLimit, s.tick, func() {
		s.forceTimeout(index)
	})
}

func (s *Session) forceTimeout(index int) {
	s.mu.Lock()
	if s.phase != domain.PhasePlaying || s.index != index || s.answered {
		// Stale expiry: the question advanced or was answered first.
		s.mu.Unlock()
		return
	}
	s.answered = true
	s.streak = 0
	question := s.questions[s.index]
	outcome := domain.AnswerOutcome{
		QuestionIndex: s.index,
		TimedOut:      true,
		Score:         s.score,
		CorrectIndex:  question.CorrectIndex,
		Explanation:   question.Explanation,
	}
	s.audio.Play(domain.CueIncorrect)
	notify := s.onTimeout
	s.mu.Unlock()

	if notify != nil {
		notify(outcome)
	}
}

// answer consumes the player's choice for the current question. Exactly one
// answer is accepted per question; later attempts fail with
// ErrAlreadyAnswered. The countdown is stopped and its remaining ticks feed
// the scoring formula.
func (s *Session) answer(optionIndex int) (domain.AnswerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhasePlaying {
		return domain.AnswerOutcome{}, domain.ErrPhase
	}
	if s.answered {
		return domain.AnswerOutcome{}, domain.ErrAlreadyAnswered
	}
	s.answered = true

	remaining, _ := s.clock.Stop()
	question := s.questions[s.index]
	correct := optionIndex >= 0 && optionIndex == question.CorrectIndex

	awarded := Award(correct, s.streak, remaining)
	if correct {
		s.score += awarded
		s.streak++
		s.audio.Play(domain.CueCorrect)
	} else {
		s.streak = 0
		s.audio.Play(domain.CueIncorrect)
	}

	return domain.AnswerOutcome{
		QuestionIndex: s.index,
		Correct:       correct,
		Awarded:       awarded,
		Score:         s.score,
		Streak:        s.streak,
		CorrectIndex:  question.CorrectIndex,
		Explanation:   question.Explanation,
	}, nil
}

// advance moves to the next question, or to FINISHED past the last one.
// The set length is the authority, so short (degenerate) sets finish early.
func (s *Session) advance() (QuestionView, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhasePlaying {
		return QuestionView{}, false, domain.ErrPhase
	}
	if !s.answered {
		return QuestionView{}, false, domain.ErrPhase
	}
	if s.index+1 < len(s.questions) {
		s.index++
		s.beginQuestionLocked()
		return s.viewLocked(), false, nil
	}

	s.clock.Stop()
	s.phase = domain.PhaseFinished
	s.audio.Play(domain.CueBGMStop)
	return QuestionView{}, true, nil
}

// quit abandons a run in progress without a hall-of-fame write.
func (s *Session) quit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhasePlaying {
		return domain.ErrPhase
	}
	s.resetLocked()
	return nil
}

// submitSnapshot exposes the final score for a hall-of-fame write.
func (s *Session) submitSnapshot() (int, domain.Tier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseFinished {
		return 0, "", domain.ErrPhase
	}
	return s.score, s.tier, nil
}

func (s *Session) markSubmitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = domain.PhaseLeaderboard
}

// playAgain returns to START from the result or hall-of-fame screens.
func (s *Session) playAgain() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseFinished && s.phase != domain.PhaseLeaderboard {
		return domain.ErrPhase
	}
	s.resetLocked()
	return nil
}

func (s *Session) resetLocked() {
	s.clock.Stop()
	s.audio.Play(domain.CueBGMStop)
	s.phase = domain.PhaseStart
	s.tier = ""
	s.questions = nil
	s.index = 0
	s.score = 0
	s.streak = 0
	s.answered = false
}

// stop cancels background activity when the owning connection goes away.
func (s *Session) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock.Stop()
}

func (s *Session) viewLocked() QuestionView {
	question := s.questions[s.index]
	options := make([]string, len(question.Options))
	copy(options, question.Options)
	return QuestionView{
		Index:     s.index,
		Total:     len(s.questions),
		Prompt:    question.Prompt,
		Options:   options,
		TimeLimit: s.timeLimit,
	}
}

// Phase reports the session's current lifecycle state.
func (s *Session) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Score reports the accumulated score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Streak reports the consecutive-correct counter.
func (s *Session) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak
}

// QuestionCount reports the size of the sampled set for this run.
func (s *Session) QuestionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}
