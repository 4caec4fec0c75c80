package domain

// Tier buckets both the question catalog and the hall of fame by difficulty.
type Tier string

const (
	// TierLow targets lower grade levels.
	TierLow Tier = "low"
	// TierHigh targets upper grade levels.
	TierHigh Tier = "high"
)

// Tiers lists every known difficulty bucket.
var Tiers = []Tier{TierLow, TierHigh}

// ParseTier maps a wire string onto a known tier.
func ParseTier(raw string) (Tier, error) {
	switch Tier(raw) {
	case TierLow:
		return TierLow, nil
	case TierHigh:
		return TierHigh, nil
	}
	return "", ErrTierUnknown
}

// Question is a single multiple-choice item from the static catalog.
// The catalog is immutable; questions are never created at runtime.
type Question struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
	Tier         Tier     `json:"tier"`
}

// Phase is a game session's lifecycle state.
type Phase string

const (
	PhaseStart       Phase = "start"
	PhasePlaying     Phase = "playing"
	PhaseFinished    Phase = "finished"
	PhaseLeaderboard Phase = "hallOfFame"
)

// HallOfFameEntry is one persisted best-score record. Identity within a
// tier's list is the (Name, Grade) pair; Date is epoch milliseconds.
type HallOfFameEntry struct {
	Name  string `json:"name"`
	Grade int    `json:"grade"`
	Score int    `json:"score"`
	Date  int64  `json:"date"`
}

// SameIdentity reports whether two entries describe the same player.
func (e HallOfFameEntry) SameIdentity(other HallOfFameEntry) bool {
	return e.Name == other.Name && e.Grade == other.Grade
}

// AnswerOutcome summarizes the scoring result of one answer event.
type AnswerOutcome struct {
	QuestionIndex int    `json:"questionIndex"`
	Correct       bool   `json:"correct"`
	TimedOut      bool   `json:"timedOut"`
	Awarded       int    `json:"awarded"`
	Score         int    `json:"score"`
	Streak        int    `json:"streak"`
	CorrectIndex  int    `json:"correctIndex"`
	Explanation   string `json:"explanation"`
}

// SoundCue names a fire-and-forget audio event. Playback failure never
// affects game logic.
type SoundCue string

const (
	CueCorrect   SoundCue = "correct"
	CueIncorrect SoundCue = "incorrect"
	CueSelect    SoundCue = "select"
	CueBGMStart  SoundCue = "bgmStart"
	CueBGMStop   SoundCue = "bgmStop"
)
