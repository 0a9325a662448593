package entity

// UserScore is the single mutable score record. It is read and partially
// patched after every completed round.
type UserScore struct {
	ID                    int            `json:"id"`
	BestScore             int            `json:"bestScore"`
	WordsSolved           int            `json:"wordsSolved"`
	MemorySetsCompleted   int            `json:"memorySetsCompleted"`
	NumberSequencesSolved int            `json:"numberSequencesSolved"`
	CrosswordsCompleted   int            `json:"crosswordsCompleted"`
	CategoryProgress      map[string]int `json:"categoryProgress"`
}

// NewUserScore returns the default record seeded at process start.
func NewUserScore() *UserScore {
	return &UserScore{
		ID:               1,
		CategoryProgress: map[string]int{},
	}
}

// ScorePatch carries a partial update: supplied fields overwrite, others are
// retained.
type ScorePatch struct {
	BestScore             *int           `json:"bestScore,omitempty"`
	WordsSolved           *int           `json:"wordsSolved,omitempty"`
	MemorySetsCompleted   *int           `json:"memorySetsCompleted,omitempty"`
	NumberSequencesSolved *int           `json:"numberSequencesSolved,omitempty"`
	CrosswordsCompleted   *int           `json:"crosswordsCompleted,omitempty"`
	CategoryProgress      map[string]int `json:"categoryProgress,omitempty"`
}

// Apply merges the patch into the record.
func (that *UserScore) Apply(patch ScorePatch) {
	if patch.BestScore != nil {
		that.BestScore = *patch.BestScore
	}
	if patch.WordsSolved != nil {
		that.WordsSolved = *patch.WordsSolved
	}
	if patch.MemorySetsCompleted != nil {
		that.MemorySetsCompleted = *patch.MemorySetsCompleted
	}
	if patch.NumberSequencesSolved != nil {
		that.NumberSequencesSolved = *patch.NumberSequencesSolved
	}
	if patch.CrosswordsCompleted != nil {
		that.CrosswordsCompleted = *patch.CrosswordsCompleted
	}
	if patch.CategoryProgress != nil {
		that.CategoryProgress = patch.CategoryProgress
	}
}
