package entity

// Word is an uppercase token with an ordered list of hint clues.
// Immutable seed data.
type Word struct {
	ID         int      `json:"id"`
	Word       string   `json:"word"`
	CategoryID int      `json:"categoryId"`
	Hints      []string `json:"hints"`
}
