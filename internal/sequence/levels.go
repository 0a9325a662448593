package sequence

// Level is one predefined number-sequence puzzle: the visible prefix, the
// expected next value and the pattern text unlocked by the hint.
type Level struct {
	Sequence   []int  `json:"sequence"`
	Answer     int    `json:"-"`
	Pattern    string `json:"pattern,omitempty"`
	Difficulty int    `json:"difficulty"`
}

var levels = []Level{
	{Sequence: []int{2, 4, 6, 8}, Answer: 10, Pattern: "Add 2", Difficulty: 1},
	{Sequence: []int{1, 3, 6, 10}, Answer: 15, Pattern: "Add increasing numbers (1, 2, 3, 4, 5)", Difficulty: 1},
	{Sequence: []int{3, 6, 12, 24}, Answer: 48, Pattern: "Multiply by 2", Difficulty: 2},
	{Sequence: []int{1, 4, 9, 16}, Answer: 25, Pattern: "Square numbers (1, 4, 9, 16, 25)", Difficulty: 2},
	{Sequence: []int{1, 1, 2, 3, 5}, Answer: 8, Pattern: "Fibonacci sequence (each number is the sum of the two preceding ones)", Difficulty: 3},
	{Sequence: []int{2, 6, 12, 20, 30}, Answer: 42, Pattern: "Difference increases by 2 each time (4, 6, 8, 10)", Difficulty: 3},
	{Sequence: []int{1, 3, 7, 15, 31}, Answer: 63, Pattern: "Multiply by 2 and add 1", Difficulty: 3},
	{Sequence: []int{0, 1, 4, 9, 16, 25}, Answer: 36, Pattern: "Square numbers starting from 0", Difficulty: 3},
	{Sequence: []int{100, 90, 81, 73}, Answer: 66, Pattern: "Subtract 10, then 9, then 8...", Difficulty: 4},
	{Sequence: []int{2, 3, 5, 8, 13}, Answer: 21, Pattern: "Each number is the sum of the last two numbers", Difficulty: 4},
}

// LevelCount returns the length of the static level list.
func LevelCount() int {
	return len(levels)
}
