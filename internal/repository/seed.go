package repository

import "github.com/rocketscienceinc/puzzlehub-backend/internal/entity"

// Seed data for the catalog. Categories, words and card glyphs are immutable;
// ids are assigned by the catalog's own counters at construction time.

type seedCategory struct {
	category entity.Category
	words    []entity.Word
	cards    []entity.MemoryCard
}

func seedCatalog() []seedCategory {
	return []seedCategory{
		{
			category: entity.Category{Name: "Word Guessing Challenge", Icon: "fa-font", Color: "#4F46E5", WordCount: 25, GameType: entity.GameTypeWord},
			words: []entity.Word{
				{Word: "DOLPHIN", Hints: []string{"Intelligent marine mammal", "Known for its playful behavior", "Uses echolocation to navigate"}},
				{Word: "ELEPHANT", Hints: []string{"Largest land mammal", "Has a long trunk and tusks", "Known for excellent memory"}},
				{Word: "GIRAFFE", Hints: []string{"Tallest living animal", "Has a very long neck", "Native to African savannas"}},
				{Word: "PENGUIN", Hints: []string{"Flightless bird", "Primarily lives in Antarctica", "Excellent swimmers"}},
				{Word: "BRAZIL", Hints: []string{"Largest country in South America", "Famous for carnival celebrations", "Home to most of the Amazon rainforest"}},
				{Word: "JAPAN", Hints: []string{"Island nation in East Asia", "Known for cherry blossoms", "Famous for sushi and anime"}},
				{Word: "EGYPT", Hints: []string{"North African country", "Famous for ancient pyramids", "The Nile river runs through it"}},
				{Word: "CANADA", Hints: []string{"Second largest country by area", "Known for maple syrup", "Has the longest coastline in the world"}},
				{Word: "CHOCOLATE", Hints: []string{"Sweet treat made from cocoa", "Can be dark, milk or white", "Often given as a gift on Valentine's Day"}},
				{Word: "PIZZA", Hints: []string{"Italian dish with toppings", "Usually round with a crust", "Popular delivery food"}},
				{Word: "GALAXY", Hints: []string{"Massive system of stars", "The Milky Way is one", "Contains planets, stars and nebulae"}},
				{Word: "METEOR", Hints: []string{"Space rock that enters atmosphere", "Creates a streak of light", "Also called a shooting star"}},
				{Word: "COMPUTER", Hints: []string{"Electronic device for processing data", "Has a CPU and memory", "Used for work and entertainment"}},
				{Word: "INTERNET", Hints: []string{"Global network of connected computers", "Used to access websites", "Allows instant communication worldwide"}},
			},
		},
		{
			category: entity.Category{Name: "Memory Matching", Icon: "fa-clone", Color: "#F59E0B", WordCount: 30, GameType: entity.GameTypeMemory},
			words: []entity.Word{
				{Word: "PAIRS", Hints: []string{"Finding matching items", "Tests short-term recall", "Often played with cards"}},
				{Word: "MEMORY", Hints: []string{"Ability to recall information", "Storage of knowledge", "Can be improved with practice"}},
				{Word: "RECALL", Hints: []string{"Bringing back to mind", "Remembering previous patterns", "Quick mental access"}},
				{Word: "MATCH", Hints: []string{"Finding identical items", "Looking for similarities", "Pairing like with like"}},
			},
			cards: []entity.MemoryCard{
				{Value: "🐘", Difficulty: 1}, {Value: "🦒", Difficulty: 1}, {Value: "🦁", Difficulty: 1},
				{Value: "🐬", Difficulty: 1}, {Value: "🦈", Difficulty: 1}, {Value: "🐢", Difficulty: 1},
				{Value: "🍕", Difficulty: 2}, {Value: "🍔", Difficulty: 2}, {Value: "🍦", Difficulty: 2},
				{Value: "🍩", Difficulty: 2}, {Value: "🍎", Difficulty: 2}, {Value: "🍉", Difficulty: 2},
				{Value: "🥑", Difficulty: 2}, {Value: "🍗", Difficulty: 2},
				{Value: "🚀", Difficulty: 3}, {Value: "🌎", Difficulty: 3}, {Value: "🌙", Difficulty: 3},
				{Value: "⭐", Difficulty: 3}, {Value: "☄️", Difficulty: 3}, {Value: "🌌", Difficulty: 3},
				{Value: "👨‍🚀", Difficulty: 3}, {Value: "👩‍🚀", Difficulty: 3}, {Value: "🛰️", Difficulty: 3},
				{Value: "🪐", Difficulty: 3},
			},
		},
		{
			category: entity.Category{Name: "Number Sequences", Icon: "fa-sort-numeric-up", Color: "#6366F1", WordCount: 32, GameType: entity.GameTypeNumber},
			words: []entity.Word{
				{Word: "PATTERN", Hints: []string{"Repeating elements", "Discernible regularity", "Requires logical detection"}},
				{Word: "SEQUENCE", Hints: []string{"Series of related elements", "Following a logical order", "Each element builds on previous ones"}},
				{Word: "FIBONACCI", Hints: []string{"Famous number pattern", "Each number is sum of two preceding ones", "Starts with 0, 1, 1, 2, 3, 5..."}},
				{Word: "PRIME", Hints: []string{"Divisible only by 1 and itself", "2, 3, 5, 7, 11...", "Special category of numbers"}},
			},
		},
		{
			category: entity.Category{Name: "Crosswords", Icon: "fa-table", Color: "#F59E0B", WordCount: 18, GameType: entity.GameTypeCrossword},
			words: []entity.Word{
				{Word: "CLUES", Hints: []string{"Hints to find answers", "Can be cryptic or direct", "Guide to solving puzzles"}},
				{Word: "ACROSS", Hints: []string{"Horizontal direction", "From left to right", "One dimension in a grid"}},
				{Word: "DOWN", Hints: []string{"Vertical direction", "From top to bottom", "Perpendicular to across"}},
				{Word: "FILL", Hints: []string{"Complete the empty spaces", "Enter the correct answers", "Populate the blank squares"}},
			},
		},
	}
}
