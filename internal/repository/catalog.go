package repository

import (
	"context"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/apperror"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
)

// CatalogRepository serves the immutable category/word/card seed data.
type CatalogRepository interface {
	AllCategories(ctx context.Context) ([]entity.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*entity.Category, error)

	GetWordsByCategoryID(ctx context.Context, categoryID int) ([]entity.Word, error)
	GetRandomWordsByCategoryID(ctx context.Context, categoryID, count int) ([]entity.Word, error)

	GetCardsByCategoryID(ctx context.Context, categoryID int) ([]entity.MemoryCard, error)
	GetRandomCardValues(ctx context.Context, categoryID, difficulty, count int) ([]string, error)
}

// inMemoryCatalog is a map-backed catalog seeded at construction. Reads are
// concurrent; nothing mutates the maps after New.
type inMemoryCatalog struct {
	mu         sync.RWMutex
	categories map[int]entity.Category
	words      map[int]entity.Word
	cards      map[int]entity.MemoryCard

	categoryOrder []int
}

func NewCatalogRepository() CatalogRepository {
	catalog := &inMemoryCatalog{
		categories: make(map[int]entity.Category),
		words:      make(map[int]entity.Word),
		cards:      make(map[int]entity.MemoryCard),
	}

	categoryID, wordID, cardID := 0, 0, 0
	for _, seed := range seedCatalog() {
		categoryID++
		category := seed.category
		category.ID = categoryID
		catalog.categories[categoryID] = category
		catalog.categoryOrder = append(catalog.categoryOrder, categoryID)

		for _, word := range seed.words {
			wordID++
			word.ID = wordID
			word.CategoryID = categoryID
			catalog.words[wordID] = word
		}

		for _, card := range seed.cards {
			cardID++
			card.ID = cardID
			card.CategoryID = categoryID
			catalog.cards[cardID] = card
		}
	}

	return catalog
}

func (that *inMemoryCatalog) AllCategories(_ context.Context) ([]entity.Category, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	categories := make([]entity.Category, 0, len(that.categoryOrder))
	for _, id := range that.categoryOrder {
		categories = append(categories, that.categories[id])
	}

	return categories, nil
}

func (that *inMemoryCatalog) GetCategoryByID(_ context.Context, id int) (*entity.Category, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	category, ok := that.categories[id]
	if !ok {
		return nil, apperror.ErrCategoryNotFound
	}

	return &category, nil
}

func (that *inMemoryCatalog) GetWordsByCategoryID(_ context.Context, categoryID int) ([]entity.Word, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	var words []entity.Word
	for _, word := range that.words {
		if word.CategoryID == categoryID {
			words = append(words, word)
		}
	}

	return words, nil
}

// GetRandomWordsByCategoryID returns a random subset without replacement of
// at most count words.
func (that *inMemoryCatalog) GetRandomWordsByCategoryID(ctx context.Context, categoryID, count int) ([]entity.Word, error) {
	words, err := that.GetWordsByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(words), func(i, j int) { //nolint:gosec // not a secret
		words[i], words[j] = words[j], words[i]
	})

	if count < len(words) {
		words = words[:count]
	}

	return words, nil
}

func (that *inMemoryCatalog) GetCardsByCategoryID(_ context.Context, categoryID int) ([]entity.MemoryCard, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	var cards []entity.MemoryCard
	for _, card := range that.cards {
		if card.CategoryID == categoryID {
			cards = append(cards, card)
		}
	}

	return cards, nil
}

// GetRandomCardValues picks count distinct card glyphs for the category,
// preferring cards of the requested difficulty and falling back to the whole
// category when the difficulty has none.
func (that *inMemoryCatalog) GetRandomCardValues(ctx context.Context, categoryID, difficulty, count int) ([]string, error) {
	cards, err := that.GetCardsByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	var pool []string
	seen := map[string]bool{}
	for _, card := range cards {
		if card.Difficulty == difficulty && !seen[card.Value] {
			seen[card.Value] = true
			pool = append(pool, card.Value)
		}
	}

	if len(pool) == 0 {
		for _, card := range cards {
			if !seen[card.Value] {
				seen[card.Value] = true
				pool = append(pool, card.Value)
			}
		}
	}

	if len(pool) == 0 {
		return nil, apperror.ErrNoCardsFound
	}

	rand.Shuffle(len(pool), func(i, j int) { //nolint:gosec // not a secret
		pool[i], pool[j] = pool[j], pool[i]
	})

	if count < len(pool) {
		pool = pool[:count]
	}

	return pool, nil
}
