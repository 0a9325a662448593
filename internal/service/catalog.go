package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
)

type CatalogService interface {
	AllCategories(ctx context.Context) ([]entity.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*entity.Category, error)
	GetCategoryWords(ctx context.Context, categoryID, count int) ([]entity.Word, error)
}

type catalogLister interface {
	AllCategories(ctx context.Context) ([]entity.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*entity.Category, error)
	GetWordsByCategoryID(ctx context.Context, categoryID int) ([]entity.Word, error)
	GetRandomWordsByCategoryID(ctx context.Context, categoryID, count int) ([]entity.Word, error)
}

type catalogService struct {
	catalogRepo catalogLister
}

func NewCatalogService(catalogRepo catalogLister) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
	}
}

func (that *catalogService) AllCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := that.catalogRepo.AllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}

	return categories, nil
}

func (that *catalogService) GetCategoryByID(ctx context.Context, id int) (*entity.Category, error) {
	category, err := that.catalogRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	return category, nil
}

// GetCategoryWords returns the category's words, or a random subset when
// count is positive.
func (that *catalogService) GetCategoryWords(ctx context.Context, categoryID, count int) ([]entity.Word, error) {
	if _, err := that.catalogRepo.GetCategoryByID(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	if count > 0 {
		words, err := that.catalogRepo.GetRandomWordsByCategoryID(ctx, categoryID, count)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve words: %w", err)
		}
		return words, nil
	}

	words, err := that.catalogRepo.GetWordsByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve words: %w", err)
	}

	return words, nil
}
