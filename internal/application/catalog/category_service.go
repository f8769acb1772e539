package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopstack/backend/internal/domain/catalog"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, category *catalog.Category) (*catalog.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

// List retrieves a page of categories
func (s *CategoryService) List(ctx context.Context, query catalog.ListQuery) ([]catalog.Category, int64, error) {
	return s.categoryRepo.List(ctx, query)
}

// Update updates an existing category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, update *catalog.Category) (*catalog.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = update.Name
	category.Description = update.Description

	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete deletes a category
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.categoryRepo.Delete(ctx, id)
}
