package service

import (
	"context"
	"strings"

	"meublog/internal/models"
	"meublog/internal/repository"
)

const maxCategoryNameLen = 100

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func validateCategoryName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", models.NewValidationError("Category name is required")
	}
	if len(trimmed) > maxCategoryNameLen {
		return "", models.NewValidationError("Category name too long (max 100 characters)")
	}
	return trimmed, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.ListWithCounts(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	trimmed, err := validateCategoryName(name)
	if err != nil {
		return nil, err
	}

	category := &models.Category{Name: trimmed}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, name string) (*models.Category, error) {
	trimmed, err := validateCategoryName(name)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = trimmed
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	return s.categoryRepo.Delete(ctx, id)
}
