// services/menu_service.go
package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	DB         *gorm.DB
	Repo       *repository.MenuRepository
	Categories *repository.CategoryRepository
}

func NewMenuService(db *gorm.DB, repo *repository.MenuRepository, categories *repository.CategoryRepository) *MenuService {
	return &MenuService{DB: db, Repo: repo, Categories: categories}
}

// Create appends the menu at the end of its category's ranking. Order
// assignment is scoped per category: each category counts from 1 on its
// own. The max-order read and the insert share one transaction.
func (s *MenuService) Create(categoryID uint, name, description, image string, price int64) error {
	if err := s.requireCategory(categoryID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		order := 1
		last, err := repo.LastInCategory(categoryID)
		if err == nil {
			order = last.Order + 1
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return repo.Create(&entity.Menu{
			CategoryID:  categoryID,
			Name:        name,
			Description: description,
			Image:       image,
			Price:       price,
			Order:       order,
			Status:      entity.StatusForSale,
		})
	})
}

func (s *MenuService) ListByCategory(categoryID uint) ([]entity.Menu, error) {
	if err := s.requireCategory(categoryID); err != nil {
		return nil, err
	}
	return s.Repo.FindByCategoryOrdered(categoryID)
}

// Get checks that the category exists, then looks the menu up by its id
// alone without re-checking that it belongs to that category.
func (s *MenuService) Get(categoryID, menuID uint) (*entity.Menu, error) {
	if err := s.requireCategory(categoryID); err != nil {
		return nil, err
	}
	menu, err := s.Repo.FindByID(menuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return menu, nil
}

// Update overwrites every mutable field unconditionally, order and
// status included. No sibling-order uniqueness re-check; last write wins.
func (s *MenuService) Update(categoryID, menuID uint, name, description, image string, price int64, order int, status entity.MenuStatus) error {
	if _, err := s.Get(categoryID, menuID); err != nil {
		return err
	}
	return s.Repo.UpdateFields(menuID, map[string]interface{}{
		"name":        name,
		"description": description,
		"image":       image,
		"price":       price,
		"order":       order,
		"status":      status,
	})
}

func (s *MenuService) Delete(categoryID, menuID uint) error {
	if _, err := s.Get(categoryID, menuID); err != nil {
		return err
	}
	return s.Repo.Delete(menuID)
}

func (s *MenuService) requireCategory(id uint) error {
	if _, err := s.Categories.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
