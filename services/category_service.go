// services/category_service.go
package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	DB    *gorm.DB
	Repo  *repository.CategoryRepository
	Menus *repository.MenuRepository
}

func NewCategoryService(db *gorm.DB, repo *repository.CategoryRepository, menus *repository.MenuRepository) *CategoryService {
	return &CategoryService{DB: db, Repo: repo, Menus: menus}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.FindAllOrdered()
}

// Create appends the category at the end of the display ranking. The
// max-order read and the insert run in one transaction so two
// concurrent creates cannot claim the same rank.
func (s *CategoryService) Create(name string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		order := 1
		last, err := repo.LastByOrder()
		if err == nil {
			order = last.Order + 1
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return repo.Create(&entity.Category{Name: name, Order: order})
	})
}

// Update overwrites name and order unconditionally. A manually supplied
// order is not checked against siblings; last write wins.
func (s *CategoryService) Update(id uint, name string, order int) error {
	if err := s.requireCategory(id); err != nil {
		return err
	}
	return s.Repo.UpdateFields(id, map[string]interface{}{
		"name":  name,
		"order": order,
	})
}

// Delete removes the category's menus first, then the category itself,
// as one transaction. Remaining categories keep their orders; gaps in
// the ranking are fine.
func (s *CategoryService) Delete(id uint) error {
	if err := s.requireCategory(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Menus.WithTx(tx).DeleteByCategory(id); err != nil {
			return err
		}
		return s.Repo.WithTx(tx).Delete(id)
	})
}

func (s *CategoryService) requireCategory(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
