// repository/menu_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// WithTx binds the repository to a running transaction.
func (r *MenuRepository) WithTx(tx *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: tx}
}

func (r *MenuRepository) FindByCategoryOrdered(categoryID uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.
		Where("category_id = ?", categoryID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var menu entity.Menu
	if err := r.DB.First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

// LastInCategory returns the menu with the highest order inside one
// category, or gorm.ErrRecordNotFound when the category has no menus.
func (r *MenuRepository) LastInCategory(categoryID uint) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.
		Where("category_id = ?", categoryID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}, Desc: true}).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

func (r *MenuRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&entity.Menu{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Menu{}, id).Error
}

// DeleteByCategory removes every menu belonging to the category.
func (r *MenuRepository) DeleteByCategory(categoryID uint) error {
	return r.DB.
		Where("category_id = ?", categoryID).
		Delete(&entity.Menu{}).Error
}
