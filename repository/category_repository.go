// repository/category_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// WithTx binds the repository to a running transaction.
func (r *CategoryRepository) WithTx(tx *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: tx}
}

func (r *CategoryRepository) FindAllOrdered() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.DB.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.DB.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// LastByOrder returns the category holding the highest order, or
// gorm.ErrRecordNotFound when no category exists yet.
func (r *CategoryRepository) LastByOrder() (*entity.Category, error) {
	var category entity.Category
	err := r.DB.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}, Desc: true}).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.DB.Create(category).Error
}

// UpdateFields overwrites the given columns without reading the row back.
func (r *CategoryRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&entity.Category{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}
