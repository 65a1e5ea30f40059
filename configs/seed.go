package configs

import (
	"backend/entity"
)

// SeedDemo loads a small demo catalog for local development. Safe to
// run more than once.
func SeedDemo() error {
	db := DB()

	soup := entity.Category{Name: "찌개류", Order: 1}
	if err := db.FirstOrCreate(&soup, entity.Category{Name: "찌개류"}).Error; err != nil {
		return err
	}
	rice := entity.Category{Name: "밥류", Order: 2}
	if err := db.FirstOrCreate(&rice, entity.Category{Name: "밥류"}).Error; err != nil {
		return err
	}

	menus := []entity.Menu{
		{
			CategoryID:  soup.ID,
			Name:        "김치찌개",
			Description: "잘 익은 김치로 끓인 찌개",
			Image:       "https://example.com/kimchi-stew.jpg",
			Price:       8000,
			Order:       1,
			Status:      entity.StatusForSale,
		},
		{
			CategoryID:  rice.ID,
			Name:        "비빔밥",
			Description: "나물과 고추장을 올린 밥",
			Image:       "https://example.com/bibimbap.jpg",
			Price:       9000,
			Order:       1,
			Status:      entity.StatusForSale,
		},
	}
	for i := range menus {
		m := menus[i]
		err := db.FirstOrCreate(&m, entity.Menu{CategoryID: m.CategoryID, Name: m.Name}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
