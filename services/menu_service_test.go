package services

import (
	"errors"
	"testing"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(db,
		repository.NewMenuRepository(db),
		repository.NewCategoryRepository(db))
}

func mustCategory(t *testing.T, db *gorm.DB, name string, order int) uint {
	t.Helper()
	cat := entity.Category{Name: name, Order: order}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return cat.ID
}

func menuByName(t *testing.T, db *gorm.DB, name string) entity.Menu {
	t.Helper()
	var m entity.Menu
	if err := db.Where("name = ?", name).First(&m).Error; err != nil {
		t.Fatalf("menu %q should exist: %v", name, err)
	}
	return m
}

func TestMenuOrderScopedPerCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	soup := mustCategory(t, db, "Soup", 1)
	rice := mustCategory(t, db, "Rice", 2)

	for _, name := range []string{"Kimchi Stew", "Soybean Stew"} {
		if err := svc.Create(soup, name, "stew", "url", 8000); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	// a second category counts from 1 on its own
	if err := svc.Create(rice, "Bibimbap", "rice bowl", "url", 9000); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if got := menuByName(t, db, "Soybean Stew").Order; got != 2 {
		t.Errorf("second soup menu order = %d, want 2", got)
	}
	if got := menuByName(t, db, "Bibimbap").Order; got != 1 {
		t.Errorf("first rice menu order = %d, want 1", got)
	}
}

func TestMenuCreateDefaultsForSale(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	soup := mustCategory(t, db, "Soup", 1)
	if err := svc.Create(soup, "Kimchi Stew", "spicy", "url", 8000); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if got := menuByName(t, db, "Kimchi Stew").Status; got != entity.StatusForSale {
		t.Errorf("status = %q, want %q", got, entity.StatusForSale)
	}
}

func TestMenuCreateMissingCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	err := svc.Create(99, "Ghost", "none", "url", 1000)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("Create error = %v, want ErrCategoryNotFound", err)
	}

	var count int64
	db.Model(&entity.Menu{}).Count(&count)
	if count != 0 {
		t.Errorf("no menu should have been written, found %d", count)
	}
}

func TestMenuListOrdersAscending(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	soup := mustCategory(t, db, "Soup", 1)
	for _, name := range []string{"A", "B", "C"} {
		if err := svc.Create(soup, name, "d", "url", 1000); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	a := menuByName(t, db, "A")
	if err := svc.Update(soup, a.ID, "A", "d", "url", 1000, 9, entity.StatusForSale); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	menus, err := svc.ListByCategory(soup)
	if err != nil {
		t.Fatalf("ListByCategory failed: %v", err)
	}
	for i := 1; i < len(menus); i++ {
		if menus[i-1].Order > menus[i].Order {
			t.Errorf("list not sorted by order: %d before %d",
				menus[i-1].Order, menus[i].Order)
		}
	}
	if menus[len(menus)-1].Name != "A" {
		t.Errorf("expected A last after reorder, got %q", menus[len(menus)-1].Name)
	}
}

func TestMenuGetAcrossCategories(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	soup := mustCategory(t, db, "Soup", 1)
	rice := mustCategory(t, db, "Rice", 2)
	if err := svc.Create(rice, "Bibimbap", "rice bowl", "url", 9000); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	id := menuByName(t, db, "Bibimbap").ID

	// lookup is by menu id alone once the path category exists
	m, err := svc.Get(soup, id)
	if err != nil {
		t.Fatalf("Get through sibling category failed: %v", err)
	}
	if m.Name != "Bibimbap" {
		t.Errorf("got %q, want Bibimbap", m.Name)
	}
}

func TestMenuGetMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	soup := mustCategory(t, db, "Soup", 1)

	if _, err := svc.Get(soup, 42); !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("Get error = %v, want ErrMenuNotFound", err)
	}
	if _, err := svc.Get(99, 42); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("Get error = %v, want ErrCategoryNotFound", err)
	}
}

func TestMenuUpdateOverwritesAllFields(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	soup := mustCategory(t, db, "Soup", 1)
	if err := svc.Create(soup, "Kimchi Stew", "spicy", "url", 8000); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	id := menuByName(t, db, "Kimchi Stew").ID

	err := svc.Update(soup, id, "Kimchi Stew XL", "extra spicy", "url2", 9500, 3, entity.StatusSoldOut)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	var m entity.Menu
	if err := db.First(&m, id).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if m.Name != "Kimchi Stew XL" || m.Description != "extra spicy" ||
		m.Image != "url2" || m.Price != 9500 || m.Order != 3 ||
		m.Status != entity.StatusSoldOut {
		t.Errorf("update did not overwrite all fields: %+v", m)
	}
}

func TestMenuUpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	soup := mustCategory(t, db, "Soup", 1)

	err := svc.Update(soup, 42, "n", "d", "i", 0, 1, entity.StatusForSale)
	if !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("Update error = %v, want ErrMenuNotFound", err)
	}
}

func TestMenuDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	soup := mustCategory(t, db, "Soup", 1)
	if err := svc.Create(soup, "Kimchi Stew", "spicy", "url", 8000); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	id := menuByName(t, db, "Kimchi Stew").ID

	if err := svc.Delete(soup, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(soup, id); !errors.Is(err, ErrMenuNotFound) {
		t.Errorf("menu should be gone, got err=%v", err)
	}

	if err := svc.Delete(soup, id); !errors.Is(err, ErrMenuNotFound) {
		t.Errorf("second Delete error = %v, want ErrMenuNotFound", err)
	}
}
