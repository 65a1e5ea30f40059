package routes

import (
	"backend/controllers"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	// Controllers
	categoryCtrl := controllers.NewCategoryController(
		services.NewCategoryService(db, categoryRepo, menuRepo))
	menuCtrl := controllers.NewMenuController(
		services.NewMenuService(db, menuRepo, categoryRepo))

	cat := r.Group("/categories")
	{
		cat.GET("", categoryCtrl.List)
		cat.POST("", categoryCtrl.Create)
		cat.PUT("/:categoryId", categoryCtrl.Update)
		cat.DELETE("/:categoryId", categoryCtrl.Delete)

		cat.POST("/:categoryId/menus", menuCtrl.Create)
		cat.GET("/:categoryId/menus", menuCtrl.ListByCategory)
		cat.GET("/:categoryId/menus/:menuId", menuCtrl.Detail)
		cat.PUT("/:categoryId/menus/:menuId", menuCtrl.Update)
		cat.PATCH("/:categoryId/menus/:menuId", menuCtrl.Update)
		cat.DELETE("/:categoryId/menus/:menuId", menuCtrl.Delete)
	}
}
