// controllers/category_controller.go
package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Service *services.CategoryService
}

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Service: s}
}

// ====== Request DTO ======
type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryUpdateRequest struct {
	Name  string `json:"name" binding:"required"`
	Order *int   `json:"order" binding:"required"`
}

// ====== Response DTO ======
type CategoryResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// GET /categories
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, CategoryResponse{ID: cat.ID, Name: cat.Name, Order: cat.Order})
	}
	resp.Data(c, out)
}

// POST /categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, MsgBadRequest)
		return
	}

	if err := ctl.Service.Create(req.Name); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, MsgCategoryAdded)
}

// PUT /categories/:categoryId
func (ctl *CategoryController) Update(c *gin.Context) {
	id, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, MsgBadRequest)
		return
	}

	if err := ctl.Service.Update(id, req.Name, *req.Order); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Message(c, MsgCategorySaved)
}

// DELETE /categories/:categoryId
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	if err := ctl.Service.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Message(c, MsgCategoryGone)
}
