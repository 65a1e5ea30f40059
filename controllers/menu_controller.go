// controllers/menu_controller.go
package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// ====== Request DTO ======
type MenuCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Price       *int64 `json:"price" binding:"required,gte=0"`
}

type MenuUpdateRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description" binding:"required"`
	Image       string            `json:"image" binding:"required"`
	Price       *int64            `json:"price" binding:"required,gte=0"`
	Order       *int              `json:"order" binding:"required"`
	Status      entity.MenuStatus `json:"status" binding:"required,oneof=FOR_SALE SOLD_OUT"`
}

// ====== Response DTO ======

// MenuSummaryResponse is the list view; description is left out to keep
// list payloads compact.
type MenuSummaryResponse struct {
	ID     uint              `json:"id"`
	Name   string            `json:"name"`
	Image  string            `json:"image"`
	Price  int64             `json:"price"`
	Order  int               `json:"order"`
	Status entity.MenuStatus `json:"status"`
}

type MenuDetailResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Price       int64             `json:"price"`
	Order       int               `json:"order"`
	Status      entity.MenuStatus `json:"status"`
}

// POST /categories/:categoryId/menus
func (ctl *MenuController) Create(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	var req MenuCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isPriceViolation(err) {
			resp.BadRequest(c, MsgPriceTooLow)
			return
		}
		resp.BadRequest(c, MsgBadRequest)
		return
	}

	if err := ctl.Service.Create(categoryID, req.Name, req.Description, req.Image, *req.Price); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.CreatedMessage(c, MsgMenuAdded)
}

// GET /categories/:categoryId/menus
func (ctl *MenuController) ListByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	menus, err := ctl.Service.ListByCategory(categoryID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]MenuSummaryResponse, 0, len(menus))
	for _, m := range menus {
		out = append(out, MenuSummaryResponse{
			ID:     m.ID,
			Name:   m.Name,
			Image:  m.Image,
			Price:  m.Price,
			Order:  m.Order,
			Status: m.Status,
		})
	}
	resp.Data(c, out)
}

// GET /categories/:categoryId/menus/:menuId
func (ctl *MenuController) Detail(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	menuID, ok := pathID(c, "menuId")
	if !ok {
		return
	}

	m, err := ctl.Service.Get(categoryID, menuID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp.Data(c, MenuDetailResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Image:       m.Image,
		Price:       m.Price,
		Order:       m.Order,
		Status:      m.Status,
	})
}

// PUT|PATCH /categories/:categoryId/menus/:menuId
func (ctl *MenuController) Update(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	menuID, ok := pathID(c, "menuId")
	if !ok {
		return
	}
	var req MenuUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isPriceViolation(err) {
			resp.BadRequest(c, MsgPriceTooLow)
			return
		}
		resp.BadRequest(c, MsgBadRequest)
		return
	}

	err := ctl.Service.Update(categoryID, menuID, req.Name, req.Description, req.Image, *req.Price, *req.Order, req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Message(c, MsgMenuSaved)
}

// DELETE /categories/:categoryId/menus/:menuId
func (ctl *MenuController) Delete(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	menuID, ok := pathID(c, "menuId")
	if !ok {
		return
	}

	if err := ctl.Service.Delete(categoryID, menuID); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Message(c, MsgMenuGone)
}
