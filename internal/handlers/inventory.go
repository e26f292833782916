// internal/handlers/inventory.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/orbitto/orbitto-backend/internal/services"
	"github.com/orbitto/orbitto-backend/internal/utils"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// GET /api/inventory/
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	items, err := h.inventoryService.ListInventory()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"inventory": items})
}

// GET /api/inventory/:id
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.inventoryService.GetInventory(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"inventory": item})
}

// PUT /api/inventory/:id
func (h *InventoryHandler) UpdateInventory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.UpdateInventory(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   "Inventory updated successfully",
		"inventory": item,
	})
}

// GET /api/inventory/low-stock
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.inventoryService.ListLowStock()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"items": items})
}
