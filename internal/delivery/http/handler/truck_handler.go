package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"buildmat-dispatch/internal/usecase/truck"
	"buildmat-dispatch/pkg/utils"
)

type TruckHandler struct {
	service *truck.Service
}

func NewTruckHandler(service *truck.Service) *TruckHandler {
	return &TruckHandler{service: service}
}

func (h *TruckHandler) RegisterRoutes(router *gin.RouterGroup) {
	trucks := router.Group("/truck-types")
	{
		trucks.GET("", h.ListTruckTypes)
		trucks.GET("/active", h.ListActiveTruckTypes)
		trucks.GET("/:id", h.GetTruckType)
	}
}

func (h *TruckHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	trucks := router.Group("/truck-types")
	{
		trucks.POST("", h.CreateTruckType)
		trucks.PUT("/:id", h.UpdateTruckType)
		trucks.PUT("/:id/active", h.SetTruckTypeActive)
	}
}

func (h *TruckHandler) CreateTruckType(c *gin.Context) {
	var req truck.CreateTruckTypeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Truck type created successfully", resp)
}

func (h *TruckHandler) UpdateTruckType(c *gin.Context) {
	truckTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid truck type ID")
		return
	}

	var req truck.UpdateTruckTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), truckTypeID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Truck type updated successfully", resp)
}

func (h *TruckHandler) SetTruckTypeActive(c *gin.Context) {
	truckTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid truck type ID")
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.SetActive(c.Request.Context(), truckTypeID, req.Active); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Truck type updated successfully", nil)
}

func (h *TruckHandler) GetTruckType(c *gin.Context) {
	truckTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid truck type ID")
		return
	}

	resp, err := h.service.Get(c.Request.Context(), truckTypeID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Truck type retrieved successfully", resp)
}

func (h *TruckHandler) ListTruckTypes(c *gin.Context) {
	trucks, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Truck types retrieved successfully", trucks)
}

func (h *TruckHandler) ListActiveTruckTypes(c *gin.Context) {
	trucks, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Truck types retrieved successfully", trucks)
}
