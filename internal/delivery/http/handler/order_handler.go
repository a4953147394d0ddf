package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"buildmat-dispatch/internal/dispatch/lifecycle"
	domainOrder "buildmat-dispatch/internal/domain/order"
	"buildmat-dispatch/internal/usecase/order"
	"buildmat-dispatch/pkg/utils"
)

type OrderHandler struct {
	service *order.Service
}

func NewOrderHandler(service *order.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes wires the endpoints shared by every authenticated role.
// Access control happens in the service, which pins customers and drivers
// to their own orders.
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
	}
}

func (h *OrderHandler) RegisterCustomerRoutes(router *gin.RouterGroup) {
	router.POST("/recommendations", h.Recommend)

	orders := router.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.POST("/:id/cancel", h.CancelOrder)
	}
}

func (h *OrderHandler) RegisterDriverRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.GET("/:id/trip", h.GetTripView)
		orders.POST("/:id/trip/advance", h.AdvanceTrip)
	}
}

func (h *OrderHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.POST("/:id/assign", h.AssignDriver)
		orders.GET("/:id/recommendations", h.RecommendForOrder)
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	customerID, ok := callerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.CreateOrder(c.Request.Context(), customerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Order created successfully", resp)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	caller, ok := callerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	resp, err := h.service.GetOrder(c.Request.Context(), orderID, caller, callerRole(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order retrieved successfully", resp)
}

type listOrdersQuery struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var query listOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	filter := &domainOrder.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Status != "" {
		status := lifecycle.OrderStatus(query.Status)
		filter.Status = &status
	}

	resp, err := h.service.ListOrders(c.Request.Context(), caller, callerRole(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", resp)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	customerID, ok := callerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.service.CancelOrder(c.Request.Context(), orderID, customerID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order cancelled successfully", nil)
}

func (h *OrderHandler) Recommend(c *gin.Context) {
	var req order.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Recommend(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Recommendations generated successfully", resp)
}

func (h *OrderHandler) RecommendForOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	resp, err := h.service.RecommendForOrder(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Recommendations generated successfully", resp)
}

func (h *OrderHandler) AssignDriver(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req order.AssignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.AssignDriver(c.Request.Context(), orderID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver assigned successfully", resp)
}

func (h *OrderHandler) GetTripView(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	driverID, ok := callerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	resp, err := h.service.DriverTripView(c.Request.Context(), orderID, driverID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", resp)
}

func (h *OrderHandler) AdvanceTrip(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	driverID, ok := callerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	// The body is optional; drivers on the old app version send none.
	var req order.AdvanceTripRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	resp, err := h.service.AdvanceTrip(c.Request.Context(), orderID, driverID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trip advanced successfully", resp)
}
