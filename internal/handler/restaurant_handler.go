package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"savora.app/api/internal/dto"
	"savora.app/api/internal/model"
	"savora.app/api/internal/service"
	"savora.app/api/pkg/response"
	"savora.app/api/pkg/validator"
)

type RestaurantHandler struct {
	service service.RestaurantService
}

func NewRestaurantHandler(service service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

func (h *RestaurantHandler) Add(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.AddRestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	restaurant, err := h.service.Submit(c.Request.Context(), userID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

func (h *RestaurantHandler) GetAll(c *gin.Context) {
	restaurants, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

func (h *RestaurantHandler) GetApproved(c *gin.Context) {
	h.listByStatus(c, model.StatusApproved)
}

func (h *RestaurantHandler) GetDenied(c *gin.Context) {
	h.listByStatus(c, model.StatusDenied)
}

func (h *RestaurantHandler) GetPending(c *gin.Context) {
	h.listByStatus(c, model.StatusPending)
}

func (h *RestaurantHandler) listByStatus(c *gin.Context, status model.ModerationStatus) {
	restaurants, err := h.service.GetByStatus(c.Request.Context(), status)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

func (h *RestaurantHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c, "restaurantId")
	if !ok {
		return
	}

	restaurant, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) Deny(c *gin.Context) {
	id, ok := parseIDParam(c, "restaurantId")
	if !ok {
		return
	}

	restaurant, err := h.service.Deny(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "restaurantId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
