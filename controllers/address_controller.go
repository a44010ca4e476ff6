package controllers

import (
	"context"
	"net/http"
	"time"

	apperrors "github.com/Greendayy/Ali-Express/errors"
	"github.com/Greendayy/Ali-Express/models"
	"github.com/Greendayy/Ali-Express/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AddressController struct {
	Repo    repository.AddressRepository
	Logger  *zap.Logger
	Timeout time.Duration
}

type addressInput struct {
	UserID  string `json:"userId" binding:"required,uuid"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	ZipCode string `json:"zipCode" binding:"required"`
	City    string `json:"city" binding:"required"`
	Country string `json:"country" binding:"required"`
}

// CreateAddress validates and persists a shipping address, returning the
// stored record including its generated ID.
func (ac *AddressController) CreateAddress(c *gin.Context) {
	var input addressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperrors.Validation(bindingMessage(err), err))
		return
	}

	// uuid tag already validated the format
	userID := uuid.MustParse(input.UserID)

	address := models.Address{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    input.Name,
		Address: input.Address,
		Zipcode: input.ZipCode,
		City:    input.City,
		Country: input.Country,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ac.Timeout)
	defer cancel()

	if err := ac.Repo.Create(ctx, &address); err != nil {
		ac.Logger.Error("address create failed", zap.String("user_id", input.UserID), zap.Error(err))
		if gatewayExpired(err) {
			respondError(c, apperrors.Timeout("Timed out saving address", err))
			return
		}
		respondError(c, apperrors.New(http.StatusInternalServerError, "Failed to save address", err))
		return
	}

	c.JSON(http.StatusOK, address)
}
