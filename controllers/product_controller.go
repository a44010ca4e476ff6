package controllers

import (
	"context"
	"net/http"
	"time"

	apperrors "github.com/Greendayy/Ali-Express/errors"
	"github.com/Greendayy/Ali-Express/models"
	"github.com/Greendayy/Ali-Express/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductController struct {
	Repo    repository.ProductRepository
	Logger  *zap.Logger
	Timeout time.Duration
}

// GetProducts returns the whole catalog, unfiltered and unpaginated, in
// database order.
func (pc *ProductController) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pc.Timeout)
	defer cancel()

	products, err := pc.Repo.FindAll(ctx)
	if err != nil {
		pc.Logger.Error("catalog fetch failed", zap.Error(err))
		if gatewayExpired(err) {
			respondError(c, apperrors.Timeout("Failed to fetch products: gateway timeout", err))
			return
		}
		respondError(c, apperrors.New(http.StatusInternalServerError, "Failed to fetch products: "+err.Error(), err))
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}
