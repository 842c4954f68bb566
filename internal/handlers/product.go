package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/solarsense-dev/solarsense/db"
	apperrors "github.com/solarsense-dev/solarsense/internal/errors"
	"github.com/solarsense-dev/solarsense/internal/models"
	"github.com/solarsense-dev/solarsense/internal/solar"
	"github.com/solarsense-dev/solarsense/internal/types"
	"github.com/solarsense-dev/solarsense/internal/utils"
)

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Lat         *float64 `json:"lat" binding:"required"`
	Lon         *float64 `json:"lon" binding:"required"`
	Tilt        *float64 `json:"tilt" binding:"required"`
	Orientation string   `json:"orientation" binding:"required"`
	Area        *float64 `json:"area" binding:"required"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Lat         *float64 `json:"lat" binding:"required"`
	Lon         *float64 `json:"lon" binding:"required"`
	Tilt        *float64 `json:"tilt" binding:"required"`
	Orientation string   `json:"orientation" binding:"required"`
	Area        *float64 `json:"area" binding:"required"`
}

// productResponse excludes the embedded daily-report list from API reads.
func productResponse(product *models.Product) types.ProductResponse {
	return types.ProductResponse{
		ID:          product.ID,
		ProjectID:   product.ProjectID,
		Name:        product.Name,
		Lat:         product.Lat,
		Lon:         product.Lon,
		Tilt:        product.Tilt,
		Orientation: product.Orientation,
		Area:        product.Area,
		IsClosed:    product.IsClosed,
	}
}

// fetchOwnedProduct loads a product through its parent project, enforcing
// ownership on the project.
func fetchOwnedProduct(projectID, productID, userID uint) (*models.Product, error) {
	if _, err := fetchOwnedProject(projectID, userID); err != nil {
		return nil, err
	}

	var product models.Product

	if err := db.DB.Where("id = ? AND project_id = ?", productID, projectID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	return &product, nil
}

func CreateProduct(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := fetchOwnedProject(projectID, userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if project.IsClosed {
		respondError(ctx, apperrors.ErrProjectClosed)
		return
	}

	var count int64

	if err := db.DB.Model(&models.Product{}).Where("project_id = ?", project.ID).Count(&count).Error; err != nil {
		log.Printf("Failed to count products for project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if count >= models.MaxProductsPerProject {
		respondError(ctx, apperrors.ErrProductLimit)
		return
	}

	var body CreateProductRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondError(ctx, apperrors.ErrMissingFields)
		return
	}

	if !solar.ValidOrientation(body.Orientation) {
		respondError(ctx, apperrors.ErrInvalidOrientation)
		return
	}

	product := models.Product{
		ProjectID:   project.ID,
		Name:        body.Name,
		Lat:         *body.Lat,
		Lon:         *body.Lon,
		Tilt:        *body.Tilt,
		Orientation: body.Orientation,
		Area:        *body.Area,
	}

	if err := db.DB.Create(&product).Error; err != nil {
		log.Printf("Failed to create product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, productResponse(&product))
}

func GetProduct(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, productID, err := utils.GetProjectProductID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := fetchOwnedProduct(projectID, productID, userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, productResponse(product))
}

func UpdateProduct(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, productID, err := utils.GetProjectProductID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := fetchOwnedProduct(projectID, productID, userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if product.IsClosed {
		respondError(ctx, apperrors.ErrProductClosed)
		return
	}

	var body UpdateProductRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondError(ctx, apperrors.ErrMissingFields)
		return
	}

	if !solar.ValidOrientation(body.Orientation) {
		respondError(ctx, apperrors.ErrInvalidOrientation)
		return
	}

	product.Name = body.Name
	product.Lat = *body.Lat
	product.Lon = *body.Lon
	product.Tilt = *body.Tilt
	product.Orientation = body.Orientation
	product.Area = *body.Area

	if err := db.DB.Save(product).Error; err != nil {
		log.Printf("Failed to update product %d: %v", product.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, productResponse(product))
}

func DeleteProduct(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, productID, err := utils.GetProjectProductID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := fetchOwnedProduct(projectID, productID, userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := db.DB.Delete(product).Error; err != nil {
		log.Printf("Failed to delete product %d: %v", product.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": product.ID})
}
