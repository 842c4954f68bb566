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
	"github.com/solarsense-dev/solarsense/internal/services"
	"github.com/solarsense-dev/solarsense/internal/types"
	"github.com/solarsense-dev/solarsense/internal/utils"
)

// reportService drives the generate-report endpoint; wired in main.
var reportService *services.ReportService

// SetReportService installs the workflow the report endpoint delegates to.
func SetReportService(svc *services.ReportService) {
	reportService = svc
}

type CreateProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// fetchOwnedProject loads a project and enforces ownership. Missing projects
// and foreign owners come back as distinct domain errors.
func fetchOwnedProject(projectID, userID uint) (*models.Project, error) {
	var project models.Project

	if err := db.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}

	if project.OwnerID != userID {
		return nil, apperrors.ErrNotOwner
	}

	return &project, nil
}

func projectResponse(project *models.Project, products []models.Product) types.ProjectResponse {
	resp := types.ProjectResponse{
		ID:        project.ID,
		Name:      project.Name,
		IsClosed:  project.IsClosed,
		CreatedAt: project.CreatedAt,
		ClosedAt:  project.UpdatedAt,
	}

	for _, p := range products {
		resp.Products = append(resp.Products, productResponse(&p))
	}

	return resp
}

func CreateProject(ctx *gin.Context) {
	var body CreateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondError(ctx, apperrors.ErrMissingFields)
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	project := models.Project{
		Name:    body.Name,
		OwnerID: userID,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, projectResponse(&project, nil))
}

func ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var projects []models.Project

	if err := db.DB.Where("owner_id = ?", userID).Find(&projects).Error; err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]types.ProjectResponse, 0, len(projects))

	for i := range projects {
		response = append(response, projectResponse(&projects[i], nil))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetProject(ctx *gin.Context) {
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

	var products []models.Product

	if err := db.DB.Where("project_id = ?", project.ID).Find(&products).Error; err != nil {
		log.Printf("Failed to list products for project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}

	ctx.JSON(http.StatusOK, projectResponse(project, products))
}

func UpdateProject(ctx *gin.Context) {
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

	var body UpdateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondError(ctx, apperrors.ErrMissingFields)
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

	project.Name = body.Name

	if err := db.DB.Save(project).Error; err != nil {
		log.Printf("Failed to update project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	var products []models.Product

	if err := db.DB.Where("project_id = ?", project.ID).Find(&products).Error; err != nil {
		log.Printf("Failed to list products for project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}

	ctx.JSON(http.StatusOK, projectResponse(project, products))
}

func DeleteProject(ctx *gin.Context) {
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

	if err := db.DB.Where("project_id = ?", project.ID).Delete(&models.Product{}).Error; err != nil {
		log.Printf("Failed to delete products for project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	if err := db.DB.Delete(project).Error; err != nil {
		log.Printf("Failed to delete project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": project.ID})
}

// GenerateReport runs the report state machine for the project and mails the
// generated files to the owner.
func GenerateReport(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if reportService == nil {
		log.Printf("Report service not configured")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	project, err := reportService.GenerateProjectReport(ctx.Request.Context(), currentUser.ID, currentUser.Email, projectID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	BroadcastProjectRefresh(project.ID)

	ctx.JSON(http.StatusOK, projectResponse(project, nil))
}
