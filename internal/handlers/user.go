package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/solarsense-dev/solarsense/db"
	"github.com/solarsense-dev/solarsense/internal/auth"
	apperrors "github.com/solarsense-dev/solarsense/internal/errors"
	"github.com/solarsense-dev/solarsense/internal/models"
	"github.com/solarsense-dev/solarsense/internal/types"
	"github.com/solarsense-dev/solarsense/internal/utils"
)

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

func CreateUser(ctx *gin.Context) {
	var body CreateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondError(ctx, apperrors.ErrMissingFields)
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	var existingUser models.User

	err := db.DB.Where("email = ?", body.Email).First(&existingUser).Error

	if err == nil {
		respondError(ctx, apperrors.ErrEmailExists)
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	newUser := models.User{
		Name:         body.Name,
		Email:        body.Email,
		PasswordHash: string(passwordHash),
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, types.AuthResponse{
		ID:    newUser.ID,
		Name:  newUser.Name,
		Email: newUser.Email,
		Token: token,
	})
}

func LoginUser(ctx *gin.Context) {
	var body LoginUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondError(ctx, apperrors.ErrMissingFields)
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	var user models.User

	err := db.DB.Where("email = ?", body.Email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, apperrors.ErrInvalidCredentials)
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		respondError(ctx, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}

func GetProfile(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, types.UserResponse{
		ID:    currentUser.ID,
		Name:  currentUser.Name,
		Email: currentUser.Email,
	})
}

func UpdateUser(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	userID, err := utils.GetUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Users may only update their own account.
	if userID != currentUser.ID {
		respondError(ctx, apperrors.ErrNotOwner)
		return
	}

	var body UpdateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondError(ctx, apperrors.ErrMissingFields)
		return
	}

	var user models.User

	if err := db.DB.First(&user, currentUser.ID).Error; err != nil {
		respondError(ctx, apperrors.ErrUserNotFound)
		return
	}

	updates := make(map[string]interface{})

	if body.Name != "" {
		updates["name"] = strings.TrimSpace(body.Name)
	}

	if body.Email != "" {
		newEmail := strings.ToLower(strings.TrimSpace(body.Email))

		if newEmail != user.Email {
			var existingUser models.User
			err := db.DB.Where("email = ? AND id != ?", newEmail, user.ID).First(&existingUser).Error
			if err == nil {
				respondError(ctx, apperrors.ErrEmailExists)
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Database error when checking existing email: %v", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
		}

		updates["email"] = newEmail
	}

	if body.Password != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

		if err != nil {
			log.Printf("Failed to hash new password: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		updates["password_hash"] = string(passwordHash)
	}

	if len(updates) == 0 {
		respondError(ctx, apperrors.ErrMissingFields)
		return
	}

	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("Failed to update user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.First(&user, user.ID).Error; err != nil {
		log.Printf("Failed to refresh user data: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}

// DeleteUser removes the account along with every owned project and their
// products. The three deletes are separate statements, so a crash mid-way
// can leave orphans; the store offers no multi-table transaction guarantee
// worth relying on here.
func DeleteUser(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	userID, err := utils.GetUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if userID != currentUser.ID {
		respondError(ctx, apperrors.ErrNotOwner)
		return
	}

	projectIDs := db.DB.Model(&models.Project{}).Select("id").Where("owner_id = ?", userID)

	if err := db.DB.Where("project_id IN (?)", projectIDs).Delete(&models.Product{}).Error; err != nil {
		log.Printf("Failed to delete products for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Where("owner_id = ?", userID).Delete(&models.Project{}).Error; err != nil {
		log.Printf("Failed to delete projects for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Delete(&models.User{}, userID).Error; err != nil {
		log.Printf("Failed to delete user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
