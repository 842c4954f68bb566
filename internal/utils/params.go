package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	if raw == "" {
		return 0, errors.New(name + " not found")
	}

	id, err := strconv.ParseUint(raw, 10, 32)

	if err != nil {
		return 0, errors.New("invalid " + name)
	}

	return uint(id), nil
}

func GetProjectID(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "projectId")
}

// GetProjectProductID parses the project and product ids of nested product
// routes.
func GetProjectProductID(ctx *gin.Context) (uint, uint, error) {
	projectID, err := GetProjectID(ctx)

	if err != nil {
		return 0, 0, err
	}

	productID, err := parseIDParam(ctx, "id")

	if err != nil {
		return 0, 0, err
	}

	return projectID, productID, nil
}

// GetWatchedProjectID parses the project id of the websocket route.
func GetWatchedProjectID(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "project_id")
}

func GetUserID(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "id")
}
