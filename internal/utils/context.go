package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/vowsnap-dev/vowsnap/internal/middleware"
	"github.com/vowsnap-dev/vowsnap/internal/types"
)

func GetCurrentAdmin(ctx *gin.Context) (middleware.AuthenticatedAdmin, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedAdmin{}, fmt.Errorf("User not authenticated")
	}

	admin, ok := user.(middleware.AuthenticatedAdmin)

	if !ok {
		return middleware.AuthenticatedAdmin{}, fmt.Errorf("Invalid user type in context")
	}

	return admin, nil
}

func GetCurrentAdminID(ctx *gin.Context) (uint, error) {
	admin, err := GetCurrentAdmin(ctx)

	if err != nil {
		return 0, err
	}

	return admin.ID, nil
}
