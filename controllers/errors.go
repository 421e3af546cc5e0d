package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"

	"resort-backend/services"
	"resort-backend/utils"
	"resort-backend/validations"
)

// ---------------------------
// Helper: คืน structured error
// ---------------------------

// respondServiceError maps service errors onto HTTP statuses. Validation and
// selection problems are for the operator to fix; not-found and invalid-state
// mean the client view is stale and should be refreshed.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "error.validation", err.Error())
	case errors.Is(err, services.ErrInvalidSelection):
		utils.JSONError(c, http.StatusConflict, "error.invalidSelection", err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notFound", err.Error())
	case errors.Is(err, services.ErrInvalidState):
		utils.JSONError(c, http.StatusConflict, "error.invalidState", err.Error())
	case isDuplicateError(err):
		utils.JSONError(c, http.StatusConflict, "error.duplicate", err.Error())
	case isForeignKeyError(err):
		utils.JSONError(c, http.StatusBadRequest, "error.foreignKey", err.Error())
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal server error")
	}
}

func respondBindError(c *gin.Context, err error) {
	log.Printf("❌ JSON BINDING ERROR (400): %v", err)
	utils.JSONError(c, http.StatusBadRequest, "error.validation", validations.Describe(err))
}

func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1452
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "foreign key") || strings.Contains(lower, "1452")
}

func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "duplicate entry") || strings.Contains(lower, "unique constraint")
}

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "invalid "+name+": "+raw)
		return 0, false
	}
	return uint(id), true
}
