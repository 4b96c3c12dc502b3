package handlers

import (
	"strconv"

	apperrors "component-catalog-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// parsePagination reads the limit/offset query parameters, rejecting values
// that are not integers. Range normalization happens in the services.
func parsePagination(c *gin.Context, defaultLimit int) (limit, offset int, err error) {
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil {
		return 0, 0, apperrors.ErrInvalidPaginationParams
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		return 0, 0, apperrors.ErrInvalidPaginationParams
	}
	return limit, offset, nil
}
