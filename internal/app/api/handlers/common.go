package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/mossleaf/homeops/internal/app/service/document"
	"github.com/mossleaf/homeops/internal/app/service/household"
	"github.com/mossleaf/homeops/internal/app/service/inventory"
	"github.com/mossleaf/homeops/internal/app/service/track"
	"github.com/mossleaf/homeops/pkg/dates"
	"github.com/mossleaf/homeops/pkg/response"
)

const dateLayout = "2006-01-02"

// parseDate turns an optional "YYYY-MM-DD" string into a date column value.
// Empty and nil both mean "no date".
func parseDate(s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", *s)
	}
	d := datatypes.Date(dates.Midnight(t))
	return &d, nil
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, msg))
}

// writeError maps service errors onto the response envelope. Storage errors
// stay opaque; only known sentinels get specific codes.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, track.ErrNotFound),
		errors.Is(err, inventory.ErrNotFound),
		errors.Is(err, document.ErrNotFound),
		errors.Is(err, household.ErrProfileMissing):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
	case errors.Is(err, household.ErrInviteInvalid),
		errors.Is(err, household.ErrProfileExists),
		errors.Is(err, household.ErrLastAdmin):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
	default:
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
	}
}
