package utils

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var limitOptions = []int{10, 25, 50, 100}

// PaginationParams represents pagination query parameters. A zero Limit means
// the caller asked for the full list.
type PaginationParams struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// PaginationMeta contains pagination metadata
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
	From        int   `json:"from"`
	To          int   `json:"to"`
	HasMore     bool  `json:"has_more"`
}

// PaginatedResponse represents a paginated API response
type PaginatedResponse struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	Data       interface{}    `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// GetPaginationParams extracts page and limit from the query string. Without
// a limit parameter the list is not paginated.
func GetPaginationParams(c *fiber.Ctx) PaginationParams {
	if c.Query("limit") == "" {
		return PaginationParams{Page: 1}
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	if page < 1 {
		page = 1
	}
	if !isLimitOption(limit) {
		limit = 25
	}

	return PaginationParams{Page: page, Limit: limit}
}

func isLimitOption(limit int) bool {
	for _, option := range limitOptions {
		if limit == option {
			return true
		}
	}
	return false
}

// CalculatePagination calculates pagination metadata. A zero limit yields a
// single page holding every row.
func CalculatePagination(page, limit int, total int64) PaginationMeta {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = int(total)
		page = 1
	}

	lastPage := 1
	if limit > 0 {
		lastPage = int(math.Ceil(float64(total) / float64(limit)))
	}
	from := (page-1)*limit + 1
	to := page * limit

	if total == 0 {
		from = 0
		to = 0
	} else if to > int(total) {
		to = int(total)
	}

	return PaginationMeta{
		CurrentPage: page,
		PerPage:     limit,
		Total:       total,
		LastPage:    lastPage,
		From:        from,
		To:          to,
		HasMore:     page < lastPage,
	}
}

// PaginatedResponseBuilder creates a paginated response
func PaginatedResponseBuilder(c *fiber.Ctx, message string, data interface{}, pagination PaginationMeta) error {
	return c.JSON(PaginatedResponse{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

// GetOffset calculates offset for SQL queries
func GetOffset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}
