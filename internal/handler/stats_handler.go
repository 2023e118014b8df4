package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/localflow/localflow-backend/internal/domain"
	"github.com/localflow/localflow-backend/internal/middleware"
	"github.com/localflow/localflow-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// StatsHandler handles derived-statistics HTTP requests
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// DayAmountResponse is a date with an expense total
type DayAmountResponse struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

// DayCountResponse is a date with a transaction count
type DayCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CategoryAmountResponse is a category with an expense total
type CategoryAmountResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// YearlyStatsResponse represents yearly highlights in API responses. Fields
// are null when the year has no qualifying data.
type YearlyStatsResponse struct {
	HighestSpendingDay *DayAmountResponse      `json:"highest_spending_day"`
	MostFrequentDay    *DayCountResponse       `json:"most_frequent_day"`
	HighestCategory    *CategoryAmountResponse `json:"highest_category"`
}

// GetYearlyStats handles GET /stats/year/:year
func (h *StatsHandler) GetYearlyStats(c echo.Context) error {
	username := middleware.GetUsername(c)

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 || year > 9999 {
		return NewValidationError(c, "Invalid year", nil)
	}

	highlights, err := h.statsService.YearlyHighlights(username, year)
	if err != nil {
		log.Error().Err(err).Str("username", username).Int("year", year).Msg("Failed to compute yearly stats")
		return NewInternalError(c, "Failed to compute yearly stats")
	}

	return c.JSON(http.StatusOK, toYearlyStatsResponse(highlights))
}

func toYearlyStatsResponse(h *domain.YearlyHighlights) YearlyStatsResponse {
	var resp YearlyStatsResponse
	if h.HighestSpendingDay != nil {
		resp.HighestSpendingDay = &DayAmountResponse{
			Date:   h.HighestSpendingDay.Date,
			Amount: h.HighestSpendingDay.Amount.StringFixed(2),
		}
	}
	if h.MostFrequentDay != nil {
		resp.MostFrequentDay = &DayCountResponse{
			Date:  h.MostFrequentDay.Date,
			Count: h.MostFrequentDay.Count,
		}
	}
	if h.HighestCategory != nil {
		resp.HighestCategory = &CategoryAmountResponse{
			Category: h.HighestCategory.Category,
			Amount:   h.HighestCategory.Amount.StringFixed(2),
		}
	}
	return resp
}
