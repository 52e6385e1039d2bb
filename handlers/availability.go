package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"roomcheck/models"
	"roomcheck/services/availability"
	"roomcheck/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the availability validation endpoint.
type AvailabilityHandler struct {
	Validator availability.Validator
}

func NewAvailabilityHandler(v availability.Validator) *AvailabilityHandler {
	return &AvailabilityHandler{Validator: v}
}

// validateInput is the wire shape, read from a JSON body or the query string.
type validateInput struct {
	CheckIn        string `json:"checkIn" form:"checkIn"`
	CheckOut       string `json:"checkOut" form:"checkOut"`
	GuestsCount    int    `json:"guestsCount" form:"guestsCount"`
	RoomCategoryID string `json:"roomCategoryId" form:"roomCategoryId"`
	RoomUnitID     string `json:"roomUnitId" form:"roomUnitId"`
	BookingID      string `json:"bookingId" form:"bookingId"`
}

// ValidateAvailabilityHandler answers whether a stay can be booked.
func (h *AvailabilityHandler) ValidateAvailabilityHandler(c *gin.Context) {
	var input validateInput
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(&input)
	} else {
		err = c.ShouldBindJSON(&input)
	}
	if err != nil {
		respondStructural(c, fmt.Sprintf("invalid request: %v", err))
		return
	}

	req, msg := input.toStayRequest()
	if msg != "" {
		respondStructural(c, msg)
		return
	}

	verdict, err := h.Validator.Validate(c.Request.Context(), req)
	status := availability.StatusCode(verdict, err)
	if err != nil {
		utils.JSONError(c, status, "availability_check_failed", "Availability could not be checked right now. Please retry.")
		return
	}

	c.JSON(status, verdict.Result())
}

func respondStructural(c *gin.Context, msg string) {
	v := availability.StructuralError{Message: msg}
	c.JSON(availability.StatusCode(v, nil), v.Result())
}

// toStayRequest parses the dates. Missing dates stay zero so the engine
// reports them; unparseable ones are rejected here.
func (in validateInput) toStayRequest() (models.StayRequest, string) {
	checkIn, err := parseDate(in.CheckIn)
	if err != nil {
		return models.StayRequest{}, "checkIn must be a date in YYYY-MM-DD format"
	}
	checkOut, err := parseDate(in.CheckOut)
	if err != nil {
		return models.StayRequest{}, "checkOut must be a date in YYYY-MM-DD format"
	}
	return models.StayRequest{
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		GuestsCount:      in.GuestsCount,
		RoomCategoryID:   strings.TrimSpace(in.RoomCategoryID),
		RoomUnitID:       strings.TrimSpace(in.RoomUnitID),
		ExcludeBookingID: strings.TrimSpace(in.BookingID),
	}, ""
}

// parseDate accepts YYYY-MM-DD or a full RFC 3339 timestamp, which is cut to its UTC date.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(models.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
