package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roomcheck/models"
	"roomcheck/services/availability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	verdict availability.Verdict
	err     error
	got     *models.StayRequest
}

func (s *stubValidator) Validate(ctx context.Context, req models.StayRequest) (availability.Verdict, error) {
	s.got = &req
	return s.verdict, s.err
}

func newTestRouter(v availability.Validator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAvailabilityHandler(v)
	r.POST("/api/availability/validate", h.ValidateAvailabilityHandler)
	r.GET("/api/availability/validate", h.ValidateAvailabilityHandler)
	return r
}

func TestValidateAvailabilityHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		verdict availability.Verdict
		err     error
		status  int
	}{
		{"available", availability.Available{Count: 1, UnitIDs: []string{"u1"}, Message: "ok"}, nil, http.StatusOK},
		{"conflict", availability.CapacityConflict{Message: "booked", SuggestWaitlist: true}, nil, http.StatusConflict},
		{"not found", availability.NotFound{Message: "missing"}, nil, http.StatusNotFound},
		{"structural", availability.StructuralError{Message: "bad"}, nil, http.StatusBadRequest},
		{"infrastructure", nil, &availability.InfrastructureError{Op: "get unit", Err: errors.New("down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubValidator{verdict: tt.verdict, err: tt.err})

			body := `{"checkIn":"2025-03-10","checkOut":"2025-03-13","roomUnitId":"u1"}`
			req := httptest.NewRequest(http.MethodPost, "/api/availability/validate", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.err != nil {
				assert.Equal(t, "availability_check_failed", resp["error"])
				assert.NotContains(t, resp, "isValid")
				return
			}
			assert.Equal(t, tt.status == http.StatusOK, resp["isValid"])
		})
	}
}

func TestValidateAvailabilityHandler_ParsesBody(t *testing.T) {
	stub := &stubValidator{verdict: availability.Available{Count: 1}}
	router := newTestRouter(stub)

	body := `{"checkIn":"2025-04-01","checkOut":"2025-04-03","guestsCount":2,"roomCategoryId":"c1","bookingId":"b2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/availability/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.got)
	assert.Equal(t, "2025-04-01", stub.got.CheckIn.Format(models.DateLayout))
	assert.Equal(t, "2025-04-03", stub.got.CheckOut.Format(models.DateLayout))
	assert.Equal(t, 2, stub.got.GuestsCount)
	assert.Equal(t, "c1", stub.got.RoomCategoryID)
	assert.Equal(t, "b2", stub.got.ExcludeBookingID)
}

func TestValidateAvailabilityHandler_QueryString(t *testing.T) {
	stub := &stubValidator{verdict: availability.Available{Count: 3}}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/availability/validate?checkIn=2025-04-01&checkOut=2025-04-03&guestsCount=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.got)
	assert.Equal(t, 3, stub.got.GuestsCount)
	assert.Empty(t, stub.got.RoomUnitID)
}

func TestValidateAvailabilityHandler_BadDates(t *testing.T) {
	stub := &stubValidator{}
	router := newTestRouter(stub)

	body := `{"checkIn":"10/03/2025","checkOut":"2025-03-13"}`
	req := httptest.NewRequest(http.MethodPost, "/api/availability/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, stub.got)

	var res models.ValidationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.IsValid)
	assert.Equal(t, "checkIn must be a date in YYYY-MM-DD format", res.Message)
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2025-03-10T22:30:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", d.Format(models.DateLayout))

	d, err = parseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}
