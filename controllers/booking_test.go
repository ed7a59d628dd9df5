package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetBookingsRejectsForeignEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/bookings", stubPrincipal("learner@example.com", "Learner"), GetBookings)

	// mismatch is rejected before the bookings collection is touched
	req := httptest.NewRequest(http.MethodGet, "/bookings?email=other@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
