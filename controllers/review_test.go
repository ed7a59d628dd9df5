package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubPrincipal injects a verified identity the way the auth middleware does.
func stubPrincipal(email, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("email", email)
		c.Set("name", name)
		c.Next()
	}
}

func TestGetMyReviewsRejectsForeignEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/reviews/user/:email", stubPrincipal("learner@example.com", "Learner"), GetMyReviews)

	// no store wired on purpose: the mismatch must be rejected before any
	// store access happens
	req := httptest.NewRequest(http.MethodGet, "/reviews/user/other@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateReviewValidatesBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/reviews/:id", stubPrincipal("learner@example.com", "Learner"), UpdateReview)

	// a rating the review schema cannot hold must be rejected here; once
	// $set, the document would no longer decode and every later list and
	// recompute for that tutor would fail
	tests := []struct {
		name string
		body string
	}{
		{"string rating", `{"rating": "abc"}`},
		{"rating too high", `{"rating": 99}`},
		{"rating too low", `{"rating": 0}`},
		{"not json", `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/reviews/665f00000000000000000001", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateReviewValidatesBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/reviews", stubPrincipal("learner@example.com", "Learner"), CreateReview)

	tests := []struct {
		name string
		body string
	}{
		{"missing tutorId", `{"rating": 5}`},
		{"missing rating", `{"tutorId": "abc"}`},
		{"rating too high", `{"tutorId": "abc", "rating": 9}`},
		{"rating too low", `{"tutorId": "abc", "rating": -1}`},
		{"not json", `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
