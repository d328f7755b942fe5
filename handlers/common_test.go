package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vibespace/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRespondServiceErrorMapsSentinels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{services.ErrPostNotFound, http.StatusNotFound},
		{services.ErrUserNotFound, http.StatusNotFound},
		{services.ErrChatNotFound, http.StatusNotFound},
		{services.ErrNotParticipant, http.StatusForbidden},
		{services.ErrSelfFollow, http.StatusBadRequest},
		{services.ErrEmptyGroup, http.StatusBadRequest},
		{services.ErrInvalidType, http.StatusBadRequest},
		{errors.New("mongo fell over"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondServiceError(c, "Test", tc.err)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
	}
}

func TestRespondServiceErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondServiceError(c, "Test", errors.New("connection string leaked"))

	assert.NotContains(t, w.Body.String(), "connection string")
}

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	want := primitive.NewObjectID()
	c.Set("userId", want.Hex())

	got, ok := currentUserID(c)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCurrentUserIDRejectsGarbage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userId", "not-an-object-id")

	_, ok := currentUserID(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPathIDRejectsGarbage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "garbage"}}

	_, ok := pathID(c, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
