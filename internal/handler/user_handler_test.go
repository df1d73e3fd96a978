package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	router, _ := newTestServer(t)

	token := registerUser(t, router, "login@example.com")
	require.NotEmpty(t, token)

	// Duplicate email
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Tester",
		"email":    "login@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	decodeJSON(t, rec, &body)
	assert.NotEmpty(t, body.Token)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	router, _ := newTestServer(t)
	token := registerUser(t, router, "profile@example.com")

	rec := doJSON(t, router, http.MethodPut, "/api/profile", map[string]string{}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/profile", map[string]string{
		"name": "Renamed User",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var user UserResponse
	decodeJSON(t, rec, &user)
	assert.Equal(t, "Renamed User", user.Name)
	assert.Equal(t, "profile@example.com", user.Email)

	rec = doJSON(t, router, http.MethodPut, "/api/profile", map[string]string{
		"name": "Nope",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
