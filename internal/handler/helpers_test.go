package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"topictalk/backend/internal/ai"
	"topictalk/backend/internal/config"
	"topictalk/backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubProvider is a Provider test double that records every prompt it is
// asked to complete.
type stubProvider struct {
	mu      sync.Mutex
	prompts []string
	reply   string
	err     error
}

func (s *stubProvider) Complete(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubProvider) lastPrompt(t *testing.T) string {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.prompts, "expected the provider to have been called")
	return s.prompts[len(s.prompts)-1]
}

// newTestServer wires a fresh in-memory database and a stub provider registry
// behind the real router.
func newTestServer(t *testing.T) (*gin.Engine, *stubProvider) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	stub := &stubProvider{reply: "stub reply"}
	providers := ai.Registry{
		"gpt-4":  stub,
		"claude": stub,
	}

	return NewRouter(providers), stub
}

// doJSON performs a JSON request against the router. An empty token leaves the
// request unauthenticated.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// registerUser registers an account and returns its auth token.
func registerUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Tester",
		"email":    email,
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	decodeJSON(t, rec, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

// createTopic creates a topic and returns its ID.
func createTopic(t *testing.T, router *gin.Engine, token, title string) uint {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/topics", map[string]string{
		"title": title,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var topic TopicResponse
	decodeJSON(t, rec, &topic)
	return topic.ID
}

// createChatroom creates a chatroom under a topic and returns its ID.
func createChatroom(t *testing.T, router *gin.Engine, token string, topicID uint, name, aiModel string) uint {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/chatrooms", map[string]any{
		"name":    name,
		"topicId": topicID,
		"aiModel": aiModel,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var chatroom ChatroomResponse
	decodeJSON(t, rec, &chatroom)
	return chatroom.ID
}
