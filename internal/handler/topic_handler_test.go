package handler

import (
	"fmt"
	"net/http"
	"testing"

	"topictalk/backend/internal/database"
	"topictalk/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicCRUD(t *testing.T) {
	router, _ := newTestServer(t)
	token := registerUser(t, router, "owner@example.com")

	// Missing title fails validation before storage is touched.
	rec := doJSON(t, router, http.MethodPost, "/api/topics", map[string]string{
		"description": "no title",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/topics", map[string]string{
		"title":       "Roommates",
		"description": "Flat stuff",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created TopicResponse
	decodeJSON(t, rec, &created)
	assert.Equal(t, "Roommates", created.Title)
	assert.Equal(t, "Flat stuff", created.Description)
	require.NotZero(t, created.ID)

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/topics/%d", created.ID), map[string]string{
		"title": "Housemates",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated TopicResponse
	decodeJSON(t, rec, &updated)
	assert.Equal(t, "Housemates", updated.Title)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/topics/%d", created.ID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/topics/%d", created.ID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/topics/%d", created.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTopicListScopedToOwner(t *testing.T) {
	router, _ := newTestServer(t)
	ownerToken := registerUser(t, router, "alice@example.com")
	otherToken := registerUser(t, router, "bob@example.com")

	topicID := createTopic(t, router, ownerToken, "Alice's Topic")

	rec := doJSON(t, router, http.MethodGet, "/api/topics", nil, ownerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var ownerTopics []TopicResponse
	decodeJSON(t, rec, &ownerTopics)
	require.Len(t, ownerTopics, 1)
	assert.Equal(t, topicID, ownerTopics[0].ID)

	rec = doJSON(t, router, http.MethodGet, "/api/topics", nil, otherToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var otherTopics []TopicResponse
	decodeJSON(t, rec, &otherTopics)
	assert.Empty(t, otherTopics)

	// Another user's topic is indistinguishable from a nonexistent one.
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/topics/%d", topicID), nil, otherToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/topics/%d", topicID), nil, otherToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTopicCascades(t *testing.T) {
	router, _ := newTestServer(t)
	token := registerUser(t, router, "cascade@example.com")

	topicID := createTopic(t, router, token, "Doomed")
	chatroomID := createChatroom(t, router, token, topicID, "General", "claude")

	rec := doJSON(t, router, http.MethodPost, "/api/messages", map[string]any{
		"chatroomId": chatroomID,
		"content":    "Hi",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/topics/%d", topicID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/chatrooms/%d", chatroomID), nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var remaining int64
	require.NoError(t, database.DB.Model(&models.Message{}).
		Where("chatroom_id = ?", chatroomID).
		Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestTopicsRequireAuth(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/topics", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/topics", map[string]string{"title": "x"}, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
