package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesLifecycle(t *testing.T) {
	application := setupTestDB(t, false)
	fiberApp := setupTestApp(application)

	status, body := doJSON(t, fiberApp, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["categories"])

	status, body = doJSON(t, fiberApp, http.MethodPost, "/api/categories", map[string]interface{}{
		"name":        "Work",
		"description": "Office",
	})
	require.Equal(t, http.StatusCreated, status)
	category := body["category"].(map[string]interface{})
	assert.Equal(t, float64(1), category["id"])
	assert.Equal(t, "Work", category["name"])

	status, body = doJSON(t, fiberApp, http.MethodPut, "/api/categories/1", map[string]interface{}{
		"name":        "Job",
		"description": "Renamed",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Job", body["category"].(map[string]interface{})["name"])

	status, body = doJSON(t, fiberApp, http.MethodGet, "/api/categories/1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Renamed", body["category"].(map[string]interface{})["description"])

	status, _ = doJSON(t, fiberApp, http.MethodDelete, "/api/categories/1", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, fiberApp, http.MethodGet, "/api/categories/1", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateCategory_Validation(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t, false))

	tests := []struct {
		name        string
		requestBody map[string]interface{}
	}{
		{"Missing name", map[string]interface{}{"description": "x"}},
		{"Invalid characters", map[string]interface{}{"name": "<b>bold</b>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, fiberApp, http.MethodPost, "/api/categories", tt.requestBody)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "Validation failed", body["error"])
			assert.NotEmpty(t, body["details"])
		})
	}
}

func TestUpdateCategory_Missing(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t, false))

	status, _ := doJSON(t, fiberApp, http.MethodPut, "/api/categories/7", map[string]interface{}{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, status)
}
