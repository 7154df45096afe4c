package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelforge/annotate-backend/internal/annotations/repository"
	"github.com/labelforge/annotate-backend/internal/annotations/service"
)

func setupRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, service.NewService(repository.NewRepo(db)), "https://api.example.com")
	return r, mock
}

func TestListEnvelope(t *testing.T) {
	r, mock := setupRouter(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM annotations`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))

	rows := sqlmock.NewRows([]string{"id", "task_id", "coordinates", "labels", "data", "created_at", "updated_at"})
	for i := int64(11); i <= 20; i++ {
		rows.AddRow(i, int64(3), "1,2,3,4", "cat", []byte(`{}`), now, now)
	}
	mock.ExpectQuery(`SELECT id, task_id, coordinates, labels, data`).
		WithArgs(int64(3), 10, 10).
		WillReturnRows(rows)

	req := httptest.NewRequest(http.MethodGet, "/list-annotations/3?page_index=2&page_size=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success   bool              `json:"success"`
		Total     int               `json:"total"`
		PageSize  int               `json:"page_size"`
		PageIndex int               `json:"page_index"`
		NbPages   int               `json:"nb_pages"`
		Previous  *string           `json:"previous"`
		Next      *string           `json:"next"`
		Data      []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 23, resp.Total)
	assert.Equal(t, 2, resp.PageIndex)
	assert.Equal(t, 3, resp.NbPages)
	assert.Len(t, resp.Data, 10)
	require.NotNil(t, resp.Previous)
	require.NotNil(t, resp.Next)
	assert.Equal(t, "https://api.example.com/list-annotations/3?page_index=1&page_size=10", *resp.Previous)
	assert.Equal(t, "https://api.example.com/list-annotations/3?page_index=3&page_size=10", *resp.Next)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListRejectsBadTaskID(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/list-annotations/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"4001"`)
}

func TestUpdateMissingAnnotation(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectQuery(`UPDATE annotations`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "task_id", "coordinates", "labels", "data", "created_at", "updated_at"}))

	req := httptest.NewRequest(http.MethodPut, "/update-annotation/404", strings.NewReader(`{"labels":"dog"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Annotation does not exist.")
}

func TestDeleteReturnsNoContent(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectExec(`DELETE FROM annotations`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodDelete, "/delete-annotation/9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
