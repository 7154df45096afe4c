package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	calls int
	key   string
}

func (f *fakeStore) Upload(_ context.Context, key, _ string, _ io.Reader) (string, error) {
	f.calls++
	f.key = key
	return "https://media.example.com/" + key, nil
}

func setupRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, store, []string{"image/jpeg", "image/png"})
	return r
}

func multipartBody(t *testing.T, filename, contentType string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("not really an image"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestUploadReturnsURL(t *testing.T) {
	store := &fakeStore{}
	r := setupRouter(store)

	body, ct := multipartBody(t, "photo.png", "image/png")
	req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.calls)
	assert.True(t, strings.HasSuffix(store.key, ".png"))

	var url string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &url))
	assert.Equal(t, "https://media.example.com/"+store.key, url)
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	store := &fakeStore{}
	r := setupRouter(store)

	body, ct := multipartBody(t, "notes.txt", "text/plain")
	req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, store.calls, "store must not be called for rejected types")

	var resp struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Unsupported file type", resp.Message)
}

func TestUploadRequiresFile(t *testing.T) {
	store := &fakeStore{}
	r := setupRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/upload-image", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, store.calls)
}
