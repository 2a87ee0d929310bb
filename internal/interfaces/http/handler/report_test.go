package handler

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubOpener map[string]string

func (s stubOpener) Open(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := s[key]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return io.NopCloser(strings.NewReader(data)), nil
}

func TestReportHandler_Download(t *testing.T) {
	h := NewReportHandler(nil)
	r := gin.New()
	r.GET("/reports/files/*key", h.Download)

	w := doJSON(r, http.MethodGet, "/reports/files/exports/a.csv", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, h.ServesFiles())

	h.SetFileOpener(stubOpener{"exports/a.csv": "Survey ID,Year\n"})
	assert.True(t, h.ServesFiles())

	w = doJSON(r, http.MethodGet, "/reports/files/exports/a.csv", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Survey ID,Year\n", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="a.csv"`)

	w = doJSON(r, http.MethodGet, "/reports/files/exports/missing.csv", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeResponse(t, w).Error.Code)
}

func TestReportHandler_Export_InvalidSurveyID(t *testing.T) {
	h := NewReportHandler(nil)
	r := gin.New()
	r.POST("/reports/export", h.Export)

	w := doJSON(r, http.MethodPost, "/reports/export?surveyId=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidInput, decodeResponse(t, w).Error.Code)
}
