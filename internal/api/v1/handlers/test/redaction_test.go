package test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"audio-redact/internal/api/errors"
	"audio-redact/internal/api/middleware"
	"audio-redact/internal/api/v1/dto"
	"audio-redact/internal/api/v1/routes"
	"audio-redact/internal/api/v1/services"
)

// MockRedactionService is a testify mock of the redaction service
type MockRedactionService struct {
	mock.Mock
}

func (m *MockRedactionService) CreateRedaction(ctx context.Context, req *dto.CreateRedactionRequest) (*dto.RedactionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RedactionResponse), args.Error(1)
}

func (m *MockRedactionService) GetRedaction(ctx context.Context, id int) (*dto.RedactionResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RedactionResponse), args.Error(1)
}

func (m *MockRedactionService) GetReport(ctx context.Context, id int) (*dto.ReportResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportResponse), args.Error(1)
}

func (m *MockRedactionService) ResolveOutputFile(ctx context.Context, id int) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockRedactionService) DeleteRedaction(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRedactionService) ListRedactions(ctx context.Context, query dto.ListRedactionsQuery) ([]dto.RedactionResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RedactionResponse), args.Error(1)
}

func setupTestRouter(service services.RedactionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())

	v1 := router.Group("/api/v1")
	routes.RegisterRoutes(v1, &routes.ServiceContainer{RedactionService: service})
	return router
}

func TestRedactionHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		request        dto.CreateRedactionRequest
		setupMock      func(*MockRedactionService)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "successful redaction",
			request: dto.CreateRedactionRequest{
				FilePath: "/tmp/call.wav",
				Phrases:  []string{"555 1234"},
			},
			setupMock: func(ms *MockRedactionService) {
				ms.On("CreateRedaction", mock.Anything, mock.Anything).
					Return(&dto.RedactionResponse{
						ID:              1,
						FileName:        "call.wav",
						OutputFileName:  "call_redacted.wav",
						Status:          "completed",
						PhraseCount:     1,
						MatchedCount:    1,
						RedactedSeconds: 1.3,
						CreatedAt:       time.Now(),
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, float64(1), body["id"])
				assert.Equal(t, "completed", body["status"])
				assert.Equal(t, "call_redacted.wav", body["output_file_name"])
			},
		},
		{
			name:           "validation error - missing file path",
			request:        dto.CreateRedactionRequest{Phrases: []string{"secret"}},
			setupMock:      func(ms *MockRedactionService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				assert.NotNil(t, body["details"])
			},
		},
		{
			name: "validation error - inverted word range",
			request: dto.CreateRedactionRequest{
				FilePath: "/tmp/call.wav",
				Words:    []dto.WordRequest{{Text: "hello", Start: 2.0, End: 1.0}},
			},
			setupMock:      func(ms *MockRedactionService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
			},
		},
		{
			name: "audio shorter than timeline",
			request: dto.CreateRedactionRequest{
				FilePath: "/tmp/call.wav",
			},
			setupMock: func(ms *MockRedactionService) {
				ms.On("CreateRedaction", mock.Anything, mock.Anything).
					Return(nil, &errors.APIError{
						Kind:    errors.KindConflict,
						Message: "Audio is shorter than the word timeline; refusing to write partial redaction",
						Code:    "audio_too_short",
					})
			},
			expectedStatus: http.StatusConflict,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "conflict", body["kind"])
				assert.Equal(t, "audio_too_short", body["code"])
			},
		},
		{
			name: "file not found",
			request: dto.CreateRedactionRequest{
				FilePath: "/tmp/missing.wav",
			},
			setupMock: func(ms *MockRedactionService) {
				ms.On("CreateRedaction", mock.Anything, mock.Anything).
					Return(nil, errors.NewNotFoundError("audio file /tmp/missing.wav"))
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "not_found", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockRedactionService)
			tt.setupMock(service)
			router := setupTestRouter(service)

			payload, err := json.Marshal(tt.request)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/redactions", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			tt.validateBody(t, body)
			service.AssertExpectations(t)
		})
	}
}

func TestRedactionHandler_Get(t *testing.T) {
	service := new(MockRedactionService)
	service.On("GetRedaction", mock.Anything, 7).
		Return(&dto.RedactionResponse{
			ID:       7,
			FileName: "call.wav",
			Status:   "completed",
		}, nil)
	router := setupTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/redactions/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["id"])
	service.AssertExpectations(t)
}

func TestRedactionHandler_Get_InvalidID(t *testing.T) {
	service := new(MockRedactionService)
	router := setupTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/redactions/not-a-number", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "GetRedaction")
}

func TestRedactionHandler_Get_NotFound(t *testing.T) {
	service := new(MockRedactionService)
	service.On("GetRedaction", mock.Anything, 99).
		Return(nil, errors.NewNotFoundError("redaction"))
	router := setupTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/redactions/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRedactionHandler_GetReport(t *testing.T) {
	service := new(MockRedactionService)
	service.On("GetReport", mock.Anything, 7).
		Return(&dto.ReportResponse{
			ID:              7,
			FileName:        "call.wav",
			Status:          "completed",
			PhraseCount:     2,
			MatchedCount:    1,
			RedactedSeconds: 1.3,
			Applied:         []dto.RangeResponse{{Start: 0.85, End: 2.15}},
		}, nil)
	router := setupTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/redactions/7/report", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["id"])
	applied, ok := body["applied"].([]interface{})
	require.True(t, ok)
	require.Len(t, applied, 1)
	service.AssertExpectations(t)
}

func TestRedactionHandler_Download(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "call_redacted.wav")
	require.NoError(t, os.WriteFile(outputPath, []byte("RIFF fake wav"), 0644))

	service := new(MockRedactionService)
	service.On("ResolveOutputFile", mock.Anything, 7).Return(outputPath, nil)
	router := setupTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/redactions/7/download", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "call_redacted.wav")
	assert.Equal(t, "RIFF fake wav", rec.Body.String())
	service.AssertExpectations(t)
}

func TestRedactionHandler_Download_NotFound(t *testing.T) {
	service := new(MockRedactionService)
	service.On("ResolveOutputFile", mock.Anything, 99).
		Return("", errors.NewNotFoundError("redacted audio"))
	router := setupTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/redactions/99/download", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRedactionHandler_Delete(t *testing.T) {
	service := new(MockRedactionService)
	service.On("DeleteRedaction", mock.Anything, 7).Return(nil)
	router := setupTestRouter(service)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/redactions/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	service.AssertExpectations(t)
}

func TestRedactionHandler_Delete_NotFound(t *testing.T) {
	service := new(MockRedactionService)
	service.On("DeleteRedaction", mock.Anything, 99).
		Return(errors.NewNotFoundError("redaction"))
	router := setupTestRouter(service)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/redactions/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRedactionHandler_List(t *testing.T) {
	service := new(MockRedactionService)
	service.On("ListRedactions", mock.Anything, dto.ListRedactionsQuery{Limit: 2}).
		Return([]dto.RedactionResponse{
			{ID: 2, FileName: "b.wav", Status: "completed"},
			{ID: 1, FileName: "a.wav", Status: "failed"},
		}, nil)
	router := setupTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/redactions?limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-Total-Count"))

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "b.wav", body[0]["file_name"])
	service.AssertExpectations(t)
}

func newMultipartFile(t *testing.T, buf *bytes.Buffer, field, filename string, content []byte) string {
	t.Helper()
	w := multipart.NewWriter(buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return w.FormDataContentType()
}

func TestRedactionHandler_Upload(t *testing.T) {
	service := new(MockRedactionService)
	router := setupTestRouter(service)

	var buf bytes.Buffer
	writer := newMultipartFile(t, &buf, "file", "call.wav", []byte("fake audio"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/redactions/upload", &buf)
	req.Header.Set("Content-Type", writer)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "call.wav", body["name"])
	assert.Contains(t, body["key"], "uploads/")
}

func TestRedactionHandler_Upload_MissingFile(t *testing.T) {
	service := new(MockRedactionService)
	router := setupTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/redactions/upload", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
