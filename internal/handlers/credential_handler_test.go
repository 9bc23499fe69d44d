package handlers_test

import (
	"PassVault/internal/model"
	"PassVault/internal/repo"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func packTestRecord(t *testing.T, userID int64, c *model.Credential) *model.CredentialRecord {
	t.Helper()
	rec, err := model.PackRecord(userID, c)
	require.NoError(t, err)
	return rec
}

func TestCredentials_Unauthorized(t *testing.T) {
	router := newTestRouter(t, nil, nil, nil)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/api/credentials"},
		{http.MethodPost, "/api/credentials"},
		{http.MethodGet, "/api/credentials/some-id"},
		{http.MethodPut, "/api/credentials/some-id"},
		{http.MethodDelete, "/api/credentials/some-id"},
		{http.MethodPost, "/api/blobs/upload"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestCredentials_List(t *testing.T) {
	cr := new(hMockCredentialRepo)
	router := newTestRouter(t, nil, cr, nil)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rec := packTestRecord(t, 7, &model.Credential{
		ID:        "w-1",
		Type:      model.TypeWiFi,
		Title:     "Home network",
		Category:  model.CategoryPersonal,
		CreatedAt: now,
		UpdatedAt: now,
		WiFi:      &model.WiFiData{NetworkName: "home", Password: "pass", SecurityType: "WPA2"},
	})
	cr.On("ListByUser", mock.Anything, int64(7)).Return([]model.CredentialRecord{*rec}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/credentials", nil)
	addAuthCookie(t, req, 7, "test-secret")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []model.Credential
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "w-1", got[0].ID)
	require.NotNil(t, got[0].WiFi)
	assert.Equal(t, "home", got[0].WiFi.NetworkName)
	cr.AssertExpectations(t)
}

func TestCredentials_Add(t *testing.T) {
	cr := new(hMockCredentialRepo)
	router := newTestRouter(t, nil, cr, nil)

	t.Run("created", func(t *testing.T) {
		cr.ExpectedCalls = nil
		cr.On("Create", mock.Anything, mock.MatchedBy(func(rec *model.CredentialRecord) bool {
			return rec.UserID == 5 && rec.Type == string(model.TypePassword)
		})).Return(nil).Once()

		body := `{"type":"password","title":"GitHub","category":"work","password":{"username":"john","password":"s3cret"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/credentials", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		addAuthCookie(t, req, 5, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got model.Credential
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.NotEmpty(t, got.ID)
		assert.False(t, got.CreatedAt.IsZero())
		cr.AssertExpectations(t)
	})

	t.Run("missing title", func(t *testing.T) {
		cr.ExpectedCalls = nil
		cr.Calls = nil
		body := `{"type":"note","note":{"content":"x"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/credentials", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		addAuthCookie(t, req, 5, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		cr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("payload does not match type", func(t *testing.T) {
		cr.ExpectedCalls = nil
		body := `{"type":"note","title":"T","wifi":{"networkName":"n","password":"p"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/credentials", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		addAuthCookie(t, req, 5, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCredentials_GetNotFound(t *testing.T) {
	cr := new(hMockCredentialRepo)
	router := newTestRouter(t, nil, cr, nil)

	cr.On("GetByID", mock.Anything, int64(3), "missing").Return((*model.CredentialRecord)(nil), repo.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/credentials/missing", nil)
	addAuthCookie(t, req, 3, "test-secret")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	cr.AssertExpectations(t)
}

func TestCredentials_Update(t *testing.T) {
	cr := new(hMockCredentialRepo)
	router := newTestRouter(t, nil, cr, nil)

	t.Run("ok", func(t *testing.T) {
		cr.ExpectedCalls = nil
		cr.On("Update", mock.Anything, int64(4), mock.MatchedBy(func(rec *model.CredentialRecord) bool {
			return rec.ID == "rec-1" && rec.Title == "Renamed"
		})).Return(nil).Once()

		body := `{"type":"note","title":"Renamed","note":{"content":"y"}}`
		req := httptest.NewRequest(http.MethodPut, "/api/credentials/rec-1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		addAuthCookie(t, req, 4, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		cr.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		cr.ExpectedCalls = nil
		cr.On("Update", mock.Anything, int64(4), mock.Anything).Return(repo.ErrNotFound).Once()

		body := `{"type":"note","title":"T","note":{"content":"y"}}`
		req := httptest.NewRequest(http.MethodPut, "/api/credentials/ghost", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		addAuthCookie(t, req, 4, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCredentials_RemoveIdempotent(t *testing.T) {
	cr := new(hMockCredentialRepo)
	router := newTestRouter(t, nil, cr, nil)

	cr.On("Delete", mock.Anything, int64(2), "rec-9").Return(nil).Twice()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/api/credentials/rec-9", nil)
		addAuthCookie(t, req, 2, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}
	cr.AssertExpectations(t)
}

func TestCredentials_UploadImage(t *testing.T) {
	bs := new(hMockBlobStore)
	router := newTestRouter(t, nil, nil, bs)

	bs.On("Upload", mock.Anything, mock.MatchedBy(func(path string) bool {
		return strings.HasPrefix(path, "6/") && strings.HasSuffix(path, "_cat.png")
	}), mock.Anything, mock.Anything, "image/png").Return("6/1_cat.png", nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/blobs/upload?name=cat.png", strings.NewReader("pngdata"))
	req.Header.Set("Content-Type", "image/png")
	addAuthCookie(t, req, 6, "test-secret")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got struct {
		Path string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "6/1_cat.png", got.Path)
	bs.AssertExpectations(t)
}
