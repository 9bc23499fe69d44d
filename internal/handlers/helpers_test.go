package handlers_test

import (
	"PassVault/internal/config"
	"PassVault/internal/handlers"
	"PassVault/internal/middleware"
	"PassVault/internal/model"
	"PassVault/internal/repo"
	"PassVault/internal/service"
	"PassVault/internal/storage"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Local light mocks
type hMockUserRepo struct{ mock.Mock }

func (m *hMockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*hMockUserRepo)(nil)

type hMockCredentialRepo struct{ mock.Mock }

func (m *hMockCredentialRepo) ListByUser(ctx context.Context, userID int64) ([]model.CredentialRecord, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.CredentialRecord); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockCredentialRepo) GetByID(ctx context.Context, userID int64, id string) (*model.CredentialRecord, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*model.CredentialRecord); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockCredentialRepo) Create(ctx context.Context, rec *model.CredentialRecord) error {
	return m.Called(ctx, rec).Error(0)
}
func (m *hMockCredentialRepo) Update(ctx context.Context, userID int64, rec *model.CredentialRecord) error {
	return m.Called(ctx, userID, rec).Error(0)
}
func (m *hMockCredentialRepo) Delete(ctx context.Context, userID int64, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ repo.CredentialRepository = (*hMockCredentialRepo)(nil)

type hMockBlobStore struct{ mock.Mock }

func (m *hMockBlobStore) EnsureBucket(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *hMockBlobStore) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, path, r, size, contentType)
	return args.String(0), args.Error(1)
}
func (m *hMockBlobStore) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, path, ttl)
	return args.String(0), args.Error(1)
}
func (m *hMockBlobStore) PublicURL(path string) string { return m.Called(path).String(0) }
func (m *hMockBlobStore) Delete(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

var _ storage.BlobStore = (*hMockBlobStore)(nil)

// --- Helpers ---
func newTestRouter(t *testing.T, ur repo.UserRepository, cr repo.CredentialRepository, bs storage.BlobStore) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", BlobMaxSizeMB: 1}
	logger := zap.NewNop().Sugar()

	if ur == nil {
		ur = &hMockUserRepo{}
	}
	if cr == nil {
		cr = &hMockCredentialRepo{}
	}
	if bs == nil {
		bs = storage.Unconfigured{}
	}

	userSvc := service.NewUserService(ur)
	credSvc, err := service.NewCredentialService(cr, bs, logger)
	require.NoError(t, err)

	h := handlers.NewHandler(userSvc, credSvc, logger, cfg)
	return h.Router
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
