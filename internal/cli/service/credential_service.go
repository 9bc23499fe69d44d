package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"PassVault/internal/cli/api"
	"PassVault/internal/cli/repo"
	"PassVault/internal/cli/session"
	"PassVault/internal/config"
	"PassVault/internal/model"
)

// ErrNotFound — запись отсутствует или принадлежит другому пользователю.
var ErrNotFound = errors.New("credential not found")

// CredentialService — юзкейс-уровень работы с записями хранилища на клиенте.
type CredentialService interface {
	List(ctx context.Context) ([]model.Credential, error)
	Get(ctx context.Context, id string) (*model.Credential, error)
	Add(ctx context.Context, draft *model.Credential) (*model.Credential, error)
	Update(ctx context.Context, id string, updated *model.Credential) error
	Remove(ctx context.Context, id string) error

	// Search фильтрует полученный список локально; порядок List сохраняется.
	Search(ctx context.Context, query string, typeFilter model.CredentialType) ([]model.Credential, error)

	// UploadImage загружает изображение и возвращает путь объекта для image-записи.
	UploadImage(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// CredentialServiceRemote — реализация поверх HTTP API сервера.
type CredentialServiceRemote struct {
	cfg    *config.Config
	gate   *session.Gate
	tokens repo.TokenStore
}

var _ CredentialService = (*CredentialServiceRemote)(nil)

// NewCredentialServiceRemote создаёт сервис записей поверх HTTP API.
func NewCredentialServiceRemote(cfg *config.Config, gate *session.Gate, tokens repo.TokenStore) *CredentialServiceRemote {
	return &CredentialServiceRemote{cfg: cfg, gate: gate, tokens: tokens}
}

// endpoint строит абсолютный URL эндпоинта API.
func (s *CredentialServiceRemote) endpoint(path string) string {
	return strings.TrimRight(s.cfg.ServerURL, "/") + path
}

// token проверяет наличие сессии и возвращает auth-токен.
func (s *CredentialServiceRemote) token() (string, error) {
	if _, err := s.gate.Require(); err != nil {
		return "", err
	}
	tok, err := s.tokens.Load()
	if err != nil {
		return "", session.ErrUnauthenticated
	}
	return tok, nil
}

// remoteErr переводит статус ответа в ошибку клиента. 401 дополнительно
// сбрасывает сессию: сервер — источник истины об её истечении.
func (s *CredentialServiceRemote) remoteErr(status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized:
		s.gate.Clear()
		return session.ErrUnauthenticated
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("server error (%d): %s", status, strings.TrimSpace(string(body)))
	}
}

func (s *CredentialServiceRemote) List(ctx context.Context) ([]model.Credential, error) {
	tok, err := s.token()
	if err != nil {
		return nil, err
	}
	resp, body, err := api.GetJSON(ctx, s.endpoint("/api/credentials"), tok)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, s.remoteErr(resp.StatusCode, body)
	}
	var creds []model.Credential
	if err := json.Unmarshal(body, &creds); err != nil {
		return nil, fmt.Errorf("decode credential list: %w", err)
	}
	return creds, nil
}

func (s *CredentialServiceRemote) Get(ctx context.Context, id string) (*model.Credential, error) {
	tok, err := s.token()
	if err != nil {
		return nil, err
	}
	resp, body, err := api.GetJSON(ctx, s.endpoint("/api/credentials/"+id), tok)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, s.remoteErr(resp.StatusCode, body)
	}
	var cred model.Credential
	if err := json.Unmarshal(body, &cred); err != nil {
		return nil, fmt.Errorf("decode credential: %w", err)
	}
	return &cred, nil
}

func (s *CredentialServiceRemote) Add(ctx context.Context, draft *model.Credential) (*model.Credential, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	tok, err := s.token()
	if err != nil {
		return nil, err
	}
	resp, body, err := api.PostJSON(ctx, s.endpoint("/api/credentials"), draft, tok)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return nil, s.remoteErr(resp.StatusCode, body)
	}
	var stored model.Credential
	if err := json.Unmarshal(body, &stored); err != nil {
		return nil, fmt.Errorf("decode stored credential: %w", err)
	}
	return &stored, nil
}

func (s *CredentialServiceRemote) Update(ctx context.Context, id string, updated *model.Credential) error {
	if err := updated.Validate(); err != nil {
		return err
	}
	tok, err := s.token()
	if err != nil {
		return err
	}
	resp, body, err := api.PutJSON(ctx, s.endpoint("/api/credentials/"+id), updated, tok)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return s.remoteErr(resp.StatusCode, body)
	}
	return nil
}

func (s *CredentialServiceRemote) Remove(ctx context.Context, id string) error {
	tok, err := s.token()
	if err != nil {
		return err
	}
	resp, body, err := api.Delete(ctx, s.endpoint("/api/credentials/"+id), tok)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return s.remoteErr(resp.StatusCode, body)
	}
	return nil
}

func (s *CredentialServiceRemote) Search(ctx context.Context, query string, typeFilter model.CredentialType) ([]model.Credential, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.Search(all, query, typeFilter), nil
}

func (s *CredentialServiceRemote) UploadImage(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	tok, err := s.token()
	if err != nil {
		return "", err
	}
	resp, body, err := api.PostBlob(ctx, s.endpoint("/api/blobs/upload?name="+name), data, contentType, tok)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", s.remoteErr(resp.StatusCode, body)
	}
	var out struct {
		Path string `json:"path"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	return out.Path, nil
}
