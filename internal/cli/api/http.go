package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	fsrepo "PassVault/internal/cli/repo/fs"
)

// doJSON выполняет запрос с JSON-телом (или без тела) и возвращает ответ
// вместе с прочитанным телом. Непустой token передаётся как auth cookie.
func doJSON(ctx context.Context, method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	respBody, _ := io.ReadAll(resp.Body)
	return resp, respBody, nil
}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as auth cookie.
func PostJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	return doJSON(ctx, http.MethodPost, url, payload, token)
}

// PutJSON sends a JSON PUT request with the auth cookie.
func PutJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	return doJSON(ctx, http.MethodPut, url, payload, token)
}

// GetJSON sends a GET request with the auth cookie.
func GetJSON(ctx context.Context, url string, token string) (*http.Response, []byte, error) {
	return doJSON(ctx, http.MethodGet, url, nil, token)
}

// Delete sends a DELETE request with the auth cookie.
func Delete(ctx context.Context, url string, token string) (*http.Response, []byte, error) {
	return doJSON(ctx, http.MethodDelete, url, nil, token)
}

// PostBlob загружает бинарное тело (изображение) с указанным Content-Type.
func PostBlob(ctx context.Context, url string, data []byte, contentType, token string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

// PersistAuthFromResponse извлекает auth cookie из ответа и сохраняет его через файловое хранилище.
func PersistAuthFromResponse(resp *http.Response) error {
	store := fsrepo.AuthFSStore{}
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return store.Save(c.Value)
		}
	}
	return fmt.Errorf("no auth cookie in response")
}
