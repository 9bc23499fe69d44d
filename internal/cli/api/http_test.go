package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	fsrepo "PassVault/internal/cli/repo/fs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTempCfg(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
}

func TestPostJSON_SendsBodyAndCookie(t *testing.T) {
	var gotCT, gotCookie string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		gotCookie = r.Header.Get("Cookie")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	resp, body, err := PostJSON(context.Background(), srv.URL, map[string]string{"login": "john"}, "tok-1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, "auth_token=tok-1", gotCookie)
	assert.Equal(t, "john", gotBody["login"])
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestGetJSON_NoTokenNoCookie(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	resp, body, err := GetJSON(context.Background(), srv.URL, "")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, gotCookie)
	assert.Equal(t, "[]", string(body))
}

func TestPutAndDelete_Methods(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
	}))
	defer srv.Close()

	ctx := context.Background()
	resp, _, err := PutJSON(ctx, srv.URL, map[string]string{"title": "x"}, "tok")
	require.NoError(t, err)
	resp.Body.Close()

	resp, _, err = Delete(ctx, srv.URL, "tok")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, methods)
}

func TestPostBlob(t *testing.T) {
	var gotCT string
	var gotLen int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		gotLen = r.ContentLength
		_, _ = w.Write([]byte(`{"path":"7/1_cat.png"}`))
	}))
	defer srv.Close()

	resp, body, err := PostBlob(context.Background(), srv.URL, []byte("pngdata"), "image/png", "tok")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "image/png", gotCT)
	assert.Equal(t, int64(7), gotLen)
	assert.JSONEq(t, `{"path":"7/1_cat.png"}`, string(body))

	// пустой Content-Type заменяется октет-потоком
	resp, _, err = PostBlob(context.Background(), srv.URL, []byte("x"), "", "tok")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "application/octet-stream", gotCT)
}

func TestPersistAuthFromResponse(t *testing.T) {
	setTempCfg(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok-42", Path: "/"})
	}))
	defer srv.Close()

	resp, _, err := PostJSON(context.Background(), srv.URL, map[string]string{}, "")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, PersistAuthFromResponse(resp))
	tok, err := (fsrepo.AuthFSStore{}).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-42", tok)
}

func TestPersistAuthFromResponse_NoCookie(t *testing.T) {
	setTempCfg(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	resp, _, err := GetJSON(context.Background(), srv.URL, "")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Error(t, PersistAuthFromResponse(resp))
}
