package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authpipe/authpipe/internal/config"
)

func newTestClient(serverURL string) *HTTPClient {
	return NewHTTPClient(config.TransportConfig{BaseURL: serverURL})
}

func TestHTTPClient_Send_Success(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":{"token":"abc"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	envelope, err := client.Send(context.Background(), "post", "/api/auth/login", []byte(`{"email":"a@b.c"}`))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/auth/login", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, http.StatusOK, envelope.Status)
	assert.True(t, envelope.OK())
	assert.JSONEq(t, `{"data":{"token":"abc"}}`, string(envelope.Body))
}

func TestHTTPClient_Send_NoBodyOmitsContentType(t *testing.T) {
	t.Parallel()

	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Send(context.Background(), "delete", "/api/auth/logout", nil)
	require.NoError(t, err)
	assert.Empty(t, gotContentType)
}

func TestHTTPClient_Send_StructuredFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"data":{"errors":["Unknown email"]}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	envelope, err := client.Send(context.Background(), "post", "/api/auth/request-pass", []byte(`{}`))
	require.Error(t, err)
	assert.Nil(t, envelope)

	statusErr, ok := AsStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, statusErr.Status)
	assert.JSONEq(t, `{"data":{"errors":["Unknown email"]}}`, string(statusErr.Body))
	assert.Equal(t, http.StatusBadRequest, statusErr.Envelope().Status)
}

func TestHTTPClient_Send_OpaqueFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	client := newTestClient(server.URL)
	_, err := client.Send(context.Background(), "post", "/api/auth/login", []byte(`{}`))
	require.Error(t, err)

	_, ok := AsStatusError(err)
	assert.False(t, ok, "network failure must stay opaque")
}

func TestHTTPClient_Send_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(server.URL)
	_, err := client.Send(ctx, "post", "/api/auth/login", []byte(`{}`))
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEnvelope_Empty(t *testing.T) {
	t.Parallel()

	envelope := Empty()
	assert.Zero(t, envelope.Status)
	assert.False(t, envelope.OK())
	assert.JSONEq(t, `{}`, string(envelope.Body))
}
