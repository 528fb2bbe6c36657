package netx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("success 200 OK", func(t *testing.T) {
		var gotMethod, gotAccept string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotAccept = r.Header.Get("Accept")
			_, _ = w.Write([]byte(`{"name":"masp"}`))
		}))
		defer ts.Close()

		var out payload
		require.NoError(t, GetJSON(context.Background(), ts.Client(), ts.URL, &out))
		assert.Equal(t, "masp", out.Name)
		assert.Equal(t, http.MethodGet, gotMethod)
		assert.Equal(t, "application/json", gotAccept)
	})

	t.Run("non-200 -> StatusError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		}))
		defer ts.Close()

		err := GetJSON(context.Background(), ts.Client(), ts.URL, &payload{})
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusForbidden, se.Code)
		assert.Contains(t, err.Error(), "unexpected status 403: nope")
	})

	t.Run("bad json", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{`))
		}))
		defer ts.Close()

		err := GetJSON(context.Background(), ts.Client(), ts.URL, &payload{})
		assert.ErrorContains(t, err, "decode json")
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		err := GetJSON(context.Background(), http.DefaultClient, url, &payload{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "request failed")
		var se *StatusError
		assert.False(t, errors.As(err, &se))
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := GetJSON(ctx, http.DefaultClient, "http://127.0.0.1:1", &payload{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
