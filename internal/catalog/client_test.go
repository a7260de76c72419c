package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envelopeBody = `{
	"allsongs": [
		{"_id": "1", "title": "Ocean", "artist": "Wave", "songAvatarURL": "https://img/1.jpg", "songURL": "https://cdn/1.mp3"},
		{"_id": "2", "title": "River", "artist": "Flow", "songAvatarURL": "https://img/2.jpg", "songURL": "https://cdn/2.mp3"}
	]
}`

func TestClient_Fetch_Envelope(t *testing.T) {
	var gotMethod, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(envelopeBody))
	}))
	defer srv.Close()

	c := NewClient(WithURL(srv.URL), WithUserAgent("test-agent"))
	cat, err := c.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "test-agent", gotUA)
	require.Equal(t, 2, cat.Len())

	first := cat.At(0)
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Ocean", first.Title)
	assert.Equal(t, "Wave", first.Artist)
	assert.Equal(t, "https://img/1.jpg", first.CoverURL)
	assert.Equal(t, "https://cdn/1.mp3", first.AudioURL)
	assert.Equal(t, 1, cat.IndexOf("2"))
}

func TestClient_Fetch_BareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"_id": "x", "songURL": "https://cdn/x.mp3"}]`))
	}))
	defer srv.Close()

	cat, err := NewClient(WithURL(srv.URL), WithMethod("get")).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
}

func TestClient_Fetch_EmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"allsongs": []}`))
	}))
	defer srv.Close()

	cat, err := NewClient(WithURL(srv.URL)).Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, cat.IsEmpty())
}

func TestClient_Fetch_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		errMsg string
	}{
		{"server error", http.StatusInternalServerError, "", "unexpected status"},
		{"malformed json", http.StatusOK, `{"allsongs": [`, "decode response"},
		{"missing field", http.StatusOK, `{"songs": []}`, "decode response"},
		{"empty body", http.StatusOK, "", "decode response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(WithURL(srv.URL)).Fetch(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestClient_Fetch_BodyLimit(t *testing.T) {
	body := `{"allsongs":[{"_id":"1","title":"A","songURL":"https://x/a.mp3"}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	old := maxCatalogSize
	t.Cleanup(func() { maxCatalogSize = old })

	maxCatalogSize = len(body)
	cat, err := NewClient(WithURL(srv.URL)).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	maxCatalogSize = len(body) - 1
	_, err = NewClient(WithURL(srv.URL)).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response larger than")
}

func TestClient_Fetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(WithURL(srv.URL), WithTimeout(20*time.Millisecond)).Fetch(context.Background())
	require.Error(t, err)
}

func TestClient_FetchCover(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte("image-bytes"))
	}))
	defer srv.Close()

	c := NewClient()
	data, err := c.FetchCover(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	data, err = c.FetchCover(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, data)
}
