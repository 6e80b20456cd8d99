package transcript

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCaptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transcript", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "abc123", body["videoId"])

		w.Write([]byte("  hello world text...  \n"))
	}))
	defer srv.Close()

	client := NewClient(Config{ServiceURL: srv.URL})

	captions, err := client.FetchCaptions(context.Background(), "abc123")
	require.NoError(t, err)
	require.Len(t, captions, 1)
	assert.Equal(t, "hello world text...", captions[0].Text)
	assert.Zero(t, captions[0].Start)
	assert.Zero(t, captions[0].Duration)
}

func TestFetchCaptions_TrailingSlashURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transcript", r.URL.Path)
		w.Write([]byte("text"))
	}))
	defer srv.Close()

	client := NewClient(Config{ServiceURL: srv.URL + "/"})

	_, err := client.FetchCaptions(context.Background(), "abc123")
	require.NoError(t, err)
}

func TestFetchCaptions_MissingURL(t *testing.T) {
	client := NewClient(Config{})

	_, err := client.FetchCaptions(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrMissingServiceURL)
}

func TestFetchCaptions_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("   \n\t"))
	}))
	defer srv.Close()

	client := NewClient(Config{ServiceURL: srv.URL})

	_, err := client.FetchCaptions(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrEmptyTranscript)
}

func TestFetchCaptions_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("captions disabled for this video"))
	}))
	defer srv.Close()

	client := NewClient(Config{ServiceURL: srv.URL})

	_, err := client.FetchCaptions(context.Background(), "abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "captions disabled for this video")
}
