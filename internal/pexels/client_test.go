package pexels

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/julienpequegnot/blogpost/internal/blogerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchBody = `{
  "page": 1,
  "per_page": 2,
  "photos": [
    {
      "id": 2014422,
      "width": 3024,
      "height": 3024,
      "url": "https://www.pexels.com/photo/brown-rocks-2014422/",
      "photographer": "Joey Farina",
      "photographer_url": "https://www.pexels.com/@joey",
      "avg_color": "#978E82",
      "src": {
        "original": "https://images.pexels.com/photos/2014422/original.jpeg",
        "landscape": "https://images.pexels.com/photos/2014422/landscape.jpeg"
      },
      "liked": false,
      "alt": "Brown Rocks During Golden Hour"
    },
    {
      "id": 7,
      "width": 10,
      "height": 20,
      "url": "https://www.pexels.com/photo/7/",
      "photographer": "Anon",
      "photographer_url": "https://www.pexels.com/@anon",
      "src": {"tiny": "https://images.pexels.com/photos/7/tiny.jpeg"}
    }
  ]
}`

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Options{APIKey: "key"})

	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, 30*time.Second, c.httpClient.Timeout)
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("Authorization"))
		assert.Equal(t, "blog-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "rust, cli", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "secret", BaseURL: srv.URL, UserAgent: "blog-test"})

	pictures, err := c.Search(context.Background(), "rust, cli", 2)
	require.NoError(t, err)
	require.Len(t, pictures, 2)

	first := pictures[0]
	assert.Equal(t, int64(2014422), first.ID)
	assert.Equal(t, 3024, first.Width)
	assert.Equal(t, "Joey Farina", first.Photographer)
	assert.Equal(t, "https://www.pexels.com/@joey", first.PhotographerURL)
	assert.Equal(t, "Brown Rocks During Golden Hour", first.Alt)

	landscape, ok := first.Landscape()
	assert.True(t, ok)
	assert.Equal(t, "https://images.pexels.com/photos/2014422/landscape.jpeg", landscape)

	_, ok = pictures[1].Landscape()
	assert.False(t, ok)
	assert.Empty(t, pictures[1].Alt)
}

func TestSearchMissingKeySendsNothing(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})

	_, err := c.Search(context.Background(), "anything", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, blogerr.ErrRemote))
	assert.Contains(t, err.Error(), "API key")
	assert.Equal(t, int32(0), hits.Load())
}

func TestSearchErrorStatusCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid key"}`))
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "bad", BaseURL: srv.URL})

	_, err := c.Search(context.Background(), "go", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, blogerr.ErrRemote))
	assert.Contains(t, err.Error(), `{"error":"invalid key"}`)
}

func TestSearchErrorStatusUnreadableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"er`))
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "bad", BaseURL: srv.URL})

	_, err := c.Search(context.Background(), "go", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, blogerr.ErrRemote))
	assert.Contains(t, err.Error(), "401 Unauthorized")
}

func TestSearchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"photos": [`))
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "k", BaseURL: srv.URL})

	_, err := c.Search(context.Background(), "go", 1)
	require.Error(t, err)
	assert.Equal(t, blogerr.RemoteServiceFailure, blogerr.KindOf(err))
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.jpg":
			w.Write([]byte{0xff, 0xd8, 0xff, 0xe0})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "k"})

	data, err := c.Download(context.Background(), srv.URL+"/ok.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff, 0xe0}, data)

	_, err = c.Download(context.Background(), srv.URL+"/missing.jpg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, blogerr.ErrRemote))
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestDownloadTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, maxImageSize+1024))
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "k"})

	data, err := c.Download(context.Background(), srv.URL+"/huge.jpg")
	require.Error(t, err)
	assert.Nil(t, data)
	assert.True(t, errors.Is(err, blogerr.ErrRemote))
	assert.Contains(t, err.Error(), "exceeds")
}

func TestDownloadBadURL(t *testing.T) {
	c := NewClient(Options{APIKey: "k"})

	_, err := c.Download(context.Background(), "://nope")
	assert.True(t, errors.Is(err, blogerr.ErrRemote))
}

func TestPictureString(t *testing.T) {
	p := Picture{Photographer: "Jane", URL: "https://pexels.com/p/1", Alt: "a cat"}
	assert.Equal(t, "Picture by Jane - https://pexels.com/p/1 `a cat`", p.String())
}
