package pexels

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/docker/go-units"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienpequegnot/blogpost/internal/blogerr"
)

const (
	DefaultBaseURL = "https://api.pexels.com/v1"

	// maxImageSize caps a single downloaded image.
	maxImageSize = 25 << 20
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var httpTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 60 * time.Second,
	}).DialContext,
	MaxIdleConns:        10,
	MaxIdleConnsPerHost: 4,
	IdleConnTimeout:     90 * time.Second,
	TLSHandshakeTimeout: 10 * time.Second,
}

type Options struct {
	APIKey    string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type Client struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

type searchResponse struct {
	Photos []Picture `json:"photos"`
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Client{
		apiKey:    opts.APIKey,
		baseURL:   opts.BaseURL,
		userAgent: opts.UserAgent,
		httpClient: &http.Client{
			Transport: httpTransport,
			Timeout:   opts.Timeout,
		},
	}
}

// Search queries the photo search endpoint. The API key is checked before
// anything is sent.
func (c *Client) Search(ctx context.Context, query string, perPage int) ([]Picture, error) {
	if c.apiKey == "" {
		return nil, blogerr.New(blogerr.RemoteServiceFailure, "missing Pexels API key (set PEXEL_API_KEY)")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, blogerr.Wrap(blogerr.RemoteServiceFailure, err, "failed to create request")
	}
	req.Header.Set("Authorization", c.apiKey)
	c.setUserAgent(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, blogerr.Wrap(blogerr.RemoteServiceFailure, err, "failed to send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, blogerr.Wrap(blogerr.RemoteServiceFailure, err, "failed to fetch image: %s", resp.Status)
		}
		return nil, blogerr.New(blogerr.RemoteServiceFailure, "failed to fetch image: %s", string(body))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, blogerr.Wrap(blogerr.RemoteServiceFailure, err, "failed to decode response")
	}

	return result.Photos, nil
}

// Download fetches the raw bytes behind an image URL.
func (c *Client) Download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, blogerr.Wrap(blogerr.RemoteServiceFailure, err, "invalid image url %q", imageURL)
	}
	c.setUserAgent(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, blogerr.Wrap(blogerr.RemoteServiceFailure, err, "failed to download %s", imageURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, blogerr.New(blogerr.RemoteServiceFailure, "failed to download %s: HTTP %d", imageURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return nil, blogerr.Wrap(blogerr.RemoteServiceFailure, err, "failed to read %s", imageURL)
	}
	if len(data) > maxImageSize {
		return nil, blogerr.New(blogerr.RemoteServiceFailure, "failed to download %s: image exceeds %s", imageURL, units.BytesSize(maxImageSize))
	}
	return data, nil
}

func (c *Client) setUserAgent(req *http.Request) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}
