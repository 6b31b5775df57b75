package client

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"
)

const userAgent = "golang-pwd-meter/1.0"

// Client queries a pwd-meter server.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

// New creates a client for the server at baseURL (for example https://localhost:3100).
// insecure skips certificate verification, for servers started with --self-tls.
func New(baseURL string, insecure bool) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    initHttpClient(insecure),
	}, nil
}

func initHttpClient(insecure bool) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = 3
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second

	client.HTTPClient = &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion:         tls.VersionTLS12,
				InsecureSkipVerify: insecure,
			},
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			IdleConnTimeout:     30 * time.Second,
			TLSHandshakeTimeout: 5 * time.Second,
		},
	}

	return client
}

// Report fetches the full report of a password.
func (c *Client) Report(ctx context.Context, password string) (strength.Report, error) {
	var r strength.Report
	err := c.post(ctx, "/v1/strength/report", password, &r)
	return r, err
}

// Evaluate fetches the score, level and issues of a password.
func (c *Client) Evaluate(ctx context.Context, password string) (strength.Result, error) {
	var r strength.Result
	err := c.post(ctx, "/v1/strength/evaluate", password, &r)
	return r, err
}

// CrackTime asks the server to describe an entropy value.
func (c *Client) CrackTime(ctx context.Context, bits int) (string, error) {
	var r struct {
		CrackTime string `json:"crack_time"`
	}
	target := c.baseURL + "/v1/strength/crack-time?bits=" + strconv.Itoa(bits)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	if err = c.do(req, &r); err != nil {
		return "", err
	}

	return r.CrackTime, nil
}

func (c *Client) post(ctx context.Context, path, password string, out interface{}) error {
	body, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *retryablehttp.Request, out interface{}) error {
	req.Header.Set("User-Agent", userAgent)

	timer := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}

	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			log.Warn().Err(err).Msgf("error closing body for %s", req.URL.Path)
		}
	}(res.Body)

	log.Debug().Msgf("%s %s answered %d in %d ms", req.Method, req.URL.Path, res.StatusCode, time.Since(timer).Milliseconds())

	if res.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&apiErr)
		return &StatusError{Code: res.StatusCode, Message: apiErr.Error}
	}

	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	return nil
}

// StatusError is returned when the server answers with an error status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status [%d] %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("request failed with status [%d]: %s", e.Code, e.Message)
}
