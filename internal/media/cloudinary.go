// Package media implements the Cloudinary upload relay. Payloads are
// forwarded as-is; no local persistence or image processing happens here.
package media

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrRejected marks a request Cloudinary processed but refused, as opposed
// to a transport or server failure.
var ErrRejected = errors.New("rejected by media host")

// UploadResult is Cloudinary's answer to a successful upload.
type UploadResult struct {
	URL      string `json:"secure_url"`
	PublicID string `json:"public_id"`
}

type destroyResult struct {
	Result string `json:"result"`
}

// Client talks to the Cloudinary REST API using signed requests.
type Client struct {
	httpClient *http.Client
	endpoint   string
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	now        func() time.Time
}

// NewClient builds a Cloudinary client. endpoint is the API base
// (https://api.cloudinary.com/v1_1 in production, overridable for tests).
func NewClient(endpoint, cloudName, apiKey, apiSecret, folder string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   strings.TrimRight(endpoint, "/"),
		cloudName:  cloudName,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		folder:     folder,
		now:        time.Now,
	}
}

// Folder returns the logical upload folder.
func (c *Client) Folder() string {
	return c.folder
}

// sign produces the request signature: SHA-1 over the sorted
// key=value&... string of all params (file and api_key excluded) with the
// API secret appended.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}

// Upload forwards the file bytes to Cloudinary's image upload endpoint and
// returns the public URL and identifier.
func (c *Client) Upload(ctx context.Context, content []byte, filename string) (*UploadResult, error) {
	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	params := map[string]string{
		"timestamp": timestamp,
		"folder":    c.folder,
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range params {
		if err := w.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err := w.WriteField("api_key", c.apiKey); err != nil {
		return nil, err
	}
	if err := w.WriteField("signature", c.sign(params)); err != nil {
		return nil, err
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/image/upload", c.endpoint, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("cloudinary upload failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("cloudinary upload: decoding response: %w", err)
	}
	return &result, nil
}

// Destroy deletes an uploaded asset by its public identifier. Cloudinary
// reports "ok" on success; anything else is surfaced to the caller.
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}

	form := make([]string, 0, 4)
	for k, v := range params {
		form = append(form, k+"="+v)
	}
	form = append(form, "api_key="+c.apiKey, "signature="+c.sign(params))

	url := fmt.Sprintf("%s/%s/image/destroy", c.endpoint, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(strings.Join(form, "&")))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("cloudinary destroy failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var result destroyResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("cloudinary destroy: decoding response: %w", err)
	}
	if result.Result != "ok" {
		return fmt.Errorf("%w: %s", ErrRejected, result.Result)
	}
	return nil
}
