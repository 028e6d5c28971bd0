package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/mcplug-ai/mcplug/internal/config"
)

const bundleContentType = "application/javascript"

// defaultUploadTimeout bounds the publish request. The observed upstream
// behavior has no timeout; this is a deliberate hardening deviation.
const defaultUploadTimeout = 60 * time.Second

// UploadResult is the success envelope returned by the publish endpoint.
// Any field may be absent; unknown fields are preserved in Extra.
type UploadResult struct {
	ID      string         `json:"id"`
	URL     string         `json:"url"`
	Version string         `json:"version"`
	Extra   map[string]any `json:"-"`
}

// UnmarshalJSON decodes the known fields and collects the rest into Extra.
func (r *UploadResult) UnmarshalJSON(data []byte) error {
	type uploadResult UploadResult
	var known uploadResult
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var extra map[string]any
	if err := json.Unmarshal(data, &extra); err == nil {
		delete(extra, "id")
		delete(extra, "url")
		delete(extra, "version")
		if len(extra) > 0 {
			known.Extra = extra
		}
	}

	*r = UploadResult(known)
	return nil
}

// Uploader posts the manifest and bundle to the publish endpoint as a
// multipart request. Endpoint URL and field names are configuration, not a
// fixed contract: the hosted registry takes payload/file, self-hosted
// deployments may rename either.
type Uploader struct {
	endpoint       string
	payloadField   string
	fileField      string
	marketplaceURL string
	httpClient     *http.Client
}

// UploaderOption configures an Uploader.
type UploaderOption func(*Uploader)

// WithEndpoint overrides the publish endpoint URL.
func WithEndpoint(url string) UploaderOption {
	return func(u *Uploader) { u.endpoint = url }
}

// WithFields overrides the multipart field names for the manifest and bundle.
func WithFields(payloadField, fileField string) UploaderOption {
	return func(u *Uploader) {
		u.payloadField = payloadField
		u.fileField = fileField
	}
}

// WithMarketplaceURL overrides the marketplace base used for result URLs.
func WithMarketplaceURL(url string) UploaderOption {
	return func(u *Uploader) { u.marketplaceURL = url }
}

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) UploaderOption {
	return func(u *Uploader) { u.httpClient = c }
}

// NewUploader creates an Uploader from the resolved configuration, applying
// any options on top.
func NewUploader(opts ...UploaderOption) *Uploader {
	u := &Uploader{
		endpoint:       config.RegistryURL(),
		payloadField:   config.PayloadField(),
		fileField:      config.FileField(),
		marketplaceURL: config.MarketplaceURL(),
		httpClient:     &http.Client{Timeout: defaultUploadTimeout},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Upload POSTs the manifest JSON and bundle bytes with a bearer token.
// Non-2xx responses become RejectedError; transport failures become
// NetworkError. Nothing is retried.
func (u *Uploader) Upload(ctx context.Context, token string, manifestJSON, bundle []byte) (*UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField(u.payloadField, string(manifestJSON)); err != nil {
		return nil, fmt.Errorf("writing manifest part: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, u.fileField, BundleFileName))
	header.Set("Content-Type", bundleContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("creating bundle part: %w", err)
	}
	if _, err := part.Write(bundle); err != nil {
		return nil, fmt.Errorf("writing bundle part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("creating publish request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RejectedError{
			StatusCode: resp.StatusCode,
			Message:    rejectionMessage(resp.StatusCode, respBody),
		}
	}

	// Tolerant decode: the envelope's fields are all optional and callers
	// fall back to placeholders for anything missing.
	var result UploadResult
	_ = json.Unmarshal(respBody, &result)
	return &result, nil
}

// ServerURL returns the user-facing marketplace URL for an upload result,
// preferring the server-provided URL over one derived from the id.
func (u *Uploader) ServerURL(result *UploadResult) string {
	if result.URL != "" {
		return result.URL
	}
	base := strings.TrimRight(u.marketplaceURL, "/")
	if result.ID != "" {
		return base + "/servers/" + result.ID
	}
	return base
}

// rejectionMessage extracts a human-readable message from a JSON error body,
// falling back to the HTTP status when the body is not parseable.
func rejectionMessage(statusCode int, body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}

	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", statusCode)
}
