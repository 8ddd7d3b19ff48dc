package backend

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

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"storage-dashboard/config"
	"storage-dashboard/internal/application/ports"
	"storage-dashboard/internal/domain/file"
	"storage-dashboard/internal/domain/session"
)

// Client talks to the remote storage/auth API. One method call is one HTTP
// round trip; no response is cached here.
type Client struct {
	logger   *zap.Logger
	baseURL  string
	http     *http.Client
	mCounter *prometheus.CounterVec
}

func New(
	logger *zap.Logger,
	cfg config.Storage,
	baseURL string,
	mCounter *prometheus.CounterVec,
) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("storage backend base URL is required")
	}

	return &Client{
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		mCounter: mCounter,
	}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	var out struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", body, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("login response missing token")
	}

	return out.Token, nil
}

func (c *Client) Register(ctx context.Context, in ports.RegisterInput) error {
	body := map[string]any{
		"email":    in.Email,
		"username": in.Username,
		"password": in.Password,
	}
	// optional field, the backend expects null rather than ""
	if in.PhoneNumber != "" {
		body["phoneNumber"] = in.PhoneNumber
	} else {
		body["phoneNumber"] = nil
	}

	return c.doJSON(ctx, http.MethodPost, "/api/users/register", "", body, nil)
}

func (c *Client) Me(ctx context.Context, token string) (*session.Profile, error) {
	var out struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/me", token, nil, &out); err != nil {
		return nil, err
	}

	return &session.Profile{ID: out.ID, Username: out.Username}, nil
}

func (c *Client) ListByOwner(ctx context.Context, token string, ownerID int64) (file.Records, error) {
	var out []fileRecord
	path := fmt.Sprintf("/api/files/owner/%d", ownerID)
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}

	return toDomainRecords(out), nil
}

func (c *Client) Upload(ctx context.Context, token string, ownerID int64, in ports.UploadInput) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, in.Filename))
	if in.MimeType != "" {
		hdr.Set("Content-Type", in.MimeType)
	}
	part, err := w.CreatePart(hdr)
	if err != nil {
		return fmt.Errorf("create multipart: %w", err)
	}
	if _, err = io.Copy(part, in.Content); err != nil {
		return fmt.Errorf("copy file content: %w", err)
	}
	if err = w.WriteField("ownerId", fmt.Sprintf("%d", ownerID)); err != nil {
		return fmt.Errorf("write ownerId field: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/files/upload", token, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, nil)
}

func (c *Client) Rename(ctx context.Context, token string, id file.ID, filename string) error {
	path := fmt.Sprintf("/api/files/%d", id)
	return c.doJSON(ctx, http.MethodPut, path, token, map[string]string{"filename": filename}, nil)
}

func (c *Client) Delete(ctx context.Context, token string, id file.ID) error {
	path := fmt.Sprintf("/api/files/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, token, nil, nil)
}

func (c *Client) ViewLink(ctx context.Context, token string, id file.ID) (string, error) {
	var out struct {
		ViewURL string `json:"viewUrl"`
	}
	path := fmt.Sprintf("/api/files/%d/view", id)
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return "", err
	}

	return out.ViewURL, nil
}

func (c *Client) DownloadLink(ctx context.Context, token string, id file.ID) (*file.DownloadLink, error) {
	var out struct {
		DownloadURL string `json:"downloadUrl"`
		Filename    string `json:"filename"`
	}
	path := fmt.Sprintf("/api/files/%d/download", id)
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}

	return &file.DownloadLink{URL: out.DownloadURL, Filename: out.Filename}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	return req, nil
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, token, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.mCounter != nil {
		c.mCounter.WithLabelValues("storage_requests_total").Inc()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("storage api %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 4<<10)).Decode(&errBody); decodeErr == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.URL.Path, err)
	}

	return nil
}
