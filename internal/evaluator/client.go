package evaluator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// File is one uploaded document forwarded to the evaluator.
type File struct {
	Name    string
	Content io.Reader
}

type Client interface {
	// Compare uploads the solicitation and proposals and returns the raw
	// response body. Non-2xx bodies are returned too; the evaluator reports
	// failures in-band through an error field.
	Compare(ctx context.Context, rfp File, proposals []File) ([]byte, error)
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *HTTPClient) Compare(ctx context.Context, rfp File, proposals []File) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := writeFile(mw, "rfp_file", rfp); err != nil {
		return nil, err
	}
	for _, p := range proposals {
		if err := writeFile(mw, "proposal_files", p); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/compare_llm", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("evaluator POST /compare_llm: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read evaluator response: %w", err)
	}

	c.logger.Info("evaluator responded",
		"status", resp.StatusCode,
		"proposals", len(proposals),
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return body, nil
}

func writeFile(mw *multipart.Writer, field string, f File) error {
	part, err := mw.CreateFormFile(field, f.Name)
	if err != nil {
		return fmt.Errorf("create form file %s: %w", field, err)
	}
	if _, err := io.Copy(part, f.Content); err != nil {
		return fmt.Errorf("copy %s: %w", f.Name, err)
	}
	return nil
}
