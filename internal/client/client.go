package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/plutus-labs/schedule3/internal/ingest"
	"github.com/plutus-labs/schedule3/internal/report"
	"github.com/plutus-labs/schedule3/internal/store"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ImportTrialBalance uploads a trial-balance export and returns the
// created batch.
func (c *Client) ImportTrialBalance(ctx context.Context, filename string, content io.Reader) (*store.Batch, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(fw, content); err != nil {
		return nil, fmt.Errorf("copy upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/v1/trialbalance", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var batch store.Batch
	if err := c.doRequest(req, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

func (c *Client) ListBatches(ctx context.Context) ([]store.Batch, error) {
	var result []store.Batch
	if err := c.get(ctx, "/api/v1/batches", &result); err != nil {
		return nil, err
	}
	return result, nil
}

type StatementResponse struct {
	Statement report.Statement      `json:"statement"`
	Title     string                `json:"title"`
	Lines     []report.ResolvedNode `json:"lines"`
}

func (c *Client) GetStatement(ctx context.Context, st report.Statement, batchID string) (*StatementResponse, error) {
	var result StatementResponse
	if err := c.get(ctx, "/api/v1/statements/"+string(st)+batchQuery(batchID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListNotes(ctx context.Context, batchID string) ([]*report.FinancialNote, error) {
	var result []*report.FinancialNote
	if err := c.get(ctx, "/api/v1/notes"+batchQuery(batchID), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetNote(ctx context.Context, number, batchID string) (*report.FinancialNote, error) {
	var result report.FinancialNote
	if err := c.get(ctx, "/api/v1/notes/"+url.PathEscape(number)+batchQuery(batchID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExportExcel downloads the statement workbook.
func (c *Client) ExportExcel(ctx context.Context, batchID string) ([]byte, error) {
	return c.download(ctx, "/api/v1/export/xlsx"+batchQuery(batchID))
}

// ExportPDF downloads the statement pack as a PDF.
func (c *Client) ExportPDF(ctx context.Context, batchID string) ([]byte, error) {
	return c.download(ctx, "/api/v1/export/pdf"+batchQuery(batchID))
}

func (c *Client) CreateAdjustment(ctx context.Context, adj ingest.Adjustment) (*ingest.Adjustment, error) {
	body := map[string]any{
		"level1":          adj.Level1,
		"level2":          adj.Level2,
		"amount_current":  adj.Current,
		"amount_previous": adj.Previous,
		"narration":       adj.Narration,
	}
	var result ingest.Adjustment
	if err := c.post(ctx, "/api/v1/adjustments", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListAdjustments(ctx context.Context) ([]ingest.Adjustment, error) {
	var result []ingest.Adjustment
	if err := c.get(ctx, "/api/v1/adjustments", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) DeleteAdjustment(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/adjustments/"+url.PathEscape(id))
}

// Ping checks if the server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/v1/batches", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func batchQuery(batchID string) string {
	if batchID == "" {
		return ""
	}
	params := url.Values{}
	params.Set("batch", batchID)
	return "?" + params.Encode()
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.doRequest(req, result)
}

func (c *Client) download(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, string(bodyBytes))
	}
	return bodyBytes, nil
}

func (c *Client) del(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, "DELETE", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doRequest(req, result)
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) doRequest(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	if result != nil {
		if err := json.Unmarshal(bodyBytes, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
