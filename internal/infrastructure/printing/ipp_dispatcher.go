// Package printing talks to the external IPP bridge that drives physical
// receipt printers.
package printing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sarvcafe/cafepos-api/internal/application/usecase"
)

var _ usecase.Dispatcher = (*IPPDispatcher)(nil)

// IPPDispatcher posts print requests to the bridge's /print endpoint. An
// empty endpoint means no bridge is configured; every dispatch then fails
// and jobs settle as FAILED.
type IPPDispatcher struct {
	endpoint string
	client   *http.Client
}

// NewIPPDispatcher builds the dispatcher for the configured bridge endpoint.
func NewIPPDispatcher(endpoint string) *IPPDispatcher {
	return &IPPDispatcher{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type printRequest struct {
	PrinterID string `json:"printerId"`
	PDFURL    string `json:"pdfUrl"`
}

// Dispatch sends one print request. Any non-2xx response is an error.
func (d *IPPDispatcher) Dispatch(ctx context.Context, printerID, fileURL string) error {
	if d.endpoint == "" {
		return fmt.Errorf("print bridge endpoint is not configured")
	}
	body, err := json.Marshal(printRequest{PrinterID: printerID, PDFURL: fileURL})
	if err != nil {
		return fmt.Errorf("encode print request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint+"/print", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build print request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("send print request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("print bridge returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}
