package backend

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/kanoonai/kanoon-web/internal/domain"
)

// AllowedExtensions are the file types the document endpoints accept.
var AllowedExtensions = []string{".pdf", ".docx", ".txt"}

// Upload is a file forwarded to a backend endpoint as the "file" part.
type Upload struct {
	Filename string
	Content  io.Reader
}

// CheckUpload rejects files the backend would refuse before any bytes are
// sent. maxBytes <= 0 disables the size check.
func CheckUpload(filename string, size, maxBytes int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	supported := false
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			supported = true
			break
		}
	}
	if !supported {
		return domain.Invalid("Unsupported file type. Please upload a PDF, DOCX, or TXT file.")
	}
	if maxBytes > 0 && size > maxBytes {
		return domain.Invalid(fmt.Sprintf("File is too large. The maximum size is %d MB.", maxBytes>>20))
	}
	return nil
}

// Summarize uploads a judgment and returns its structured summary.
func (c *Client) Summarize(ctx context.Context, file Upload) (*SummaryResult, error) {
	var resp SummaryResult
	if err := c.sendFile(ctx, "/api/v1/summarizer/upload-and-summarize", file, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnalyzeFIR uploads a First Information Report and returns the extracted fields.
func (c *Client) AnalyzeFIR(ctx context.Context, file Upload) (*FIRAnalysis, error) {
	var resp FIRAnalysis
	if err := c.sendFile(ctx, "/api/v1/analyzer/analyze-fir", file, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// sendFile streams file as a multipart form without buffering it in memory.
func (c *Client) sendFile(ctx context.Context, path string, file Upload, out any) error {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(file.Filename))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, pr)
	if err != nil {
		pr.Close()
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	err = c.do(req, path, out)
	pr.Close()
	return err
}
