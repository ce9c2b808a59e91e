package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"facerecog/types"

	"go.uber.org/zap"
)

// Upload is the single file sent with a prediction request
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

var errInvalidJSON = errors.New("body is not valid JSON")

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Predict posts the upload as the only part of a multipart body and decodes the reply.
// It makes exactly one request and never retries. The HTTP status is not
// interpreted: any body matching the response contract is returned as a result.
func (c *Client) Predict(ctx context.Context, upload Upload) (*types.RecognitionResult, error) {
	url := c.PredictURL()

	body, contentType, err := encodeUpload(upload)
	if err != nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("failed to encode upload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug("prediction response received",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(raw)),
		zap.Duration("elapsed", time.Since(start)),
	)

	result, err := decodeResult(raw)
	if err != nil {
		return nil, &MalformedResponseError{StatusCode: resp.StatusCode, Err: err}
	}
	return result, nil
}

func decodeResult(raw []byte) (*types.RecognitionResult, error) {
	if !json.Valid(raw) {
		return nil, errInvalidJSON
	}
	var result types.RecognitionResult
	if err := result.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return &result, nil
}

func encodeUpload(upload Upload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	filename := upload.Filename
	if filename == "" {
		filename = "upload"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(upload.Data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
