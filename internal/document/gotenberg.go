package document

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const gotenbergHTMLRoute = "/forms/chromium/convert/html"

// GotenbergConverter posts the page to a Gotenberg service, which renders it
// with headless Chromium. Requests are not retried: the multipart body is a
// one-shot reader.
type GotenbergConverter struct {
	httpClient *resty.Client
}

func NewGotenbergConverter(baseURL string, timeout time.Duration) *GotenbergConverter {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/pdf")

	return &GotenbergConverter{httpClient: client}
}

func (c *GotenbergConverter) Convert(ctx context.Context, html []byte) ([]byte, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFileReader("files", "index.html", bytes.NewReader(html)).
		SetFormData(map[string]string{"printBackground": "true"}).
		Post(gotenbergHTMLRoute)
	if err != nil {
		return nil, fmt.Errorf("failed to call gotenberg: %w", err)
	}

	if resp.IsError() {
		log.Error().
			Int("status_code", resp.StatusCode()).
			Str("body", string(resp.Body())).
			Msg("gotenberg conversion failed")
		return nil, fmt.Errorf("gotenberg returned status %d", resp.StatusCode())
	}

	return resp.Body(), nil
}
