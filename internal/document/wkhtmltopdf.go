package document

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// WkhtmltopdfConverter pipes the page through a local wkhtmltopdf binary,
// reading HTML on stdin and writing the PDF to stdout.
type WkhtmltopdfConverter struct {
	binary  string
	timeout time.Duration
}

func NewWkhtmltopdfConverter(binary string, timeout time.Duration) *WkhtmltopdfConverter {
	return &WkhtmltopdfConverter{binary: binary, timeout: timeout}
}

func (c *WkhtmltopdfConverter) Convert(ctx context.Context, html []byte) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, "--quiet", "--encoding", "utf-8", "-", "-")
	cmd.Stdin = bytes.NewReader(html)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to run %s: %w: %s", c.binary, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
