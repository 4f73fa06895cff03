package extract

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// ocrMaxPages bounds the slowest fallback; callers wrap Extract in their own
// request timeout, this keeps the rendered-page fan-out sane.
const ocrMaxPages = 10

// pdfOCR renders the document to images with pdftoppm and runs tesseract on
// each page. Last resort: slow and lossy, but it is the only strategy that
// reads scanned documents. All temporary files live in one directory that is
// removed on every exit path.
func pdfOCR(ctx context.Context, content []byte) (string, error) {
	dir, err := os.MkdirTemp("", "skillmatch-ocr-*")
	if err != nil {
		return "", fmt.Errorf("failed to create ocr temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "input.pdf")
	if err := os.WriteFile(src, content, 0o600); err != nil {
		return "", fmt.Errorf("failed to write ocr input: %w", err)
	}

	render := exec.CommandContext(ctx, "pdftoppm",
		"-png", "-r", "300",
		"-l", fmt.Sprint(ocrMaxPages),
		src, filepath.Join(dir, "page"))
	if out, err := render.CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm failed: %v (%s)", err, strings.TrimSpace(string(out)))
	}

	pages, err := filepath.Glob(filepath.Join(dir, "page-*.png"))
	if err != nil || len(pages) == 0 {
		return "", fmt.Errorf("no pages rendered for ocr")
	}
	sort.Strings(pages)

	var b strings.Builder
	for _, page := range pages {
		ocr := exec.CommandContext(ctx, "tesseract", page, "stdout")
		out, err := ocr.Output()
		if err != nil {
			return "", fmt.Errorf("tesseract failed on %s: %w", filepath.Base(page), err)
		}
		b.Write(out)
		b.WriteString("\n")
	}
	return b.String(), nil
}
