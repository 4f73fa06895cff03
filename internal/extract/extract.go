// Package extract converts raw document bytes into plain text by trying
// ordered extraction strategies until one yields output.
package extract

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Kind is the declared document format.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
)

// KindFromMIME maps the MIME type recorded by the upload service to a Kind.
func KindFromMIME(mime string) (Kind, error) {
	switch mime {
	case "application/pdf":
		return KindPDF, nil
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return KindDOCX, nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", mime)
	}
}

// Result is the extracted text plus the strategy that produced it, so callers
// can record which path succeeded.
type Result struct {
	Text     string
	Strategy string
}

// Attempt records one failed strategy inside an ExtractionError.
type Attempt struct {
	Strategy string
	Err      error
}

// ExtractionError means every strategy for the declared kind failed or
// returned empty text, or the kind is not supported at all.
type ExtractionError struct {
	Kind     Kind
	Attempts []Attempt
}

func (e *ExtractionError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("extraction failed: no strategies for kind %q", e.Kind)
	}
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		if a.Err != nil {
			parts = append(parts, fmt.Sprintf("%s: %v", a.Strategy, a.Err))
		} else {
			parts = append(parts, fmt.Sprintf("%s: empty output", a.Strategy))
		}
	}
	return fmt.Sprintf("extraction failed for %s document: %s", e.Kind, strings.Join(parts, "; "))
}

type strategy struct {
	name string
	fn   func(ctx context.Context, content []byte) (string, error)
}

// Extractor runs the per-kind strategy chains.
type Extractor struct {
	log  *zap.Logger
	pdf  []strategy
	docx []strategy
}

// New builds an extractor. The OCR fallback shells out to pdftoppm and
// tesseract; when those binaries are missing the strategy simply fails and is
// recorded like any other attempt.
func New(log *zap.Logger) *Extractor {
	e := &Extractor{log: log}
	e.pdf = []strategy{
		{name: "pdf-plaintext", fn: pdfPlainText},
		{name: "pdf-rows", fn: pdfByRows},
		{name: "pdf-ocr", fn: pdfOCR},
	}
	e.docx = []strategy{
		{name: "docx-paragraphs", fn: docxParagraphs},
		{name: "docx-flatten", fn: docxFlatten},
	}
	return e
}

// Extract tries each strategy for the declared kind in order and returns the
// first non-empty output. Individual failures are logged at debug level and
// skipped, never retried. When everything fails the returned *ExtractionError
// carries every attempt, including decode failures.
func (e *Extractor) Extract(ctx context.Context, content []byte, kind Kind) (Result, error) {
	var chain []strategy
	switch kind {
	case KindPDF:
		chain = e.pdf
	case KindDOCX:
		chain = e.docx
	default:
		return Result{}, &ExtractionError{Kind: kind}
	}

	extractErr := &ExtractionError{Kind: kind}
	for _, s := range chain {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		text, err := s.fn(ctx, content)
		if err != nil {
			e.log.Debug("extraction strategy failed",
				zap.String("strategy", s.name),
				zap.String("kind", string(kind)),
				zap.Error(err))
			extractErr.Attempts = append(extractErr.Attempts, Attempt{Strategy: s.name, Err: err})
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			e.log.Debug("extraction strategy returned empty text",
				zap.String("strategy", s.name),
				zap.String("kind", string(kind)))
			extractErr.Attempts = append(extractErr.Attempts, Attempt{Strategy: s.name})
			continue
		}
		return Result{Text: text, Strategy: s.name}, nil
	}
	return Result{}, extractErr
}
