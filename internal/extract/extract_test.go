package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// buildDocx assembles a minimal docx archive with the given document.xml body.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

const docxBody = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Python developer with </w:t></w:r><w:r><w:t>5 years of experience</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtractDocxParagraphs(t *testing.T) {
	e := New(zap.NewNop())
	content := buildDocx(t, docxBody)

	res, err := e.Extract(context.Background(), content, KindDOCX)
	require.NoError(t, err)

	assert.Equal(t, "docx-paragraphs", res.Strategy)
	assert.Equal(t, "Jane Doe\nPython developer with 5 years of experience", res.Text)
}

func TestExtractDocxMissingDocumentXML(t *testing.T) {
	e := New(zap.NewNop())

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = e.Extract(context.Background(), buf.Bytes(), KindDOCX)
	require.Error(t, err)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, KindDOCX, extractErr.Kind)
	assert.Len(t, extractErr.Attempts, 2, "both docx strategies must be attempted")
}

func TestExtractInvalidPDF(t *testing.T) {
	e := New(zap.NewNop())

	_, err := e.Extract(context.Background(), []byte("not a pdf at all"), KindPDF)
	require.Error(t, err)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, KindPDF, extractErr.Kind)
	assert.Len(t, extractErr.Attempts, 3, "all pdf strategies must be attempted")
	for _, a := range extractErr.Attempts {
		assert.NotEmpty(t, a.Strategy)
	}
}

func TestExtractUnsupportedKind(t *testing.T) {
	e := New(zap.NewNop())

	_, err := e.Extract(context.Background(), []byte("anything"), Kind("txt"))
	require.Error(t, err)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Empty(t, extractErr.Attempts)
	assert.Contains(t, extractErr.Error(), "no strategies")
}

func TestExtractCancelledContext(t *testing.T) {
	e := New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Extract(ctx, buildDocx(t, docxBody), KindDOCX)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKindFromMIME(t *testing.T) {
	kind, err := KindFromMIME("application/pdf")
	require.NoError(t, err)
	assert.Equal(t, KindPDF, kind)

	kind, err = KindFromMIME("application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	require.NoError(t, err)
	assert.Equal(t, KindDOCX, kind)

	_, err = KindFromMIME("text/plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}
