package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"valuation-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportService struct {
	previewFn func(ctx context.Context, id int64) (string, error)
	exportFn  func(ctx context.Context, id int64) ([]byte, error)
}

func (f *fakeReportService) Preview(ctx context.Context, id int64) (string, error) {
	return f.previewFn(ctx, id)
}

func (f *fakeReportService) ExportPDF(ctx context.Context, id int64) ([]byte, error) {
	return f.exportFn(ctx, id)
}

func newReportApp(svc *fakeReportService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(noopLogger{}))

	api := app.Group("/api")
	NewReportController(svc).RegisterRoutes(api)
	return app
}

func TestPreviewReturnsHTML(t *testing.T) {
	app := newReportApp(&fakeReportService{
		previewFn: func(ctx context.Context, id int64) (string, error) {
			return "<html><body>Valuation Report #5</body></html>", nil
		},
	})

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/valuations/5/preview", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Valuation Report #5")
}

func TestPreviewAbsentIdReturns404(t *testing.T) {
	app := newReportApp(&fakeReportService{
		previewFn: func(ctx context.Context, id int64) (string, error) {
			return "", &serverutils.NotFoundError{Resource: "valuation", Id: id}
		},
	})

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/valuations/42/preview", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDownloadPDFSetsHeadersAndBody(t *testing.T) {
	app := newReportApp(&fakeReportService{
		exportFn: func(ctx context.Context, id int64) ([]byte, error) {
			return []byte("%PDF-1.7 fake"), nil
		},
	})

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/valuations/5/pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="valuation-5.pdf"`, resp.Header.Get("Content-Disposition"))

	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestDownloadPDFAbsentIdReturns404(t *testing.T) {
	app := newReportApp(&fakeReportService{
		exportFn: func(ctx context.Context, id int64) ([]byte, error) {
			return nil, &serverutils.NotFoundError{Resource: "valuation", Id: id}
		},
	})

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/valuations/42/pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDownloadPDFRenderFailureReturnsStructured500(t *testing.T) {
	app := newReportApp(&fakeReportService{
		exportFn: func(ctx context.Context, id int64) ([]byte, error) {
			return nil, &serverutils.RenderError{Id: id, Err: errors.New("chrome crashed")}
		},
	})

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/valuations/5/pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "PDF generation failed", body["error"])
	assert.Equal(t, "chrome crashed", body["message"])
	assert.Equal(t, float64(5), body["id"])
}
