package service

import (
	"context"
	"errors"
	"testing"

	"valuation-be/internal/dto"
	"valuation-be/internal/pkg/serverutils"
	"valuation-be/internal/renderer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine records what it was asked to render and returns canned output.
type fakeEngine struct {
	lastHTML    string
	lastBaseURL string
	err         error
}

func (f *fakeEngine) Render(ctx context.Context, html string, baseURL string) ([]byte, error) {
	f.lastHTML = html
	f.lastBaseURL = baseURL
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.7 fake"), nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{}) {}
func (noopLogger) Warn(module, message string, details map[string]interface{}) {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error { return nil }

func newTestReportService(t *testing.T, engine *fakeEngine) (IReportService, IValuationService) {
	t.Helper()

	repo := newFakeValuationRepository()
	factory := &fakeFactory{uow: &fakeUnitOfWork{repo: repo}}

	rnd, err := renderer.New()
	require.NoError(t, err)

	reports := NewReportService(factory, rnd, engine, "http://localhost:8080", noopLogger{})
	valuations := NewValuationService(factory)
	return reports, valuations
}

func TestPreviewRendersRecordFields(t *testing.T) {
	reports, valuations := newTestReportService(t, &fakeEngine{})

	created, err := valuations.Create(context.Background(), &dto.CreateValuationRequest{
		OwnerName:  "Asha Verma",
		Possession: strPtr("Under Construction"),
	})
	require.NoError(t, err)

	html, err := reports.Preview(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Contains(t, html, "Asha Verma")
	assert.Contains(t, html, "Under Construction")
	assert.Contains(t, html, "Download PDF", "preview mode keeps the toolbar")
}

func TestPreviewAbsentIdFailsWithNotFound(t *testing.T) {
	reports, _ := newTestReportService(t, &fakeEngine{})

	_, err := reports.Preview(context.Background(), 7)

	var notFound *serverutils.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(7), notFound.Id)
}

func TestExportPDFPassesBaseURLAndReturnsBytes(t *testing.T) {
	engine := &fakeEngine{}
	reports, valuations := newTestReportService(t, engine)

	created, err := valuations.Create(context.Background(), &dto.CreateValuationRequest{
		OwnerName: "Asha Verma",
	})
	require.NoError(t, err)

	pdfBytes, err := reports.ExportPDF(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
	assert.Equal(t, "http://localhost:8080", engine.lastBaseURL)
	assert.Contains(t, engine.lastHTML, "Asha Verma")
	assert.NotContains(t, engine.lastHTML, "Download PDF", "export mode drops the toolbar")
}

func TestExportPDFWrapsEngineFailure(t *testing.T) {
	cause := errors.New("chrome crashed")
	reports, valuations := newTestReportService(t, &fakeEngine{err: cause})

	created, err := valuations.Create(context.Background(), &dto.CreateValuationRequest{
		OwnerName: "Asha Verma",
	})
	require.NoError(t, err)

	_, err = reports.ExportPDF(context.Background(), created.Id)

	var render *serverutils.RenderError
	require.ErrorAs(t, err, &render)
	assert.Equal(t, created.Id, render.Id)
	assert.ErrorIs(t, err, cause)
}

func TestExportPDFAbsentIdFailsBeforeRendering(t *testing.T) {
	engine := &fakeEngine{}
	reports, _ := newTestReportService(t, engine)

	_, err := reports.ExportPDF(context.Background(), 404)

	var notFound *serverutils.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Empty(t, engine.lastHTML, "engine must not be called for a missing record")
}
