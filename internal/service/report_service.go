package service

import (
	"context"

	"valuation-be/internal/entity"
	"valuation-be/internal/pkg/logger"
	"valuation-be/internal/pkg/pdf"
	"valuation-be/internal/pkg/serverutils"
	"valuation-be/internal/renderer"
	"valuation-be/internal/repository/specification"
	"valuation-be/internal/repository/unitofwork"
)

type IReportService interface {
	// Preview renders the record as HTML for on-screen display.
	Preview(ctx context.Context, id int64) (string, error)
	// ExportPDF renders the record as HTML and converts it to PDF bytes.
	ExportPDF(ctx context.Context, id int64) ([]byte, error)
}

type reportService struct {
	uowFactory unitofwork.RepositoryFactory
	renderer   *renderer.Renderer
	engine     pdf.Engine
	baseURL    string
	log        logger.ILogger
}

func NewReportService(
	uowFactory unitofwork.RepositoryFactory,
	rnd *renderer.Renderer,
	engine pdf.Engine,
	baseURL string,
	log logger.ILogger,
) IReportService {
	return &reportService{
		uowFactory: uowFactory,
		renderer:   rnd,
		engine:     engine,
		baseURL:    baseURL,
		log:        log,
	}
}

func (s *reportService) Preview(ctx context.Context, id int64) (string, error) {
	valuation, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	return s.renderer.RenderReport(valuation, false)
}

func (s *reportService) ExportPDF(ctx context.Context, id int64) ([]byte, error) {
	valuation, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.RenderReport(valuation, true)
	if err != nil {
		return nil, &serverutils.RenderError{Id: id, Err: err}
	}

	pdfBytes, err := s.engine.Render(ctx, html, s.baseURL)
	if err != nil {
		return nil, &serverutils.RenderError{Id: id, Err: err}
	}

	s.log.Info("report", "PDF exported", map[string]interface{}{
		"id":    id,
		"bytes": len(pdfBytes),
	})
	return pdfBytes, nil
}

// find fails with a typed not-found before any rendering happens.
func (s *reportService) find(ctx context.Context, id int64) (*entity.Valuation, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	v, err := uow.ValuationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, &serverutils.NotFoundError{Resource: "valuation", Id: id}
	}
	return v, nil
}
