package bootstrap

import (
	"log"

	"valuation-be/internal/config"
	"valuation-be/internal/controller"
	"valuation-be/internal/pkg/logger"
	"valuation-be/internal/pkg/pdf"
	"valuation-be/internal/renderer"
	"valuation-be/internal/repository/unitofwork"
	"valuation-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	ValuationController controller.IValuationController
	ReportController    controller.IReportController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Rendering Collaborators
	reportRenderer, err := renderer.New()
	if err != nil {
		log.Fatalf("[FATAL] Failed to parse report templates: %v", err)
	}
	pdfEngine := pdf.NewChromeEngine(cfg.Report.ChromePath, cfg.Report.RenderTimeout)

	// 3. Services
	valuationService := service.NewValuationService(uowFactory)
	reportService := service.NewReportService(
		uowFactory,
		reportRenderer,
		pdfEngine,
		cfg.App.BaseURL,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		ValuationController: controller.NewValuationController(valuationService),
		ReportController:    controller.NewReportController(reportService),
		Logger:              sysLogger,
	}
}
