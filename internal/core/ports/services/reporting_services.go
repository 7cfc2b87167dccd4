package services

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
)

// DashboardSvc builds the home-screen aggregate.
type DashboardSvc interface {
	GetDashboard(ctx context.Context, userID string, now time.Time) (*domain.Dashboard, error)
}

// ReportingSvc builds analytics over a date window.
type ReportingSvc interface {
	// GetReport defaults a missing end to now and a missing start to 30 days before the end.
	GetReport(ctx context.Context, userID string, from, to *time.Time) (*domain.Report, error)

	// ExportReportXLSX writes the same report as an Excel workbook and returns the suggested filename.
	ExportReportXLSX(ctx context.Context, userID string, from, to *time.Time, w io.Writer) (string, error)
}
