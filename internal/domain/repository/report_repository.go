package repository

import (
	"context"

	"github.com/diillson/aws-cur-etl-go/internal/domain/entity"
)

// ReportRepository defines the interface for reading a CUR export.
type ReportRepository interface {
	LoadReport(ctx context.Context, path string) (entity.RawTable, error)
}
