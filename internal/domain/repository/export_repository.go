package repository

import (
	"github.com/diillson/aws-cur-etl-go/internal/domain/entity"
)

type ExportRepository interface {
	// Dataset agregado (saída principal da execução)
	WriteAggregates(aggs []entity.CostAggregate, outputPath string) (string, error)

	// Relatório de insights (ranking + picos), opcional
	ExportInsightToCSV(report entity.InsightReport, filename, outputDir string) (string, error)
	ExportInsightToJSON(report entity.InsightReport, filename, outputDir string) (string, error)
	ExportInsightToPDF(report entity.InsightReport, filename, outputDir string) (string, error)
}
