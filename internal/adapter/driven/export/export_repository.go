package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/aws-cur-etl-go/internal/domain/entity"
	"github.com/diillson/aws-cur-etl-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Dataset agregado ---

// WriteAggregates grava o dataset agregado em outputPath, sobrescrevendo o arquivo existente.
func (r *ExportRepositoryImpl) WriteAggregates(aggs []entity.CostAggregate, outputPath string) (string, error) {
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("error creating output CSV file: %w", err)
	}

	if err := writeAggregatesCSV(file, aggs); err != nil {
		file.Close()
		return "", err
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("error closing output CSV file: %w", err)
	}

	return filepath.Abs(outputPath)
}

func writeAggregatesCSV(w io.Writer, aggs []entity.CostAggregate) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(entity.AggregateColumns); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	layout := entity.UsageDateLayoutFor(aggs)
	for _, agg := range aggs {
		record := []string{
			entity.FormatUsageDate(agg.UsageDate, layout),
			agg.ServiceName,
			agg.Region,
			agg.TotalCost.String(),
			agg.TotalUsage.String(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error flushing CSV data: %w", err)
	}
	return nil
}

// --- Relatório de insights ---

func (r *ExportRepositoryImpl) ExportInsightToCSV(report entity.InsightReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating insight CSV file: %w", err)
	}

	if err := writeInsightCSV(file, report); err != nil {
		file.Close()
		return "", err
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("error closing insight CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func writeInsightCSV(w io.Writer, report entity.InsightReport) error {
	writer := csv.NewWriter(w)

	headers := []string{"Section", "Rank", "Usage Date", "Service", "Region", "Cost"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for i, sc := range report.TopServices {
		record := []string{"Top Services", fmt.Sprintf("%d", i+1), "", sc.ServiceName, "", sc.Cost.String()}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	layout := entity.UsageDateLayoutFor(report.Spikes.Spikes)
	for i, spike := range report.Spikes.Spikes {
		record := []string{
			"Cost Spikes",
			fmt.Sprintf("%d", i+1),
			entity.FormatUsageDate(spike.UsageDate, layout),
			spike.ServiceName,
			spike.Region,
			spike.TotalCost.String(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error flushing CSV data: %w", err)
	}
	return nil
}

func (r *ExportRepositoryImpl) ExportInsightToJSON(report entity.InsightReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating insight JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding insight JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportInsightToPDF(report entity.InsightReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{0, 102, 204}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  CUR Cost Insights"), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Source: %s", report.SourcePath)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	s := report.Stats
	summary := fmt.Sprintf("Rows loaded: %d\nRows kept: %d\nRows dropped: %d\nCost values coerced to 0: %d\nUsage values coerced to 0: %d\nUnparseable dates: %d\nAggregate rows: %d\nOutput: %s",
		s.Loaded, s.Kept, s.Dropped, s.CoercedCost, s.CoercedUsage, s.NullDates, report.AggregateCount, report.OutputPath)
	drawSection("Run Summary", summary)

	var top strings.Builder
	for i, sc := range report.TopServices {
		top.WriteString(fmt.Sprintf("%d. %s: $%.2f\n", i+1, sc.ServiceName, sc.Cost.Float64()))
	}
	drawSection("Top Services by Cost", top.String())

	spikes := fmt.Sprintf("Mean aggregate cost: $%.2f\nThreshold (%.1fx mean): $%.2f\nSpikes found: %d\n",
		report.Spikes.MeanCost, report.Spikes.Factor, report.Spikes.Threshold, len(report.Spikes.Spikes))
	layout := entity.UsageDateLayoutFor(report.Spikes.Spikes)
	for _, spike := range report.Spikes.Spikes {
		date := entity.FormatUsageDate(spike.UsageDate, layout)
		if date == "" {
			date = "unknown date"
		}
		spikes += fmt.Sprintf("\n%s | %s | %s: $%.2f", date, spike.ServiceName, spike.Region, spike.TotalCost.Float64())
	}
	drawSection("Cost Spikes", spikes)

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by AWS CUR ETL (Go) | %s", report.GeneratedAt.Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, tr("Page 1"), "", 0, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing insight PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
