package usecase

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/diillson/aws-cur-etl-go/internal/domain/entity"
	"github.com/diillson/aws-cur-etl-go/internal/shared/types"
)

type mockReportRepository struct {
	mock.Mock
}

func (m *mockReportRepository) LoadReport(ctx context.Context, path string) (entity.RawTable, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(entity.RawTable), args.Error(1)
}

type mockExportRepository struct {
	mock.Mock
}

func (m *mockExportRepository) WriteAggregates(aggs []entity.CostAggregate, outputPath string) (string, error) {
	args := m.Called(aggs, outputPath)
	return args.String(0), args.Error(1)
}

func (m *mockExportRepository) ExportInsightToCSV(report entity.InsightReport, filename, outputDir string) (string, error) {
	args := m.Called(report, filename, outputDir)
	return args.String(0), args.Error(1)
}

func (m *mockExportRepository) ExportInsightToJSON(report entity.InsightReport, filename, outputDir string) (string, error) {
	args := m.Called(report, filename, outputDir)
	return args.String(0), args.Error(1)
}

func (m *mockExportRepository) ExportInsightToPDF(report entity.InsightReport, filename, outputDir string) (string, error) {
	args := m.Called(report, filename, outputDir)
	return args.String(0), args.Error(1)
}

type mockConfigRepository struct {
	mock.Mock
}

func (m *mockConfigRepository) LoadConfigFile(filePath string) (*types.Config, error) {
	args := m.Called(filePath)
	cfg, _ := args.Get(0).(*types.Config)
	return cfg, args.Error(1)
}

// recordingConsole guarda as mensagens em memória em vez de imprimir.
type recordingConsole struct {
	infos    []string
	warnings []string
	errors   []string
	success  []string
	bars     []types.CostBar
}

func (c *recordingConsole) Print(a ...interface{})                 {}
func (c *recordingConsole) Printf(format string, a ...interface{}) {}
func (c *recordingConsole) Println(a ...interface{})               {}

func (c *recordingConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) Status(message string) types.StatusHandle {
	return noopStatus{}
}

func (c *recordingConsole) CreateTable() types.TableInterface {
	return &noopTable{}
}

func (c *recordingConsole) DisplayCostBars(title string, bars []types.CostBar) {
	c.bars = bars
}

type noopStatus struct{}

func (noopStatus) Update(message string) {}
func (noopStatus) Stop()                 {}

type noopTable struct {
	rows int
}

func (t *noopTable) AddColumn(name string, options ...interface{}) {}
func (t *noopTable) AddRow(cells ...interface{})                   { t.rows++ }
func (t *noopTable) Render() string                                { return "" }
