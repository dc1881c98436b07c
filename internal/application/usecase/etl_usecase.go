package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/diillson/aws-cur-etl-go/internal/domain/entity"
	"github.com/diillson/aws-cur-etl-go/internal/domain/repository"
	"github.com/diillson/aws-cur-etl-go/internal/shared/types"
)

// previewRows é o número de linhas mostradas na prévia após o carregamento.
const previewRows = 5

// ETLUseCase handles the load → clean → aggregate → analyze → write pipeline.
type ETLUseCase struct {
	reportRepo repository.ReportRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	now        func() time.Time
}

// NewETLUseCase creates a new ETL use case.
func NewETLUseCase(
	reportRepo repository.ReportRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *ETLUseCase {
	return &ETLUseCase{
		reportRepo: reportRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
		now:        time.Now,
	}
}

// ResolveArgs mescla o arquivo de configuração (se houver) com as flags da CLI e valida o resultado.
// Flags passadas explicitamente têm precedência sobre o arquivo.
func (uc *ETLUseCase) ResolveArgs(args *types.CLIArgs) (*types.CLIArgs, error) {
	resolved := *args

	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		uc.console.LogInfo("Loaded configuration from %s", args.ConfigFile)

		if cfg.TopN != 0 && !args.IsSet("top") {
			resolved.TopN = cfg.TopN
		}
		if cfg.SpikeFactor != 0 && !args.IsSet("spike-factor") {
			resolved.SpikeFactor = cfg.SpikeFactor
		}
		if cfg.ReportName != "" && !args.IsSet("report-name") {
			resolved.ReportName = cfg.ReportName
		}
		if len(cfg.ReportType) > 0 && !args.IsSet("report-type") {
			resolved.ReportType = cfg.ReportType
		}
		if cfg.Dir != "" && !args.IsSet("dir") {
			resolved.Dir = cfg.Dir
		}
	}

	// zero explícito na linha de comando é inválido; no arquivo, zero significa "não definido"
	if resolved.TopN == 0 && args.IsSet("top") {
		return nil, types.ErrInvalidTopN
	}
	if resolved.SpikeFactor == 0 && args.IsSet("spike-factor") {
		return nil, types.ErrInvalidSpikeFactor
	}

	if resolved.TopN == 0 {
		resolved.TopN = types.DefaultTopN
	}
	if resolved.SpikeFactor == 0 {
		resolved.SpikeFactor = types.DefaultSpikeFactor
	}

	if resolved.TopN < 0 {
		return nil, types.ErrInvalidTopN
	}
	if resolved.SpikeFactor < 0 {
		return nil, types.ErrInvalidSpikeFactor
	}

	return &resolved, nil
}

// RunPipeline executa o pipeline completo sobre o CUR em types.InputPath
// e grava o dataset agregado em types.OutputPath.
func (uc *ETLUseCase) RunPipeline(ctx context.Context, args *types.CLIArgs) (*entity.InsightReport, error) {
	settings, err := uc.ResolveArgs(args)
	if err != nil {
		return nil, err
	}

	// Etapa 1: carregar
	status := uc.console.Status(fmt.Sprintf("Loading CUR data from %s...", types.InputPath))
	table, err := uc.reportRepo.LoadReport(ctx, types.InputPath)
	status.Stop()
	if err != nil {
		return nil, err
	}

	rows, cols := table.Shape()
	uc.console.LogSuccess("Data Loaded: (%d, %d)", rows, cols)
	uc.console.Print(uc.previewTable(table).Render())

	// Etapa 2: limpar
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, stats, err := CleanRecords(table)
	if err != nil {
		return nil, err
	}
	uc.reportCleanStats(stats)

	// Etapa 3: agregar
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	aggs := AggregateCosts(records)
	uc.console.LogInfo("Aggregated %d rows into %d (date, service, region) groups", stats.Kept, len(aggs))

	// Etapa 4: ranking de serviços
	topServices := RankServices(aggs, settings.TopN)
	uc.displayTopServices(topServices, settings.TopN)

	// Etapa 5: detecção de picos
	spikes := DetectSpikes(aggs, settings.SpikeFactor)
	uc.displaySpikes(spikes, len(aggs))

	// Etapa 6: gravar o dataset agregado
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	status = uc.console.Status(fmt.Sprintf("Writing aggregated data to %s...", types.OutputPath))
	outputPath, err := uc.exportRepo.WriteAggregates(aggs, types.OutputPath)
	status.Stop()
	if err != nil {
		return nil, err
	}
	uc.console.LogSuccess("ETL complete! Clean data saved to: %s", outputPath)

	report := &entity.InsightReport{
		GeneratedAt:    uc.now(),
		SourcePath:     types.InputPath,
		OutputPath:     outputPath,
		Stats:          stats,
		AggregateCount: len(aggs),
		TopServices:    topServices,
		Spikes:         spikes,
	}

	if settings.ReportName != "" && len(settings.ReportType) > 0 {
		uc.exportInsights(*report, settings)
	}

	return report, nil
}

// previewTable monta a prévia das primeiras linhas carregadas.
func (uc *ETLUseCase) previewTable(table entity.RawTable) types.TableInterface {
	preview := uc.console.CreateTable()
	for _, name := range table.Header {
		preview.AddColumn(name)
	}

	limit := previewRows
	if len(table.Records) < limit {
		limit = len(table.Records)
	}
	for _, record := range table.Records[:limit] {
		cells := make([]interface{}, 0, len(table.Header))
		for i := range table.Header {
			if i < len(record) {
				cells = append(cells, record[i])
			} else {
				cells = append(cells, "")
			}
		}
		preview.AddRow(cells...)
	}
	return preview
}

// reportCleanStats exibe o resumo da etapa de limpeza.
func (uc *ETLUseCase) reportCleanStats(stats entity.CleanStats) {
	uc.console.LogInfo("Cleaned data: kept %d of %d rows", stats.Kept, stats.Loaded)
	if stats.Dropped > 0 {
		uc.console.LogWarning("Dropped %d rows missing servicename, region or cost", stats.Dropped)
	}
	if stats.CoercedCost > 0 || stats.CoercedUsage > 0 {
		uc.console.LogWarning("Coerced %d cost and %d usage values to 0", stats.CoercedCost, stats.CoercedUsage)
	}
	if stats.NullDates > 0 {
		uc.console.LogWarning("%d rows have an unparseable usagedate", stats.NullDates)
	}
}

// displayTopServices exibe o ranking de serviços como tabela e gráfico de barras.
func (uc *ETLUseCase) displayTopServices(topServices []entity.ServiceCost, n int) {
	if len(topServices) == 0 {
		uc.console.LogWarning("No services to rank")
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Rank")
	table.AddColumn("Service")
	table.AddColumn("Total Cost")

	bars := make([]types.CostBar, 0, len(topServices))
	for i, sc := range topServices {
		table.AddRow(
			i+1,
			pterm.FgMagenta.Sprint(sc.ServiceName),
			pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprintf("$%s", sc.Cost.String()),
		)
		bars = append(bars, types.CostBar{Label: sc.ServiceName, Cost: sc.Cost.Float64()})
	}

	uc.console.Println()
	uc.console.LogInfo("Top %d Services by Cost", n)
	uc.console.Print(table.Render())
	uc.console.DisplayCostBars("Cost Share by Service", bars)
}

// displaySpikes exibe a contagem de picos, o limiar e as linhas que o excedem.
func (uc *ETLUseCase) displaySpikes(report entity.SpikeReport, aggregateCount int) {
	if aggregateCount == 0 {
		uc.console.LogWarning("No aggregate rows; spike detection skipped (mean cost undefined)")
		return
	}

	uc.console.LogWarning("Found %d potential cost spikes (>%.2f)", len(report.Spikes), report.Threshold)
	if len(report.Spikes) == 0 {
		return
	}

	layout := entity.UsageDateLayoutFor(report.Spikes)
	table := uc.console.CreateTable()
	table.AddColumn("Usage Date")
	table.AddColumn("Service")
	table.AddColumn("Region")
	table.AddColumn("Total Cost")
	table.AddColumn("x Mean")

	for _, spike := range report.Spikes {
		date := entity.FormatUsageDate(spike.UsageDate, layout)
		if date == "" {
			date = pterm.FgDarkGray.Sprint("N/A")
		}
		ratio := "N/A"
		if report.MeanCost > 0 {
			ratio = fmt.Sprintf("%.1fx", spike.TotalCost.Float64()/report.MeanCost)
		}
		table.AddRow(
			date,
			pterm.FgMagenta.Sprint(spike.ServiceName),
			spike.Region,
			pterm.FgRed.Sprintf("$%s", spike.TotalCost.String()),
			pterm.FgYellow.Sprint(ratio),
		)
	}
	uc.console.Print(table.Render())
}

// exportInsights exporta o relatório de insights nos formatos pedidos.
// Falhas de exportação são registradas e não interrompem a execução.
func (uc *ETLUseCase) exportInsights(report entity.InsightReport, settings *types.CLIArgs) {
	for _, reportType := range settings.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportInsightToCSV(report, settings.ReportName, settings.Dir)
			if err != nil {
				uc.console.LogError("Failed to export insight report to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported insight report to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportInsightToJSON(report, settings.ReportName, settings.Dir)
			if err != nil {
				uc.console.LogError("Failed to export insight report to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported insight report to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportInsightToPDF(report, settings.ReportName, settings.Dir)
			if err != nil {
				uc.console.LogError("Failed to export insight report to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported insight report to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' ignored (use csv, json or pdf)", reportType)
		}
	}
}
