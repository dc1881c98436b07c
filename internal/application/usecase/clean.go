package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/aws-cur-etl-go/internal/domain/entity"
	"github.com/diillson/aws-cur-etl-go/internal/shared/types"
)

// usageDateLayouts são os formatos de data aceitos na coluna usagedate, em ordem de tentativa.
var usageDateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"01/02/2006",
}

// NormalizeHeader remove espaços e converte os nomes de coluna para minúsculas.
func NormalizeHeader(header []string) []string {
	normalized := make([]string, len(header))
	for i, name := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(name))
	}
	return normalized
}

// columnIndex mapeia cada nome de coluna para sua primeira posição no cabeçalho.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	return index
}

// field retorna o valor da coluna e se ele está presente (coluna existe, campo existe e não é vazio).
func field(record []string, index map[string]int, column string) (string, bool) {
	i, ok := index[column]
	if !ok || i >= len(record) {
		return "", false
	}
	value := strings.TrimSpace(record[i])
	return value, value != ""
}

// parseUsageDate tenta os layouts conhecidos; retorna nil quando nenhum serve.
func parseUsageDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range usageDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}

// coerceAmount converte o valor em Amount; valores inválidos viram zero.
func coerceAmount(value string) (entity.Amount, bool) {
	if value == "" {
		return entity.Amount{}, false
	}
	amount, err := entity.ParseAmount(value)
	if err != nil {
		return entity.Amount{}, false
	}
	return amount, true
}

// CleanRecords normaliza o cabeçalho, descarta linhas sem servicename, region ou cost
// e converte os campos numéricos e de data.
func CleanRecords(table entity.RawTable) ([]entity.CostRecord, entity.CleanStats, error) {
	header := NormalizeHeader(table.Header)
	index := columnIndex(header)

	for _, column := range []string{entity.ColumnServiceName, entity.ColumnRegion, entity.ColumnCost} {
		if _, ok := index[column]; !ok {
			return nil, entity.CleanStats{}, fmt.Errorf("%w: %s", types.ErrMissingColumn, column)
		}
	}

	stats := entity.CleanStats{Loaded: len(table.Records)}
	records := make([]entity.CostRecord, 0, len(table.Records))

	for _, raw := range table.Records {
		service, hasService := field(raw, index, entity.ColumnServiceName)
		region, hasRegion := field(raw, index, entity.ColumnRegion)
		costText, hasCost := field(raw, index, entity.ColumnCost)
		if !hasService || !hasRegion || !hasCost {
			stats.Dropped++
			continue
		}

		cost, ok := coerceAmount(costText)
		if !ok {
			stats.CoercedCost++
		}

		usageText, _ := field(raw, index, entity.ColumnUsageQuantity)
		usage, ok := coerceAmount(usageText)
		if !ok {
			stats.CoercedUsage++
		}

		dateText, _ := field(raw, index, entity.ColumnUsageDate)
		usageDate := parseUsageDate(dateText)
		if usageDate == nil {
			stats.NullDates++
		}

		records = append(records, entity.CostRecord{
			ServiceName:   service,
			Region:        region,
			Cost:          cost,
			UsageQuantity: usage,
			UsageDate:     usageDate,
		})
	}

	stats.Kept = len(records)
	return records, stats, nil
}
