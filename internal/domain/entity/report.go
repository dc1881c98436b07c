package entity

import "time"

// RawTable holds a CUR export exactly as read from disk.
type RawTable struct {
	Header  []string
	Records [][]string
}

// Shape retorna (linhas, colunas) da tabela carregada.
func (t RawTable) Shape() (int, int) {
	return len(t.Records), len(t.Header)
}

// CleanStats resume o que a etapa de limpeza fez com as linhas carregadas.
type CleanStats struct {
	Loaded       int `json:"loaded"`
	Kept         int `json:"kept"`
	Dropped      int `json:"dropped"`
	CoercedCost  int `json:"coerced_cost"`
	CoercedUsage int `json:"coerced_usage"`
	NullDates    int `json:"null_dates"`
}

// InsightReport agrega o resultado de uma execução para exportação opcional.
type InsightReport struct {
	GeneratedAt    time.Time     `json:"generated_at"`
	SourcePath     string        `json:"source_path"`
	OutputPath     string        `json:"output_path"`
	Stats          CleanStats    `json:"stats"`
	AggregateCount int           `json:"aggregate_count"`
	TopServices    []ServiceCost `json:"top_services"`
	Spikes         SpikeReport   `json:"spikes"`
}
