package types

// Caminhos fixos do pipeline. Não são configuráveis.
const (
	InputPath  = "data/sample_cur.csv"
	OutputPath = "data/cleaned_cost_data.csv"
)

// Valores padrão da análise.
const (
	DefaultTopN        = 5
	DefaultSpikeFactor = 3.0
)

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	TopN        int      `json:"top_n" yaml:"top_n" toml:"top_n"`
	SpikeFactor float64  `json:"spike_factor" yaml:"spike_factor" toml:"spike_factor"`
	ReportName  string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType  []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir         string   `json:"dir" yaml:"dir" toml:"dir"`
}
