package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile  string
	TopN        int
	SpikeFactor float64
	ReportName  string
	ReportType  []string
	Dir         string
	NoBanner    bool

	// Changed guarda as flags definidas explicitamente na linha de comando;
	// elas têm precedência sobre o arquivo de configuração.
	Changed map[string]bool
}

// IsSet informa se a flag foi passada explicitamente.
func (a *CLIArgs) IsSet(flag string) bool {
	return a.Changed != nil && a.Changed[flag]
}
