package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/diillson/aws-cur-etl-go/pkg/version"

	"github.com/diillson/aws-cur-etl-go/internal/application/usecase"
	"github.com/diillson/aws-cur-etl-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// flags cujo uso explícito tem precedência sobre o arquivo de configuração
var overridableFlags = []string{"top", "spike-factor", "report-name", "report-type", "dir"}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	etlUseCase *usecase.ETLUseCase
	version    string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:   "cur-etl",
		Short: "AWS Cost & Usage Report ETL",
		Long: "Loads " + types.InputPath + ", cleans and aggregates it by date, service and region,\n" +
			"ranks services by cost, flags cost spikes and writes " + types.OutputPath + ".",
		Version:       version.FormatVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS CUR ETL version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().IntP("top", "n", types.DefaultTopN, "Number of services to show in the cost ranking")
	rootCmd.PersistentFlags().Float64("spike-factor", types.DefaultSpikeFactor, "Flag aggregate rows whose cost exceeds this multiple of the mean cost")
	rootCmd.PersistentFlags().String("report-name", "", "Export an insight report (ranking and spikes) with this base name")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"json"}, "Insight report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the insight report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("no-banner", false, "Do not print the welcome banner")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs define os argumentos da linha de comando (usado em testes).
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	top, _ := flags.GetInt("top")
	spikeFactor, _ := flags.GetFloat64("spike-factor")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	noBanner, _ := flags.GetBool("no-banner")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	} else if reportName != "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	}

	changed := make(map[string]bool)
	for _, name := range overridableFlags {
		if flags.Changed(name) {
			changed[name] = true
		}
	}

	return &types.CLIArgs{
		ConfigFile:  configFile,
		TopN:        top,
		SpikeFactor: spikeFactor,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
		NoBanner:    noBanner,
		Changed:     changed,
	}, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if !cliArgs.NoBanner {
		displayWelcomeBanner()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, err = app.etlUseCase.RunPipeline(ctx, cliArgs)
	return err
}

// SetETLUseCase sets the ETL use case for the CLI app.
func (app *CLIApp) SetETLUseCase(useCase *usecase.ETLUseCase) {
	app.etlUseCase = useCase
}
