package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/diillson/aws-cur-etl-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// Cores predefinidas para uso consistente
var (
	BoldRed      = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
)

type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(message)
	return &statusHandle{spinner: spinner}
}

func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela. Linhas curtas são completadas com células vazias.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, 0, len(t.columns))
	for _, cell := range cells {
		processedCells = append(processedCells, fmt.Sprint(cell))
	}
	for len(processedCells) < len(t.columns) {
		processedCells = append(processedCells, "")
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayCostBars exibe um gráfico de barras horizontais com a participação de cada item no total.
func (c *Console) DisplayCostBars(title string, bars []types.CostBar) {
	maxCost := 0.0
	total := 0.0
	for _, b := range bars {
		if b.Cost > maxCost {
			maxCost = b.Cost
		}
		total += b.Cost
	}

	if maxCost <= 0 {
		pterm.Warning.Println("All costs are $0.00 for this period")
		return
	}

	tableData := pterm.TableData{
		{"Service", "Cost", "", "Share"},
	}

	for i, b := range bars {
		barLength := 0
		if b.Cost > 0 {
			barLength = int((b.Cost / maxCost) * 40)
		}
		bar := strings.Repeat("█", barLength)

		// O maior custo em vermelho, os demais em azul
		barColor := pterm.FgBlue.Sprint(bar)
		if i == 0 {
			barColor = pterm.FgRed.Sprint(bar)
		}

		share := pterm.FgYellow.Sprint("N/A")
		if total > 0 {
			share = pterm.FgYellow.Sprintf("%.2f%%", (b.Cost/total)*100.0)
		}

		tableData = append(tableData, []string{
			b.Label,
			fmt.Sprintf("$%.2f", b.Cost),
			barColor,
			share,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}
