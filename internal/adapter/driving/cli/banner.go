package cli

import (
	"fmt"

	"github.com/diillson/aws-cur-etl-go/internal/shared/types"
	"github.com/diillson/aws-cur-etl-go/pkg/console"
	"github.com/diillson/aws-cur-etl-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
          /$$$$$$  /$$   /$$ /$$$$$$$        /$$$$$$$$ /$$$$$$$$ /$$      
         /$$__  $$| $$  | $$| $$__  $$      | $$_____/|__  $$__/| $$      
        | $$  \__/| $$  | $$| $$  \ $$      | $$         | $$   | $$      
        | $$      | $$  | $$| $$$$$$$/      | $$$$$      | $$   | $$      
        | $$      | $$  | $$| $$__  $$      | $$__/      | $$   | $$      
        | $$    $$| $$  | $$| $$  \ $$      | $$         | $$   | $$      
        |  $$$$$$/|  $$$$$$/| $$  | $$      | $$$$$$$$   | $$   | $$$$$$$$
         \______/  \______/ |__/  |__/      |________/   |__/   |________/
        `
	fmt.Println(console.BoldRed(banner))
	fmt.Println(console.BrightCyan(fmt.Sprintf("AWS CUR ETL (v%s)", version.FormatVersion())))
	fmt.Println(console.BrightYellow(fmt.Sprintf("Input: %s  →  Output: %s", types.InputPath, types.OutputPath)))
}
