package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/moztelemetry/topline-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$$                     /$$ /$$
        |__  $$__/                    | $$|__/
           | $$  /$$$$$$   /$$$$$$  /$$$$$$$$ /$$ /$$$$$$$   /$$$$$$
           | $$ /$$__  $$ /$$__  $$| $$__  $$| $$| $$__  $$ /$$__  $$
           | $$| $$  \ $$| $$  \ $$| $$  \ $$| $$| $$  \ $$| $$$$$$$$
           | $$| $$  | $$| $$  | $$| $$  | $$| $$| $$  | $$| $$_____/
           | $$|  $$$$$$/| $$$$$$$/| $$  | $$| $$| $$  | $$|  $$$$$$$
           |__/ \______/ | $$____/ |__/  |__/|__/|__/  |__/ \_______/
                         | $$
                         | $$
                         |__/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Topline Dashboard CLI (v%s)", formattedVersion)))
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	// Usa a função do pacote version para verificar por atualizações
	version.CheckLatestVersion(currentVersion)
}
