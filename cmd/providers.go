package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nenodeploy/internal/appenv"
	"nenodeploy/internal/provider"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Lista os provedores de hospedagem suportados",
	Long: `Lista os provedores de hospedagem suportados, o arquivo de configuração
que cada um usa e o comando a executar depois que o arquivo existir.`,
	Run: runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) {
	bold := color.New(color.Bold)

	fmt.Println("Provedores suportados:")
	fmt.Println()
	for i, prov := range provider.All() {
		fmt.Printf("  %d) %s\n", i+1, bold.Sprint(prov.Name()))
		fmt.Printf("     arquivo: %s\n", prov.ConfigFile())
		fmt.Printf("     depois:  %s\n", prov.NextStep())
	}

	cwd, err := os.Getwd()
	if err != nil {
		return
	}
	app := appenv.Load(cwd)
	fmt.Println()
	fmt.Printf("Aplicação: %s (região %s)\n", app.Name, app.Region)
}
