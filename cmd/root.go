package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version, Commit and Date are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
// Bare invocation runs the interactive setup flow, the tool's whole reason
// to exist.
var rootCmd = &cobra.Command{
	Use:   "neno-deploy",
	Short: "Configura o deploy do Neno IA em Render, Railway, Heroku ou Fly.io",
	Long: `neno-deploy prepara o backend do Neno IA para deploy.

Ele verifica as ferramentas necessárias (git, docker), pergunta qual provedor
de hospedagem você quer usar e gera o arquivo de configuração correspondente
(render.yaml, railway.toml, Procfile ou fly.toml) caso ainda não exista.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	Run: func(cmd *cobra.Command, args []string) {
		runSetup(cmd, args)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Erro: %v\n", err)
		os.Exit(1)
	}
}
