package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"nenodeploy/internal/prereq"
	"nenodeploy/internal/prompt"
	"nenodeploy/internal/provider"
	"nenodeploy/internal/scaffold"
)

var (
	setupProvider string
	setupDryRun   bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Gera o arquivo de configuração de deploy para um provedor",
	Long: `Fluxo interativo de configuração de deploy.

Verifica os pré-requisitos, mostra o menu de provedores e cria o arquivo de
configuração do provedor escolhido no diretório atual. Um arquivo que já
existe nunca é modificado.

Exemplos:
  # Fluxo interativo
  neno-deploy setup

  # Sem menu, direto para o Render
  neno-deploy setup --provider render`,
	Run: runSetup,
}

func init() {
	setupCmd.Flags().StringVar(&setupProvider, "provider", "", "provedor (render|railway|heroku|fly), pula o menu")
	setupCmd.Flags().BoolVar(&setupDryRun, "dry-run", false, "mostra o que seria criado sem escrever nada")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Erro ao acessar o diretório atual: %v\n", err)
		os.Exit(1)
	}
	if err := setupFlow(os.Stdin, os.Stdout, cwd, setupProvider, setupDryRun); err != nil {
		os.Exit(1)
	}
}

// setupFlow runs the whole configuration flow against dir. All failure cases
// print their own message before returning; callers only translate a non-nil
// error into exit code 1.
func setupFlow(in io.Reader, out io.Writer, dir, providerID string, dryRun bool) error {
	fmt.Fprintln(out, "🚀 Configuração de deploy do Neno IA")
	fmt.Fprintln(out, "----------------------------------------")

	// Step 1: prerequisites. Missing git ends the run before any prompt;
	// missing docker is only a warning.
	status, err := prereq.Check()
	if err != nil {
		fmt.Fprintln(out, "❌ git não encontrado. Instale o git antes de continuar.")
		return err
	}
	if !status.DockerFound() {
		fmt.Fprintln(out, "⚠️  docker não encontrado. Builds em contêiner não estarão disponíveis.")
	}

	// Step 2: provider selection, via flag or menu.
	var prov provider.Provider
	if providerID != "" {
		prov, err = provider.FromID(providerID)
		if err != nil {
			fmt.Fprintf(out, "❌ Provedor inválido: %q. Use render, railway, heroku ou fly.\n", providerID)
			return err
		}
	} else {
		prov, err = prompt.New(in, out).SelectProvider()
		if err != nil {
			fmt.Fprintln(out, "❌ Opção inválida.")
			return err
		}
	}

	// Step 3: write the config artifact, unless it is already there.
	result, err := scaffold.NewWriter(dir, dryRun).Ensure(prov.ConfigFile(), prov.Template())
	if err != nil {
		fmt.Fprintf(out, "❌ Erro ao criar %s: %v\n", prov.ConfigFile(), err)
		return err
	}

	switch result {
	case scaffold.Created:
		fmt.Fprintf(out, "✅ %s criado.\n", prov.ConfigFile())
	case scaffold.Skipped:
		fmt.Fprintf(out, "ℹ️  %s já existe, mantendo o arquivo atual.\n", prov.ConfigFile())
	case scaffold.WouldCreate:
		fmt.Fprintf(out, "✓ %s seria criado (dry-run).\n", prov.ConfigFile())
	}

	// Step 4: tell the user what to run next.
	fmt.Fprintf(out, "\n👉 Próximo passo para deploy no %s:\n", prov.Name())
	fmt.Fprintf(out, "Execute: %s\n", prov.NextStep())
	return nil
}
