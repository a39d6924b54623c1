package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nenodeploy/internal/prereq"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Verifica os pré-requisitos de deploy (git, docker)",
	Run:   runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) {
	ok := color.New(color.FgGreen).Sprint("✔")
	bad := color.New(color.FgRed).Sprint("✖")

	status, err := prereq.Check()
	if err != nil {
		fmt.Printf("%s git: não encontrado no PATH\n", bad)
		os.Exit(1)
	}
	fmt.Printf("%s git: %s\n", ok, status.GitPath)

	if status.DockerFound() {
		fmt.Printf("%s docker: %s\n", ok, status.DockerPath)
	} else {
		fmt.Printf("%s docker: não encontrado (aviso, deploy continua disponível)\n", bad)
	}
}
