// Package prompt handles the interactive provider selection. User-facing text
// is pt-BR, the product's language.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"nenodeploy/internal/provider"
)

var ErrInvalidChoice = errors.New("invalid choice")

// Prompter reads the provider selection from in and writes the menu to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// SelectProvider shows the menu, reads one line and maps it to a provider.
// Anything that is not an integer between 1 and 4 returns ErrInvalidChoice.
func (p *Prompter) SelectProvider() (provider.Provider, error) {
	fmt.Fprintln(p.out, color.New(color.Bold).Sprint("Escolha o provedor de hospedagem:"))
	fmt.Fprintln(p.out)
	for i, prov := range provider.All() {
		fmt.Fprintf(p.out, "  %d) %-10s (%s)\n", i+1, prov.Name(), prov.ConfigFile())
	}
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, "Digite o número (1-4): ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("%w: %s", ErrInvalidChoice, "entrada vazia")
	}
	line = strings.TrimSpace(line)

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, line)
	}

	prov, err := provider.FromChoice(n)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, line)
	}
	return prov, nil
}
