package cli

import (
	"fmt"
	"io"

	"github.com/jhoicas/petshop-storefront/internal/application/catalog"
)

var _ catalog.Notifier = (*TerminalNotifier)(nil)

// TerminalNotifier imprime los avisos de éxito y error en la terminal.
type TerminalNotifier struct {
	out io.Writer
}

// NewTerminalNotifier construye el notificador.
func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

// Success aviso de éxito.
func (n *TerminalNotifier) Success(message string) {
	fmt.Fprintf(n.out, "[ok] %s\n", message)
}

// Error aviso de error.
func (n *TerminalNotifier) Error(message string) {
	fmt.Fprintf(n.out, "[error] %s\n", message)
}
