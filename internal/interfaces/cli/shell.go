package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/petshop-storefront/internal/application/cart"
	"github.com/jhoicas/petshop-storefront/internal/application/catalog"
	"github.com/jhoicas/petshop-storefront/internal/domain"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
	"github.com/jhoicas/petshop-storefront/pkg/logger"
)

const helpText = `commands:
  list                  show the filtered catalog
  search <term>         filter by name
  pet <category|all>    filter by pet category
  sub <sub|all>         filter by sub-category
  refresh               re-apply the active filter
  reload                fetch the catalog again
  delete <id>           remove from the local list only
  remove <id>           delete on the server
  new                   toggle the create form
  edit <id>             open the update form
  set <field> <value>   fill a form field
  submit                send the open form
  close                 close the form
  cart                  show the cart
  cart add <id>         add a catalog product to the cart
  help | quit`

// Shell lee comandos línea a línea y los reenvía al estado del catálogo y al carrito.
type Shell struct {
	state   *catalog.State
	cart    *cart.Service
	catalog *CatalogView
	cartV   *CartView
	out     io.Writer
	log     *logger.Logger
}

// ShellDeps dependencias del shell.
type ShellDeps struct {
	State  *catalog.State
	Cart   *cart.Service
	Out    io.Writer
	Logger *logger.Logger
}

// NewShell construye el shell con sus vistas.
func NewShell(deps ShellDeps) *Shell {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Shell{
		state:   deps.State,
		cart:    deps.Cart,
		catalog: NewCatalogView(deps.State, deps.Out),
		cartV:   NewCartView(deps.Cart, deps.Out),
		out:     deps.Out,
		log:     log.Named("shell"),
	}
}

// Run carga el catálogo y procesa comandos hasta quit o fin de la entrada.
// Un catálogo que no carga no impide usar el resto de comandos.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	if err := s.state.Load(ctx); err == nil {
		s.catalog.Render()
	}

	scanner := bufio.NewScanner(in)
	s.prompt()
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			s.prompt()
			continue
		}
		quit, err := s.Exec(ctx, line)
		if err != nil {
			s.log.Debug().Err(err).Str("line", line).Msg("comando")
			if !reported(err) {
				fmt.Fprintf(s.out, "error: %v\n", err)
			}
		}
		if quit {
			return nil
		}
		s.prompt()
	}
	return scanner.Err()
}

// Exec ejecuta un comando. Devuelve true si el comando pide salir.
func (s *Shell) Exec(ctx context.Context, line string) (bool, error) {
	cmd, rest := splitWord(line)
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(s.out, helpText)
	case "list":
		s.catalog.Render()
	case "search":
		s.state.FilterBySearchTerm(rest)
		s.catalog.Render()
	case "pet":
		s.state.FilterByPetCategory(rest)
		s.catalog.Render()
	case "sub":
		s.state.FilterBySubCategory(rest)
		s.catalog.Render()
	case "refresh":
		s.state.Recompute()
		s.catalog.Render()
	case "reload":
		if err := s.state.Load(ctx); err != nil {
			return false, err
		}
		s.catalog.Render()
	case "delete":
		if rest == "" {
			return false, usage("delete <id>")
		}
		if !s.state.DeleteLocal(entity.ProductID(rest)) {
			return false, fmt.Errorf("%w: producto %s", domain.ErrNotFound, rest)
		}
		s.catalog.Render()
	case "remove":
		if rest == "" {
			return false, usage("remove <id>")
		}
		if err := s.state.DeleteRemote(ctx, entity.ProductID(rest)); err != nil {
			return false, err
		}
		s.catalog.Render()
	case "new":
		s.state.OpenModal(catalog.VariantCreateProduct)
		s.catalog.RenderModal()
	case "open":
		v, err := catalog.ParseModalVariant(rest)
		if err != nil {
			return false, err
		}
		s.state.OpenModal(v)
		s.catalog.RenderModal()
	case "edit":
		if err := s.state.OpenEdit(entity.ProductID(rest)); err != nil {
			return false, err
		}
		s.catalog.RenderModal()
	case "set":
		field, value := splitWord(rest)
		if !s.state.ModalOpen() {
			return false, fmt.Errorf("%w: no hay formulario abierto", domain.ErrInvalidInput)
		}
		if err := s.state.SetField(field, value); err != nil {
			return false, err
		}
	case "submit":
		if _, err := s.state.Submit(ctx); err != nil {
			return false, err
		}
		s.catalog.Render()
	case "close":
		s.state.CloseModal()
	case "cart":
		return false, s.cartCommand(ctx, rest)
	default:
		return false, fmt.Errorf("comando desconocido %q (help)", cmd)
	}
	return false, nil
}

func (s *Shell) cartCommand(ctx context.Context, rest string) error {
	sub, arg := splitWord(rest)
	switch sub {
	case "":
		return s.cartV.Render(ctx)
	case "add":
		p, ok := s.state.Find(entity.ProductID(arg))
		if !ok {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, arg)
		}
		if err := s.cart.Add(ctx, p); err != nil {
			return err
		}
		return s.cartV.Render(ctx)
	}
	return usage("cart [add <id>]")
}

func (s *Shell) prompt() {
	fmt.Fprint(s.out, "> ")
}

func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool { return r == ' ' || r == '\t' })
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

func usage(u string) error {
	return fmt.Errorf("%w: uso: %s", domain.ErrInvalidInput, u)
}

// reported errores que el estado ya avisó por el notificador.
func reported(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrRemoteRequest) ||
		errors.Is(err, domain.ErrRequestInFlight)
}
