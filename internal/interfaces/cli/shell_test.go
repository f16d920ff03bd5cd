package cli_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/petshop-storefront/internal/application/cart"
	"github.com/jhoicas/petshop-storefront/internal/application/catalog"
	"github.com/jhoicas/petshop-storefront/internal/domain"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
	"github.com/jhoicas/petshop-storefront/internal/infrastructure/localstore"
	"github.com/jhoicas/petshop-storefront/internal/interfaces/cli"
)

type stubClient struct {
	products []entity.Product
	created  []entity.ProductFields
}

func (c *stubClient) List(context.Context) ([]entity.Product, error) {
	return append([]entity.Product{}, c.products...), nil
}

func (c *stubClient) Create(_ context.Context, f entity.ProductFields) (entity.Product, error) {
	c.created = append(c.created, f)
	return entity.Product{ID: "new", Name: f.Name, Description: f.Description, PetCategory: f.PetCategory,
		SubCategory: f.SubCategory, Price: entity.Price(f.Price), Image: f.Image}, nil
}

func (c *stubClient) Update(_ context.Context, id entity.ProductID, f entity.ProductFields) (entity.Product, error) {
	return entity.Product{ID: id, Name: f.Name, Price: entity.Price(f.Price)}, nil
}

func (c *stubClient) Delete(context.Context, entity.ProductID) error { return nil }

func newShell(t *testing.T) (*cli.Shell, *stubClient, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	client := &stubClient{products: []entity.Product{
		{ID: "1", Name: "Chew Bone", PetCategory: "dog", SubCategory: "Toys", Price: "10.50"},
		{ID: "2", Name: "Cat Tree", PetCategory: "cat", SubCategory: "Furniture", Price: "5.25"},
	}}
	state := catalog.NewState(catalog.Deps{Client: client, Notifier: cli.NewTerminalNotifier(out)})
	t.Cleanup(state.Close)
	require.NoError(t, state.Load(context.Background()))

	store := localstore.NewCartStore(localstore.NewFileStorage(filepath.Join(t.TempDir(), "ls.json")), nil)
	shell := cli.NewShell(cli.ShellDeps{State: state, Cart: cart.NewService(store), Out: out})
	return shell, client, out
}

func exec(t *testing.T, s *cli.Shell, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	_, err := s.Exec(context.Background(), line)
	require.NoError(t, err, line)
	return out.String()
}

func TestShell_FiltrosRenderizanVista(t *testing.T) {
	s, _, out := newShell(t)

	got := exec(t, s, out, "search BONE")
	assert.Contains(t, got, "Chew Bone")
	assert.NotContains(t, got, "Cat Tree")

	got = exec(t, s, out, "pet cat")
	assert.Contains(t, got, "filter: pet=cat")
	assert.Contains(t, got, "Cat Tree")

	got = exec(t, s, out, "pet bird")
	assert.Contains(t, got, "No Products Found")

	got = exec(t, s, out, "sub all")
	assert.Contains(t, got, "Chew Bone")
	assert.Contains(t, got, "Cat Tree")
}

func TestShell_DeleteLocalDejaVistaObsoleta(t *testing.T) {
	s, _, out := newShell(t)

	got := exec(t, s, out, "delete 1")
	assert.Contains(t, got, "stale, run refresh")
	assert.Contains(t, got, "Chew Bone", "la vista no se recalcula sola")

	got = exec(t, s, out, "refresh")
	assert.NotContains(t, got, "stale")
	assert.NotContains(t, got, "Chew Bone")
}

func TestShell_CrearProducto(t *testing.T) {
	s, client, out := newShell(t)

	assert.Contains(t, exec(t, s, out, "new"), "== Create Product ==")
	for _, line := range []string{
		"set name Squeaky Duck",
		"set description Rubber duck that squeaks",
		"set petCategory dog",
		"set subCategory Toys",
		"set price 3.99",
		"set image https://img.example/duck.png",
	} {
		exec(t, s, out, line)
	}

	got := exec(t, s, out, "submit")
	assert.Contains(t, got, "[ok] "+catalog.MsgCreated)
	assert.Contains(t, got, "Squeaky Duck")
	require.Len(t, client.created, 1)
	assert.Equal(t, "Rubber duck that squeaks", client.created[0].Description)
}

func TestShell_SubmitIncompletoAvisa(t *testing.T) {
	s, client, out := newShell(t)
	exec(t, s, out, "new")
	out.Reset()

	_, err := s.Exec(context.Background(), "submit")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, out.String(), "[error] "+catalog.MsgInvalidForm)
	assert.Empty(t, client.created)
}

func TestShell_ErroresDeUso(t *testing.T) {
	s, _, _ := newShell(t)
	ctx := context.Background()

	_, err := s.Exec(ctx, "set name x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin formulario abierto")

	_, err = s.Exec(ctx, "open Wizard")
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)

	_, err = s.Exec(ctx, "edit 99")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.Exec(ctx, "frobnicate")
	assert.Error(t, err)

	quit, err := s.Exec(ctx, "quit")
	assert.NoError(t, err)
	assert.True(t, quit)
}

func TestShell_Carrito(t *testing.T) {
	s, _, out := newShell(t)

	assert.Contains(t, exec(t, s, out, "cart"), "Total Price: 0.00$")
	exec(t, s, out, "cart add 1")
	got := exec(t, s, out, "cart add 2")
	assert.Contains(t, got, "Total Price: 15.75$")
	assert.Contains(t, got, "Cat Tree")
}

func TestShell_Run(t *testing.T) {
	s, _, out := newShell(t)
	out.Reset()

	err := s.Run(context.Background(), strings.NewReader("list\n\nbogus\nquit\nlist\n"))
	require.NoError(t, err)
	got := out.String()
	assert.Contains(t, got, "> ")
	assert.Contains(t, got, "error: ")
	assert.Equal(t, 2, strings.Count(got, "filter: none"), "carga inicial y list; nada tras quit")
}

func TestCatalogView_RenderConcurrenteConSubmit(t *testing.T) {
	client := &stubClient{products: []entity.Product{{ID: "1", Name: "Chew Bone", Price: "1.00"}}}
	state := catalog.NewState(catalog.Deps{Client: client, Notifier: cli.NewTerminalNotifier(io.Discard)})
	t.Cleanup(state.Close)
	require.NoError(t, state.Load(context.Background()))
	state.OpenModal(catalog.VariantCreateProduct)

	view := cli.NewCatalogView(state, &bytes.Buffer{})
	fields := entity.ProductFields{Name: "Duck", Description: "d", PetCategory: "dog", SubCategory: "toys", Price: "1.00", Image: "i"}

	done := make(chan error, 1)
	go func() {
		_, err := state.CreateRemote(context.Background(), fields)
		done <- err
	}()
	for {
		view.Render()
		select {
		case err := <-done:
			require.NoError(t, err)
			assert.False(t, state.ModalOpen())
			return
		default:
		}
	}
}
