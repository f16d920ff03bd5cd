package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/petshop-storefront/internal/domain"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
	"github.com/jhoicas/petshop-storefront/pkg/logger"
)

// Deps dependencias del estado del catálogo.
type Deps struct {
	Client   CatalogClient
	Notifier Notifier
	Logger   *logger.Logger
}

// State fuente de verdad del catálogo en el cliente: la lista autoritativa, la vista filtrada
// derivada, el formulario y el modal. La vista filtrada sólo se reemplaza, nunca se edita.
type State struct {
	mu       sync.Mutex
	products []entity.Product
	filtered []entity.Product
	active   Filter
	stale    bool
	editing  entity.ProductID

	form  *FormState
	modal *ModalController

	client   CatalogClient
	notifier Notifier
	log      *logger.Logger

	loading  atomic.Bool
	creating atomic.Bool
	updating atomic.Bool
	deleting atomic.Bool
}

// NewState construye el estado vacío, sin filtro activo y con el modal cerrado.
func NewState(deps Deps) *State {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	form := NewFormState()
	return &State{
		products: []entity.Product{},
		filtered: []entity.Product{},
		active:   NoFilter(),
		form:     form,
		modal:    NewModalController(form),
		client:   deps.Client,
		notifier: deps.Notifier,
		log:      log.Named("catalog"),
	}
}

// Load trae el catálogo completo. En éxito reemplaza products, quita el filtro activo y
// la vista filtrada pasa a ser la lista completa. En fallo products no cambia.
func (s *State) Load(ctx context.Context) error {
	if !s.loading.CompareAndSwap(false, true) {
		return s.busy("load")
	}
	defer s.loading.Store(false)

	list, err := s.client.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("cargar catálogo")
		s.notifier.Error(MsgLoadFailed)
		return fmt.Errorf("load catalog: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]entity.Product{}, list...)
	s.active = NoFilter()
	s.recomputeLocked()
	s.log.Debug().Int("products", len(s.products)).Msg("catálogo cargado")
	return nil
}

// FilterByPetCategory reemplaza el filtro activo por categoría de mascota ("all" = sin filtro).
func (s *State) FilterByPetCategory(category string) {
	s.setFilter(PetCategory(category))
}

// FilterBySearchTerm reemplaza el filtro activo por búsqueda en el nombre.
func (s *State) FilterBySearchTerm(term string) {
	s.setFilter(SearchTerm(term))
}

// FilterBySubCategory reemplaza el filtro activo por subcategoría ("all" = sin filtro).
func (s *State) FilterBySubCategory(sub string) {
	s.setFilter(SubCategory(sub))
}

// Los filtros no se componen: cada llamada parte de products, no de la vista anterior.
func (s *State) setFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = f
	s.recomputeLocked()
}

// Recompute vuelve a aplicar el filtro activo sobre products.
func (s *State) Recompute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeLocked()
}

func (s *State) recomputeLocked() {
	s.filtered = apply(s.active, s.products)
	s.stale = false
}

// DeleteLocal quita el producto de products sin llamar a la API. La vista filtrada no se
// recalcula: queda marcada como Stale hasta el próximo Recompute o filtro.
func (s *State) DeleteLocal(id entity.ProductID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(id)
}

func (s *State) removeLocked(id entity.ProductID) bool {
	for i, p := range s.products {
		if p.ID == id {
			next := make([]entity.Product, 0, len(s.products)-1)
			next = append(next, s.products[:i]...)
			next = append(next, s.products[i+1:]...)
			s.products = next
			s.stale = true
			return true
		}
	}
	return false
}

// DeleteRemote borra el producto en la API y, si tuvo éxito, también en local con recálculo.
func (s *State) DeleteRemote(ctx context.Context, id entity.ProductID) error {
	if !s.deleting.CompareAndSwap(false, true) {
		return s.busy("delete")
	}
	defer s.deleting.Store(false)

	if err := s.client.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("id", string(id)).Msg("borrar producto")
		s.notifier.Error(MsgDeleteFailed)
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	s.mu.Lock()
	s.removeLocked(id)
	s.recomputeLocked()
	s.mu.Unlock()
	s.notifier.Success(MsgDeleted)
	return nil
}

// CreateRemote valida los seis campos y crea el producto en la API. En éxito lo antepone a
// products, recalcula, cierra el modal y resetea el formulario. En cualquier fallo avisa,
// cierra el modal (lo que resetea el formulario) y deja products intacto.
func (s *State) CreateRemote(ctx context.Context, fields entity.ProductFields) (entity.Product, error) {
	if !s.creating.CompareAndSwap(false, true) {
		return entity.Product{}, s.busy("create")
	}
	defer s.creating.Store(false)

	if err := s.form.Validate(fields); err != nil {
		s.log.Warn().Err(err).Msg("formulario incompleto")
		s.failSubmit(MsgInvalidForm)
		return entity.Product{}, err
	}

	created, err := s.client.Create(ctx, fields)
	if err != nil {
		s.log.Error().Err(err).Msg("crear producto")
		s.failSubmit(MsgCreateFailed)
		return entity.Product{}, fmt.Errorf("create product: %w", err)
	}

	s.mu.Lock()
	next := make([]entity.Product, 0, len(s.products)+1)
	next = append(next, created)
	s.products = append(next, s.products...)
	s.recomputeLocked()
	s.modal.Close()
	s.mu.Unlock()

	s.log.Info().Str("id", string(created.ID)).Msg("producto creado")
	s.notifier.Success(MsgCreated)
	return created, nil
}

// UpdateRemote valida y actualiza el producto en la API; reemplaza el elemento en su posición.
func (s *State) UpdateRemote(ctx context.Context, id entity.ProductID, fields entity.ProductFields) (entity.Product, error) {
	if !s.updating.CompareAndSwap(false, true) {
		return entity.Product{}, s.busy("update")
	}
	defer s.updating.Store(false)

	if err := s.form.Validate(fields); err != nil {
		s.log.Warn().Err(err).Msg("formulario incompleto")
		s.failSubmit(MsgInvalidForm)
		return entity.Product{}, err
	}

	updated, err := s.client.Update(ctx, id, fields)
	if err != nil {
		s.log.Error().Err(err).Str("id", string(id)).Msg("actualizar producto")
		s.failSubmit(MsgUpdateFailed)
		return entity.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}

	s.mu.Lock()
	next := make([]entity.Product, 0, len(s.products)+1)
	replaced := false
	for _, p := range s.products {
		if p.ID == id {
			next = append(next, updated)
			replaced = true
			continue
		}
		next = append(next, p)
	}
	if !replaced {
		next = append([]entity.Product{updated}, next...)
	}
	s.products = next
	s.recomputeLocked()
	s.editing = ""
	s.modal.Close()
	s.mu.Unlock()

	s.notifier.Success(MsgUpdated)
	return updated, nil
}

// Submit envía el formulario abierto según la variante del modal.
func (s *State) Submit(ctx context.Context) (entity.Product, error) {
	s.mu.Lock()
	variant := s.modal.Variant()
	fields := s.form.Fields()
	editing := s.editing
	s.mu.Unlock()

	switch variant {
	case VariantCreateProduct:
		return s.CreateRemote(ctx, fields)
	case VariantUpdateProduct:
		if editing == "" {
			return entity.Product{}, fmt.Errorf("%w: formulario de actualización sin producto (edit <id>)", domain.ErrInvalidInput)
		}
		return s.UpdateRemote(ctx, editing, fields)
	case VariantNone:
		return entity.Product{}, fmt.Errorf("%w: no hay formulario abierto", domain.ErrInvalidInput)
	}
	return entity.Product{}, fmt.Errorf("%w: %s", domain.ErrUnknownVariant, variant)
}

// OpenModal alterna el modal con la variante indicada.
func (s *State) OpenModal(v ModalVariant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Open(v)
	if !s.modal.IsOpen() || v != VariantUpdateProduct {
		s.editing = ""
	}
}

// OpenEdit abre el formulario de actualización precargado con el producto id.
func (s *State) OpenEdit(id entity.ProductID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.findLocked(id)
	if !ok {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	if s.modal.IsOpen() {
		s.modal.Close()
	}
	s.modal.Open(VariantUpdateProduct)
	s.form.Fill(entity.FieldsOf(p))
	s.editing = id
	return nil
}

// CloseModal cierra el modal y resetea el formulario.
func (s *State) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
	s.editing = ""
}

// SetField actualiza un campo del formulario.
func (s *State) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.SetField(name, value)
}

// Products copia de la lista autoritativa.
func (s *State) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Product{}, s.products...)
}

// FilteredProducts copia de la vista derivada.
func (s *State) FilteredProducts() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Product{}, s.filtered...)
}

// Find busca un producto por id en la lista autoritativa.
func (s *State) Find(id entity.ProductID) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(id)
}

func (s *State) findLocked(id entity.ProductID) (entity.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// ActiveFilter filtro aplicado más recientemente.
func (s *State) ActiveFilter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Stale indica que products cambió sin recalcular la vista filtrada.
func (s *State) Stale() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stale
}

// ModalOpen indica si el modal está abierto.
func (s *State) ModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal.IsOpen()
}

// ModalVariant variante abierta, VariantNone si el modal está cerrado.
func (s *State) ModalVariant() ModalVariant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal.Variant()
}

// FormFields copia de los campos actuales del formulario.
func (s *State) FormFields() entity.ProductFields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Fields()
}

// Close libera el estado al desmontar la vista.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
	s.products = nil
	s.filtered = nil
	s.active = NoFilter()
	s.editing = ""
	s.stale = false
}

// failSubmit aviso de error más el cierre del modal que limpia los campos.
func (s *State) failSubmit(msg string) {
	s.mu.Lock()
	s.modal.Close()
	s.editing = ""
	s.mu.Unlock()
	s.notifier.Error(msg)
}

func (s *State) busy(op string) error {
	s.log.Warn().Str("op", op).Msg("petición duplicada descartada")
	s.notifier.Error(MsgRequestInFlight)
	return fmt.Errorf("%s: %w", op, domain.ErrRequestInFlight)
}
