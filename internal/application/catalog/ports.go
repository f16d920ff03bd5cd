package catalog

import (
	"context"

	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
)

// CatalogClient puerto hacia la API REST del catálogo.
// Cualquier fallo (red, status no 2xx, cuerpo inválido) envuelve domain.ErrRemoteRequest.
type CatalogClient interface {
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, fields entity.ProductFields) (entity.Product, error)
	Update(ctx context.Context, id entity.ProductID, fields entity.ProductFields) (entity.Product, error)
	Delete(ctx context.Context, id entity.ProductID) error
}

// Notifier sumidero de avisos para el usuario (fire-and-forget).
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Mensajes que ve el usuario.
const (
	MsgCreated         = "Product Created Successfully"
	MsgCreateFailed    = "Error Creating Product"
	MsgUpdated         = "Product Updated Successfully"
	MsgUpdateFailed    = "Error Updating Product"
	MsgDeleted         = "Product Deleted Successfully"
	MsgDeleteFailed    = "Error Deleting Product"
	MsgLoadFailed      = "Error Loading Products"
	MsgInvalidForm     = "Please fill all fields Correctly"
	MsgRequestInFlight = "Please wait, a request is already in progress"
)
