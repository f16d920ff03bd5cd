package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/petshop-storefront/internal/application/dto"
	"github.com/jhoicas/petshop-storefront/internal/application/usecase"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
	"github.com/jhoicas/petshop-storefront/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/petshop-storefront/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/petshop-storefront/pkg/jwt"
)

func newAPI(secret string, seed ...entity.Product) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC: usecase.NewProductUseCase(memory.NewProductRepository(seed...)),
		JWTSecret: secret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body, auth string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const validBody = `{"name":"Bone","description":"Chew toy","petCategory":"dog","subCategory":"toys","price":"10.5","image":"https://img.example/bone.png"}`

func TestProductHandler_ListVacio(t *testing.T) {
	resp := call(t, newAPI(""), http.MethodGet, "/api/v1/products", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotNil(t, out.Products)
	assert.Empty(t, out.Products)
}

func TestProductHandler_CreateYList(t *testing.T) {
	app := newAPI("", entity.Product{ID: "old", Name: "Old", Price: "1.00"})

	resp := call(t, app, http.MethodPost, "/api/v1/products", validBody, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.ProductEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.Data.ID)
	assert.Equal(t, "dog", created.Data.PetCategory)
	assert.Equal(t, entity.Price("10.50"), created.Data.Price)

	resp = call(t, app, http.MethodGet, "/api/v1/products", "", "")
	var list dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Products, 2)
	assert.Equal(t, created.Data.ID, list.Products[0].ID, "el más reciente va primero")
}

func TestProductHandler_RespuestaEnSnakeCase(t *testing.T) {
	app := newAPI("", entity.Product{ID: "1", Name: "Bone", PetCategory: "dog", SubCategory: "toys", Price: "1.00"})

	resp := call(t, app, http.MethodGet, "/api/v1/products/1", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"pet_category":"dog"`)
	assert.Contains(t, string(raw), `"sub_category":"toys"`)
}

func TestProductHandler_CreateCamposVacios(t *testing.T) {
	resp := call(t, newAPI(""), http.MethodPost, "/api/v1/products", `{"name":"Bone"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestProductHandler_CreatePrecioInvalido(t *testing.T) {
	body := `{"name":"Bone","description":"d","petCategory":"dog","subCategory":"toys","price":"-1","image":"i"}`
	resp := call(t, newAPI(""), http.MethodPost, "/api/v1/products", body, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, resp).Code)
}

func TestProductHandler_CreateCuerpoInvalido(t *testing.T) {
	resp := call(t, newAPI(""), http.MethodPost, "/api/v1/products", `{not json`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestProductHandler_GetByIDInexistente(t *testing.T) {
	resp := call(t, newAPI(""), http.MethodGet, "/api/v1/products/nope", "", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestProductHandler_UpdateYDelete(t *testing.T) {
	app := newAPI("", entity.Product{ID: "1", Name: "Old", Price: "1.00"})

	resp := call(t, app, http.MethodPut, "/api/v1/products/1", validBody, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated dto.ProductEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, entity.ProductID("1"), updated.Data.ID)
	assert.Equal(t, "Bone", updated.Data.Name)

	resp = call(t, app, http.MethodDelete, "/api/v1/products/1", "", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodDelete, "/api/v1/products/1", "", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProductHandler_UpdateInexistente(t *testing.T) {
	resp := call(t, newAPI(""), http.MethodPut, "/api/v1/products/nope", validBody, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProductHandler_EscriturasProtegidasConSecreto(t *testing.T) {
	app := newAPI(testJWTSecret)

	resp := call(t, app, http.MethodGet, "/api/v1/products", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "la lectura es pública")

	resp = call(t, app, http.MethodPost, "/api/v1/products", validBody, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/v1/products", validBody, tokenWithScope(t, pkgjwt.ScopeCatalogWrite))
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}
