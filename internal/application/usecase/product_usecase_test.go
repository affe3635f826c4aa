package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

const (
	prodCompanyID = "00000000-0000-0000-0000-0000000000c1"
	prodUserID    = "00000000-0000-0000-0000-0000000000u1"
)

// fakeProductRepo repo en memoria indexado por ID y por SKU.
type fakeProductRepo struct {
	byID       map[string]*entity.Product
	lastFilter repository.ProductFilter
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	copia := *p
	f.byID[p.ID] = &copia
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := f.byID[id]; ok {
		copia := *p
		return &copia, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range f.byID {
		if p.CompanyID == companyID && p.SKU == sku {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	copia := *p
	f.byID[p.ID] = &copia
	return nil
}

func (f *fakeProductRepo) ListByCompany(companyID string, filter repository.ProductFilter) ([]*entity.Product, error) {
	f.lastFilter = filter
	var out []*entity.Product
	for _, p := range f.byID {
		if p.CompanyID != companyID {
			continue
		}
		if !filter.IncludeInactive && !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func createRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:      "CAFE-500",
		Name:     "Café Señorial 500g",
		Category: "bebidas",
		Price:    decimal.NewFromInt(12500),
		TaxRate:  decimal.NewFromInt(19),
		MinStock: decimal.NewFromInt(5),
	}
}

func TestProductCreate_NormalizaElNombreParaBusqueda(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	resp, err := uc.Create(prodCompanyID, prodUserID, createRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Active)

	stored := repo.byID[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "cafe senorial 500g", stored.NameSearch,
		"la columna de búsqueda va en minúsculas y sin tildes")
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	_, err := uc.Create(prodCompanyID, prodUserID, createRequest())
	require.NoError(t, err)

	_, err = uc.Create(prodCompanyID, prodUserID, createRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_IVAInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), nil)

	in := createRequest()
	in.TaxRate = decimal.NewFromInt(16)
	_, err := uc.Create(prodCompanyID, prodUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"solo 0, 5 y 19 son tarifas de IVA válidas")
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), nil)

	in := createRequest()
	in.Price = decimal.NewFromInt(-100)
	_, err := uc.Create(prodCompanyID, prodUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_CamposParciales(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	created, err := uc.Create(prodCompanyID, prodUserID, createRequest())
	require.NoError(t, err)

	nuevoNombre := "Café Orgánico 500g"
	nuevoPrecio := decimal.NewFromInt(13900)
	resp, err := uc.Update(created.ID, prodUserID, dto.UpdateProductRequest{
		Name:  &nuevoNombre,
		Price: &nuevoPrecio,
	})
	require.NoError(t, err)

	assert.Equal(t, nuevoNombre, resp.Name)
	assert.True(t, resp.Price.Equal(nuevoPrecio))
	assert.Equal(t, "CAFE-500", resp.SKU, "el SKU no cambia en update")
	assert.Equal(t, "cafe organico 500g", repo.byID[created.ID].NameSearch)
}

func TestProductUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), nil)

	nombre := "X"
	resp, err := uc.Update("inexistente", prodUserID, dto.UpdateProductRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Nil(t, resp, "producto inexistente devuelve nil sin error")
}

func TestProductDeactivate_BorradoSuave(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	created, err := uc.Create(prodCompanyID, prodUserID, createRequest())
	require.NoError(t, err)

	resp, err := uc.Deactivate(created.ID, prodUserID)
	require.NoError(t, err)
	assert.False(t, resp.Active)
	require.NotNil(t, repo.byID[created.ID], "el producto sigue en la base")

	// Desactivar dos veces es conflicto
	_, err = uc.Deactivate(created.ID, prodUserID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductList_NormalizaElTermino(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	_, err := uc.Create(prodCompanyID, prodUserID, createRequest())
	require.NoError(t, err)

	out, err := uc.List(prodCompanyID, repository.ProductFilter{Search: "CAFÉ", Limit: 20})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, "cafe", repo.lastFilter.Search,
		"el término llega al repo en minúsculas y sin tildes")
}
