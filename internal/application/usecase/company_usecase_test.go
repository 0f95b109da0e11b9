package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

type stubCompanyRepo struct {
	companies map[string]*entity.Company
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *stubCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *stubCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *stubCompanyRepo) GetByName(name string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *stubCompanyRepo) Update(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *stubCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.companies))
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}
func (r *stubCompanyRepo) Delete(id string) error { delete(r.companies, id); return nil }

type stubStockRepo struct {
	byCompany map[string][]*entity.ProductStock
}

func (r *stubStockRepo) GetByID(id string) (*entity.ProductStock, error) { return nil, nil }
func (r *stubStockRepo) GetByName(companyID, name string) (*entity.ProductStock, error) {
	return nil, nil
}
func (r *stubStockRepo) GetByNameForUpdate(companyID, name string) (*entity.ProductStock, error) {
	return nil, nil
}
func (r *stubStockRepo) Create(s *entity.ProductStock) error { return nil }
func (r *stubStockRepo) Update(s *entity.ProductStock) error { return nil }
func (r *stubStockRepo) List(limit, offset int) ([]*entity.ProductStock, error) {
	return nil, nil
}
func (r *stubStockRepo) ListByCompany(companyID string) ([]*entity.ProductStock, error) {
	return r.byCompany[companyID], nil
}
func (r *stubStockRepo) Delete(id string) error { return nil }

func newCompanyUC() (*usecase.CompanyUseCase, *stubCompanyRepo, *stubStockRepo) {
	companies := newStubCompanyRepo()
	stock := &stubStockRepo{byCompany: make(map[string][]*entity.ProductStock)}
	return usecase.NewCompanyUseCase(companies, stock), companies, stock
}

func TestCompanyCreate_OK(t *testing.T) {
	uc, repo, _ := newCompanyUC()

	out, err := uc.Create(dto.CreateCompanyRequest{Name: "ACME"})
	require.NoError(t, err)
	assert.Equal(t, "ACME", out.Name)
	assert.NotEmpty(t, out.ID)
	assert.Len(t, repo.companies, 1)
}

func TestCompanyCreate_NombreDuplicado(t *testing.T) {
	uc, _, _ := newCompanyUC()

	_, err := uc.Create(dto.CreateCompanyRequest{Name: "ACME"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCompanyRequest{Name: "ACME"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCompanyCreate_NombreVacio(t *testing.T) {
	uc, _, _ := newCompanyUC()

	_, err := uc.Create(dto.CreateCompanyRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El detalle incluye las filas de stock de la empresa.
func TestCompanyGetByID_IncluyeStock(t *testing.T) {
	uc, _, stock := newCompanyUC()

	out, err := uc.Create(dto.CreateCompanyRequest{Name: "ACME"})
	require.NoError(t, err)

	stock.byCompany[out.ID] = []*entity.ProductStock{
		{ID: "s1", Name: "tornillos", Quantity: 10, Price: decimal.RequireFromString("150.00"), CompanyID: out.ID},
	}

	detail, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.Len(t, detail.Products, 1)
	assert.Equal(t, "tornillos", detail.Products[0].Name)
}

func TestCompanyGetByID_NoExiste(t *testing.T) {
	uc, _, _ := newCompanyUC()

	detail, err := uc.GetByID("no-such")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestCompanyUpdate_RenombrarAUnNombreTomado(t *testing.T) {
	uc, _, _ := newCompanyUC()

	a, err := uc.Create(dto.CreateCompanyRequest{Name: "ACME"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCompanyRequest{Name: "Umbrella"})
	require.NoError(t, err)

	_, err = uc.Update(a.ID, dto.UpdateCompanyRequest{Name: "Umbrella"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Renombrar al propio nombre sí se permite.
	out, err := uc.Update(a.ID, dto.UpdateCompanyRequest{Name: "ACME"})
	require.NoError(t, err)
	assert.Equal(t, "ACME", out.Name)
}

func TestCompanyDelete_NoExiste(t *testing.T) {
	uc, _, _ := newCompanyUC()

	err := uc.Delete("no-such")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
