package memory

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/domain"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// ─────────────────────────────────────────────────────────────
// Cuentas: filtrado, creación y borrado
// ─────────────────────────────────────────────────────────────

func TestListAccounts_FiltroCombinadoTextoYEstado(t *testing.T) {
	api := NewAdminAPI(NewStore())

	page, err := api.ListAccounts(context.Background(), dto.ListQuery{Q: "acme", Status: "Active"})

	require.NoError(t, err)
	// De las dos Acme sembradas solo la primera está activa.
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ACC-000001", page.Items[0].Code)
	assert.Equal(t, 1, page.Total)
}

func TestListAccounts_BusquedaInsensibleAMayusculas(t *testing.T) {
	api := NewAdminAPI(NewStore())

	lower, err := api.ListAccounts(context.Background(), dto.ListQuery{Q: "borealis"})
	require.NoError(t, err)
	upper, err := api.ListAccounts(context.Background(), dto.ListQuery{Q: "BOREALIS"})
	require.NoError(t, err)

	assert.Equal(t, lower.Items, upper.Items)
	require.Len(t, lower.Items, 1)
}

func TestListAccounts_PaginaFueraDeRangoDevuelveVacia(t *testing.T) {
	api := NewAdminAPI(NewStore())

	page, err := api.ListAccounts(context.Background(), dto.ListQuery{Page: 99})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 99, page.Page)
	assert.Equal(t, 4, page.Total)
}

func TestCreateAccount_EmiteCodigoSecuencialYArrancaActiva(t *testing.T) {
	api := NewAdminAPI(NewStore())

	acc, err := api.CreateAccount(context.Background(), dto.CreateAccountRequest{
		AccountName: "Delta Mining",
		Email:       "admin@delta.test",
	})

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ACC-\d{6}$`), acc.Code)
	assert.Equal(t, "ACC-000005", acc.Code)
	assert.Equal(t, entity.StatusActive, acc.Status)
	assert.Equal(t, 0, acc.ProjectsActiveCount)
	assert.NotEmpty(t, acc.ID)

	// La cuenta nueva es inmediatamente listable.
	page, err := api.ListAccounts(context.Background(), dto.ListQuery{Q: "delta"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
}

func TestCreateAccount_NoReutilizaCodigosTrasBorrar(t *testing.T) {
	api := NewAdminAPI(NewStore())

	first, err := api.CreateAccount(context.Background(), dto.CreateAccountRequest{AccountName: "Efímera", Email: "x@efimera.test"})
	require.NoError(t, err)
	require.NoError(t, api.DeleteAccount(context.Background(), first.ID))

	second, err := api.CreateAccount(context.Background(), dto.CreateAccountRequest{AccountName: "Siguiente", Email: "y@siguiente.test"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Code, second.Code)
}

func TestDeleteAccount_IdDesconocidoEsNotFoundSinEfectos(t *testing.T) {
	api := NewAdminAPI(NewStore())

	before, err := api.ListAccounts(context.Background(), dto.ListQuery{PageSize: 100})
	require.NoError(t, err)

	err = api.DeleteAccount(context.Background(), "no-existe")

	assert.True(t, errors.Is(err, domain.ErrNotFound))
	after, err := api.ListAccounts(context.Background(), dto.ListQuery{PageSize: 100})
	require.NoError(t, err)
	assert.Equal(t, before.Total, after.Total)
}

func TestUpdateAccount_CambiaEstadoSinTocarElCodigo(t *testing.T) {
	api := NewAdminAPI(NewStore())
	acc, err := api.GetAccountByCode(context.Background(), "ACC-000001")
	require.NoError(t, err)

	updated, err := api.UpdateAccount(context.Background(), acc.ID, dto.UpdateAccountRequest{Status: "INACTIVE"})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, updated.Status)
	assert.Equal(t, "ACC-000001", updated.Code)
}

// ─────────────────────────────────────────────────────────────
// Proyectos: direccionados por código de cuenta
// ─────────────────────────────────────────────────────────────

func TestListProjects_SoloLosDeLaCuenta(t *testing.T) {
	api := NewAdminAPI(NewStore())

	page, err := api.ListProjects(context.Background(), "ACC-000001", dto.ListQuery{})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	for _, prj := range page.Items {
		assert.Equal(t, "ACC-000001", prj.AccountCode)
	}
}

func TestListProjects_CuentaInexistenteEsNotFound(t *testing.T) {
	api := NewAdminAPI(NewStore())

	_, err := api.ListProjects(context.Background(), "ACC-999999", dto.ListQuery{})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCreateProject_ActualizaContadorDeActivosDeLaCuenta(t *testing.T) {
	api := NewAdminAPI(NewStore())
	owner, err := api.GetAccountByCode(context.Background(), "ACC-000002")
	require.NoError(t, err)
	require.Equal(t, 0, owner.ProjectsActiveCount)

	prj, err := api.CreateProject(context.Background(), dto.CreateProjectRequest{
		AccountID:   owner.ID,
		ProjectName: "Sucursal Oeste",
		Email:       "oeste@acme.test",
	})

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^PRJ-\d{6}$`), prj.Code)
	assert.Equal(t, "ACC-000002", prj.AccountCode)
	assert.NotNil(t, prj.ModulesActive)

	owner, err = api.GetAccountByCode(context.Background(), "ACC-000002")
	require.NoError(t, err)
	assert.Equal(t, 1, owner.ProjectsActiveCount)
}

func TestDeleteProject_DescuentaDelContadorSiEstabaActivo(t *testing.T) {
	api := NewAdminAPI(NewStore())
	page, err := api.ListProjects(context.Background(), "ACC-000001", dto.ListQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, page.Items)

	require.NoError(t, api.DeleteProject(context.Background(), page.Items[0].ID))

	owner, err := api.GetAccountByCode(context.Background(), "ACC-000001")
	require.NoError(t, err)
	assert.Equal(t, 1, owner.ProjectsActiveCount)
}

func TestUpdateProject_CruceDeEstadoAjustaElContador(t *testing.T) {
	api := NewAdminAPI(NewStore())
	page, err := api.ListProjects(context.Background(), "ACC-000001", dto.ListQuery{Status: "Active"})
	require.NoError(t, err)
	require.NotEmpty(t, page.Items)

	_, err = api.UpdateProject(context.Background(), page.Items[0].ID, dto.UpdateProjectRequest{Status: "INACTIVE"})
	require.NoError(t, err)

	owner, err := api.GetAccountByCode(context.Background(), "ACC-000001")
	require.NoError(t, err)
	assert.Equal(t, 1, owner.ProjectsActiveCount)
}

// ─────────────────────────────────────────────────────────────
// Usuarios
// ─────────────────────────────────────────────────────────────

func TestListUsers_FiltraPorProyectoYEstado(t *testing.T) {
	api := NewAdminAPI(NewStore())

	page, err := api.ListUsers(context.Background(), "ACC-000001", "PRJ-000001", dto.ListQuery{Status: "Onboarding"})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Ana Fuentes", page.Items[0].Name)
}
