package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/domain"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// seededProjectID devuelve el id del primer proyecto sembrado (Planta Norte),
// que es el que tiene roles y designaciones de ejemplo.
func seededProjectID(t *testing.T, store *Store) string {
	t.Helper()
	prj, err := NewAdminAPI(store).GetProjectByCode(context.Background(), "PRJ-000001")
	require.NoError(t, err)
	return prj.ID
}

// ─────────────────────────────────────────────────────────────
// Roles
// ─────────────────────────────────────────────────────────────

func TestCreateRoles_RoundTripConElListado(t *testing.T) {
	store := NewStore()
	api := NewCatalogAPI(store)
	projectID := seededProjectID(t, store)

	created, err := api.CreateRoles(context.Background(), []dto.CreateRoleRequest{
		{ProjectID: projectID, RoleName: "Gerente", Level: 2},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.NotEmpty(t, created[0].ID)
	assert.True(t, created[0].IsActive)

	role, err := api.GetRoleByName(context.Background(), projectID, "Gerente")
	require.NoError(t, err)
	assert.Equal(t, created[0].ID, role.ID)
	assert.Equal(t, 2, role.Level)
}

func TestUpdateRoles_LoteConIdDesconocidoNoAplicaNada(t *testing.T) {
	store := NewStore()
	api := NewCatalogAPI(store)
	projectID := seededProjectID(t, store)

	roles, err := api.GetRolesByProject(context.Background(), projectID)
	require.NoError(t, err)
	require.NotEmpty(t, roles)
	originalName := roles[0].RoleName

	err = api.UpdateRoles(context.Background(), []dto.UpdateRoleRequest{
		{ID: roles[0].ID, RoleName: "Renombrado"},
		{ID: "fantasma", RoleName: "Nunca"},
	})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
	after, err := api.GetRolesByProject(context.Background(), projectID)
	require.NoError(t, err)
	assert.Equal(t, originalName, after[0].RoleName)
}

func TestDeleteRoles_BorraElLoteCompleto(t *testing.T) {
	store := NewStore()
	api := NewCatalogAPI(store)
	projectID := seededProjectID(t, store)

	roles, err := api.GetRolesByProject(context.Background(), projectID)
	require.NoError(t, err)
	require.Len(t, roles, 3)

	err = api.DeleteRoles(context.Background(), []string{roles[1].ID, roles[2].ID})
	require.NoError(t, err)

	after, err := api.GetRolesByProject(context.Background(), projectID)
	require.NoError(t, err)
	assert.Len(t, after, 1)
}

func TestDeleteRoles_IdDesconocidoAbortaElLote(t *testing.T) {
	store := NewStore()
	api := NewCatalogAPI(store)
	projectID := seededProjectID(t, store)

	roles, err := api.GetRolesByProject(context.Background(), projectID)
	require.NoError(t, err)

	err = api.DeleteRoles(context.Background(), []string{roles[0].ID, "fantasma"})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
	after, err := api.GetRolesByProject(context.Background(), projectID)
	require.NoError(t, err)
	assert.Len(t, after, len(roles))
}

// ─────────────────────────────────────────────────────────────
// Designaciones
// ─────────────────────────────────────────────────────────────

func TestCreateDesignations_ResuelveRoleNameYDefaults(t *testing.T) {
	store := NewStore()
	api := NewCatalogAPI(store)
	projectID := seededProjectID(t, store)

	role, err := api.GetRoleByName(context.Background(), projectID, "Supervisor")
	require.NoError(t, err)

	created, err := api.CreateDesignations(context.Background(), []dto.CreateDesignationRequest{
		{ProjectID: projectID, Name: "Jefe de Bodega", RoleID: role.ID},
	})

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "Supervisor", created[0].RoleName)
	assert.Equal(t, entity.AccessBoth, created[0].Access)
	assert.NotNil(t, created[0].Permissions)
}

func TestUpdateDesignations_CambioDeRolActualizaElNombre(t *testing.T) {
	store := NewStore()
	api := NewCatalogAPI(store)
	projectID := seededProjectID(t, store)

	designations, err := api.GetDesignationsByProject(context.Background(), projectID)
	require.NoError(t, err)
	require.NotEmpty(t, designations)
	adminRole, err := api.GetRoleByName(context.Background(), projectID, "Administrador")
	require.NoError(t, err)

	err = api.UpdateDesignations(context.Background(), []dto.UpdateDesignationRequest{
		{ID: designations[1].ID, RoleID: adminRole.ID},
	})
	require.NoError(t, err)

	after, err := api.GetDesignationByName(context.Background(), projectID, designations[1].Name)
	require.NoError(t, err)
	assert.Equal(t, "Administrador", after.RoleName)
}
