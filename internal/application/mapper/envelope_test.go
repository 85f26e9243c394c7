package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/mapper"
	"github.com/infield-hq/infield-console/internal/domain"
)

// Propiedad: la colección normalizada es la misma sin importar la envoltura
// (array pelado, {items: [...]} o {data: [...]}).
func TestDecodeList_TresFormas_MismaColeccion(t *testing.T) {
	cuerpos := map[string][]byte{
		"array": []byte(`[{"id":"a-1","accountCode":"ACC-000001"},{"id":"a-2","accountCode":"ACC-000002"}]`),
		"items": []byte(`{"items":[{"id":"a-1","accountCode":"ACC-000001"},{"id":"a-2","accountCode":"ACC-000002"}],"page":1,"pageSize":10,"total":2}`),
		"data":  []byte(`{"data":[{"id":"a-1","accountCode":"ACC-000001"},{"id":"a-2","accountCode":"ACC-000002"}]}`),
	}

	for nombre, cuerpo := range cuerpos {
		env, err := mapper.DecodeList(cuerpo)
		require.NoError(t, err, "forma %s", nombre)

		cuentas, err := mapper.DecodeItems[dto.BackendAccount](env)
		require.NoError(t, err, "forma %s", nombre)

		require.Len(t, cuentas, 2, "forma %s", nombre)
		assert.Equal(t, "a-1", cuentas[0].ID)
		assert.Equal(t, "ACC-000002", cuentas[1].AccountCode)
		assert.Equal(t, 2, env.DeclaredTotal(), "forma %s", nombre)
	}
}

func TestDecodeList_TotalDeclaradoTienePrioridad(t *testing.T) {
	env, err := mapper.DecodeList([]byte(`{"items":[{"id":"a-1"}],"page":3,"pageSize":1,"total":41}`))
	require.NoError(t, err)

	assert.Equal(t, mapper.ShapeItems, env.Shape)
	assert.Equal(t, 3, env.Page)
	assert.Equal(t, 1, env.PageSize)
	assert.Equal(t, 41, env.DeclaredTotal(), "el total declarado manda sobre len(items)")
}

func TestDecodeList_ClavePropiaDelRecurso(t *testing.T) {
	env, err := mapper.DecodeList([]byte(`{"roles":[{"_id":"r-1","roleName":"Manager","level":2}]}`), "roles")
	require.NoError(t, err)
	require.Equal(t, mapper.ShapeKeyed, env.Shape)

	roles, err := mapper.DecodeItems[dto.BackendRole](env)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Manager", roles[0].RoleName)
}

// Forma desconocida: debe fallar en voz alta, no degradarse a lista vacía.
func TestDecodeList_FormaDesconocida_FallaExplicitamente(t *testing.T) {
	_, err := mapper.DecodeList([]byte(`{"result":[{"id":"a-1"}]}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownListShape)
}

func TestDecodeList_CuerpoVacio_Falla(t *testing.T) {
	_, err := mapper.DecodeList([]byte("  "))
	assert.ErrorIs(t, err, domain.ErrUnknownListShape)
}

func TestDecodeList_JSONInvalido_Falla(t *testing.T) {
	_, err := mapper.DecodeList([]byte(`{"items": [`))
	assert.Error(t, err)
}
