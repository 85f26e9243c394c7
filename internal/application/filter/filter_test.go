package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/infield-hq/infield-console/internal/application/filter"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

func TestMatchesText_InsensibleAMayusculas(t *testing.T) {
	assert.True(t, filter.MatchesText("acme", "Acme Corp", "ACC-000001"))
	assert.True(t, filter.MatchesText("ACC-000001", "Acme Corp", "acc-000001"))
	assert.False(t, filter.MatchesText("borealis", "Acme Corp", "ACC-000001"))
}

func TestMatchesText_ConsultaVaciaAceptaTodo(t *testing.T) {
	assert.True(t, filter.MatchesText("", "cualquier cosa"))
	assert.True(t, filter.MatchesText("   ", "cualquier cosa"))
}

func TestMatchesText_BuscaSobreLaConcatenacion(t *testing.T) {
	// la aguja puede caer en cualquiera de los campos
	assert.True(t, filter.MatchesText("west@acme", "Acme West", "ACC-000002", "west@acme.com"))
}

func TestMatchesStatus(t *testing.T) {
	assert.True(t, filter.MatchesStatus("All", entity.StatusInactive))
	assert.True(t, filter.MatchesStatus("", entity.StatusActive))
	assert.True(t, filter.MatchesStatus("Active", entity.StatusActive))
	assert.False(t, filter.MatchesStatus("Active", entity.StatusInactive))
}
