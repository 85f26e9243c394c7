// Package filter implementa el filtrado de texto y estado que comparten la
// fachada mock, la fachada real y los controladores de página, para que la UI
// se comporte igual sin importar el backing store.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// MatchesText búsqueda por subcadena, insensible a mayúsculas (case folding
// Unicode), sobre la concatenación de los campos buscables de la entidad.
// Una consulta vacía acepta todo.
func MatchesText(q string, fields ...string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return true
	}
	fold := cases.Fold()
	needle := fold.String(q)
	haystack := fold.String(strings.Join(fields, " "))
	return strings.Contains(haystack, needle)
}

// MatchesStatus filtro exacto de estado; el centinela All acepta todo.
func MatchesStatus(filterValue string, status entity.Status) bool {
	if filterValue == "" || filterValue == dto.StatusAll {
		return true
	}
	return string(status) == filterValue
}
