// Package mapper traduce las formas de entidad del backend al modelo
// normalizado del frontend. Todas las funciones son puras: no hacen I/O,
// no mutan su entrada y toleran objetos parcialmente poblados (los campos
// opcionales ausentes se convierten en cadena vacía, slice vacío o cero,
// nunca en un valor inválido propagado hacia la consola).
package mapper

import "github.com/infield-hq/infield-console/internal/domain/entity"

// Status traduce el enum de estado del backend al del frontend.
// Es una función total: ACTIVE mapea a Active y cualquier otro valor,
// incluidos los inesperados, mapea a Inactive. Por esta vía no se puede
// derivar un tercer estado.
func Status(backend string) entity.Status {
	if backend == "ACTIVE" {
		return entity.StatusActive
	}
	return entity.StatusInactive
}
