// Package export genera archivos CSV de los listados de la consola.
// El escape es el clásico de RFC 4180: un campo con coma, comillas o salto
// de línea se envuelve en comillas y las comillas internas se doblan.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Column columna del CSV: encabezado y extractor de valor sobre la fila.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Write escribe el CSV completo: fila de encabezados y una fila por elemento,
// en el orden de las columnas declaradas.
func Write[T any](w io.Writer, columns []Column[T], rows []T) error {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = escapeField(col.Header)
	}
	if _, err := io.WriteString(w, strings.Join(headers, ",")+"\n"); err != nil {
		return fmt.Errorf("escribir encabezados: %w", err)
	}

	for _, row := range rows {
		fields := make([]string, len(columns))
		for i, col := range columns {
			fields[i] = escapeField(col.Value(row))
		}
		if _, err := io.WriteString(w, strings.Join(fields, ",")+"\n"); err != nil {
			return fmt.Errorf("escribir fila: %w", err)
		}
	}
	return nil
}

// JoinList aplana un campo multivalor a una sola celda.
func JoinList(values []string) string {
	return strings.Join(values, "; ")
}

// Filename arma el nombre de descarga con la fecha del día: base_YYYY-MM-DD.csv.
func Filename(base string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", base, now.Format("2006-01-02"))
}

func escapeField(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
