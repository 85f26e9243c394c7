package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/infield-hq/infield-console/internal/domain"
)

// ListShape forma detectada de una respuesta de listado del backend.
type ListShape int

const (
	// ShapeArray respuesta como array pelado: [...]
	ShapeArray ListShape = iota + 1
	// ShapeItems objeto con clave items: {items: [...], page, pageSize, total}
	ShapeItems
	// ShapeData objeto con clave data: {data: [...]}
	ShapeData
	// ShapeKeyed objeto con una clave específica del recurso: {roles: [...]}
	ShapeKeyed
)

// ListEnvelope resultado del parseo de una respuesta de listado, con los
// elementos aún crudos y los metadatos de página que el backend declaró.
type ListEnvelope struct {
	Shape    ListShape
	Items    []json.RawMessage
	Page     int
	PageSize int
	Total    int
	HasTotal bool
}

// envelopeMeta metadatos opcionales que acompañan a la colección.
type envelopeMeta struct {
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	Total    *int `json:"total"`
}

// DecodeList clasifica el cuerpo de un listado en una de las formas
// conocidas: array pelado, {items: [...]}, {data: [...]} o una clave propia
// del recurso (extraKeys, p. ej. "roles"). Una forma de objeto que no expone
// ninguna de esas claves falla con domain.ErrUnknownListShape en lugar de
// degradarse silenciosamente a una lista vacía.
func DecodeList(body []byte, extraKeys ...string) (*ListEnvelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: cuerpo vacío", domain.ErrUnknownListShape)
	}

	if trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decodificar array de listado: %w", err)
		}
		return &ListEnvelope{Shape: ShapeArray, Items: items}, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, fmt.Errorf("decodificar objeto de listado: %w", err)
	}

	shape, raw := classify(obj, extraKeys)
	if shape == 0 {
		return nil, fmt.Errorf("%w: claves presentes %v", domain.ErrUnknownListShape, keysOf(obj))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decodificar colección del listado: %w", err)
	}

	var meta envelopeMeta
	_ = json.Unmarshal(trimmed, &meta) // metadatos ausentes no son error

	env := &ListEnvelope{
		Shape:    shape,
		Items:    items,
		Page:     meta.Page,
		PageSize: meta.PageSize,
	}
	if meta.Total != nil {
		env.Total = *meta.Total
		env.HasTotal = true
	}
	return env, nil
}

func classify(obj map[string]json.RawMessage, extraKeys []string) (ListShape, json.RawMessage) {
	if raw, ok := obj["items"]; ok && isArray(raw) {
		return ShapeItems, raw
	}
	if raw, ok := obj["data"]; ok && isArray(raw) {
		return ShapeData, raw
	}
	for _, key := range extraKeys {
		if raw, ok := obj[key]; ok && isArray(raw) {
			return ShapeKeyed, raw
		}
	}
	return 0, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func keysOf(obj map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	return keys
}

// DecodeItems decodifica cada elemento crudo del sobre en el DTO pedido.
func DecodeItems[B any](env *ListEnvelope) ([]B, error) {
	out := make([]B, 0, len(env.Items))
	for i, raw := range env.Items {
		var item B
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("decodificar elemento %d del listado: %w", i, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// DeclaredTotal devuelve el total declarado por el backend o, en su
// ausencia, la longitud de la colección recibida.
func (e *ListEnvelope) DeclaredTotal() int {
	if e.HasTotal {
		return e.Total
	}
	return len(e.Items)
}
