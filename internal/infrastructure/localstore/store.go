// Package localstore implementa un almacén clave-valor respaldado por un
// archivo JSON. Es el equivalente de servidor del localStorage del navegador:
// ahí persiste la sesión de la consola entre reinicios.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store almacén clave-valor con persistencia a archivo. Cada escritura
// reescribe el archivo completo; el volumen es de un puñado de claves.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// Open carga el almacén desde path. Un archivo inexistente arranca vacío;
// un archivo corrupto también: la sesión guardada se pierde pero la consola
// arranca, que es exactamente lo que hace el navegador con storage ilegible.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: map[string]string{}}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer almacén local %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.data = map[string]string{}
	}
	return s, nil
}

// Get devuelve el valor de la clave y si existe.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	return value, ok
}

// Set escribe la clave y persiste.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flushLocked()
}

// Delete elimina la clave y persiste. Borrar una clave ausente no es error.
func (s *Store) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.data, key)
	}
	return s.flushLocked()
}

// flushLocked reescribe el archivo con permisos restrictivos: guarda tokens.
func (s *Store) flushLocked() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("serializar almacén local: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("crear directorio del almacén: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("escribir almacén local %s: %w", s.path, err)
	}
	return nil
}
