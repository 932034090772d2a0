// Package flatfile implementa la persistencia sobre archivos planos: un
// archivo por tipo de entidad, un registro por línea, UTF-8. Cada operación
// mutadora es un ciclo completo leer-modificar-reescribir; no hay
// recuperación de escrituras parciales (una caída a mitad de reescritura
// puede dejar el archivo truncado).
package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/viajenepal/tourism-core/internal/domain"
	"github.com/viajenepal/tourism-core/pkg/logger"
)

// Codec codifica una entidad a una línea delimitada y la reconstruye.
type Codec[T any] interface {
	Encode(v T) string
	Decode(line string) (T, error)
}

// Store es el almacén genérico sobre un archivo. El mutex serializa los
// ciclos leer-modificar-reescribir entre llamadores del mismo proceso; no
// hay exclusión entre procesos.
type Store[T any] struct {
	mu    sync.Mutex
	path  string
	codec Codec[T]
	log   *logger.Logger
}

// NewStore construye el almacén para un archivo y su códec.
func NewStore[T any](path string, codec Codec[T], log *logger.Logger) *Store[T] {
	return &Store[T]{path: path, codec: codec, log: log}
}

// LoadAll lee el archivo línea a línea y decodifica cada registro. Las
// líneas mal formadas se registran y se omiten, nunca abortan la carga.
// Si el archivo no existe devuelve una secuencia vacía, no un error.
func (s *Store[T]) LoadAll() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAll()
}

func (s *Store[T]) loadAll() ([]T, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("abrir %s: %w", s.path, err)
	}
	defer f.Close()

	var out []T
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		v, err := s.codec.Decode(line)
		if err != nil {
			s.log.Warn().
				Str("file", s.path).
				Int("line", lineNo).
				Err(err).
				Msg("registro omitido")
			continue
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.path, err)
	}
	return out, nil
}

// AppendOne escribe un registro al final del archivo sin reescribir el
// contenido existente.
func (s *Store[T]) AppendOne(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("abrir %s para append: %w", s.path, err)
	}
	if _, err := f.WriteString(s.codec.Encode(v) + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("escribir en %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", s.path, err)
	}
	return nil
}

// ReplaceAll reescribe el archivo completo con la secuencia dada, en ese
// orden, descartando el contenido previo.
func (s *Store[T]) ReplaceAll(vs []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceAll(vs)
}

func (s *Store[T]) replaceAll(vs []T) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("reescribir %s: %w", s.path, err)
	}
	w := bufio.NewWriter(f)
	for _, v := range vs {
		if _, err := w.WriteString(s.codec.Encode(v) + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("escribir en %s: %w", s.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("volcar %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", s.path, err)
	}
	return nil
}

// Mutate ejecuta un ciclo leer-modificar-reescribir bajo el mutex del
// almacén: carga todos los registros, aplica fn y reescribe el archivo con
// el resultado. Si fn devuelve error no se escribe nada.
func (s *Store[T]) Mutate(fn func(all []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadAll()
	if err != nil {
		return err
	}
	next, err := fn(all)
	if err != nil {
		return err
	}
	return s.replaceAll(next)
}

// UpdateOne reemplaza el primer registro cuya clave coincide con la de la
// entidad dada; domain.ErrNotFound si no hay coincidencia.
func (s *Store[T]) UpdateOne(v T, key func(T) string) error {
	want := key(v)
	return s.Mutate(func(all []T) ([]T, error) {
		for i := range all {
			if key(all[i]) == want {
				all[i] = v
				return all, nil
			}
		}
		return nil, fmt.Errorf("clave %q: %w", want, domain.ErrNotFound)
	})
}

// DeleteWhere elimina los registros que cumplen el predicado y reescribe el
// archivo. No es un error que ninguno coincida.
func (s *Store[T]) DeleteWhere(match func(T) bool) error {
	return s.Mutate(func(all []T) ([]T, error) {
		kept := all[:0]
		for _, v := range all {
			if !match(v) {
				kept = append(kept, v)
			}
		}
		return kept, nil
	})
}
