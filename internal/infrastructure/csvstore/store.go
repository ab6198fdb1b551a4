// Package csvstore persiste las tablas del dataset demo como archivos CSV con
// encabezado, y las lee de vuelta para correr etapas del pipeline por separado.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Layout de fechas en los CSV (sin zona; se interpreta como UTC al leer).
const timeLayout = "2006-01-02 15:04:05"

// Store escribe y lee CSVs dentro de un directorio base.
type Store struct {
	dir string
}

// New crea el Store y asegura que el directorio exista.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Path devuelve la ruta completa de un archivo dentro del Store.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) write(name string, header []string, rows [][]string) error {
	f, err := os.Create(s.Path(name))
	if err != nil {
		return fmt.Errorf("crear %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("escribir encabezado de %s: %w", name, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("escribir filas de %s: %w", name, err)
	}
	w.Flush()
	return w.Error()
}

// read devuelve las filas de datos (sin el encabezado).
func (s *Store) read(name string) ([][]string, error) {
	f, err := os.Open(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(timeLayout, s, time.UTC)
}

func atoi(s string) (int, error) {
	return strconv.Atoi(s)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseBool(s string) (bool, error) {
	return strconv.ParseBool(s)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
