// Package jsonfile implementa los puertos de persistencia sobre archivos
// JSON planos en un directorio de datos. Es el backend por defecto y el
// respaldo del driver postgres.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alvear-textil/deposito-api/internal/domain/entity"
)

// Nombres de archivo dentro del directorio de datos.
const (
	ArchivoStock       = "stock.json"
	ArchivoMovimientos = "movimientos.json"
	ArchivoUmbrales    = "umbrales_config.json"
)

// EnsureDataFiles crea el directorio de datos y los archivos iniciales si no
// existen: stock vacío y la tabla de umbrales semilla.
func EnsureDataFiles(dir string, umbralesIniciales entity.Umbrales) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}
	stockPath := filepath.Join(dir, ArchivoStock)
	if _, err := os.Stat(stockPath); errors.Is(err, os.ErrNotExist) {
		if err := escribirJSON(stockPath, map[string]any{}); err != nil {
			return err
		}
	}
	umbralesPath := filepath.Join(dir, ArchivoUmbrales)
	if _, err := os.Stat(umbralesPath); errors.Is(err, os.ErrNotExist) {
		if err := escribirJSON(umbralesPath, umbralesIniciales); err != nil {
			return err
		}
	}
	return nil
}

// escribirJSON escribe v con indentación vía archivo temporal + rename, para
// no dejar nunca un archivo a medio escribir.
func escribirJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar %s: %w", filepath.Base(path), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("crear temporal para %s: %w", filepath.Base(path), err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar temporal de %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renombrar %s: %w", filepath.Base(path), err)
	}
	return nil
}

// leerJSON decodifica el archivo en v. Devuelve os.ErrNotExist si no existe.
func leerJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decodificar %s: %w", filepath.Base(path), err)
	}
	return nil
}
