// Package stock contiene la lógica de dominio pura del depósito: derivación
// del código de lote y clasificación por umbrales.
package stock

import "strings"

// GenerarCodigo deriva el código único de un lote a partir de sus atributos.
// La derivación es determinística: los mismos atributos producen siempre el
// mismo código, de modo que ingresos repetidos del mismo lote físico acumulan
// cantidad en lugar de duplicar registros.
//
// Regla: se concatenan tipo, título, característica, color, lote y ubicación
// con "_", y luego se reemplazan espacios por "_" y "&" por "y".
func GenerarCodigo(tipo, titulo, caracteristica, color, lote, ubicacion string) string {
	codigo := strings.Join([]string{tipo, titulo, caracteristica, color, lote, ubicacion}, "_")
	codigo = strings.ReplaceAll(codigo, " ", "_")
	codigo = strings.ReplaceAll(codigo, "&", "y")
	return codigo
}
