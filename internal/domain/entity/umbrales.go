package entity

// Umbrales tabla de umbrales de stock bajo por (tipo de hilado, formato).
// Un par ausente no tiene umbral propio: el valor efectivo depende del
// consumidor (el dashboard asume 0, las estadísticas detalladas 10).
type Umbrales map[string]map[string]int

// Umbral devuelve el umbral para (tipo, formato), o porDefecto si el par no existe.
func (u Umbrales) Umbral(tipo, formato string, porDefecto int) int {
	if formatos, ok := u[tipo]; ok {
		if valor, ok := formatos[formato]; ok {
			return valor
		}
	}
	return porDefecto
}

// Clonar devuelve una copia independiente de la tabla.
func (u Umbrales) Clonar() Umbrales {
	c := make(Umbrales, len(u))
	for tipo, formatos := range u {
		fc := make(map[string]int, len(formatos))
		for formato, valor := range formatos {
			fc[formato] = valor
		}
		c[tipo] = fc
	}
	return c
}
