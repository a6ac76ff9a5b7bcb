package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MutacionResponse respuesta de los endpoints de mutación: flag de éxito y
// mensaje, más el dato resultante cuando aplica.
type MutacionResponse struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message,omitempty"`
	Codigo   string        `json:"codigo,omitempty"`
	Producto *HiloResponse `json:"producto,omitempty"`
	Error    string        `json:"error,omitempty"`
}
