package dto

// ErrorResponse cuerpo de error HTTP: código estable verificable por máquina
// más mensaje legible. Nunca expone trazas ni identificadores internos.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// NormalizePage aplica los valores por defecto de paginación: skip 0, limit 100.
func NormalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return skip, limit
}
