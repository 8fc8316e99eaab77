package dto

// ErrorResponse error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse errores de validación por campo del formulario.
type ValidationErrorResponse struct {
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}

// ConfirmRequest confirmación interactiva para acciones destructivas.
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}
