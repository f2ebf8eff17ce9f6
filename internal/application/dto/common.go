package dto

// ErrorResponse cuerpo de error HTTP. Field señala el campo del formulario a enfocar.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
