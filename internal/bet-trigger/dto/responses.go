package dto

// Response espelha o contrato de invocação: status HTTP e corpo em texto
type Response struct {
	StatusCode int
	Body       string
}

type MessageResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
	Code    string `json:"code,omitempty"`
}
