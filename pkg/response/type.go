package response

// Resp is the failure envelope and the base of every success envelope.
type Resp struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
