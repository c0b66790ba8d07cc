package response

// Envelope is the common JSON body for non-2xx responses and for a few
// success cases that carry a code alongside the payload.
type Envelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Error(code, message string, data interface{}) Envelope {
	return Envelope{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func OK(message string, data interface{}) Envelope {
	return Envelope{
		Code:    "OK",
		Message: message,
		Data:    data,
	}
}
