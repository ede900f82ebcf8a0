package types

// Response 是所有接口统一的响应外壳，失败时 Success 为 false 并带有 Message
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func Failure(message string) *Response {
	return &Response{Success: false, Message: message}
}
