package response

// Error codes form a closed set so programmatic clients never need to
// parse the human-readable message.
const (
	CodeValidation   = "validation"
	CodeUnauthorized = "unauthorized"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeInternal     = "internal"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token      string `json:"token"`
	UID        uint   `json:"user_id"`
	Username   string `json:"username"`
	FullName   string `json:"fullname"`
	ProfileImg string `json:"profile_img"`
}

func Validation(msg string) ErrorResponse {
	return ErrorResponse{Error: msg, Code: CodeValidation}
}

func Unauthorized(msg string) ErrorResponse {
	return ErrorResponse{Error: msg, Code: CodeUnauthorized}
}

func NotFound(msg string) ErrorResponse {
	return ErrorResponse{Error: msg, Code: CodeNotFound}
}

func Conflict(msg string) ErrorResponse {
	return ErrorResponse{Error: msg, Code: CodeConflict}
}

func Internal(msg string) ErrorResponse {
	return ErrorResponse{Error: msg, Code: CodeInternal}
}
