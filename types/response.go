package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type ProfileResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Class    string `json:"class"`
	Board    string `json:"board"`
	Group    string `json:"group,omitempty"`
}

type UploadResponse struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
}
