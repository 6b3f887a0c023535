package types

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Class    string `json:"class"`
	Board    string `json:"board"`
	Group    string `json:"group,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Username string `json:"username,omitempty"`
	Class    string `json:"class,omitempty"`
	Board    string `json:"board,omitempty"`
	Group    string `json:"group,omitempty"`
}

// AskRequest answers a question from the syllabus document matching the
// requester's profile and the given subject.
type AskRequest struct {
	Subject string `json:"subject"`
	Query   string `json:"query"`
}

// AskDocumentRequest answers a question from one of the requester's own
// uploaded documents.
type AskDocumentRequest struct {
	DocumentID string `json:"document_id"`
	Query      string `json:"query"`
}
