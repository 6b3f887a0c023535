package types

const (
	USER_ROLE_STUDENT = "student"
	USER_ROLE_ADMIN   = "admin"
)

const (
	BOARD_STATEBOARD = "stateboard"
	BOARD_CBSE       = "cbse"
)

type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Username  string `json:"username" bson:"username"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"password" bson:"password"`
	Class     string `json:"class" bson:"class"`
	Board     string `json:"board" bson:"board"`
	Group     string `json:"group,omitempty" bson:"group,omitempty"`
	Role      string `json:"role" bson:"role"`
	CreatedAt int64  `json:"created_at" bson:"created_at"`
	UpdatedAt int64  `json:"updated_at" bson:"updated_at"`
}

// Requester is the identity attached to an authenticated request,
// extracted from the JWT by the auth middleware.
type Requester struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Class  string `json:"class"`
	Board  string `json:"board"`
	Group  string `json:"group,omitempty"`
}

// AnswerRequest asks a question against one document. Transient, never
// persisted.
type AnswerRequest struct {
	DocumentID string
	Question   string
	Requester  Requester
}

// AnswerResult is the outcome of answering. IsFound is false when no
// chunk was retrieved or the model could not ground the answer in the
// supplied context.
type AnswerResult struct {
	DocumentID string `json:"document_id"`
	Answer     string `json:"answer"`
	IsFound    bool   `json:"is_found"`
}
