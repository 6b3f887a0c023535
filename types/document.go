package types

const (
	SOURCE_KIND_CURRICULUM = "curriculum"
	SOURCE_KIND_USER       = "user"
)

// Document is the metadata record for an ingested document. The chunk
// contents themselves live in the vector index, keyed by DocumentID.
type Document struct {
	DocumentID string `json:"document_id" bson:"document_id"`
	Filename   string `json:"filename" bson:"filename"`
	SourceKind string `json:"source_kind" bson:"source_kind"`
	OwnerID    string `json:"owner_id,omitempty" bson:"owner_id,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty" bson:"owner_email,omitempty"`
	CreatedAt  int64  `json:"created_at" bson:"created_at"`
}

// VectorRecord is one embedded chunk as stored in the vector index.
// ID is "<document_id>-<chunk index>", so re-upserting the same chunk
// overwrites instead of duplicating.
type VectorRecord struct {
	ID         string
	Embedding  []float32
	Text       string
	DocumentID string
	ChunkIndex int
}

// SearchMatch is one retrieved chunk, most similar first.
type SearchMatch struct {
	Text       string
	DocumentID string
	Score      float32
}

// CurriculumEntry maps a board/class/subject(/group) to a syllabus document.
type CurriculumEntry struct {
	Board      string `json:"board" bson:"board"`
	Class      string `json:"class" bson:"class"`
	Subject    string `json:"subject" bson:"subject"`
	Group      string `json:"group,omitempty" bson:"group,omitempty"`
	DocumentID string `json:"document_id" bson:"document_id"`
}
