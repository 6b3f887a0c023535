package service

import (
	"context"
	"hash/fnv"
	"sort"
	"sync"

	"github.com/eduquery/eduquery-be/types"
)

// fakeEmbedder returns deterministic vectors. Specific texts can be
// pinned to chosen vectors through the vectors map; everything else gets
// a hash-derived vector so identical texts always embed identically.
type fakeEmbedder struct {
	dim     int
	vectors map[string][]float32
	calls   int
}

func newFakeEmbedder(dim int) *fakeEmbedder {
	return &fakeEmbedder{
		dim:     dim,
		vectors: make(map[string][]float32),
	}
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if vec, ok := f.vectors[text]; ok {
		return vec, nil
	}
	h := fnv.New64a()
	h.Write([]byte(text))
	seed := h.Sum64()
	vec := make([]float32, f.dim)
	for i := range vec {
		vec[i] = float32((seed>>(uint(i)%64))&0xff) / 255
	}
	return vec, nil
}

func (f *fakeEmbedder) Dimension() int {
	return f.dim
}

// fakeIndex is an in-memory vector index with brute-force dot-product
// search, keyed by record id so upserts overwrite.
type fakeIndex struct {
	mu      sync.Mutex
	records map[string]types.VectorRecord
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{
		records: make(map[string]types.VectorRecord),
	}
}

func (f *fakeIndex) Upsert(_ context.Context, records []types.VectorRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range records {
		f.records[rec.ID] = rec
	}
	return nil
}

func (f *fakeIndex) Query(_ context.Context, embedding []float32, topK int, documentID string) ([]types.SearchMatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matches []types.SearchMatch
	for _, rec := range f.records {
		if rec.DocumentID != documentID {
			continue
		}
		matches = append(matches, types.SearchMatch{
			Text:       rec.Text,
			DocumentID: rec.DocumentID,
			Score:      dot(embedding, rec.Embedding),
		})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

func (f *fakeIndex) size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// fakeDocumentRepo implements repository.DocumentRepo in memory.
type fakeDocumentRepo struct {
	mu   sync.Mutex
	docs map[string]types.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{
		docs: make(map[string]types.Document),
	}
}

func (f *fakeDocumentRepo) Register(_ context.Context, doc *types.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[doc.DocumentID] = *doc
	return nil
}

func (f *fakeDocumentRepo) FindByID(_ context.Context, documentID string) (*types.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[documentID]
	if !ok {
		return nil, types.ErrNotFound
	}
	return &doc, nil
}

func (f *fakeDocumentRepo) FindByOwnerAndID(_ context.Context, ownerEmail, documentID string) (*types.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[documentID]
	if !ok || doc.OwnerEmail != ownerEmail {
		return nil, types.ErrNotFound
	}
	return &doc, nil
}

func (f *fakeDocumentRepo) ListByOwner(_ context.Context, ownerEmail string) ([]types.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var docs []types.Document
	for _, doc := range f.docs {
		if doc.OwnerEmail == ownerEmail {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// fakeCurriculumRepo resolves curriculum keys from a fixed entry list.
type fakeCurriculumRepo struct {
	entries []types.CurriculumEntry
}

func (f *fakeCurriculumRepo) FindDocumentID(_ context.Context, board, class, subject, group string) (string, error) {
	for _, entry := range f.entries {
		if entry.Board != board || entry.Class != class || entry.Subject != subject {
			continue
		}
		if group != "" && entry.Group != group {
			continue
		}
		return entry.DocumentID, nil
	}
	return "", types.ErrNotFound
}

func (f *fakeCurriculumRepo) ListSubjects(_ context.Context, board, class, group string) ([]string, error) {
	var subjects []string
	for _, entry := range f.entries {
		if entry.Board != board || entry.Class != class {
			continue
		}
		if group != "" && entry.Group != group {
			continue
		}
		subjects = append(subjects, entry.Subject)
	}
	return subjects, nil
}

func (f *fakeCurriculumRepo) ListGroups(_ context.Context, board, class string) ([]string, error) {
	seen := make(map[string]bool)
	var groups []string
	for _, entry := range f.entries {
		if entry.Board != board || entry.Class != class || entry.Group == "" || seen[entry.Group] {
			continue
		}
		seen[entry.Group] = true
		groups = append(groups, entry.Group)
	}
	return groups, nil
}

// fakeGenerator records prompts and returns a canned response.
type fakeGenerator struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeGenerator) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}
