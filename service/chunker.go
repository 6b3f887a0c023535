package service

import "fmt"

// Chunker splits extracted text into overlapping fixed-size windows of
// characters. Each window spans [start, start+chunkSize) in runes and
// the next one starts at start + chunkSize - overlap, so consecutive
// chunks share overlap characters and their concatenation with the
// overlap dropped reconstructs the input exactly. Windows are measured
// in runes, not bytes, so a boundary never splits a multibyte
// character.
type Chunker struct {
	chunkSize int
	overlap   int
}

// NewChunker validates the window parameters up front. overlap >= size
// would never advance the window, so it is rejected here instead of
// hanging ingestion.
func NewChunker(chunkSize, overlap int) (*Chunker, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if overlap < 0 || overlap >= chunkSize {
		return nil, fmt.Errorf("overlap must be in [0, chunk size), got overlap=%d chunk size=%d", overlap, chunkSize)
	}
	return &Chunker{
		chunkSize: chunkSize,
		overlap:   overlap,
	}, nil
}

// Chunk returns the ordered windows of text. Empty text yields no
// chunks; the trailing chunk may be shorter than the window size.
func (c *Chunker) Chunk(text string) []string {
	runes := []rune(text)
	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + c.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		start += c.chunkSize - c.overlap
	}
	return chunks
}
