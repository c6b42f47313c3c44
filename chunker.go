package main

// defaultChunkSize is the knowledge-base chunk width in characters.
const defaultChunkSize = 500

// ChunkText splits text into contiguous fixed-size chunks with no overlap and
// no gaps. The last chunk may be shorter; empty text yields no chunks.
// Concatenating the result reproduces the input exactly.
func ChunkText(text string, size int) []string {
	if size <= 0 || len(text) == 0 {
		return nil
	}
	chunks := make([]string, 0, (len(text)+size-1)/size)
	for i := 0; i < len(text); i += size {
		end := i + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[i:end])
	}
	return chunks
}
