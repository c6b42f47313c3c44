package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextReconstruction(t *testing.T) {
	cases := []struct {
		name string
		text string
		size int
	}{
		{"short", "hello", 500},
		{"exact multiple", strings.Repeat("a", 1000), 500},
		{"ragged tail", strings.Repeat("b", 1234), 500},
		{"size one", "abc", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chunks := ChunkText(tc.text, tc.size)
			assert.Equal(t, tc.text, strings.Join(chunks, ""))

			wantCount := (len(tc.text) + tc.size - 1) / tc.size
			assert.Len(t, chunks, wantCount)

			for i, chunk := range chunks {
				if i < len(chunks)-1 {
					assert.Len(t, chunk, tc.size)
				} else {
					assert.LessOrEqual(t, len(chunk), tc.size)
				}
			}
		})
	}
}

func TestChunkTextEmpty(t *testing.T) {
	assert.Empty(t, ChunkText("", 500))
}

func TestChunkTextBadSize(t *testing.T) {
	assert.Empty(t, ChunkText("something", 0))
	assert.Empty(t, ChunkText("something", -1))
}

func TestChunkTextLastChunkShorter(t *testing.T) {
	chunks := ChunkText(strings.Repeat("x", 501), 500)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 1)
}
