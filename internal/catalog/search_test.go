package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Search_EmptyQueryReturnsAll(t *testing.T) {
	results := Search("   ", Default().Books())
	require.Len(t, results, 6)
	assert.Equal(t, "1", results[0].Book.ID)
}

func Test_Search_ByTitle(t *testing.T) {
	results := Search("hail mary", Default().Books())
	require.NotEmpty(t, results)
	assert.Equal(t, "5", results[0].Book.ID)
	assert.NotEmpty(t, results[0].MatchedIndexes)
}

func Test_Search_ByAuthor(t *testing.T) {
	results := Search("westover", Default().Books())
	require.NotEmpty(t, results)
	assert.Equal(t, "4", results[0].Book.ID)
}

func Test_Search_ByGenre(t *testing.T) {
	results := Search("mystery", Default().Books())
	require.NotEmpty(t, results)
	assert.Equal(t, "6", results[0].Book.ID)
}

func Test_Search_NoMatch(t *testing.T) {
	assert.Empty(t, Search("zzzzqqq", Default().Books()))
}
