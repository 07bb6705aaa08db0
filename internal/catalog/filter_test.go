package catalog

import (
	"testing"

	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookIDs(books []domain.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func Test_DefaultFilters(t *testing.T) {
	filters, err := CompileFilters(DefaultFilterDefs)
	require.NoError(t, err)

	byName := make(map[string]Filter)
	for _, f := range filters {
		byName[f.Name] = f
	}

	tests := []struct {
		filter string
		want   []string
	}{
		{filter: "New Releases", want: []string{"1", "5", "6"}},
		{filter: "Fiction", want: []string{"1", "3", "5", "6"}},
		{filter: "Non-Fiction", want: []string{"2", "4"}},
		{filter: "Audiobooks", want: []string{"1", "2", "4", "5"}},
		{filter: "Available Now", want: []string{"1", "2", "4", "5", "6"}},
	}

	books := Default().Books()
	for _, tc := range tests {
		t.Run(tc.filter, func(t *testing.T) {
			f, ok := byName[tc.filter]
			require.True(t, ok)

			got, err := Apply(books, f)
			require.NoError(t, err)
			assert.Equal(t, tc.want, bookIDs(got))
		})
	}
}

func Test_Apply_CombinesWithAnd(t *testing.T) {
	filters, err := CompileFilters([]FilterDef{
		{Name: "Available Now", Expression: `available`},
		{Name: "Long Listens", Expression: `minutes > 600`},
	})
	require.NoError(t, err)

	got, err := Apply(Default().Books(), filters...)
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "5"}, bookIDs(got))
}

func Test_Apply_NoFilters(t *testing.T) {
	got, err := Apply(Default().Books())
	require.NoError(t, err)
	assert.Len(t, got, 6)
}

func Test_CompileFilter_Invalid(t *testing.T) {
	tests := []FilterDef{
		{Name: "syntax", Expression: `available &&`},
		{Name: "not_bool", Expression: `rating + 1`},
		{Name: "unknown_field", Expression: `shelfLife > 3`},
	}

	for _, def := range tests {
		t.Run(def.Name, func(t *testing.T) {
			_, err := CompileFilter(def)
			assert.ErrorIs(t, err, domain.ErrInvalidFilter)
		})
	}
}

func Test_Filter_Match_Uncompiled(t *testing.T) {
	_, err := Filter{Name: "zero"}.Match(domain.Book{})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func Test_FilterDefsFromMap_SortedByName(t *testing.T) {
	defs := FilterDefsFromMap(map[string]string{
		"Top Rated": `rating >= 4.5`,
		"Short":     `pages > 0 && pages < 300`,
	})

	require.Len(t, defs, 2)
	assert.Equal(t, "Short", defs[0].Name)
	assert.Equal(t, "Top Rated", defs[1].Name)

	filters, err := CompileFilters(defs)
	require.NoError(t, err)

	got, err := Apply(Default().Books(), filters[1])
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "5"}, bookIDs(got))
}
