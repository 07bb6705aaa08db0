package catalog

import (
	"fmt"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/mmcdole/bookshelf/internal/domain"
)

// FilterDef is an uncompiled quick filter: a boolean expr-lang expression
// over the fields of filterEnv.
type FilterDef struct {
	Name       string
	Expression string
}

// DefaultFilterDefs are the Discover quick filters.
var DefaultFilterDefs = []FilterDef{
	{Name: "New Releases", Expression: `publishYear >= 2020`},
	{Name: "Fiction", Expression: `genre contains "Fiction" || genre == "Mystery"`},
	{Name: "Non-Fiction", Expression: `not (genre contains "Fiction" || genre == "Mystery")`},
	{Name: "Audiobooks", Expression: `format in ["audiobook", "both"]`},
	{Name: "Available Now", Expression: `available`},
}

// filterEnv is the variable set visible to filter expressions.
type filterEnv struct {
	Title       string   `expr:"title"`
	Author      string   `expr:"author"`
	Genre       string   `expr:"genre"`
	Format      string   `expr:"format"`
	Available   bool     `expr:"available"`
	Rating      float64  `expr:"rating"`
	Pages       int      `expr:"pages"`
	PublishYear int      `expr:"publishYear"`
	Minutes     int      `expr:"minutes"`
	Tags        []string `expr:"tags"`
}

func envFor(b domain.Book) filterEnv {
	return filterEnv{
		Title:       b.Title,
		Author:      b.Author,
		Genre:       b.Genre,
		Format:      string(b.Type),
		Available:   b.Available,
		Rating:      b.Rating,
		Pages:       b.Pages,
		PublishYear: b.PublishYear(),
		Minutes:     int(b.AudioDuration().Minutes()),
		Tags:        b.Tags,
	}
}

// Filter is a compiled quick filter.
type Filter struct {
	Name       string
	Expression string
	program    *vm.Program
}

// CompileFilter type-checks expression against the book environment.
func CompileFilter(def FilterDef) (Filter, error) {
	program, err := expr.Compile(def.Expression, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return Filter{}, fmt.Errorf("%w %q: %v", domain.ErrInvalidFilter, def.Name, err)
	}
	return Filter{Name: def.Name, Expression: def.Expression, program: program}, nil
}

// CompileFilters compiles defs in order, stopping at the first error.
func CompileFilters(defs []FilterDef) ([]Filter, error) {
	filters := make([]Filter, 0, len(defs))
	for _, def := range defs {
		f, err := CompileFilter(def)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// FilterDefsFromMap converts user-configured filters (name -> expression)
// into defs sorted by name.
func FilterDefsFromMap(m map[string]string) []FilterDef {
	defs := make([]FilterDef, 0, len(m))
	for name, expression := range m {
		defs = append(defs, FilterDef{Name: name, Expression: expression})
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs
}

// Match evaluates the filter against book.
func (f Filter) Match(book domain.Book) (bool, error) {
	if f.program == nil {
		return false, fmt.Errorf("%w %q: not compiled", domain.ErrInvalidFilter, f.Name)
	}
	out, err := expr.Run(f.program, envFor(book))
	if err != nil {
		return false, fmt.Errorf("%w %q: %v", domain.ErrInvalidFilter, f.Name, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply returns the books matching every filter, preserving order.
// No filters returns all books.
func Apply(books []domain.Book, filters ...Filter) ([]domain.Book, error) {
	out := make([]domain.Book, 0, len(books))
	for _, b := range books {
		keep := true
		for _, f := range filters {
			ok, err := f.Match(b)
			if err != nil {
				return nil, err
			}
			if !ok {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, b)
		}
	}
	return out, nil
}
