package runner

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/thisuxhq/pockettypes"
)

// Filter selects collections with an expr-lang predicate, for example
//
//	!system && !(name startsWith "_")
//	"owner" in fields
type Filter struct {
	source  string
	program *vm.Program
}

// filterEnv is the environment a filter expression is evaluated in.
type filterEnv struct {
	ID     string   `expr:"id"`
	Name   string   `expr:"name"`
	Type   string   `expr:"type"`
	System bool     `expr:"system"`
	Fields []string `expr:"fields"`
}

// CompileFilter compiles a boolean filter expression.
func CompileFilter(source string) (*Filter, error) {
	program, err := expr.Compile(source, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidFilter, source, err)
	}

	return &Filter{source: source, program: program}, nil
}

// String returns the expression source.
func (f *Filter) String() string {
	return f.source
}

// Match reports whether c satisfies the filter.
func (f *Filter) Match(c *pockettypes.Collection) (bool, error) {
	out, err := expr.Run(f.program, filterEnv{
		ID:     c.ID,
		Name:   c.Name,
		Type:   string(c.Type),
		System: c.System,
		Fields: c.FieldNames(),
	})
	if err != nil {
		return false, fmt.Errorf("%w %q on collection %q: %w", ErrInvalidFilter, f.source, c.Name, err)
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Apply returns the collections that match, in their original order.
func (f *Filter) Apply(collections []*pockettypes.Collection) ([]*pockettypes.Collection, error) {
	kept := make([]*pockettypes.Collection, 0, len(collections))
	for _, c := range collections {
		ok, err := f.Match(c)
		if err != nil {
			return nil, err
		}

		if ok {
			kept = append(kept, c)
		}
	}

	return kept, nil
}
