package ops

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownOperation is returned by Invoke for names not in the catalog.
var ErrUnknownOperation = errors.New("unknown operation")

// Param describes one named argument of an operation.
type Param struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Doc      string `json:"doc,omitempty"`
}

// Operation is a catalog entry.
type Operation struct {
	Name    string                                `json:"name"`
	Summary string                                `json:"summary"`
	Params  []Param                               `json:"params"`
	Call    func(env Env, args Args) (any, error) `json:"-"`
}

// Usage renders the parameter list as "name, [optional]".
func (op *Operation) Usage() string {
	parts := make([]string, 0, len(op.Params))
	for _, p := range op.Params {
		if p.Required {
			parts = append(parts, p.Name)
		} else {
			parts = append(parts, "["+p.Name+"]")
		}
	}
	return strings.Join(parts, ", ")
}

// Catalog is a set of operations keyed by name. It is safe for concurrent
// reads once built.
type Catalog struct {
	ops map[string]*Operation
}

// NewCatalog returns a catalog with every number, string and time operation
// registered.
func NewCatalog() *Catalog {
	c := &Catalog{ops: make(map[string]*Operation)}
	for _, group := range [][]Operation{numberOps(), stringOps(), timeOps()} {
		for _, op := range group {
			if err := c.Register(op); err != nil {
				panic(err)
			}
		}
	}
	return c
}

// Register adds op. Names must be unique and Call must be set.
func (c *Catalog) Register(op Operation) error {
	if op.Name == "" || op.Call == nil {
		return fmt.Errorf("register %q: name and call are required", op.Name)
	}
	if _, dup := c.ops[op.Name]; dup {
		return fmt.Errorf("register %q: already registered", op.Name)
	}
	c.ops[op.Name] = &op
	return nil
}

// Lookup returns the operation registered under name.
func (c *Catalog) Lookup(name string) (*Operation, bool) {
	op, ok := c.ops[name]
	return op, ok
}

// List returns all operations sorted by name.
func (c *Catalog) List() []*Operation {
	out := make([]*Operation, 0, len(c.ops))
	for _, op := range c.ops {
		out = append(out, op)
	}
	slices.SortFunc(out, func(a, b *Operation) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Invoke runs the named operation. Arguments not declared by the operation
// are rejected with an *ArgError.
func (c *Catalog) Invoke(env Env, name string, args Args) (any, error) {
	op, ok := c.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	if args == nil {
		args = Args{}
	}
	if err := args.checkKnown(op.Params); err != nil {
		return nil, err
	}
	return op.Call(env.withDefaults(), args)
}

func required(name, doc string) Param {
	return Param{Name: name, Required: true, Doc: doc}
}

func optional(name, doc string) Param {
	return Param{Name: name, Doc: doc}
}
