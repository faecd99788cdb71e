package typesystem

// TypeID names a runtime type. Identity is by name: two values share a
// runtime type exactly when their TypeIDs are equal.
type TypeID string

// Built-in type identities. Array is the base numeric type; Int, Float and
// Bool are the scalar types. None of them ever participate in override
// resolution.
const (
	ArrayType  TypeID = "Array"
	IntType    TypeID = "Int"
	FloatType  TypeID = "Float"
	BoolType   TypeID = "Bool"
	StringType TypeID = "String"
	TupleType  TypeID = "Tuple"
)

// Registry holds a nominal type hierarchy: every registered type has at most
// one parent, and parent chains are acyclic by construction (a parent must
// already be registered). A Registry is built up front and treated as
// read-only afterwards; it is not safe for concurrent mutation.
type Registry struct {
	parents map[TypeID]TypeID
	plain   map[TypeID]bool
}

// NewRegistry returns a registry pre-populated with the built-in types.
// Array and the scalars are marked plain.
func NewRegistry() *Registry {
	r := &Registry{
		parents: make(map[TypeID]TypeID),
		plain:   make(map[TypeID]bool),
	}
	for _, t := range []TypeID{ArrayType, IntType, FloatType, BoolType, StringType, TupleType} {
		r.parents[t] = ""
	}
	for _, t := range []TypeID{ArrayType, IntType, FloatType, BoolType} {
		r.plain[t] = true
	}
	return r
}

// Register adds a type under the given parent. An empty parent registers a
// root type. The parent must already be known.
func (r *Registry) Register(name, parent TypeID) error {
	if name == "" {
		return NewInvalidTypeError("type name must not be empty")
	}
	if _, ok := r.parents[name]; ok {
		return NewDuplicateTypeError(name)
	}
	if parent != "" {
		if _, ok := r.parents[parent]; !ok {
			return NewUnknownTypeError(parent)
		}
	}
	r.parents[name] = parent
	return nil
}

// Known reports whether name has been registered.
func (r *Registry) Known(name TypeID) bool {
	_, ok := r.parents[name]
	return ok
}

// Parent returns the direct parent of name, if it has one.
func (r *Registry) Parent(name TypeID) (TypeID, bool) {
	p, ok := r.parents[name]
	if !ok || p == "" {
		return "", false
	}
	return p, true
}

// IsPlain reports whether t is exactly the base numeric type or a scalar
// type. The check is on type identity alone: a subtype of Array is not
// plain, which is what lets it take part in override resolution.
func (r *Registry) IsPlain(t TypeID) bool {
	return r.plain[t]
}

// IsStrictSubtype reports whether a is a proper descendant of b. Equal types
// are never strict subtypes of each other; the distinction matters for
// selection order among equally specific candidates.
func (r *Registry) IsStrictSubtype(a, b TypeID) bool {
	if a == b {
		return false
	}
	for cur := a; ; {
		p, ok := r.parents[cur]
		if !ok || p == "" {
			return false
		}
		if p == b {
			return true
		}
		cur = p
	}
}
