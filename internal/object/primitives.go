package object

import (
	"fmt"

	"github.com/arraykit/arraykit/internal/typesystem"
)

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType               { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string                { return fmt.Sprintf("%t", b.Value) }
func (b *Boolean) RuntimeType() typesystem.TypeID { return typesystem.BoolType }

// Integer
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType               { return INTEGER_OBJ }
func (i *Integer) Inspect() string                { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) RuntimeType() typesystem.TypeID { return typesystem.IntType }

// Float
type Float struct {
	Value float64
}

func (f *Float) Type() ObjectType               { return FLOAT_OBJ }
func (f *Float) Inspect() string                { return fmt.Sprintf("%g", f.Value) }
func (f *Float) RuntimeType() typesystem.TypeID { return typesystem.FloatType }

// String
type String struct {
	Value string
}

func (s *String) Type() ObjectType               { return STRING_OBJ }
func (s *String) Inspect() string                { return fmt.Sprintf("%q", s.Value) }
func (s *String) RuntimeType() typesystem.TypeID { return typesystem.StringType }
