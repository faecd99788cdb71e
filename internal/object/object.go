package object

import (
	"github.com/arraykit/arraykit/internal/typesystem"
)

type ObjectType string

const (
	INTEGER_OBJ ObjectType = "INTEGER"
	FLOAT_OBJ   ObjectType = "FLOAT"
	BOOLEAN_OBJ ObjectType = "BOOLEAN"
	STRING_OBJ  ObjectType = "STRING"
	ARRAY_OBJ   ObjectType = "ARRAY"
	TUPLE_OBJ   ObjectType = "TUPLE"
)

// Object is the runtime value model shared by the operation machinery.
// RuntimeType identifies the value in the nominal type hierarchy; everything
// the resolution engine decides, it decides from RuntimeType alone.
type Object interface {
	Type() ObjectType
	Inspect() string
	RuntimeType() typesystem.TypeID
}
