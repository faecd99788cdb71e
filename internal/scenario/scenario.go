// Package scenario runs YAML-described dispatch scenarios: declare a type
// hierarchy under Array, script each argument's handler behavior, and push
// the call through override resolution. Scenarios drive the CLI and double
// as integration fixtures.
package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arraykit/arraykit/internal/config"
	"github.com/arraykit/arraykit/internal/object"
	"github.com/arraykit/arraykit/internal/ops"
	"github.com/arraykit/arraykit/internal/typesystem"
)

// File is the top-level YAML document.
type File struct {
	Types []TypeDecl `yaml:"types"`
	Call  CallDecl   `yaml:"call"`
}

// TypeDecl declares one runtime type. Parent defaults to Array.
type TypeDecl struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent,omitempty"`
}

// CallDecl describes the operation call to resolve.
type CallDecl struct {
	Op     string            `yaml:"op"`
	Method string            `yaml:"method,omitempty"`
	NIn    *int              `yaml:"nin,omitempty"`
	Args   []ArgDecl         `yaml:"args"`
	Kwargs map[string]string `yaml:"kwargs,omitempty"`
}

// ArgDecl describes one positional argument. Type names a built-in
// (Array, Int, Float, Bool) or a declared type. Handle scripts the override
// hook: "accept" (returns Result), "decline", or "error" (fails with Error).
// An empty Handle leaves the value hookless.
type ArgDecl struct {
	Type   string  `yaml:"type"`
	Value  float64 `yaml:"value,omitempty"`
	Handle string  `yaml:"handle,omitempty"`
	Result string  `yaml:"result,omitempty"`
	Error  string  `yaml:"error,omitempty"`
}

// Scenario is a parsed, validated scenario ready to run.
type Scenario struct {
	Registry *typesystem.Registry
	Op       *ops.Operation
	Method   string
	NIn      int
	Args     []object.Object
	Kwargs   map[string]object.Object
}

// IsScenarioFile checks if a path has a recognized scenario extension
func IsScenarioFile(path string) bool {
	for _, ext := range config.ScenarioFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	if !IsScenarioFile(path) {
		return nil, fmt.Errorf("not a scenario file: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse validates a YAML scenario document and builds the runtime state it
// describes.
func Parse(data []byte) (*Scenario, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return build(&file)
}

func build(file *File) (*Scenario, error) {
	registry := typesystem.NewRegistry()
	for _, decl := range file.Types {
		parent := typesystem.TypeID(decl.Parent)
		if parent == "" {
			parent = typesystem.ArrayType
		}
		if err := registry.Register(typesystem.TypeID(decl.Name), parent); err != nil {
			return nil, fmt.Errorf("declare type %q: %w", decl.Name, err)
		}
	}

	op, ok := ops.Lookup(file.Call.Op)
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", file.Call.Op)
	}
	method := file.Call.Method
	if method == "" {
		method = config.MethodCall
	}
	nin := op.NIn
	if file.Call.NIn != nil {
		nin = *file.Call.NIn
	}

	if len(file.Call.Args) == 0 {
		return nil, fmt.Errorf("scenario call has no arguments")
	}
	args := make([]object.Object, 0, len(file.Call.Args))
	for i, decl := range file.Call.Args {
		arg, err := buildArg(registry, decl)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		args = append(args, arg)
	}

	var kwargs map[string]object.Object
	if len(file.Call.Kwargs) > 0 {
		kwargs = make(map[string]object.Object, len(file.Call.Kwargs))
		for k, v := range file.Call.Kwargs {
			kwargs[k] = &object.String{Value: v}
		}
	}

	return &Scenario{
		Registry: registry,
		Op:       op,
		Method:   method,
		NIn:      nin,
		Args:     args,
		Kwargs:   kwargs,
	}, nil
}

func buildArg(registry *typesystem.Registry, decl ArgDecl) (object.Object, error) {
	t := typesystem.TypeID(decl.Type)
	if !registry.Known(t) {
		return nil, fmt.Errorf("undeclared type %q", decl.Type)
	}

	if registry.IsPlain(t) {
		if decl.Handle != "" {
			return nil, fmt.Errorf("plain type %q cannot carry a handler", decl.Type)
		}
		switch t {
		case typesystem.ArrayType:
			return object.FromSlice([]float64{decl.Value}), nil
		case typesystem.IntType:
			return &object.Integer{Value: int64(decl.Value)}, nil
		case typesystem.FloatType:
			return &object.Float{Value: decl.Value}, nil
		case typesystem.BoolType:
			return &object.Boolean{Value: decl.Value != 0}, nil
		}
		return nil, fmt.Errorf("plain type %q has no scenario form", decl.Type)
	}

	inst := Instance{typeID: t}
	switch decl.Handle {
	case "":
		return &inst, nil
	case HandleAccept:
		result := decl.Result
		if result == "" {
			result = fmt.Sprintf("%s result", decl.Type)
		}
		return &HandledInstance{Instance: inst, behavior: behavior{kind: HandleAccept, result: result}}, nil
	case HandleDecline:
		return &HandledInstance{Instance: inst, behavior: behavior{kind: HandleDecline}}, nil
	case HandleError:
		msg := decl.Error
		if msg == "" {
			msg = fmt.Sprintf("%s handler failed", decl.Type)
		}
		return &HandledInstance{Instance: inst, behavior: behavior{kind: HandleError, errMsg: msg}}, nil
	}
	return nil, fmt.Errorf("unknown handle %q (want accept, decline or error)", decl.Handle)
}
