package validation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrSchemaViolation is wrapped by every error caused by a document not matching its schema
var ErrSchemaViolation = errors.New("schema validation failed")

// SchemaValidator checks JSON documents against named, precompiled schemas
type SchemaValidator struct {
	mu       sync.RWMutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates an empty validator
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// Register compiles schema under name. Registering a name twice keeps the first schema.
func (v *SchemaValidator) Register(name string, schema []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[name]; ok {
		return nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgParseSchema, name, err)
	}
	if err := v.compiler.AddResource(name, doc); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgAddSchemaResource, name, err)
	}
	compiled, err := v.compiler.Compile(name)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgCompileSchema, name, err)
	}

	v.schemas[name] = compiled
	return nil
}

// Validate checks data against the schema registered as name
func (v *SchemaValidator) Validate(name string, data []byte) error {
	v.mu.RLock()
	schema, ok := v.schemas[name]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%s: %s", ErrMsgSchemaNotRegistered, name)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgParseDocument, err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	var lines []string
	collectErrors(verr, &lines)
	return fmt.Errorf("%w:\n%s", ErrSchemaViolation, strings.Join(lines, "\n"))
}

// collectErrors walks the cause tree. Only leaves carry a useful location.
func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatLeaf(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatLeaf(err *jsonschema.ValidationError) string {
	location := rootLocation
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	keyword := ""
	if err.ErrorKind != nil {
		keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keyword == "" {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keyword)
}
