package todo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// Validate checks tasks against the embedded JSON Schema, falling
// back to minimal structural checks if the schema cannot be compiled.
func Validate(tasks []Task) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	schema, err := compileSchema()
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("JSON Schema validation not available (%v), using minimal checks", err))
		validateMinimal(tasks, result)
		return result
	}
	result.UsedSchema = true

	// Round-trip through encoding/json so the schema sees the wire shape.
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("failed to marshal tasks for validation: %w", err),
		})
		return result
	}
	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("failed to unmarshal tasks for validation: %w", err),
		})
		return result
	}

	if err := schema.Validate(obj); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
	return result
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource("todo.schema.json", strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile("todo.schema.json")
}

// validateMinimal performs minimal validation without JSON Schema.
func validateMinimal(tasks []Task, result *ValidationResult) {
	for i, task := range tasks {
		path := fmt.Sprintf("[%d]", i)
		if strings.TrimSpace(task.Desc) == "" {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: path + ".desc",
				Err:  fmt.Errorf("missing or empty description"),
			})
		}
		if !task.Priority.Valid() {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: path + ".priority",
				Err:  fmt.Errorf("must be between 1 and 4, got %d", task.Priority),
			})
		}
		for j, tag := range task.Tags {
			if strings.Contains(tag, "#") {
				result.Valid = false
				result.Errors = append(result.Errors, &ValidationError{
					Path: fmt.Sprintf("%s.tags[%d]", path, j),
					Err:  fmt.Errorf("tag %q contains '#'", tag),
				})
			}
		}
		if task.Created != "" {
			if _, ok := ParseCreated(task.Created); !ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s.created: unrecognized timestamp %q", path, task.Created))
			}
		}
	}
}

func appendSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath converts "#/2/tags/0" into "[2].tags[0]".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	path := ""
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
