package policy

import (
	"embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/dotcommander/passaudit/internal/types"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Validator handles CUE validation of policy files.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
	loaded bool
}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{
		ctx: cuecontext.New(),
	}
}

// LoadSchema compiles the embedded policy schema.
func (v *Validator) LoadSchema() error {
	content, err := schemaFS.ReadFile("schemas/policy.cue")
	if err != nil {
		return fmt.Errorf("warning: could not read embedded schema: %w", err)
	}

	inst := v.ctx.CompileBytes(content, cue.Filename("policy.cue"))
	if instErr := inst.Err(); instErr != nil {
		return fmt.Errorf("warning: could not compile policy schema: %w", instErr)
	}

	v.schema = inst.Value()
	v.loaded = true
	return nil
}

// ValidatePolicy validates decoded policy data against the schema.
func (v *Validator) ValidatePolicy(data map[string]any) []types.Finding {
	if !v.loaded {
		// Fallback to Go validation if the schema did not load
		return nil
	}

	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return []types.Finding{{
			Check:    "policy",
			Message:  fmt.Sprintf("error encoding policy data: %v", encErr),
			Severity: types.SeverityError,
			Source:   types.SourceObserve,
		}}
	}

	def := v.schema.LookupPath(cue.ParsePath("#Policy"))
	if !def.Exists() {
		return nil
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrorsFromCUE(err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrorsFromCUE(err)
	}

	return nil
}

// extractErrorsFromCUE extracts user-friendly validation errors from CUE errors
func extractErrorsFromCUE(err error) []types.Finding {
	return []types.Finding{{
		Check:    "policy",
		Message:  fmt.Sprintf("schema validation failed: %v", err),
		Severity: types.SeverityError,
		Source:   types.SourceObserve,
	}}
}
