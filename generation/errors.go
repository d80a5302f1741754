package generation

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the pipeline. Callers match them with errors.Is;
// the HTTP layer collapses all of them to one generic failure message.
var (
	// ErrSchemaShape means the generated payload was not object-like at the
	// top level, so there was nothing to sanitize.
	ErrSchemaShape = errors.New("generated form payload is not an object")

	// ErrInvalidSchema means the sanitized draft still failed the schema
	// contract. Given the sanitizer's defaults this should be unreachable.
	ErrInvalidSchema = errors.New("sanitized form failed validation")

	// ErrGenerationUnavailable means every configured model was unavailable.
	ErrGenerationUnavailable = errors.New("no model available to generate content")

	// ErrEmptyGeneration means a model answered with no usable text.
	ErrEmptyGeneration = errors.New("empty response from form generator")

	// ErrGenerationParse means the response text could not be turned into a
	// valid schema (extraction, JSON parse or sanitizer rejection).
	ErrGenerationParse = errors.New("unable to parse generated form schema")
)

// ParseError wraps ErrGenerationParse and retains the offending raw response
// for internal logs. The raw text is never sent back to the caller.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrGenerationParse, e.Err)
}

func (e *ParseError) Unwrap() error { return ErrGenerationParse }
