package serverutils

import "fmt"

// NotFoundError marks a lookup miss for a specific record id. The error
// middleware maps it to 404 with an empty body.
type NotFoundError struct {
	Resource string
	Id       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.Id)
}

// ValidationError carries field-level violation messages keyed by the
// request's JSON field name. Mapped to 400.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// RenderError wraps a PDF engine failure for one record. Mapped to 500
// with a structured {error, message, id} body.
type RenderError struct {
	Id  int64
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("PDF generation failed for valuation %d: %v", e.Id, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
