package model

import "fmt"

// IOError reports a failure reading the export or writing the report.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a malformed export document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse export: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a well-formed document whose delegation data is missing or mistyped.
// Index is the position in the delegations list, or -1 for the list itself.
type SchemaError struct {
	Index  int
	Field  string
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	msg := e.Reason
	if e.Index >= 0 {
		msg = fmt.Sprintf("delegation %d: %s %s", e.Index, e.Field, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("schema: %s: %v", msg, e.Err)
	}
	return "schema: " + msg
}

func (e *SchemaError) Unwrap() error { return e.Err }
