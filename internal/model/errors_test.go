package model

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaErrorMessage(t *testing.T) {
	listErr := &SchemaError{Index: -1, Field: "delegations", Reason: "missing or malformed delegations list"}
	assert.Equal(t, "schema: missing or malformed delegations list", listErr.Error())

	recordErr := &SchemaError{Index: 3, Field: "shares", Reason: "invalid integer part", Err: errors.New("bad digit")}
	assert.Equal(t, "schema: delegation 3: shares invalid integer part: bad digit", recordErr.Error())
}

func TestErrorsUnwrapThroughWrapping(t *testing.T) {
	base := &IOError{Op: "open", Path: "export.json", Err: fs.ErrNotExist}
	wrapped := fmt.Errorf("load export: %w", base)

	var ioErr *IOError
	require.True(t, errors.As(wrapped, &ioErr))
	assert.Equal(t, "open", ioErr.Op)
	assert.True(t, errors.Is(wrapped, fs.ErrNotExist))

	var schemaErr *SchemaError
	assert.False(t, errors.As(wrapped, &schemaErr))
}
