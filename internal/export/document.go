package export

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf16"

	jsoniter "github.com/json-iterator/go"

	"stakedrop/internal/model"
)

// Numbers stay as json.Number so amounts keep their exact text.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Document is a parsed export kept as a generic tree of maps, slices and scalars.
type Document struct {
	root interface{}
}

var errInvalidSyntax = errors.New("invalid json syntax")

// Parse decodes the export text without applying any schema.
func Parse(data string) (*Document, error) {
	// UseNumber skips number syntax checks during decoding.
	if !json.Valid([]byte(data)) {
		return nil, &model.ParseError{Err: errInvalidSyntax}
	}

	var root interface{}
	if err := json.UnmarshalFromString(data, &root); err != nil {
		return nil, &model.ParseError{Err: err}
	}
	if err := checkSurrogates(data); err != nil {
		return nil, &model.ParseError{Err: err}
	}
	return &Document{root: root}, nil
}

// checkSurrogates rejects \u escapes that do not form a valid UTF-16
// surrogate pair. data must already be valid JSON, so every backslash
// starts an escape inside a string.
func checkSurrogates(data string) error {
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			continue
		}
		i++
		if data[i] != 'u' {
			continue
		}
		r := escapedRune(data, i+1)
		if !utf16.IsSurrogate(r) {
			i += 4
			continue
		}
		if r < 0xdc00 && i+10 < len(data) && data[i+5] == '\\' && data[i+6] == 'u' {
			if utf16.DecodeRune(r, escapedRune(data, i+7)) != '\uFFFD' {
				i += 10
				continue
			}
		}
		return fmt.Errorf("unpaired surrogate \\u%s at offset %d", data[i+1:i+5], i-1)
	}
	return nil
}

func escapedRune(data string, at int) rune {
	v, _ := strconv.ParseUint(data[at:at+4], 16, 32)
	return rune(v)
}

// Root returns the top-level value.
func (d *Document) Root() interface{} {
	if d == nil {
		return nil
	}
	return d.root
}

// Lookup walks nested objects by key. It reports false when a key is absent
// or an intermediate value is not an object.
func (d *Document) Lookup(path ...string) (interface{}, bool) {
	current := d.Root()
	for _, key := range path {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
