package export

import (
	"bufio"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"stakedrop/internal/model"
)

var errInvalidUTF8 = errors.New("file is not valid UTF-8")

// ReadFile loads the whole chain export into memory.
func ReadFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", &model.IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(bufio.NewReader(file))
	if err != nil {
		return "", &model.IOError{Op: "read", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &model.IOError{Op: "read", Path: path, Err: errInvalidUTF8}
	}

	return string(data), nil
}
