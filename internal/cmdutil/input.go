// Package cmdutil resolves command input sources for ftb.
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/salmonumbrella/ftb/internal/errors"
)

// MaxInputSize caps how much input ftb accepts, from file or stdin.
const MaxInputSize = 10 << 20 // 10 MiB

// StdinName is how stdin is reported in errors and --check output.
const StdinName = "stdin"

// ReadSource reads the document to format. An empty path or "-" reads from
// stdin. The returned name identifies the source in error messages. Input
// larger than MaxInputSize or not valid UTF-8 is rejected.
func ReadSource(stdin io.Reader, path string) (content, name string, err error) {
	if path == "" || path == "-" {
		content, err = readStdin(stdin)
		return content, StdinName, err
	}
	content, err = readFile(path)
	return content, path, err
}

func readStdin(stdin io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(stdin, MaxInputSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) > MaxInputSize {
		return "", errors.NewUserError(
			fmt.Sprintf("input too large (max %d MB)", MaxInputSize>>20),
			"Pipe a smaller document or pass a file path",
		)
	}
	if !utf8.Valid(data) {
		return "", &errors.EncodingError{Source: StdinName}
	}
	return string(data), nil
}

func readFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.WrapUserError(err,
				fmt.Sprintf("file not found: %s", path),
				"Check the file path is correct",
			)
		}
		if os.IsPermission(err) {
			return "", errors.WrapUserError(err,
				fmt.Sprintf("permission denied: %s", path),
				fmt.Sprintf("Check file permissions with: ls -l %s", path),
			)
		}
		return "", errors.WrapUserError(err, fmt.Sprintf("cannot access file: %s", path), "")
	}
	if !info.Mode().IsRegular() {
		return "", errors.NewUserError(
			fmt.Sprintf("not a regular file: %s", path),
			"Provide a path to a text file containing Markdown",
		)
	}
	if info.Size() > MaxInputSize {
		return "", errors.NewUserError(
			fmt.Sprintf("file too large: %.2f MB (max %d MB)", float64(info.Size())/(1<<20), MaxInputSize>>20),
			"",
		)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapUserError(err, fmt.Sprintf("failed to read file: %s", path), "")
	}
	if !utf8.Valid(data) {
		return "", &errors.EncodingError{Source: path}
	}
	return string(data), nil
}
