// Package validate implements the single-file validation wrapper: read one
// file, decode it, and turn the outcome into a process exit code that the
// conformance runner can consume.
package validate

import (
	"fmt"
	"io"
	"os"
)

// Exit codes of the wrapper
const (
	ExitValid   = 0
	ExitInvalid = 1
)

// File reads path and decodes its contents with dec. It returns ExitValid
// only when decoding returned no error and did not panic. Diagnostics are
// written to out.
func File(path string, dec Decoder, out io.Writer) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return ExitInvalid
	}
	return Text(string(data), dec, out)
}

// Text decodes text with dec and reports the outcome as an exit code
func Text(text string, dec Decoder, out io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(out, "exception")
			code = ExitInvalid
		}
	}()

	if _, err := dec.Decode(text); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return ExitInvalid
	}
	return ExitValid
}
