// Package iojson provides utilities for reading and writing JSON from
// a command line interface perspective.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteWith marshals obj with indentation and writes it to w followed
// by a newline.
func WriteWith(w io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
