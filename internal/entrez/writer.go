// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// chunkSize is how much of the body is read and written at a time. The first
// chunk is also what the error-marker scan sees.
const chunkSize = 4096

// errorMarkers open the response body when the service reports a lookup
// failure as text instead of returning sequence data.
var errorMarkers = []string{
	"ID list is empty",
	"Failed to understand id",
	"Wrong Database",
	"rettype=text",
}

// ValidateAndWrite streams the response body into fh in chunks, scanning the
// first chunk for the known error markers. A marker match aborts with a
// *BadPatternError before the chunk is written; anything streamed earlier
// stays in the file. One progress marker is emitted per written chunk, plus
// a final newline once the stream ends.
func ValidateAndWrite(body io.Reader, fh io.Writer, id string, cfg *Config) error {
	buf := make([]byte, chunkSize)
	first := true
	for {
		n, err := body.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if first {
				first = false
				if pattern := matchErrorMarker(chunk); pattern != "" {
					return &BadPatternError{ID: id, Pattern: pattern}
				}
			}
			if _, werr := fh.Write(chunk); werr != nil {
				return fmt.Errorf("writing download: %w", werr)
			}
			cfg.emit(".")
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return &DownloadError{Err: fmt.Errorf("reading response body: %w", err)}
		}
	}
	cfg.emit("\n")
	return nil
}

func matchErrorMarker(chunk []byte) string {
	for _, marker := range errorMarkers {
		if bytes.HasPrefix(chunk, []byte(marker)) {
			return marker
		}
	}
	return ""
}

// validateFile re-opens a completed download and checks that it parses in
// the format the molecule implies. Mode loads accepts any file holding at
// least one record; mode checks additionally runs the parser's structural
// check on every record. The file stays on disk whatever the outcome.
func validateFile(path, id string, cfg *Config) error {
	fh, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reopening %s for validation: %w", path, err)
	}
	defer fh.Close()

	r, err := cfg.parser.NewReader(fh, cfg.molecule.Format())
	if err != nil {
		return &ValidationError{ID: id, Reason: "cannot construct reader", Err: err}
	}

	records := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &ValidationError{ID: id, Reason: fmt.Sprintf("%s does not parse", path), Err: err}
		}
		records++
		if cfg.validation == ValidationChecks {
			if err := cfg.parser.Check(rec); err != nil {
				return &ValidationError{ID: id, Reason: "record failed structural checks", Err: err}
			}
		}
	}
	if records == 0 {
		return &ValidationError{ID: id, Reason: fmt.Sprintf("%s contains no records", path)}
	}
	return nil
}
