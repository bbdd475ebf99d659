// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"errors"
	"fmt"
)

// ErrParserUnavailable reports that extended validation was requested without
// supplying a sequence parser capability.
var ErrParserUnavailable = errors.New("sequence parser capability not available")

// DownloadError reports a failed transfer: the request could not be sent, the
// service answered with a non-OK status, or the body broke off mid-stream.
type DownloadError struct {
	// Status is the HTTP status code, zero when the failure happened before
	// a response arrived.
	Status int
	Err    error
}

func (e *DownloadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("download failed: HTTP %d", e.Status)
	}
	return fmt.Sprintf("download failed: %v", e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// BadPatternError reports that the response body opened with one of the
// service's known error markers instead of sequence data. Bytes streamed
// before the marker was seen remain in the output file.
type BadPatternError struct {
	// ID is the accession whose download produced the marker.
	ID      string
	Pattern string
}

func (e *BadPatternError) Error() string {
	return fmt.Sprintf("download of %s failed: response matches error pattern %q", e.ID, e.Pattern)
}

// ValidationError reports that a downloaded file failed extended validation.
// The file is left in place for inspection.
type ValidationError struct {
	ID     string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation of %s failed: %s: %v", e.ID, e.Reason, e.Err)
	}
	return fmt.Sprintf("validation of %s failed: %s", e.ID, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }
