// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package seqio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// fastaReader streams FASTA entries: a '>' header line followed by sequence
// lines that are concatenated until the next header.
type fastaReader struct {
	sc *bufio.Scanner

	// header holds the next record's header line once the current record's
	// sequence scan runs into it.
	header string
}

func newFastaReader(r io.Reader) *fastaReader {
	sc := bufio.NewScanner(r)
	// Single-line sequences can be long; give the scanner room.
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return &fastaReader{sc: sc}
}

func (r *fastaReader) Read() (*Record, error) {
	header := r.header
	r.header = ""

	for header == "" {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return nil, fmt.Errorf("fasta scan: %w", err)
			}
			return nil, io.EOF
		}
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		if line[0] != '>' {
			return nil, fmt.Errorf("fasta: expected '>', got %q", line[0])
		}
		header = line
	}

	rec := &Record{}
	head := strings.TrimSpace(header[1:])
	if i := strings.IndexAny(head, " \t"); i >= 0 {
		rec.ID = head[:i]
		rec.Description = strings.TrimSpace(head[i+1:])
	} else {
		rec.ID = head
	}

	for r.sc.Scan() {
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			r.header = line
			return rec, nil
		}
		rec.Seq = append(rec.Seq, line...)
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	return rec, nil
}
