// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package seqio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// GenBank flat files are column-structured: top-level keywords start in
// column 0, keyword continuations are indented twelve spaces, feature table
// entries start in column 5 with qualifiers at column 21, and each record
// ends with a "//" line.
const gbContinuation = "            "

// genbankReader streams records from a GenBank flat file. Material before
// the first LOCUS line (release-file headers) is skipped.
type genbankReader struct {
	sc *bufio.Scanner
}

func newGenBankReader(r io.Reader) *genbankReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return &genbankReader{sc: sc}
}

func (r *genbankReader) Read() (*Record, error) {
	var locus string
	for {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return nil, fmt.Errorf("genbank scan: %w", err)
			}
			return nil, io.EOF
		}
		if line := r.sc.Text(); strings.HasPrefix(line, "LOCUS") {
			locus = line
			break
		}
	}

	rec := &Record{}
	fields := strings.Fields(locus)
	if len(fields) > 1 {
		rec.ID = fields[1]
	}
	for i := 2; i+1 < len(fields); i++ {
		if fields[i+1] == "bp" || fields[i+1] == "aa" {
			if n, err := strconv.Atoi(fields[i]); err == nil {
				rec.Length = n
			}
			break
		}
	}

	section := ""
	for r.sc.Scan() {
		line := r.sc.Text()
		if strings.HasPrefix(line, "//") {
			return rec, nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if line[0] != ' ' {
			// New top-level keyword.
			key, rest := splitKeyword(line)
			section = key
			switch key {
			case "DEFINITION":
				rec.Description = rest
			case "ACCESSION", "VERSION":
				if id := firstField(rest); id != "" {
					rec.ID = id
				}
			}
			continue
		}

		switch section {
		case "DEFINITION":
			if strings.HasPrefix(line, gbContinuation) {
				rec.Description += " " + strings.TrimSpace(line)
			}
		case "FEATURES":
			// Entries sit at column 5; deeper indents are qualifiers or
			// wrapped locations, which bounds checking tolerates as unparsed.
			if len(line) > 5 && strings.HasPrefix(line, "     ") && line[5] != ' ' {
				f := Feature{}
				parts := strings.Fields(line)
				f.Key = parts[0]
				if len(parts) > 1 {
					f.Location = parts[1]
					f.From, f.To = parseSpan(parts[1])
				}
				rec.Features = append(rec.Features, f)
			}
		case "ORIGIN":
			rec.Seq = appendSeqLine(rec.Seq, line)
		}
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("genbank scan: %w", err)
	}
	return nil, fmt.Errorf("genbank: record %s is truncated (no record terminator)", rec.ID)
}

// splitKeyword divides a top-level line into its keyword and remainder.
func splitKeyword(line string) (key, rest string) {
	if i := strings.IndexByte(line, ' '); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+1:])
	}
	return line, ""
}

func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}

// appendSeqLine strips the leading base counter and inter-block spacing from
// an ORIGIN line, keeping everything else so malformed bytes surface in
// consistency checks.
func appendSeqLine(seq []byte, line string) []byte {
	for i := 0; i < len(line); i++ {
		b := line[i]
		if b == ' ' || b == '\t' || (b >= '0' && b <= '9') {
			continue
		}
		seq = append(seq, b)
	}
	return seq
}

// parseSpan extracts the 1-based bounds of a plain location: "42", "3..97",
// or either form wrapped in complement(...). Compound locations (join,
// order) are left unparsed.
func parseSpan(loc string) (from, to int) {
	s := strings.TrimSpace(loc)
	if strings.HasPrefix(s, "complement(") && strings.HasSuffix(s, ")") {
		s = s[len("complement(") : len(s)-1]
	}
	if strings.ContainsAny(s, "(),^") {
		return 0, 0
	}
	parts := strings.SplitN(s, "..", 2)
	lo, err := strconv.Atoi(strings.Trim(parts[0], "<>"))
	if err != nil {
		return 0, 0
	}
	if len(parts) == 1 {
		return lo, lo
	}
	hi, err := strconv.Atoi(strings.Trim(parts[1], "<>"))
	if err != nil {
		return 0, 0
	}
	return lo, hi
}
