// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import "net/url"

// GenerateFilename names the output file for a download. A non-empty base is
// used as the stem; otherwise the accession id is. The extension follows the
// database the query targets: protein downloads are FASTA (.fa), everything
// else is GenBank (.gbk).
func GenerateFilename(params url.Values, base string) string {
	ext := ".gbk"
	if params.Get("db") == "protein" {
		ext = ".fa"
	}
	if base != "" {
		return base + ext
	}
	return params.Get("id") + ext
}
