// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import "net/url"

// toolID identifies this client to the Entrez service.
const toolID = "ncbi-acc-download"

// BuildParams assembles the efetch query for one accession. The accession is
// passed through verbatim; the molecule kind picks the database and return
// type (nucleotide records as GenBank flat files with contig parts expanded,
// proteins as FASTA). API key and email ride along only when configured.
func BuildParams(id string, cfg *Config) url.Values {
	params := url.Values{}
	params.Set("tool", toolID)
	params.Set("retmode", "text")
	params.Set("id", id)

	switch cfg.molecule {
	case MoleculeProtein:
		params.Set("rettype", "fasta")
		params.Set("db", "protein")
	default:
		params.Set("rettype", "gbwithparts")
		params.Set("db", "nucleotide")
	}

	if cfg.apiKey != "" {
		params.Set("api_key", cfg.apiKey)
	}
	if cfg.email != "" {
		params.Set("email", cfg.email)
	}
	return params
}
