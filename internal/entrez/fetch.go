// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// efetchBase is the Entrez efetch endpoint. Declared as a var so tests can
// substitute an httptest server.
var efetchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"

const userAgent = "ncbi-acc-download (https://github.com/pythseq/ncbi-acc-download)"

// GetStream issues the efetch request and returns the open response; the
// caller owns the body. Transport failures and non-OK statuses come back as
// *DownloadError with the body already drained and closed.
func GetStream(client *http.Client, params url.Values) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, efetchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &DownloadError{Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &DownloadError{Err: fmt.Errorf("HTTP request: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &DownloadError{Status: resp.StatusCode}
	}
	return resp, nil
}
