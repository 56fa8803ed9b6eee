// Package lists handles fetching the plaintext IP/CIDR list the gate is
// built from. The list is expected to contain one entry per line; entry
// order is preserved and reproduced verbatim in the generated blocks.
package lists

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mhazell/inspircd-auth-gate/internal/errors"
	"github.com/mhazell/inspircd-auth-gate/internal/log"
)

// Fetch downloads the IP list from url with the given timeout and returns
// its non-empty lines in input order.
//
// A transport failure (timeout, DNS, connection refused) is returned as a
// fetch error. A non-OK HTTP status is logged but not fatal: whatever body
// the server returned is still split and used, so a degraded run produces
// output instead of aborting.
func Fetch(url string, timeout time.Duration) ([]string, error) {
	log.Infof("Fetching IP list from URL: %s", url)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, errors.NewFetchError(fmt.Sprintf("failed to fetch IP list from %s", url), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewFetchError("failed to read IP list response", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Errorf("IP list request did not return OK status: %s", resp.Status)
		log.Errorf("%s", body)
	}

	entries := SplitLines(string(body))
	log.Debugf("Fetched %d list entries", len(entries))

	return entries, nil
}

// SplitLines splits body into lines, strips line-ending characters and
// drops empty lines. Entries are not validated as IP/CIDR values.
func SplitLines(body string) []string {
	var entries []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}
