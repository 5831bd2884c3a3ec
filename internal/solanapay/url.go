// Package solanapay builds Solana Pay transaction request links and renders them as QR codes.
package solanapay

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
)

const scheme = "solana:"

// TransactionRequestLink returns the HTTPS link a wallet POSTs its account to. locationID 0
// omits the id parameter, as used by the mint endpoint.
func TransactionRequestLink(baseURL, endpoint string, reference solana.PublicKey, locationID uint32) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "https" && base.Scheme != "http" {
		return "", fmt.Errorf("base url %q must be http(s)", baseURL)
	}
	if reference.IsZero() {
		return "", errors.New("reference is required")
	}

	link := base.JoinPath(endpoint)
	query := url.Values{}
	query.Set("reference", reference.String())
	if locationID > 0 {
		query.Set("id", strconv.FormatUint(uint64(locationID), 10))
	}
	link.RawQuery = query.Encode()
	return link.String(), nil
}

// EncodeTransactionRequestURL wraps link into a solana: URL. Links with a query string are
// percent-encoded as a whole so that wallets do not mistake their parameters for label or message.
func EncodeTransactionRequestURL(link, label, message string) (string, error) {
	parsed, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("parse link: %w", err)
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return "", fmt.Errorf("link %q must be http(s)", link)
	}

	var pathname string
	if parsed.RawQuery != "" {
		pathname = encodeURIComponent(strings.Replace(link, "/?", "?", 1))
	} else {
		pathname = strings.TrimSuffix(link, "/")
	}

	params := url.Values{}
	if label != "" {
		params.Set("label", label)
	}
	if message != "" {
		params.Set("message", message)
	}
	if len(params) == 0 {
		return scheme + pathname, nil
	}
	return scheme + pathname + "?" + params.Encode(), nil
}

var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes s the way browsers do for a URI component.
func encodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}
