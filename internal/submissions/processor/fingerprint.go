package processor

import (
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	urlFingerprintPrefix  = "url:"
	fileFingerprintPrefix = "blake2b:"
)

// NormalizeURL reduces a post URL to host and path so the same post submitted with a
// different scheme, www/m prefix, tracking query or trailing slash compares equal.
// YouTube ids are pulled out of watch, shorts and youtu.be links.
func NormalizeURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")
	if host == "" || !strings.Contains(host, ".") {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	segments := splitPath(parsed.Path)

	switch {
	case host == "youtu.be" && len(segments) >= 1:
		return "youtube.com/watch/" + segments[0], nil
	case host == "youtube.com":
		if v := strings.TrimSpace(parsed.Query().Get("v")); v != "" {
			return "youtube.com/watch/" + v, nil
		}
		if len(segments) >= 2 && segments[0] == "shorts" {
			return "youtube.com/watch/" + segments[1], nil
		}
	case host == "twitter.com":
		host = "x.com"
	}

	if len(segments) == 0 {
		return "", fmt.Errorf("%w: link must point at a post", ErrInvalidURL)
	}
	return host + "/" + strings.Join(segments, "/"), nil
}

// URLFingerprint is the dedup key of a link submission
func URLFingerprint(raw string) (string, error) {
	normalized, err := NormalizeURL(raw)
	if err != nil {
		return "", err
	}
	return urlFingerprintPrefix + normalized, nil
}

// ContentFingerprint hashes the full byte stream of an upload. The file name plays no
// part, so a renamed re-upload still collides.
func ContentFingerprint(r io.Reader) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to hash upload: %w", err)
	}
	return fileFingerprintPrefix + hex.EncodeToString(h.Sum(nil)), nil
}

func splitPath(rawPath string) []string {
	parts := strings.Split(strings.Trim(rawPath, "/"), "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
