package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// errNotFound is returned by get when the service has nothing for the
// requested artifact. Callers turn it into an empty result.
var errNotFound = errors.New("artifact not found")

// maxResponseSize bounds how much of a response body is read.
const maxResponseSize = 8 << 20

func get(ctx context.Context, client *http.Client, rawURL, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", accept)

	logger.Debugf("[search] GET %s", rawURL)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request to %s failed: %s", rawURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}
	return body, nil
}

// parsePattern splits a "groupId:artifactId:" query into its coordinates.
func parsePattern(pattern string) (string, string, error) {
	parts := strings.Split(strings.TrimSpace(pattern), ":")
	if len(parts) < 2 { //nolint:mnd // groupId + artifactId
		return "", "", fmt.Errorf("invalid search pattern %q: expected groupId:artifactId:", pattern)
	}
	groupID := strings.TrimSpace(parts[0])
	artifactID := strings.TrimSpace(parts[1])
	if groupID == "" || artifactID == "" {
		return "", "", fmt.Errorf("invalid search pattern %q: expected groupId:artifactId:", pattern)
	}
	return groupID, artifactID, nil
}

func trimBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}
