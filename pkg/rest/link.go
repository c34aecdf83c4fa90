package rest

import (
	"net/url"
	"strings"
)

// PageToken is the opaque set of query parameters extracted from a
// response's pagination link. Presence signals "more pages exist"; a page
// request carrying a token must send ONLY the token's own parameters, the
// server-side cursor is self-describing.
type PageToken url.Values

// NextPageToken extracts the rel="next" page token from a Link response
// header. A missing or unparseable link yields nil, terminating pagination
// rather than failing the sync.
func NextPageToken(linkHeader string) PageToken {
	for _, link := range strings.Split(linkHeader, ",") {
		segments := strings.Split(strings.TrimSpace(link), ";")
		if len(segments) < 2 {
			continue
		}

		target := strings.TrimSpace(segments[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}

		if !isNextRel(segments[1:]) {
			continue
		}

		parsed, err := url.Parse(strings.Trim(target, "<>"))
		if err != nil {
			return nil
		}

		query := parsed.Query()
		if len(query) == 0 {
			return nil
		}

		return PageToken(query)
	}

	return nil
}

func isNextRel(params []string) bool {
	for _, param := range params {
		key, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found {
			continue
		}

		if strings.TrimSpace(key) == "rel" && strings.Trim(strings.TrimSpace(value), `"`) == "next" {
			return true
		}
	}

	return false
}
