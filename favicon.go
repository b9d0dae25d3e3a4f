package linkvault

import (
	"net/url"
)

// FaviconServiceURL is the icon service used when a page declares no favicon.
const FaviconServiceURL = "https://www.google.com/s2/favicons"

// FaviconURL returns the icon service URL for the host of pageURL.
func FaviconURL(pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil || u.Hostname() == "" {
		return "", Errorf(EINVALID, "cannot derive favicon from %q", pageURL)
	}

	q := url.Values{}
	q.Set("sz", "64")
	q.Set("domain_url", u.Hostname())
	return FaviconServiceURL + "?" + q.Encode(), nil
}
