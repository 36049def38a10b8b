package sources

import (
	"strings"

	"github.com/mudler/xlog"
)

// Config carries per-source fetch options.
type Config struct {
	// PrivateKey is a base64-encoded SSH private key used when cloning
	// git URLs. Empty means anonymous access.
	PrivateKey string
}

// SourceRouter downloads the content behind a URL, picking the fetch
// strategy from the URL shape: sitemaps are crawled page by page, git
// repositories are shallow-cloned, everything else is fetched as a
// single web page.
func SourceRouter(url string, config *Config) (string, error) {
	if config == nil {
		config = &Config{}
	}

	xlog.Info("Downloading content from", "url", url)
	switch {
	case strings.HasSuffix(url, "sitemap.xml"):
		content, err := GetWebSitemapContent(url)
		if err != nil {
			return "", err
		}
		xlog.Info("Downloaded all content from sitemap", "url", url, "pages", len(content))
		return strings.Join(content, "\n"), nil
	case strings.HasSuffix(url, ".git"):
		return GetGitRepositoryContent(url, config.PrivateKey)
	}

	return GetWebPage(url)
}
