package sources_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	. "github.com/crewmind/crewrecall/knowledge/sources"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SourceRouter", func() {
	It("should convert a web page to plain text", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html><body><h1>Mission Notes</h1><p>Stay hydrated.</p></body></html>")
		}))
		defer server.Close()

		content, err := SourceRouter(server.URL, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(content).To(ContainSubstring("Mission Notes"))
		Expect(content).To(ContainSubstring("Stay hydrated."))
		Expect(content).ToNot(ContainSubstring("<html>"))
	})

	It("should crawl every page of a sitemap", func() {
		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%s/one</loc></url>
  <url><loc>%s/two</loc></url>
</urlset>`, server.URL, server.URL)
		})
		mux.HandleFunc("/one", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html><body>page one</body></html>")
		})
		mux.HandleFunc("/two", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html><body>page two</body></html>")
		})

		content, err := SourceRouter(server.URL+"/sitemap.xml", nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(content).To(ContainSubstring("page one"))
		Expect(content).To(ContainSubstring("page two"))
	})

	It("should route .git URLs to the git fetcher", func() {
		// No repository behind the URL, but the clone attempt proves the routing
		_, err := SourceRouter("http://localhost:1/repo.git", &Config{})
		Expect(err).To(HaveOccurred())
	})

	It("should reject a malformed private key before cloning", func() {
		_, err := SourceRouter("git@localhost:repo.git", &Config{PrivateKey: "not base64!"})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("base64"))
	})

	It("should fail on unreachable hosts", func() {
		_, err := SourceRouter("http://localhost:1/page", nil)
		Expect(err).To(HaveOccurred())
	})
})
