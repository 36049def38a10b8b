package main

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/crewmind/crewrecall/assistant"
	"github.com/crewmind/crewrecall/knowledge"
	"github.com/crewmind/crewrecall/knowledge/sources"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func startAPI(listenAddress string, store *knowledge.Store, maitri *assistant.Assistant, maxChunkSize int) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/", serviceInfo(store))

	e.POST("/api/search", search(store))
	e.POST("/api/context", queryContext(store))
	e.GET("/api/knowledge", listKnowledge(store))
	e.POST("/api/knowledge", addKnowledge(store))
	e.POST("/api/knowledge/import", importFile(store, maxChunkSize))
	e.POST("/api/knowledge/sources", importSource(store, maxChunkSize))
	e.POST("/api/chat", chat(maitri))
	e.GET("/api/conversation", conversation(maitri))

	e.Logger.Fatal(e.Start(listenAddress))
}

func errorMessage(message string) map[string]string {
	return map[string]string{"error": message}
}

func serviceInfo(store *knowledge.Store) func(c echo.Context) error {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":    "crewrecall",
			"version": version,
			"items":   store.Count(),
		})
	}
}

func search(store *knowledge.Store) func(c echo.Context) error {
	return func(c echo.Context) error {
		type request struct {
			Query      string `json:"query"`
			MaxResults int    `json:"max_results"`
		}

		r := new(request)
		if err := c.Bind(r); err != nil {
			return c.JSON(http.StatusBadRequest, errorMessage("Invalid request"))
		}

		if r.MaxResults == 0 {
			r.MaxResults = knowledge.DefaultMaxResults
		}

		return c.JSON(http.StatusOK, store.SearchScored(r.Query, r.MaxResults))
	}
}

func queryContext(store *knowledge.Store) func(c echo.Context) error {
	return func(c echo.Context) error {
		type request struct {
			Query string `json:"query"`
		}

		r := new(request)
		if err := c.Bind(r); err != nil {
			return c.JSON(http.StatusBadRequest, errorMessage("Invalid request"))
		}

		return c.JSON(http.StatusOK, map[string]string{"context": store.ContextForPrompt(r.Query)})
	}
}

func listKnowledge(store *knowledge.Store) func(c echo.Context) error {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, store.Items())
	}
}

func addKnowledge(store *knowledge.Store) func(c echo.Context) error {
	return func(c echo.Context) error {
		r := new(knowledge.ContextItem)
		if err := c.Bind(r); err != nil {
			return c.JSON(http.StatusBadRequest, errorMessage("Invalid request"))
		}

		if r.Priority == 0 {
			r.Priority = knowledge.DefaultPriority
		}

		if err := store.AddItem(r.Category, r.Subcategory, r.Title, r.Content, r.Keywords, r.Priority); err != nil {
			return c.JSON(http.StatusBadRequest, errorMessage(err.Error()))
		}

		return c.JSON(http.StatusCreated, r)
	}
}

func importMetaFromForm(c echo.Context) knowledge.ImportMeta {
	meta := knowledge.ImportMeta{
		Category:    c.FormValue("category"),
		Subcategory: c.FormValue("subcategory"),
		Title:       c.FormValue("title"),
		Priority:    knowledge.DefaultPriority,
	}
	if keywords := c.FormValue("keywords"); keywords != "" {
		for _, k := range strings.Split(keywords, ",") {
			meta.Keywords = append(meta.Keywords, strings.TrimSpace(k))
		}
	}
	if p, err := strconv.Atoi(c.FormValue("priority")); err == nil {
		meta.Priority = p
	}
	return meta
}

// importFile handles multipart document uploads (.txt, .md, .pdf)
func importFile(store *knowledge.Store, maxChunkSize int) func(c echo.Context) error {
	return func(c echo.Context) error {
		file, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorMessage("Failed to read file: "+err.Error()))
		}

		f, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorMessage("Failed to open file: "+err.Error()))
		}
		defer f.Close()

		tempDir, err := os.MkdirTemp("", "crewrecall-import-*")
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorMessage("Failed to create temp dir"))
		}
		defer os.RemoveAll(tempDir)

		filePath := filepath.Join(tempDir, filepath.Base(file.Filename))
		out, err := os.Create(filePath)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorMessage("Failed to create file"))
		}
		defer out.Close()

		if _, err := io.Copy(out, f); err != nil {
			return c.JSON(http.StatusInternalServerError, errorMessage("Failed to copy file"))
		}

		content, err := sources.ExtractDocument(filePath)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorMessage("Failed to extract content: "+err.Error()))
		}

		meta := importMetaFromForm(c)
		if meta.Title == "" {
			meta.Title = file.Filename
		}

		added, err := knowledge.ImportContent(store, content, meta, maxChunkSize)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorMessage("Failed to import content: "+err.Error()))
		}

		return c.JSON(http.StatusCreated, map[string]int{"added": added})
	}
}

// importSource downloads a URL (web page, sitemap or git repository) and
// appends its content as knowledge items
func importSource(store *knowledge.Store, maxChunkSize int) func(c echo.Context) error {
	return func(c echo.Context) error {
		type request struct {
			URL         string   `json:"url"`
			Category    string   `json:"category"`
			Subcategory string   `json:"subcategory"`
			Title       string   `json:"title"`
			Keywords    []string `json:"keywords"`
			Priority    int      `json:"priority"`
			PrivateKey  string   `json:"private_key,omitempty"`
		}

		r := new(request)
		if err := c.Bind(r); err != nil {
			return c.JSON(http.StatusBadRequest, errorMessage("Invalid request"))
		}
		if r.URL == "" {
			return c.JSON(http.StatusBadRequest, errorMessage("URL is required"))
		}

		content, err := sources.SourceRouter(r.URL, &sources.Config{PrivateKey: r.PrivateKey})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorMessage("Failed to fetch source: "+err.Error()))
		}

		meta := knowledge.ImportMeta{
			Category:    r.Category,
			Subcategory: r.Subcategory,
			Title:       r.Title,
			Keywords:    r.Keywords,
			Priority:    r.Priority,
		}
		if meta.Title == "" {
			meta.Title = r.URL
		}
		if meta.Priority == 0 {
			meta.Priority = knowledge.DefaultPriority
		}

		added, err := knowledge.ImportContent(store, content, meta, maxChunkSize)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorMessage("Failed to import content: "+err.Error()))
		}

		return c.JSON(http.StatusCreated, map[string]int{"added": added})
	}
}

func chat(maitri *assistant.Assistant) func(c echo.Context) error {
	return func(c echo.Context) error {
		if maitri == nil {
			return c.JSON(http.StatusServiceUnavailable, errorMessage("Assistant is not configured"))
		}

		type request struct {
			Input     string               `json:"input"`
			Sentiment *assistant.Sentiment `json:"sentiment,omitempty"`
		}

		r := new(request)
		if err := c.Bind(r); err != nil {
			return c.JSON(http.StatusBadRequest, errorMessage("Invalid request"))
		}
		if r.Input == "" {
			return c.JSON(http.StatusBadRequest, errorMessage("Input is required"))
		}

		turn, err := maitri.Reply(c.Request().Context(), r.Input, r.Sentiment)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorMessage("Failed to generate reply: "+err.Error()))
		}

		return c.JSON(http.StatusOK, turn)
	}
}

func conversation(maitri *assistant.Assistant) func(c echo.Context) error {
	return func(c echo.Context) error {
		if maitri == nil {
			return c.JSON(http.StatusServiceUnavailable, errorMessage("Assistant is not configured"))
		}
		return c.JSON(http.StatusOK, maitri.Conversation().Turns())
	}
}
