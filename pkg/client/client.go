package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/crewmind/crewrecall/assistant"
	"github.com/crewmind/crewrecall/knowledge"
)

// Client is a client for the CrewRecall API
type Client struct {
	BaseURL string
}

// NewClient creates a new CrewRecall API client
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
	}
}

// Search queries the knowledge base and returns scored matches
func (c *Client) Search(query string, maxResults int) ([]knowledge.ScoredItem, error) {
	url := fmt.Sprintf("%s/api/search", c.BaseURL)

	type request struct {
		Query      string `json:"query"`
		MaxResults int    `json:"max_results"`
	}

	payload, err := json.Marshal(request{Query: query, MaxResults: maxResults})
	if err != nil {
		return nil, err
	}

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("failed to search knowledge base")
	}

	var results []knowledge.ScoredItem
	err = json.NewDecoder(resp.Body).Decode(&results)
	if err != nil {
		return nil, err
	}

	return results, nil
}

// Context returns the formatted context block for a query
func (c *Client) Context(query string) (string, error) {
	url := fmt.Sprintf("%s/api/context", c.BaseURL)

	type request struct {
		Query string `json:"query"`
	}

	payload, err := json.Marshal(request{Query: query})
	if err != nil {
		return "", err
	}

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("failed to get context")
	}

	var result map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result["context"], nil
}

// Knowledge lists all items in insertion order
func (c *Client) Knowledge() ([]knowledge.ContextItem, error) {
	url := fmt.Sprintf("%s/api/knowledge", c.BaseURL)

	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("failed to list knowledge base")
	}

	var items []knowledge.ContextItem
	err = json.NewDecoder(resp.Body).Decode(&items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// AddItem appends a single context item
func (c *Client) AddItem(item knowledge.ContextItem) error {
	url := fmt.Sprintf("%s/api/knowledge", c.BaseURL)

	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return errors.New("failed to add knowledge item")
	}

	return nil
}

// ImportFile uploads a document and returns how many items were added
func (c *Client) ImportFile(filePath string, meta knowledge.ImportMeta) (int, error) {
	url := fmt.Sprintf("%s/api/knowledge/import", c.BaseURL)

	file, err := os.Open(filePath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return 0, err
	}

	_, err = io.Copy(part, file)
	if err != nil {
		return 0, err
	}

	writer.WriteField("category", meta.Category)
	writer.WriteField("subcategory", meta.Subcategory)
	writer.WriteField("title", meta.Title)
	writer.WriteField("keywords", strings.Join(meta.Keywords, ","))
	if meta.Priority != 0 {
		writer.WriteField("priority", strconv.Itoa(meta.Priority))
	}

	err = writer.Close()
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return 0, errors.New("failed to import file")
	}

	return decodeAdded(resp.Body)
}

// ImportSource downloads a URL server-side and returns how many items
// were added. privateKey optionally carries a base64-encoded SSH key
// for git URLs.
func (c *Client) ImportSource(sourceURL string, meta knowledge.ImportMeta, privateKey string) (int, error) {
	url := fmt.Sprintf("%s/api/knowledge/sources", c.BaseURL)

	type request struct {
		URL         string   `json:"url"`
		Category    string   `json:"category"`
		Subcategory string   `json:"subcategory"`
		Title       string   `json:"title"`
		Keywords    []string `json:"keywords"`
		Priority    int      `json:"priority"`
		PrivateKey  string   `json:"private_key,omitempty"`
	}

	payload, err := json.Marshal(request{
		URL:         sourceURL,
		Category:    meta.Category,
		Subcategory: meta.Subcategory,
		Title:       meta.Title,
		Keywords:    meta.Keywords,
		Priority:    meta.Priority,
		PrivateKey:  privateKey,
	})
	if err != nil {
		return 0, err
	}

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return 0, errors.New("failed to import source")
	}

	return decodeAdded(resp.Body)
}

// Chat sends an astronaut input and returns the completed turn
func (c *Client) Chat(input string, sentiment *assistant.Sentiment) (*assistant.Turn, error) {
	url := fmt.Sprintf("%s/api/chat", c.BaseURL)

	type request struct {
		Input     string               `json:"input"`
		Sentiment *assistant.Sentiment `json:"sentiment,omitempty"`
	}

	payload, err := json.Marshal(request{Input: input, Sentiment: sentiment})
	if err != nil {
		return nil, err
	}

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("failed to chat with assistant")
	}

	var turn assistant.Turn
	if err := json.NewDecoder(resp.Body).Decode(&turn); err != nil {
		return nil, err
	}

	return &turn, nil
}

// Conversation returns the recorded transcript
func (c *Client) Conversation() ([]assistant.Turn, error) {
	url := fmt.Sprintf("%s/api/conversation", c.BaseURL)

	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("failed to get conversation")
	}

	var turns []assistant.Turn
	err = json.NewDecoder(resp.Body).Decode(&turns)
	if err != nil {
		return nil, err
	}

	return turns, nil
}

func decodeAdded(r io.Reader) (int, error) {
	var result map[string]int
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return 0, err
	}
	return result["added"], nil
}
