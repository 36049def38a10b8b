package main

import (
	"os"
	"strconv"

	"github.com/crewmind/crewrecall/assistant"
	"github.com/crewmind/crewrecall/knowledge"
	"github.com/joho/godotenv"
	"github.com/mudler/xlog"
	"github.com/sashabaranov/go-openai"
)

const version = "0.1.0"

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	godotenv.Load()

	listenAddress := envOr("LISTEN_ADDRESS", ":8080")
	model := envOr("ASSISTANT_MODEL", "gpt-4o")

	maxChunkSize := knowledge.DefaultMaxChunkSize
	if v, err := strconv.Atoi(os.Getenv("MAX_CHUNK_SIZE")); err == nil && v > 0 {
		maxChunkSize = v
	}

	store := knowledge.NewStore(knowledge.SeedItems())

	if knowledgeFile := os.Getenv("KNOWLEDGE_FILE"); knowledgeFile != "" {
		items, err := knowledge.LoadSeedFile(knowledgeFile)
		if err != nil {
			xlog.Error("Failed to load knowledge file", "file", knowledgeFile, "error", err)
			os.Exit(1)
		}
		for _, item := range items {
			if err := store.AddItem(item.Category, item.Subcategory, item.Title, item.Content, item.Keywords, item.Priority); err != nil {
				xlog.Error("Failed to append knowledge file item", "title", item.Title, "error", err)
				os.Exit(1)
			}
		}
		xlog.Info("Extended knowledge base from file", "file", knowledgeFile, "items", len(items))
	}

	var maitri *assistant.Assistant
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config := openai.DefaultConfig(apiKey)
		if baseURL := os.Getenv("OPENAI_API_BASE_URL"); baseURL != "" {
			config.BaseURL = baseURL
		}
		maitri = assistant.New(openai.NewClientWithConfig(config), model, store)
	} else {
		xlog.Warn("OPENAI_API_KEY not set, chat endpoint disabled")
	}

	xlog.Info("Starting CrewRecall", "address", listenAddress, "items", store.Count())
	startAPI(listenAddress, store, maitri, maxChunkSize)
}
