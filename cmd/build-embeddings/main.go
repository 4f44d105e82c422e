package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"rules-embed/internal/config"
	"rules-embed/internal/domain"
	"rules-embed/internal/embedding/openai"
	"rules-embed/internal/embedding/tfidf"
	"rules-embed/internal/service"
	"rules-embed/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath string
		plain   bool
	)
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file (defaults apply if absent)")
	flag.BoolVar(&plain, "plain", false, "Log progress line by line instead of drawing a progress bar")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var emb domain.Embedder
	switch cfg.Embedder.Type {
	case "openai":
		emb = openai.NewClient(openai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
			Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
		})
	case "tfidf":
		emb = tfidf.NewEmbedder()
	default:
		log.Fatalf("unknown embedder: %s", cfg.Embedder.Type)
	}

	if plain {
		runPlain(cfg, emb)
		return
	}
	runTUI(cfg, emb)
}

func runPlain(cfg *config.AppConfig, emb domain.Embedder) {
	builder := service.NewBuilder(emb, cfg.Embedder.BatchSize, func(done, total int) {
		fmt.Printf("Encoded %d/%d\n", done, total)
	})
	records, err := builder.SegmentFile(cfg.RulesFile)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println("Parsed rules:", len(records))
	fmt.Println("Loading model:", modelName(cfg))
	fmt.Println("Computing embeddings...")
	embedded, err := builder.EmbedAll(records)
	if err != nil {
		log.Fatalf("embedding failed: %v", err)
	}
	if err := builder.Save(cfg.OutputFile, embedded); err != nil {
		log.Fatalf("failed to write %s: %v", cfg.OutputFile, err)
	}
	fmt.Println("Saved embeddings to:", cfg.OutputFile)
}

func runTUI(cfg *config.AppConfig, emb domain.Embedder) {
	p := tea.NewProgram(tui.New(modelName(cfg)))
	builder := service.NewBuilder(emb, cfg.Embedder.BatchSize, func(done, total int) {
		p.Send(tui.ProgressMsg{Done: done, Total: total})
	})
	go func() {
		records, err := builder.SegmentFile(cfg.RulesFile)
		if err != nil {
			p.Send(tui.FailedMsg{Err: err})
			return
		}
		p.Send(tui.ParsedMsg{Count: len(records)})
		embedded, err := builder.EmbedAll(records)
		if err != nil {
			p.Send(tui.FailedMsg{Err: err})
			return
		}
		if err := builder.Save(cfg.OutputFile, embedded); err != nil {
			p.Send(tui.FailedMsg{Err: err})
			return
		}
		p.Send(tui.SavedMsg{Path: cfg.OutputFile, Count: len(embedded)})
	}()
	final, err := p.Run()
	if err != nil {
		log.Fatal(err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		log.Fatalf("%v", m.Err())
	}
}

func modelName(cfg *config.AppConfig) string {
	if cfg.Embedder.Type == "tfidf" {
		return "tfidf"
	}
	return cfg.Embedder.OpenAI.Model
}
