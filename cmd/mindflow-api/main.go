package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	httpadapter "github.com/mindflow-labs/mindflow-agent/internal/adapters/http"
	"github.com/mindflow-labs/mindflow-agent/internal/adapters/llm"
	csvstore "github.com/mindflow-labs/mindflow-agent/internal/adapters/storage/csvstore"
	firestorestore "github.com/mindflow-labs/mindflow-agent/internal/adapters/storage/firestore"
	memstore "github.com/mindflow-labs/mindflow-agent/internal/adapters/storage/memory"
	"github.com/mindflow-labs/mindflow-agent/internal/app/conversation"
	journalapp "github.com/mindflow-labs/mindflow-agent/internal/app/journal"
	"github.com/mindflow-labs/mindflow-agent/internal/app/orchestrator"
	"github.com/mindflow-labs/mindflow-agent/internal/app/router"
	"github.com/mindflow-labs/mindflow-agent/internal/app/tools"
	"github.com/mindflow-labs/mindflow-agent/internal/config"
	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	llmClient, err := llm.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("error initializing LLM client: %v", err)
	}
	log.Printf("[LLM] Using %s provider", cfg.Provider)

	var (
		sessionStore domain.SessionStore
		messageStore domain.MessageStore
		journalStore domain.JournalStore
		profileStore domain.ProfileStore
	)

	switch cfg.Backend {
	case config.StorageFirestore:
		log.Printf("[STORE] Using Firestore storage (project=%s)", cfg.GCPProject)
		fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProject)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}

		// 1 store, implements 4 interfaces
		sessionStore = fsStore
		messageStore = fsStore
		journalStore = fsStore
		profileStore = fsStore

	case config.StorageCSV:
		log.Printf("[STORE] Using CSV storage (dir=%s)", cfg.DataDir)
		cs, err := csvstore.NewStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("error initializing CSV store: %v", err)
		}

		// Journal and plan live in CSV files; sessions stay in memory.
		journalStore = cs
		profileStore = cs
		sessionStore = memstore.NewSessionStore()
		messageStore = memstore.NewMessageStore()

	default:
		log.Println("[STORE] Using in-memory storage")
		sessionStore = memstore.NewSessionStore()
		messageStore = memstore.NewMessageStore()
		journalStore = memstore.NewJournalStore()
		profileStore = memstore.NewProfileStore()
	}

	registry := tools.NewRegistry(
		tools.NewJournalTool(journalStore),
		tools.NewPlanTool(profileStore),
	)

	rt := router.New(llmClient)
	rt.Strict = cfg.StrictRouting

	orch := orchestrator.New(llmClient, rt, registry)
	convSvc := conversation.NewService(orch, sessionStore, messageStore, profileStore)
	journalSvc := journalapp.NewService(journalStore, profileStore)

	handler := httpadapter.NewServer(convSvc, journalSvc)

	addr := ":" + cfg.Port
	log.Println("Mind Flow API listening on", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
