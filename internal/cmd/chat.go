package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mindflow-labs/mindflow-agent/internal/adapters/llm"
	memstore "github.com/mindflow-labs/mindflow-agent/internal/adapters/storage/memory"
	"github.com/mindflow-labs/mindflow-agent/internal/app/conversation"
	"github.com/mindflow-labs/mindflow-agent/internal/app/orchestrator"
	"github.com/mindflow-labs/mindflow-agent/internal/app/router"
	"github.com/mindflow-labs/mindflow-agent/internal/app/tools"
	"github.com/mindflow-labs/mindflow-agent/internal/config"
	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the coaching team from the terminal",
	Long: `Runs a local conversation loop against the configured provider without
starting the HTTP server. Storage is in-memory; nothing persists after exit.
Type 'quit' or 'exit' to leave.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	llmClient, err := llm.NewClient(ctx, cfg)
	if err != nil {
		return err
	}

	journalStore := memstore.NewJournalStore()
	profileStore := memstore.NewProfileStore()

	registry := tools.NewRegistry(
		tools.NewJournalTool(journalStore),
		tools.NewPlanTool(profileStore),
	)

	rt := router.New(llmClient)
	rt.Strict = cfg.StrictRouting

	orch := orchestrator.New(llmClient, rt, registry)
	svc := conversation.NewService(orch, memstore.NewSessionStore(), memstore.NewMessageStore(), profileStore)

	out, err := svc.StartSession(ctx, conversation.StartSessionInput{
		UserID: domain.UserID("local"),
		Title:  "terminal chat",
	})
	if err != nil {
		return err
	}

	fmt.Println("Mind Flow - terminal mode (provider:", cfg.Provider, ")")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("agent: %s\n\n", out.Greeting.Text)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			fmt.Println("bye")
			break
		}

		reply, err := svc.SendMessage(ctx, conversation.SendMessageInput{
			SessionID: out.Session.ID,
			UserID:    out.Session.UserID,
			Text:      input,
		})
		if err != nil {
			fmt.Printf("error: %v (your message is kept, try again)\n\n", err)
			continue
		}

		for _, m := range reply.Replies {
			switch m.Role {
			case domain.RoleTool:
				fmt.Printf("  [tool] %s\n", m.Text)
			default:
				if reply.Persona != "" {
					fmt.Printf("agent (%s): %s\n", reply.Persona, m.Text)
				} else {
					fmt.Printf("agent: %s\n", m.Text)
				}
			}
		}
		if len(reply.ToolsFired) > 0 {
			fmt.Printf("  * journal updated (%s)\n", strings.Join(reply.ToolsFired, ", "))
		}
		if reply.PersistFailure != nil {
			fmt.Printf("  ! saving failed: %v\n", reply.PersistFailure)
		}
		fmt.Println()
	}

	return scanner.Err()
}
