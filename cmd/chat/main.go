package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/littlemoneyschool/tutor/backend/internal/client"
	"github.com/littlemoneyschool/tutor/backend/internal/config"
	"github.com/littlemoneyschool/tutor/backend/internal/conversation"
	"github.com/littlemoneyschool/tutor/backend/internal/model/tutor"
	chatui "github.com/littlemoneyschool/tutor/backend/internal/ui/chat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "chat")
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	api := client.New(cfg.ServerURL, cfg.Timeout)

	profile := tutor.Default()
	fetchCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	if remote, err := api.FetchTutor(fetchCtx); err != nil {
		log.Printf("[chat] using built-in tutor profile: %v", err)
	} else {
		profile = remote
	}
	cancel()

	conv := conversation.New(api, profile.Welcome)
	model := chatui.New(conv, profile,
		chatui.WithContext(ctx),
		chatui.WithMarkdown(isatty.IsTerminal(os.Stdout.Fd())),
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	// OnChange may fire inside Update, so Send must not block the event loop.
	conv.OnChange(func(int) {
		go p.Send(chatui.ChangedMsg{})
	})

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Fatalf("chat UI error: %v", err)
	}
}
