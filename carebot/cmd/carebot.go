// Command-line chat entrypoint: talks to the assistant directly, bypassing
// the HTTP server. Handy for trying out provider configs and the fallback
// tables.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"carebot/carebot/config"
	"carebot/carebot/controllers"
	"carebot/carebot/services/ai"
	"carebot/carebot/sources"
	"carebot/carebot/utils/logging"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	lang := ai.DefaultLanguage
	if len(os.Args) > 1 {
		lang = os.Args[1]
	}

	st := sources.Open(ctx, cfg)
	defer st.Close()

	settings := ai.LoadSettings(cfg.ProviderSettingsFile)
	assistant := ai.New(ctx, cfg, settings)
	chatCtrl := controllers.NewChatController(st, assistant)

	userID := 1
	if history, err := chatCtrl.History(ctx, userID); err == nil && len(history) > 0 {
		fmt.Printf("(%d earlier exchanges on record)\n", len(history))
	}
	logging.AppLogger.Info("CLI chat started",
		zap.String("provider", cfg.AIProvider), zap.String("lang", lang))

	fmt.Println("Dr. CareBot CLI. Describe your symptoms, or type 'exit' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			fmt.Println("Take care!")
			break
		}
		if line == "" {
			continue
		}

		response, err := assistant.Answer(context.Background(), line, userID, lang)
		if err != nil {
			response = ai.ApologyFor(lang, err.Error())
		}
		if _, err := st.SaveChat(context.Background(), userID, line, response); err != nil {
			logging.ErrorLogger.Error("chat save error", zap.Error(err))
		}
		fmt.Println()
		fmt.Println("carebot>", response)
		fmt.Println()
	}
}
