package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JonMunkholm/PhoneAdvisor/internal/advisor"
	"github.com/JonMunkholm/PhoneAdvisor/internal/api"
	"github.com/JonMunkholm/PhoneAdvisor/internal/config"
	"github.com/JonMunkholm/PhoneAdvisor/internal/llm"
	"github.com/JonMunkholm/PhoneAdvisor/internal/registry"
	"github.com/JonMunkholm/PhoneAdvisor/internal/store"
)

const llmRetries = 2

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		cfg := config.Load()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		st, err := store.Open(ctx, cfg.DSN, log)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.EnsureSchema(ctx); err != nil {
			return err
		}

		adv, err := buildAdvisor(cfg, st, log)
		if err != nil {
			return err
		}

		srv := api.NewServer(st, adv, log)
		log.Info("listening", zap.String("addr", cfg.Addr))
		return http.ListenAndServe(cfg.Addr, srv.Router())
	},
}

// buildAdvisor wires the LLM provider, registry, and conversation store
// into an Advisor. Returns nil (not an error) when no LLM is
// configured, so the catalog endpoints still serve.
func buildAdvisor(cfg *config.Config, db advisor.Executor, log *zap.Logger) (*advisor.Advisor, error) {
	if cfg.LLMAPIKey == "" {
		log.Warn("LLM not configured (set LLM_API_KEY to enable /ask)")
		return nil, nil
	}

	provider, err := llm.NewProvider(llm.Config{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.LLMAPIKey,
		Model:    cfg.LLMModel,
		BaseURL:  cfg.LLMBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize LLM: %w", err)
	}
	log.Info("LLM provider initialized", zap.String("provider", provider.Name()))

	examples := registry.LoadExamples(cfg.FewShotPath, log)
	return advisor.New(
		llm.WithRetry(provider, llmRetries, log),
		db,
		examples,
		advisor.NewConversationStore(),
		log,
	), nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
