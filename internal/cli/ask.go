package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/PhoneAdvisor/internal/advisor"
	"github.com/JonMunkholm/PhoneAdvisor/internal/config"
	"github.com/JonMunkholm/PhoneAdvisor/internal/store"
)

var askShowSQL bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the catalog, or start an interactive session",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		cfg := config.Load()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		st, err := store.Open(ctx, cfg.DSN, log)
		cancel()
		if err != nil {
			return err
		}
		defer st.Close()

		adv, err := buildAdvisor(cfg, st, log)
		if err != nil {
			return err
		}
		if adv == nil {
			return fmt.Errorf("LLM_API_KEY is required for ask")
		}

		if len(args) > 0 {
			question := strings.Join(args, " ")
			printAnswer(adv.Ask(cmd.Context(), question, ""))
			return nil
		}
		return interactive(cmd.Context(), adv)
	},
}

func interactive(ctx context.Context, adv *advisor.Advisor) error {
	fmt.Println("Phone Advisor - ask about Samsung phones (type 'exit' to quit)")

	conversationID := ""
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYour question: ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		question := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(question) {
		case "":
			continue
		case "exit", "quit", "q":
			fmt.Println("Goodbye!")
			return nil
		}

		result := adv.Ask(ctx, question, conversationID)
		conversationID = result.ConversationID
		printAnswer(result)
	}
}

func printAnswer(result advisor.Result) {
	if askShowSQL && result.SQLQuery != "" {
		fmt.Printf("\n[sql] %s\n", result.SQLQuery)
	}
	fmt.Printf("\n%s\n", result.Answer)
}

func init() {
	askCmd.Flags().BoolVar(&askShowSQL, "sql", false, "print the generated SQL query")
	rootCmd.AddCommand(askCmd)
}
