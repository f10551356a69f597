package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/kwonka/internal/adapters/console"
	"github.com/example/kwonka/internal/models"
	"github.com/example/kwonka/internal/wire"
)

// ChatCmd returns the chat command
func ChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the dialogue engine from this terminal",
		Long: `Open an interactive session as one actor. Notifications addressed to
other actors are printed in the same terminal with their channel header.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			roleFlag, _ := cmd.Flags().GetString("role")
			chatID, _ := cmd.Flags().GetInt64("chat")

			role := models.Role(roleFlag)
			if role != models.RoleCustomer && role != models.RoleBarista && role != models.RoleAdmin {
				return fmt.Errorf("unknown role %s (use customer, barista or admin)", roleFlag)
			}

			term := console.New(os.Stdout, os.Stdin)
			wire.SetTransport(term)
			svc := wire.DialogueService()
			ctx := NewContext()

			fmt.Printf("Chatting as %s:%d. Send /start to begin, Ctrl-D to leave.\n", role, chatID)
			for {
				line, err := term.ReadLine()
				if errors.Is(err, io.EOF) {
					fmt.Println("Bye.")
					return nil
				}
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				if line == "" {
					continue
				}

				prompt, err := svc.HandleMessage(ctx, role, chatID, line)
				if err != nil {
					return fmt.Errorf("dialogue failed: %w", err)
				}
				if err := term.Send(ctx, role, chatID, prompt); err != nil {
					return err
				}
			}
		},
	}
	cmd.Flags().String("role", "customer", "Actor role: customer, barista or admin")
	cmd.Flags().Int64("chat", 1, "Chat ID for the session")
	return cmd
}
