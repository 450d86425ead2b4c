package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

func newSendCmd() *cobra.Command {
	var (
		conversation string
		replyTo      string
		messageID    string
	)

	cmd := &cobra.Command{
		Use:   "send <text...>",
		Short: "Send one message through the command interpreter",
		Example: `  brainctl send "Met Sarah at the conference, she works on payments"
  brainctl send fix people
  brainctl send top all`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			engine, err := openEngine(ctx, cmd)
			if err != nil {
				return err
			}
			defer engine.Close()

			id := messageID
			if id == "" {
				id = "cli:" + uuid.NewString()
			}
			reply, err := engine.Assistant.Handle(ctx, domain.CapturedMessage{
				ID:             domain.MessageID(id),
				ConversationID: conversation,
				Text:           strings.Join(args, " "),
				CapturedAt:     time.Now().UTC(),
				ReplyTo:        domain.MessageID(replyTo),
			})
			if reply != "" {
				fmt.Fprintln(cmd.OutOrStdout(), reply)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&conversation, "conversation", "cli", "Conversation the message belongs to")
	cmd.Flags().StringVar(&replyTo, "reply-to", "", "Message id this message replies to")
	cmd.Flags().StringVar(&messageID, "id", "", "Message id (default random)")
	return cmd
}
