package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/core/ports"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Per-order conversations between student and seller",
}

var chatOpenCmd = &cobra.Command{
	Use:   "open <order-id>",
	Short: "Open (or create) the conversation for an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		if _, err := requireSession(ctx, a); err != nil {
			return err
		}

		orders, err := a.orders.List(ctx, ports.ListOrdersFilter{})
		if err != nil {
			return err
		}
		var order *domain.Order
		for _, o := range orders {
			if o.ID == args[0] {
				order = o
				break
			}
		}
		if order == nil {
			return fmt.Errorf("order %s not found", args[0])
		}

		chat, err := a.chats.OpenForOrder(ctx, ports.OpenChatInput{
			OrderID:     order.ID,
			StudentID:   order.StudentID,
			SellerID:    order.SellerID,
			StudentName: order.StudentName,
			SellerName:  order.SellerName,
		})
		if err != nil {
			return err
		}

		cmd.Printf("Chat %s for order %s (%d message(s))\n", chat.ID, chat.OrderID, len(chat.Messages))
		return nil
	},
}

var chatListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your conversations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		sess, err := requireSession(ctx, a)
		if err != nil {
			return err
		}

		chats, err := a.chats.List(ctx)
		if err != nil {
			return err
		}

		shown := 0
		for _, c := range chats {
			mine := false
			for _, p := range c.Participants {
				if p == sess.UserID {
					mine = true
					break
				}
			}
			if !mine {
				continue
			}
			shown++
			preview := "(no messages yet)"
			if n := len(c.Messages); n > 0 {
				preview = c.Messages[n-1].Text
			}
			cmd.Printf("%s  order %s  %s  %s\n",
				c.ID, c.OrderID, c.LastUpdated.Format("2006-01-02 15:04"), preview)
		}
		if shown == 0 {
			cmd.Println("No conversations.")
		}
		return nil
	},
}

var chatSendCmd = &cobra.Command{
	Use:   "send <chat-id> <text>...",
	Short: "Send a message in a conversation",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		sess, err := requireSession(ctx, a)
		if err != nil {
			return err
		}

		msg, err := a.chats.SendMessage(ctx, args[0], sess.UserID, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		if msg == nil {
			cmd.Printf("No chat with id %s\n", args[0])
			return nil
		}

		cmd.Printf("Sent at %s\n", msg.Timestamp.Format("15:04:05"))
		return nil
	},
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history <order-id>",
	Short: "Show an order's conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		chat, err := a.chats.ForOrder(ctx, args[0])
		if err != nil {
			return err
		}
		if chat == nil {
			cmd.Println("No conversation for this order yet.")
			return nil
		}

		cmd.Printf("Chat %s, last activity %s\n", chat.ID, chat.LastUpdated.Format("2006-01-02 15:04"))
		for _, m := range chat.Messages {
			name := chat.ParticipantNames[m.SenderID]
			if name == "" {
				name = m.SenderID
			}
			cmd.Printf("[%s] %s: %s\n", m.Timestamp.Format("15:04"), name, m.Text)
		}
		return nil
	},
}

func init() {
	chatCmd.AddCommand(chatOpenCmd)
	chatCmd.AddCommand(chatListCmd)
	chatCmd.AddCommand(chatSendCmd)
	chatCmd.AddCommand(chatHistoryCmd)
}
