package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/core/ports"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Place and track laundry orders",
}

type placeOrderInput struct {
	SellerID string  `validate:"required"`
	Items    []string
	Amount   float64 `validate:"gt=0"`
	Quantity int     `validate:"gt=0"`
}

var placeInput placeOrderInput

var orderPlaceCmd = &cobra.Command{
	Use:   "place",
	Short: "Place an order with a seller (students only)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := checkInput(placeInput); err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		sess, err := requireRole(ctx, a, domain.RoleStudent)
		if err != nil {
			return err
		}

		seller, err := a.userRepo.FindByID(ctx, placeInput.SellerID)
		if err != nil {
			return err
		}
		if !seller.IsSeller() {
			return fmt.Errorf("user %s is not a seller", seller.ID)
		}

		order, err := a.orders.Place(ctx, ports.PlaceOrderInput{
			StudentID:   sess.UserID,
			StudentName: sess.Name,
			SellerID:    seller.ID,
			SellerName:  seller.Name,
			Items:       placeInput.Items,
			Amount:      placeInput.Amount,
			Quantity:    placeInput.Quantity,
		})
		if err != nil {
			return err
		}

		cmd.Printf("Order %s placed with %s: %d item(s), $%.2f, status %s\n",
			order.ID, order.SellerName, order.Quantity, order.Amount, order.Status)
		return nil
	},
}

var (
	orderListStatus string
	orderListAll    bool
)

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders (yours by default, --all for everything)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		filter := ports.ListOrdersFilter{}
		if orderListStatus != "" {
			status, err := domain.ParseOrderStatus(orderListStatus)
			if err != nil {
				return err
			}
			filter.Status = status
		}

		if !orderListAll {
			sess, err := requireSession(ctx, a)
			if err != nil {
				return err
			}
			// Students see their order history, sellers their work queue.
			if sess.Role == domain.RoleSeller {
				filter.SellerID = sess.UserID
			} else {
				filter.StudentID = sess.UserID
			}
		}

		orders, err := a.orders.List(ctx, filter)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			cmd.Println("No orders.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		defer w.Flush()
		fmt.Fprintln(w, "ID\tSTUDENT\tSELLER\tITEMS\tAMOUNT\tSTATUS\tDATE")
		for _, o := range orders {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%.2f\t%s\t%s\n",
				o.ID, o.StudentName, o.SellerName, strings.Join(o.Items, ","),
				o.Amount, o.Status, o.Date.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var orderStatusCmd = &cobra.Command{
	Use:   "status <order-id> <Pending|In Progress|Completed>",
	Short: "Move an order to a new status (sellers only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		if _, err := requireRole(ctx, a, domain.RoleSeller); err != nil {
			return err
		}

		order, err := a.orders.UpdateStatus(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		cmd.Printf("Order %s is now %s\n", order.ID, order.Status)
		return nil
	},
}

func init() {
	f := orderPlaceCmd.Flags()
	f.StringVar(&placeInput.SellerID, "seller", "", "seller id (see `washify sellers`)")
	f.StringSliceVar(&placeInput.Items, "items", nil, "items, e.g. --items shirts,jeans")
	f.Float64Var(&placeInput.Amount, "amount", 0, "order total")
	f.IntVar(&placeInput.Quantity, "quantity", 0, "number of washes")

	orderListCmd.Flags().StringVar(&orderListStatus, "status", "", "filter by status")
	orderListCmd.Flags().BoolVar(&orderListAll, "all", false, "list every order regardless of session")

	orderCmd.AddCommand(orderPlaceCmd)
	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderStatusCmd)
}
