package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"restaurant-bot/cart"
	"restaurant-bot/checkout"
	"restaurant-bot/client"
	"restaurant-bot/models"
	"restaurant-bot/pricing"
	"restaurant-bot/reservations"
	"restaurant-bot/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// terminal bundles what the client commands need: the API, the persisted
// session and somewhere to print
type terminal struct {
	api     *client.Client
	session *cart.Session
	log     *zap.SugaredLogger
	out     io.Writer
}

func openTerminal(g *globals, out io.Writer) (*terminal, error) {
	cfg, log, err := g.load()
	if err != nil {
		return nil, err
	}
	session, err := cart.Open(cart.NewFileKV(cfg.Client.StatePath))
	if err != nil {
		return nil, err
	}
	return &terminal{
		api:     client.New(cfg.Client.APIURL, cfg.Client.Timeout, nil),
		session: session,
		log:     log,
		out:     out,
	}, nil
}

// clientCmd wires a RunE that opens the terminal before calling fn
func clientCmd(g *globals, cmd *cobra.Command, fn func(ctx context.Context, t *terminal, args []string) error) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		t, err := openTerminal(g, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer func() { _ = t.log.Sync() }()
		return fn(cmd.Context(), t, args)
	}
	return cmd
}

func restaurantsCmd(g *globals) *cobra.Command {
	var filter store.RestaurantFilter
	cmd := clientCmd(g, &cobra.Command{
		Use:   "restaurants",
		Short: "List restaurants",
		Args:  cobra.NoArgs,
	}, func(ctx context.Context, t *terminal, _ []string) error {
		restaurants, err := t.api.Restaurants(ctx, filter)
		if err != nil {
			return err
		}
		if len(restaurants) == 0 {
			fmt.Fprintln(t.out, "No restaurants found")
			return nil
		}
		tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tCUISINE\tRATING\tPRICE\tHOURS")
		for _, r := range restaurants {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%s\t%s\n", r.ID, r.Name, r.Cuisine, r.Rating, r.PriceRange, r.Hours)
		}
		return tw.Flush()
	})
	cmd.Flags().StringVar(&filter.Search, "search", "", "Match name, address or description")
	cmd.Flags().StringVar(&filter.Cuisine, "cuisine", "", "Match cuisine")
	return cmd
}

func menuCmd(g *globals) *cobra.Command {
	var (
		category string
		vegOnly  bool
	)
	cmd := clientCmd(g, &cobra.Command{
		Use:   "menu <restaurant-id>",
		Short: "Show a restaurant's menu and select it for ordering",
		Args:  cobra.ExactArgs(1),
	}, func(ctx context.Context, t *terminal, args []string) error {
		restaurant, err := t.api.Restaurant(ctx, args[0])
		if err != nil {
			return err
		}
		items, err := t.api.Menu(ctx, store.MenuFilter{
			RestaurantID: restaurant.ID,
			Category:     models.Category(category),
			VegOnly:      vegOnly,
		})
		if err != nil {
			return err
		}

		if prev := t.session.Restaurant; prev != nil && prev.ID != restaurant.ID && !t.session.Cart.Empty() {
			fmt.Fprintf(t.out, "Note: your cart holds items from %s\n\n", prev.Name)
		}
		if err := t.session.Select(*restaurant); err != nil {
			return err
		}

		fmt.Fprintf(t.out, "%s (%s)\n%s\n\n", restaurant.Name, restaurant.Cuisine, restaurant.Address)
		if len(items) == 0 {
			fmt.Fprintln(t.out, "No menu items match")
			return nil
		}
		tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tVEG\tIN CART")
		for _, item := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				item.ID, item.Name, item.Category, rupees(item.Price), yesNo(item.IsVeg), inCart(t.session.Cart.QuantityOf(item.ID)))
		}
		return tw.Flush()
	})
	cmd.Flags().StringVar(&category, "category", "", "Only show one category")
	cmd.Flags().BoolVar(&vegOnly, "veg", false, "Only show vegetarian dishes")
	return cmd
}

func cartCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the cart for the selected restaurant",
	}

	var deliveryType string
	show := clientCmd(g, &cobra.Command{
		Use:   "show",
		Short: "Show cart contents and totals",
		Args:  cobra.NoArgs,
	}, func(_ context.Context, t *terminal, _ []string) error {
		return t.printCart(models.DeliveryType(deliveryType))
	})
	show.Flags().StringVar(&deliveryType, "delivery-type", string(models.DeliveryTypeDelivery), "delivery or pickup")

	add := clientCmd(g, &cobra.Command{
		Use:   "add <menu-item-id>...",
		Short: "Add one of each item to the cart",
		Args:  cobra.MinimumNArgs(1),
	}, func(ctx context.Context, t *terminal, args []string) error {
		if t.session.Restaurant == nil {
			return errors.New("no restaurant selected, run `menu <restaurant-id>` first")
		}
		items, err := t.api.Menu(ctx, store.MenuFilter{RestaurantID: t.session.Restaurant.ID})
		if err != nil {
			return err
		}
		menu := cart.Menu(items)
		for _, id := range args {
			if t.session.Cart.QuantityOf(id) == 0 {
				if _, ok := menu.Lookup(id); !ok {
					fmt.Fprintf(t.out, "Skipped %s: not on the %s menu\n", id, t.session.Restaurant.Name)
					continue
				}
			}
			if err := t.session.Add(menu, id); err != nil {
				return err
			}
		}
		return t.printCart(models.DeliveryTypeDelivery)
	})

	remove := clientCmd(g, &cobra.Command{
		Use:   "remove <menu-item-id>...",
		Short: "Remove one of each item from the cart",
		Args:  cobra.MinimumNArgs(1),
	}, func(_ context.Context, t *terminal, args []string) error {
		for _, id := range args {
			if err := t.session.Remove(id); err != nil {
				return err
			}
		}
		return t.printCart(models.DeliveryTypeDelivery)
	})

	clearCart := clientCmd(g, &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart and forget the selected restaurant",
		Args:  cobra.NoArgs,
	}, func(_ context.Context, t *terminal, _ []string) error {
		if err := t.session.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(t.out, "Cart cleared")
		return nil
	})

	cmd.AddCommand(show, add, remove, clearCart)
	return cmd
}

func checkoutCmd(g *globals) *cobra.Command {
	var (
		details     checkout.Details
		deliveryStr string
		paymentStr  string
		methodStr   string
		payment     checkout.Payment
	)
	cmd := clientCmd(g, &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart",
		Args:  cobra.NoArgs,
	}, func(ctx context.Context, t *terminal, _ []string) error {
		details.DeliveryType = models.DeliveryType(deliveryStr)
		payment.Type = models.PaymentType(paymentStr)
		payment.Method = checkout.Method(methodStr)

		flow := checkout.NewFlow(t.api, t.session, t.log)
		quote := flow.Quote(details.DeliveryType)
		if payment.Type == models.PaymentOnline {
			fmt.Fprintf(t.out, "Processing payment of %s...\n", rupees(quote.Total))
		}

		order, err := flow.PlaceOrder(ctx, details, payment)
		if err != nil {
			return err
		}
		fmt.Fprintf(t.out, "Order placed successfully!\nOrder ID: %s\nStatus: %s\nTotal: %s\n",
			order.ID, order.Status, rupees(order.TotalAmount))
		return nil
	})
	f := cmd.Flags()
	f.StringVar(&details.CustomerName, "name", "", "Customer name")
	f.StringVar(&details.Email, "email", "", "Email address")
	f.StringVar(&details.Phone, "phone", "", "10-digit phone number")
	f.StringVar(&details.Address, "address", "", "Delivery address (required for delivery)")
	f.StringVar(&deliveryStr, "delivery-type", string(models.DeliveryTypeDelivery), "delivery or pickup")
	f.StringVar(&paymentStr, "payment", string(models.PaymentCashOnDelivery), "cod or online")
	f.StringVar(&methodStr, "method", "", "Online method: upi, card or netbanking")
	f.StringVar(&payment.UPIID, "upi-id", "", "UPI ID, e.g. name@bank")
	f.StringVar(&payment.CardNumber, "card-number", "", "16-digit card number")
	f.StringVar(&payment.CardExpiry, "card-expiry", "", "Card expiry as MM/YY")
	f.StringVar(&payment.CardCVV, "card-cvv", "", "3-digit CVV")
	f.StringVar(&payment.Bank, "bank", "", "Bank for net banking: "+strings.Join(checkout.Banks, ", "))
	return cmd
}

func reserveCmd(g *globals) *cobra.Command {
	var req reservations.Request
	cmd := clientCmd(g, &cobra.Command{
		Use:   "reserve",
		Short: "Book a table",
		Args:  cobra.NoArgs,
	}, func(ctx context.Context, t *terminal, _ []string) error {
		if req.RestaurantID == "" && t.session.Restaurant != nil {
			req.RestaurantID = t.session.Restaurant.ID
		}
		reservation, err := checkout.NewFlow(t.api, t.session, t.log).Reserve(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(t.out, "Reservation confirmed!\nReservation ID: %s\nDate: %s at %s\nGuests: %d\n",
			reservation.ID, reservation.Date.Local().Format(models.DateLayout), reservation.Time, reservation.Guests)
		return nil
	})
	f := cmd.Flags()
	f.StringVar(&req.RestaurantID, "restaurant", "", "Restaurant ID (defaults to the selected restaurant)")
	f.StringVar(&req.CustomerName, "name", "", "Customer name")
	f.StringVar(&req.Email, "email", "", "Email address")
	f.StringVar(&req.Phone, "phone", "", "10-digit phone number")
	f.StringVar(&req.Date, "date", "", "Date as YYYY-MM-DD")
	f.StringVar(&req.Time, "time", "", "Time, e.g. 19:30")
	f.IntVar(&req.Guests, "guests", 2, "Number of guests")
	f.StringVar(&req.SpecialRequests, "requests", "", "Special requests")
	return cmd
}

func ordersCmd(g *globals) *cobra.Command {
	return clientCmd(g, &cobra.Command{
		Use:   "orders <email>",
		Short: "List a customer's orders, newest first",
		Args:  cobra.ExactArgs(1),
	}, func(ctx context.Context, t *terminal, args []string) error {
		list, err := t.api.OrdersByEmail(ctx, args[0])
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(t.out, "No orders found")
			return nil
		}
		tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tRESTAURANT\tITEMS\tTOTAL\tTYPE\tSTATUS\tPLACED")
		for _, o := range list {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
				o.ID, restaurantName(o.Restaurant), len(o.Items), rupees(o.TotalAmount), o.DeliveryType, o.Status,
				o.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		return tw.Flush()
	})
}

func reservationsCmd(g *globals) *cobra.Command {
	return clientCmd(g, &cobra.Command{
		Use:   "reservations <email>",
		Short: "List a customer's reservations, latest date first",
		Args:  cobra.ExactArgs(1),
	}, func(ctx context.Context, t *terminal, args []string) error {
		list, err := t.api.ReservationsByEmail(ctx, args[0])
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(t.out, "No reservations found")
			return nil
		}
		tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tRESTAURANT\tDATE\tTIME\tGUESTS")
		for _, r := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
				r.ID, restaurantName(r.Restaurant), r.Date.Local().Format(models.DateLayout), r.Time, r.Guests)
		}
		return tw.Flush()
	})
}

func chatCmd(g *globals) *cobra.Command {
	return clientCmd(g, &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the restaurant assistant",
		Args:  cobra.MinimumNArgs(1),
	}, func(ctx context.Context, t *terminal, args []string) error {
		reply, err := t.api.Chat(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(t.out, reply.Response)
		return nil
	})
}

func (t *terminal) printCart(deliveryType models.DeliveryType) error {
	c := &t.session.Cart
	if c.Empty() {
		fmt.Fprintln(t.out, "Your cart is empty")
		return nil
	}
	if r := t.session.Restaurant; r != nil {
		fmt.Fprintf(t.out, "Cart for %s\n", r.Name)
	}
	tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tITEM\tQTY\tPRICE\tAMOUNT")
	for _, l := range c.Lines {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", l.MenuItemID, l.Name, l.Quantity, rupees(l.Price), rupees(l.Price*int64(l.Quantity)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printQuote(t.out, c.ItemCount(), c.Quote(deliveryType))
	return nil
}

func printQuote(w io.Writer, count int, q pricing.Quote) {
	fmt.Fprintf(w, "\nItems:         %d\n", count)
	fmt.Fprintf(w, "Subtotal:      %s\n", rupees(q.Subtotal))
	fmt.Fprintf(w, "Delivery fee:  %s\n", rupees(q.DeliveryFee))
	fmt.Fprintf(w, "Tax:           %s\n", rupees(q.Tax))
	fmt.Fprintf(w, "Total:         %s\n", rupees(q.Total))
}

func rupees(amount int64) string {
	return fmt.Sprintf("₹%d", amount)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func inCart(qty int) string {
	if qty == 0 {
		return ""
	}
	return fmt.Sprintf("x%d", qty)
}

func restaurantName(ref *models.RestaurantRef) string {
	if ref == nil {
		return "-"
	}
	return ref.Name
}
