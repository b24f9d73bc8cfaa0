package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"storefront/cmd/storefront/browser"
	"storefront/cmd/storefront/clients"
	"storefront/cmd/storefront/config"
	"storefront/cmd/storefront/handlers"
	"storefront/cmd/storefront/logger"
	"storefront/cmd/storefront/routing"
	"storefront/cmd/storefront/session"
	db "storefront/cmd/storefront/storage"
	"storefront/cmd/storefront/user"
	"storefront/cmd/storefront/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := config.NewConfig()

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Shop order API and order history terminal client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Init(c)
		},
	}

	root.AddCommand(newServeCmd(c), newOrdersCmd(c), newLinkCmd(c))
	return root
}

func newServeCmd(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the orders API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(c)
		},
	}

	cmd.Flags().StringVarP(&c.Addr, "address", "a", c.Addr, "HTTP-server startup address and port")
	cmd.Flags().StringVarP(&c.DBConnection, "database", "d", c.DBConnection, "database connection address")
	cmd.Flags().StringVarP(&c.PaymentSystemAddress, "payments", "p", c.PaymentSystemAddress, "payment system address")
	return cmd
}

func runServe(c *config.Config) error {
	sugarLogger, err := logger.NewLogger()
	if err != nil {
		return err
	}

	if c.DBConnection == "" {
		return fmt.Errorf("set DATABASE_URI env variable")
	}

	s, err := db.NewStorage(c)
	if err != nil {
		return err
	}

	userService := user.NewUserService()
	paymentService := clients.NewPaymentClient(c.PaymentSystemAddress, sugarLogger)
	wp := handlers.NewWorkerPool(c.NumWorkers, c.MaxRequestsPerMin)
	ctrl := handlers.NewController(c, s, sugarLogger, userService, wp, paymentService)

	wp.Start(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.RunPaymentSweep(ctx)

	r := chi.NewRouter()
	routing.InitMiddleware(r, c, ctrl)
	routing.Routing(r, ctrl)

	sugarLogger.Infof("listening on %s", c.Addr)
	return http.ListenAndServe(c.Addr, r) //nolint:gosec // Use chi Timeout (see above)
}

func newOrdersCmd(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Show your order history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrders(c)
		},
	}

	cmd.Flags().StringVarP(&c.OrdersAPIAddress, "api", "r", c.OrdersAPIAddress, "orders API address")
	cmd.Flags().StringVarP(&c.SessionFile, "session", "s", c.SessionFile, "session file path")
	return cmd
}

func runOrders(c *config.Config) error {
	logPath := filepath.Join(filepath.Dir(c.SessionFile), "storefront.log")
	sugarLogger, err := logger.NewFileLogger(logPath)
	if err != nil {
		return err
	}

	store := session.NewStore(c.SessionFile, sugarLogger)

	// Eligibility gate: ineligible accounts never reach the view.
	if !store.Eligible() {
		fmt.Println(store.Fallback())
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 1)
	if err := store.Watch(ctx, changes); err != nil {
		sugarLogger.Errorf("session watch unavailable: %v", err)
		changes = nil
	}

	fetcher := clients.NewOrdersClient(c.OrdersAPIAddress, sugarLogger)
	nav := browser.Navigator{CatalogURL: c.CatalogURL}

	m := view.New(fetcher, store, nav, changes, sugarLogger)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newLinkCmd(c *config.Config) *cobra.Command {
	var eligible bool

	cmd := &cobra.Command{
		Use:   "link <client-id>",
		Short: "Link this installation to a shop client account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sugarLogger, err := logger.NewLogger()
			if err != nil {
				return err
			}

			store := session.NewStore(c.SessionFile, sugarLogger)
			if err := store.Save(&session.Profile{ClientID: args[0], Eligible: eligible}); err != nil {
				return err
			}

			fmt.Printf("linked client %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&c.SessionFile, "session", "s", c.SessionFile, "session file path")
	cmd.Flags().BoolVar(&eligible, "eligible", true, "mark the account as eligible for order history")
	return cmd
}
