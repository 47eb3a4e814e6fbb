// Command confirm runs the reconciliation poller against a deployed server
// and reports whether a checkout session ended up paid.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"transfer-booking/internal/client/poller"
	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/pkg/config"
	"transfer-booking/internal/usecase/queries"

	"github.com/spf13/cobra"
)

var Version = "dev"

// exit codes
const (
	exitConfirmed = 0
	exitError     = 1
	exitTimedOut  = 2
	exitFailed    = 3
	exitCancelled = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	code := exitError
	rootCmd := &cobra.Command{
		Use:           "confirm <sessionId>",
		Short:         "Poll the session query endpoint until a checkout session is confirmed",
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := confirm(cmd, args[0])
			code = c
			return err
		},
	}
	rootCmd.Flags().StringP("server", "s", envOr("CONFIRM_SERVER_URL", "http://localhost:8080"), "Base URL of the booking API")
	rootCmd.Flags().BoolP("json", "j", false, "Print the final result as JSON")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log every poll attempt")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return code
}

func confirm(cmd *cobra.Command, sessionID string) (int, error) {
	server, _ := cmd.Flags().GetString("server")
	asJSON, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.LoadPollConfig()
	if err != nil {
		return exitError, err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := poller.New(
		poller.NewHTTPClient(server, cfg.RequestTimeout),
		poller.OptionsFromConfig(cfg),
		poller.WithObserver(func(attempt int, resp *poller.Response, err error) {
			if err != nil {
				logger.Debug("poll failed", "attempt", attempt, "error", err)
				return
			}
			logger.Debug("poll", "attempt", attempt, "paid", resp.Paid)
		}),
	)

	res := p.Run(ctx, sessionID)
	if asJSON {
		if err := printJSON(cmd, sessionID, res); err != nil {
			return exitError, err
		}
	} else {
		printText(cmd, sessionID, res)
	}

	switch res.State {
	case poller.StateConfirmed:
		return exitConfirmed, nil
	case poller.StateTimedOut:
		return exitTimedOut, nil
	case poller.StateCancelled:
		return exitCancelled, nil
	default:
		return exitFailed, nil
	}
}

type report struct {
	SessionID string               `json:"sessionId"`
	State     poller.State         `json:"state"`
	Attempts  int                  `json:"attempts"`
	ElapsedMs int64                `json:"elapsedMs"`
	Error     string               `json:"error,omitempty"`
	Booking   *queries.BookingView `json:"booking,omitempty"`
}

func printJSON(cmd *cobra.Command, sessionID string, res poller.Result) error {
	r := report{
		SessionID: sessionID,
		State:     res.State,
		Attempts:  res.Attempts,
		ElapsedMs: res.Elapsed.Milliseconds(),
	}
	if res.Err != nil {
		r.Error = res.Err.Error()
	}
	if res.Last != nil {
		r.Booking = res.Last.Booking
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func printText(cmd *cobra.Command, sessionID string, res poller.Result) {
	out := cmd.OutOrStdout()
	var b *queries.BookingView
	if res.Last != nil {
		b = res.Last.Booking
	}

	switch res.State {
	case poller.StateConfirmed:
		fmt.Fprintf(out, "Payment confirmed for %s\n", sessionID)
		if b != nil {
			fmt.Fprintf(out, "  Invoice:  %s\n", b.InvoiceID)
			fmt.Fprintf(out, "  Total:    %s %s\n", pricing.FormatMinor(b.TotalAmountMinor), b.Currency)
			fmt.Fprintf(out, "  Emailed:  %t\n", b.EmailSent)
		}
	case poller.StateTimedOut:
		fmt.Fprintf(out, "Payment still pending after %s (%d attempts).\n", res.Elapsed, res.Attempts)
		if b != nil {
			fmt.Fprintf(out, "Contact support with reference %s.\n", b.InvoiceID)
		} else {
			fmt.Fprintf(out, "Contact support with reference %s.\n", sessionID)
		}
	case poller.StateCancelled:
		fmt.Fprintln(out, "Cancelled.")
	default:
		fmt.Fprintf(out, "Could not confirm %s: %v\n", sessionID, res.Err)
		fmt.Fprintf(out, "Contact support with reference %s.\n", sessionID)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
