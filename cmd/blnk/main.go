package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cenkalti/backoff/v4"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	blnk "github.com/blnkfinance/blnk-go"
	"github.com/blnkfinance/blnk-go/internal/config"
	"github.com/blnkfinance/blnk-go/internal/env"
	"github.com/blnkfinance/blnk-go/internal/tui"
	"github.com/blnkfinance/blnk-go/model"
)

func newClient(cfg *config.Config) (*blnk.Client, error) {
	return blnk.New(cfg.APIKey, blnk.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
}

// withRetry re-attempts an operation while the server keeps answering 5xx.
// The SDK itself never retries; this is the caller-side policy it expects.
func withRetry[T any](cfg *config.Config, op func() *model.Response[T]) *model.Response[T] {
	var resp *model.Response[T]

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.RetryDelay
	policy := backoff.WithMaxRetries(bo, uint64(cfg.MaxRetries))

	_ = backoff.Retry(func() error {
		resp = op()
		if resp.Status >= 500 {
			return fmt.Errorf("server returned status %d", resp.Status)
		}
		return nil
	}, policy)

	return resp
}

func printResponse(resp any) {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func main() {
	env.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	client, err := newClient(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize client: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	rootCmd := &cobra.Command{
		Use:   "blnk",
		Short: "A CLI for the Blnk ledger API",
		Long:  "blnk drives a Blnk ledger server: ledgers, balances, transactions, identities, monitors, reconciliation and search.",
	}

	// ledger
	var ledgerName string
	ledgerCmd := &cobra.Command{Use: "ledger", Short: "Manage ledgers"}
	ledgerCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a ledger",
		Run: func(cmd *cobra.Command, args []string) {
			printResponse(client.Ledgers().Create(ctx, &model.CreateLedgerRequest{Name: ledgerName}))
		},
	}
	ledgerCreateCmd.Flags().StringVarP(&ledgerName, "name", "n", "", "Ledger name")
	ledgerGetCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a ledger by id",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printResponse(client.Ledgers().Get(ctx, args[0]))
		},
	}
	ledgerCmd.AddCommand(ledgerCreateCmd, ledgerGetCmd)

	// balance
	var balanceLedger, balanceIdentity, balanceCurrency string
	balanceCmd := &cobra.Command{Use: "balance", Short: "Manage ledger balances"}
	balanceCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a balance under a ledger",
		Run: func(cmd *cobra.Command, args []string) {
			printResponse(client.LedgerBalances().Create(ctx, &model.CreateBalanceRequest{
				LedgerID:   balanceLedger,
				IdentityID: balanceIdentity,
				Currency:   balanceCurrency,
			}))
		},
	}
	balanceCreateCmd.Flags().StringVarP(&balanceLedger, "ledger", "l", "", "Ledger id")
	balanceCreateCmd.Flags().StringVarP(&balanceIdentity, "identity", "i", "", "Identity id (optional)")
	balanceCreateCmd.Flags().StringVarP(&balanceCurrency, "currency", "c", "USD", "Currency")
	balanceGetCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a balance by id",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printResponse(client.LedgerBalances().Get(ctx, args[0]))
		},
	}
	balanceCmd.AddCommand(balanceCreateCmd, balanceGetCmd)

	// transaction
	var (
		txAmount      float64
		txPrecision   int64
		txReference   string
		txDescription string
		txCurrency    string
		txSource      string
		txDestination string
		txInflight    bool
		txOverdraft   bool
		txRetry       bool
		partialAmount float64
	)
	txCmd := &cobra.Command{Use: "transaction", Short: "Record and resolve transactions"}
	txCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Record a transaction",
		Run: func(cmd *cobra.Command, args []string) {
			if txReference == "" {
				txReference = blnk.NewReference("ref")
			}
			data := &model.CreateTransactionRequest{
				Amount:         txAmount,
				Precision:      txPrecision,
				Reference:      txReference,
				Description:    txDescription,
				Currency:       txCurrency,
				Source:         txSource,
				Destination:    txDestination,
				Inflight:       txInflight,
				AllowOverdraft: txOverdraft,
			}
			op := func() *model.Response[model.Transaction] {
				return client.Transactions().Create(ctx, data)
			}
			if txRetry {
				printResponse(withRetry(cfg, op))
				return
			}
			printResponse(op())
		},
	}
	txCreateCmd.Flags().Float64Var(&txAmount, "amount", 0, "Amount in major units")
	txCreateCmd.Flags().Int64Var(&txPrecision, "precision", 100, "Precision multiplier")
	txCreateCmd.Flags().StringVar(&txReference, "reference", "", "Unique reference (generated when empty)")
	txCreateCmd.Flags().StringVar(&txDescription, "description", "", "Description")
	txCreateCmd.Flags().StringVar(&txCurrency, "currency", "USD", "Currency")
	txCreateCmd.Flags().StringVar(&txSource, "source", "", "Source balance id or @indicator")
	txCreateCmd.Flags().StringVar(&txDestination, "destination", "", "Destination balance id or @indicator")
	txCreateCmd.Flags().BoolVar(&txInflight, "inflight", false, "Record as inflight")
	txCreateCmd.Flags().BoolVar(&txOverdraft, "allow-overdraft", false, "Allow overdraft on the source")
	txCreateCmd.Flags().BoolVar(&txRetry, "retry", false, "Retry on 5xx with exponential backoff")

	txCommitCmd := &cobra.Command{
		Use:   "commit <id>",
		Short: "Commit an inflight transaction, fully or partially",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if partialAmount > 0 {
				printResponse(client.Transactions().CommitPartial(ctx, args[0], partialAmount))
				return
			}
			printResponse(client.Transactions().Commit(ctx, args[0]))
		},
	}
	txCommitCmd.Flags().Float64Var(&partialAmount, "amount", 0, "Partial amount to commit")
	txVoidCmd := &cobra.Command{
		Use:   "void <id>",
		Short: "Void an inflight transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printResponse(client.Transactions().Void(ctx, args[0]))
		},
	}
	txRefundCmd := &cobra.Command{
		Use:   "refund <id>",
		Short: "Refund an applied transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printResponse(client.Transactions().Refund(ctx, args[0]))
		},
	}
	txCmd.AddCommand(txCreateCmd, txCommitCmd, txVoidCmd, txRefundCmd)

	// bulk
	var bulkFile string
	var bulkWatch bool
	bulkCmd := &cobra.Command{
		Use:   "bulk",
		Short: "Submit a batch of transactions from a JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			raw, err := os.ReadFile(bulkFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", bulkFile, err)
				os.Exit(1)
			}
			var batch model.BulkTransactionRequest
			if err := json.Unmarshal(raw, &batch); err != nil {
				fmt.Fprintf(os.Stderr, "failed to parse %s: %v\n", bulkFile, err)
				os.Exit(1)
			}

			if !bulkWatch {
				printResponse(client.Transactions().CreateBulk(ctx, &batch))
				return
			}

			if err := watchBulk(ctx, client, &batch); err != nil {
				fmt.Fprintf(os.Stderr, "monitor failed: %v\n", err)
				os.Exit(1)
			}
		},
	}
	bulkCmd.Flags().StringVarP(&bulkFile, "file", "f", "transactions.json", "Batch file")
	bulkCmd.Flags().BoolVarP(&bulkWatch, "watch", "w", false, "Submit sequentially with a live monitor")

	// recon
	var reconFile, reconSource, reconUploadID, reconStrategy, reconGrouping string
	var reconRules []string
	var reconDryRun bool
	reconCmd := &cobra.Command{Use: "recon", Short: "Reconciliation uploads, rules and runs"}
	reconUploadCmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload an external record file",
		Run: func(cmd *cobra.Command, args []string) {
			printResponse(client.Reconciliation().Upload(ctx, reconFile, reconSource))
		},
	}
	reconUploadCmd.Flags().StringVarP(&reconFile, "file", "f", "", "File to upload")
	reconUploadCmd.Flags().StringVarP(&reconSource, "source", "s", "local", "Source label")
	reconRuleCmd := &cobra.Command{
		Use:   "rule",
		Short: "Create a matching rule from a JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			raw, err := os.ReadFile(reconFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", reconFile, err)
				os.Exit(1)
			}
			var matcher model.Matcher
			if err := json.Unmarshal(raw, &matcher); err != nil {
				fmt.Fprintf(os.Stderr, "failed to parse %s: %v\n", reconFile, err)
				os.Exit(1)
			}
			printResponse(client.Reconciliation().CreateMatchingRule(ctx, &matcher))
		},
	}
	reconRuleCmd.Flags().StringVarP(&reconFile, "file", "f", "", "Matching rule JSON file")
	reconRunCmd := &cobra.Command{
		Use:   "run",
		Short: "Start a reconciliation over an uploaded batch",
		Run: func(cmd *cobra.Command, args []string) {
			printResponse(client.Reconciliation().Run(ctx, &model.RunReconciliationRequest{
				UploadID:         reconUploadID,
				Strategy:         reconStrategy,
				DryRun:           reconDryRun,
				GroupingCriteria: reconGrouping,
				MatchingRuleIDs:  reconRules,
			}))
		},
	}
	reconRunCmd.Flags().StringVar(&reconUploadID, "upload", "", "Upload id")
	reconRunCmd.Flags().StringVar(&reconStrategy, "strategy", model.StrategyOneToOne, "Matching strategy")
	reconRunCmd.Flags().StringVar(&reconGrouping, "grouping", "", "Grouping criteria field")
	reconRunCmd.Flags().StringSliceVar(&reconRules, "rules", nil, "Matching rule ids")
	reconRunCmd.Flags().BoolVar(&reconDryRun, "dry-run", false, "Report matches without applying them")
	reconCmd.AddCommand(reconUploadCmd, reconRuleCmd, reconRunCmd)

	// search
	var searchQ, searchQueryBy, searchFilterBy, searchSortBy string
	var searchPage, searchPerPage int
	searchCmd := &cobra.Command{
		Use:   "search <ledgers|transactions|balances>",
		Short: "Search a collection",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printResponse(client.Search().Search(ctx, model.SearchParams{
				Q:        searchQ,
				QueryBy:  searchQueryBy,
				FilterBy: searchFilterBy,
				SortBy:   searchSortBy,
				Page:     searchPage,
				PerPage:  searchPerPage,
			}, model.SearchResource(strings.ToLower(args[0]))))
		},
	}
	searchCmd.Flags().StringVarP(&searchQ, "q", "q", "*", "Query string")
	searchCmd.Flags().StringVar(&searchQueryBy, "query-by", "", "Fields to query")
	searchCmd.Flags().StringVar(&searchFilterBy, "filter-by", "", "Filter expression")
	searchCmd.Flags().StringVar(&searchSortBy, "sort-by", "", "Sort expression")
	searchCmd.Flags().IntVar(&searchPage, "page", 0, "Page")
	searchCmd.Flags().IntVar(&searchPerPage, "per-page", 0, "Page size")

	rootCmd.AddCommand(ledgerCmd, balanceCmd, txCmd, bulkCmd, reconCmd, searchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to execute command: %v\n", err)
		os.Exit(1)
	}
}

// watchBulk submits the batch one transaction at a time behind the live
// monitor. Atomicity is not available on this path; use the bulk endpoint
// for that.
func watchBulk(ctx context.Context, client *blnk.Client, batch *model.BulkTransactionRequest) error {
	refs := make([]string, 0, len(batch.Transactions))
	for i := range batch.Transactions {
		if batch.Transactions[i].Reference == "" {
			batch.Transactions[i].Reference = blnk.NewReference("bulk")
		}
		refs = append(refs, batch.Transactions[i].Reference)
	}

	monitor := tui.NewMonitor()
	return monitor.Run(func(send func(msg tea.Msg)) {
		send(tui.BatchLoaded{References: refs})

		for i := range batch.Transactions {
			tx := batch.Transactions[i]
			if batch.Inflight {
				tx.Inflight = true
			}
			send(tui.SubmitUpdate{Reference: tx.Reference, Stage: tui.StageSubmitting})

			resp := client.Transactions().Create(ctx, &tx)
			if resp.Status >= 300 || resp.Data == nil {
				send(tui.SubmitUpdate{
					Reference: tx.Reference,
					Stage:     tui.StageFailed,
					Err:       fmt.Errorf("status %d: %s", resp.Status, resp.Message),
				})
				send(tui.LogMessage{Message: fmt.Sprintf("%s failed: %s", tx.Reference, resp.Message)})
				continue
			}

			stage := tui.StageApplied
			switch resp.Data.Status {
			case model.StatusQueued:
				stage = tui.StageQueued
			case model.StatusInflight:
				stage = tui.StageInflight
			case model.StatusRejected:
				stage = tui.StageRejected
			}
			send(tui.SubmitUpdate{
				Reference: tx.Reference,
				Stage:     stage,
				Message:   resp.Data.TransactionID,
			})
			send(tui.LogMessage{Message: fmt.Sprintf("%s -> %s", tx.Reference, resp.Data.Status)})
		}
	})
}
