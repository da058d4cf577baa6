// Package main provides the CLI entry point for shiftboard.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/config"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/fetch"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/output"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/parser"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/server"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/telemetry"
)

var (
	outputPath  string
	pretty      bool
	clientID    string
	clientsDir  string
	columnsPath string
	sheetName   string
	rangeRef    string
	addr        string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftboard",
		Short: "Production dashboard for factory sectors",
		Long: `shiftboard fetches per-sector production tables, parses them into
daily records and aggregates a fleet summary.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&clientID, "client", "", "Tenant id (default: $SHIFTBOARD_CLIENT)")
	rootCmd.PersistentFlags().StringVar(&clientsDir, "clients-dir", "", "Directory or base URL of tenant documents (default: $SHIFTBOARD_CLIENTS_DIR)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Refresh every sector once and print the dashboard as JSON",
		Args:  cobra.NoArgs,
		RunE:  runSummary,
	}
	summaryCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")

	parseCmd := &cobra.Command{
		Use:   "parse [table.json|workbook.xlsx]",
		Short: "Parse one display table into a day series",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	parseCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().StringVar(&columnsPath, "columns", "", "JSON file with the column map (default: tenant document columns)")
	parseCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name for .xlsx input (default: first sheet)")
	parseCmd.Flags().StringVar(&rangeRef, "range", "", "Range reference for .xlsx input, e.g. 'Sheet1'!$A$1:$H$40")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Refresh every sector once and write an .xlsx report",
		Args:  cobra.NoArgs,
		RunE:  runReport,
	}
	reportCmd.Flags().StringVarP(&outputPath, "output", "o", "shiftboard.xlsx", "Report file path")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API and refresh on an interval",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: $SHIFTBOARD_ADDR)")

	rootCmd.AddCommand(summaryCmd, parseCmd, reportCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles what every subcommand needs.
type app struct {
	settings *config.Settings
	dash     *config.Dashboard
	source   shiftboard.Source
	logger   shiftboard.Logger
}

func loadApp(ctx context.Context) (*app, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if clientID != "" {
		settings.Client = clientID
	}
	if clientsDir != "" {
		settings.ClientsDir = clientsDir
	}

	dash, err := config.Load(ctx, settings.ClientsDir, settings.Client, settings.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &app{
		settings: settings,
		dash:     dash,
		source:   fetch.NewRouter(fetch.NewClient(settings.RequestTimeout)),
		logger:   shiftboard.NewStdLogger(log.New(os.Stderr, "shiftboard: ", log.LstdFlags), settings.Debug),
	}, nil
}

func (a *app) options(rec telemetry.Recorder) shiftboard.Options {
	opts := shiftboard.DefaultOptions()
	opts.Concurrency = a.settings.FetchConcurrency
	opts.Logger = a.logger
	opts.Recorder = rec
	return opts
}

// refreshOnce refreshes every sector and returns the resulting board.
func (a *app) refreshOnce(ctx context.Context) *shiftboard.Board {
	board := shiftboard.NewBoard(a.dash.Title, a.dash.Sectors)
	board.Apply(shiftboard.Refresh(ctx, a.dash.Sectors, a.dash.Columns, a.source, a.options(nil)))
	return board
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	board := a.refreshOnce(ctx)
	return writeJSON(board.Dashboard(time.Now()))
}

func runParse(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cols, err := loadColumns(cmd.Context())
	if err != nil {
		return err
	}

	var table models.RawTable
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".xlsx", ".xlsm":
		table, err = fetch.ReadWorkbook(inputPath, sheetName, rangeRef)
		if err != nil {
			return fmt.Errorf("read workbook: %w", err)
		}
	case ".json":
		table, err = readTableJSON(inputPath)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported input: %s (must be .json or .xlsx)", inputPath)
	}

	return writeJSON(parser.ParseTable(table, cols))
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	board := a.refreshOnce(ctx)
	d := board.Dashboard(time.Now())
	if err := output.SaveReport(outputPath, d.Summary, shiftboard.SeriesOf(d.Sectors)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", outputPath)
	return nil
}

// shutdownRecorder is a recorder that must be flushed on exit.
type shutdownRecorder interface {
	telemetry.Recorder
	Shutdown(ctx context.Context) error
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	if addr != "" {
		a.settings.Addr = addr
	}

	var rec shutdownRecorder = telemetry.Noop{}
	exp, err := telemetry.NewExporter(ctx, a.settings.Telemetry())
	switch {
	case err == nil:
		rec = exp
	case errors.Is(err, telemetry.ErrDisabled):
		a.logger.Debug("telemetry disabled")
	default:
		a.logger.Error(fmt.Sprintf("telemetry: %v", err))
	}

	opts := a.options(rec)
	board := shiftboard.NewBoard(a.dash.Title, a.dash.Sectors)
	hub := server.NewHub()
	refresher := &server.Refresher{
		Dashboard: a.dash,
		Source:    a.source,
		Board:     board,
		Hub:       hub,
		Options:   opts,
	}

	srv := server.NewHTTPServer(server.Config{Addr: a.settings.Addr, Now: opts.Now, Logger: a.logger}, board, a.dash, hub)
	a.logger.Debug(fmt.Sprintf("listening on %s", srv.Addr))

	serveErr := server.Serve(ctx, srv, refresher, a.settings.ShutdownTimeout)
	if ctx.Err() != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "\nShutting down...")
	}

	// The refresh loop has exited, so no metric is recorded after this point.
	shutdownCtx, stop := context.WithTimeout(context.Background(), a.settings.ShutdownTimeout)
	defer stop()
	if err := rec.Shutdown(shutdownCtx); err != nil {
		a.logger.Error(fmt.Sprintf("shutdown telemetry: %v", err))
	}
	return serveErr
}

// loadColumns reads --columns, or the tenant document columns when unset.
func loadColumns(ctx context.Context) (models.ColumnMap, error) {
	if columnsPath == "" {
		a, err := loadApp(ctx)
		if err != nil {
			return nil, err
		}
		return a.dash.Columns, nil
	}

	data, err := os.ReadFile(columnsPath)
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	var cols models.ColumnMap
	if err := json.Unmarshal(data, &cols); err != nil {
		return nil, fmt.Errorf("decode columns: %w", err)
	}
	return cols, nil
}

func readTableJSON(path string) (models.RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.RawTable{}, fmt.Errorf("read table: %w", err)
	}
	var resp models.TableResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return models.RawTable{}, fmt.Errorf("decode table: %w", err)
	}
	if resp.Failed() {
		msg := resp.Error
		if msg == "" {
			msg = shiftboard.DefaultServerError
		}
		return models.RawTable{}, errors.New(msg)
	}
	return resp.Table(), nil
}

func writeJSON(v any) error {
	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}
