// ragi - crypto technical analysis with a retrieval-augmented knowledge base.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mahmoudomarus/RAGI/internal/agent"
	"github.com/mahmoudomarus/RAGI/internal/api"
	"github.com/mahmoudomarus/RAGI/internal/collector"
	"github.com/mahmoudomarus/RAGI/internal/config"
	"github.com/mahmoudomarus/RAGI/internal/embedding"
	"github.com/mahmoudomarus/RAGI/internal/exporter"
	"github.com/mahmoudomarus/RAGI/internal/indicator"
	"github.com/mahmoudomarus/RAGI/internal/recorder"
	"github.com/mahmoudomarus/RAGI/internal/report"
	"github.com/mahmoudomarus/RAGI/internal/scheduler"
)

var (
	cfgPath string
	symbol  string
	rng     string
	useMock bool
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// .env is optional; real env always wins
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "ragi",
		Short: "Crypto technical analysis with a retrieval-augmented knowledge base",
		Long: `ragi fetches daily OHLCV data for a crypto pair, computes a standard
indicator suite (SMA/EMA/RSI/MACD/Bollinger and friends), derives trading
signals and plain-text insights, and answers questions against a local
knowledge base via embedding similarity search.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "configs/config.yaml", "path to YAML config")
	rootCmd.PersistentFlags().StringVarP(&symbol, "symbol", "s", "", "trading pair, e.g. BTC-USD (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&rng, "range", "r", "", "history range, e.g. 6mo, 1y (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&useMock, "mock", false, "use the mock data source instead of the configured one")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies flag overrides on top of file plus env.
func loadConfig() (*config.Config, error) {
	if v := os.Getenv("CONFIG_PATH"); v != "" && cfgPath == "configs/config.yaml" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if symbol != "" {
		cfg.DataSource.Symbol = symbol
	}
	if rng != "" {
		cfg.DataSource.Range = rng
	}
	if useMock {
		cfg.DataSource.Provider = "mock"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func buildFetcher(cfg *config.Config) collector.Fetcher {
	if cfg.DataSource.Provider == "mock" {
		return &collector.MockFetcher{Price: 50000}
	}
	return collector.NewYahooFetcher(cfg.Proxy)
}

func buildCollector(cfg *config.Config) *collector.Collector {
	fetcher := buildFetcher(cfg)
	log.Printf("[INFO] data source: %s, symbol: %s", fetcher.Name(), cfg.DataSource.Symbol)
	return collector.NewCollector(fetcher, collector.NewCoinGeckoClient(cfg.Proxy), cfg.DataSource.Symbol)
}

func buildEmbedder(cfg *config.Config) embedding.Provider {
	return embedding.NewLazy(func() (embedding.Provider, error) {
		switch cfg.Embedding.Provider {
		case "ollama":
			return embedding.NewOllamaProvider(
				embedding.WithBaseURL(cfg.Embedding.BaseURL),
				embedding.WithModel(cfg.Embedding.Model),
				embedding.WithDim(cfg.Embedding.Dimensions),
				embedding.WithTimeout(30*time.Second),
			), nil
		default:
			return embedding.NewHashProvider(cfg.Embedding.Dimensions), nil
		}
	})
}

func buildAgent(cfg *config.Config) (*agent.Agent, error) {
	pipeCfg := indicator.Config{
		SMAWindows:       cfg.Indicators.SMAWindows,
		RSIPeriod:        cfg.Indicators.RSIPeriod,
		MACDFast:         cfg.Indicators.MACDFast,
		MACDSlow:         cfg.Indicators.MACDSlow,
		MACDSignal:       cfg.Indicators.MACDSignal,
		BollWindow:       cfg.Indicators.BollWindow,
		BollStdDev:       cfg.Indicators.BollStdDev,
		MomentumLookback: cfg.Indicators.MomentumLookback,
		ATRPeriod:        cfg.Indicators.ATRPeriod,
		VolatilityWindow: cfg.Indicators.VolatilityWindow,
	}
	pipe, err := indicator.NewPipeline(pipeCfg)
	if err != nil {
		return nil, fmt.Errorf("init pipeline: %w", err)
	}
	return agent.New(pipe, buildEmbedder(cfg), agent.Config{
		RSIOverbought: cfg.Signals.RSIOverbought,
		RSIOversold:   cfg.Signals.RSIOversold,
		BandEpsilon:   cfg.Signals.BandEpsilon,
	})
}

func buildRecorder(cfg *config.Config) (recorder.Recorder, func()) {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder(), func() {}
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder(), func() {}
	}
	return sr, func() { _ = sr.Close() }
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Fetch market data and print signal and insights",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ag, err := buildAgent(cfg)
			if err != nil {
				return err
			}
			col := buildCollector(cfg)
			rec, closeRec := buildRecorder(cfg)
			defer closeRec()

			series, err := col.Collect(cfg.DataSource.Range)
			if err != nil {
				return fmt.Errorf("collect %s: %w", cfg.DataSource.Symbol, err)
			}
			sig, err := ag.GenerateTradingSignals(series)
			if err != nil {
				return err
			}
			insights, err := ag.Analyze(series)
			if err != nil {
				return err
			}
			if err := rec.RecordSignal(sig); err != nil {
				log.Printf("[WARN] record signal: %v", err)
			}
			if err := rec.RecordInsights(series.Symbol, insights); err != nil {
				log.Printf("[WARN] record insights: %v", err)
			}

			snap, err := col.Snapshot()
			if err != nil {
				log.Printf("[WARN] market snapshot unavailable: %v", err)
				snap = nil
			}
			fmt.Println(report.FormatAnalysis(sig, insights, snap))

			stats, err := ag.Summarize(series)
			if err != nil {
				return err
			}
			fmt.Println(report.FormatSummary(stats))
			return nil
		},
	}
}

func scanCmd() *cobra.Command {
	var symbols []string
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Generate signals across multiple trading pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ag, err := buildAgent(cfg)
			if err != nil {
				return err
			}
			fetcher := buildFetcher(cfg)
			log.Printf("[INFO] data source: %s", fetcher.Name())

			seriesBySymbol := collector.FetchMultiple(fetcher, symbols, cfg.DataSource.Range)
			if len(seriesBySymbol) == 0 {
				return fmt.Errorf("no symbols could be fetched")
			}
			scanned := make([]string, 0, len(seriesBySymbol))
			for symbol := range seriesBySymbol {
				scanned = append(scanned, symbol)
			}
			sort.Strings(scanned)

			for _, symbol := range scanned {
				sig, err := ag.GenerateTradingSignals(seriesBySymbol[symbol])
				if err != nil {
					log.Printf("[WARN] signal for %s: %v", symbol, err)
					continue
				}
				price, err := fetcher.FetchCurrentPrice(symbol)
				if err != nil {
					log.Printf("[WARN] current price for %s: %v", symbol, err)
					price = sig.Close
				}
				fmt.Printf("%-10s %-10s trend=%-9s position=%-7s rsi=%.1f\n",
					symbol, report.FormatAmount(price, 2), sig.Trend, sig.Position, sig.RSI)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&symbols, "symbols", nil, "pairs to scan (default: the supported coin universe)")
	return cmd
}

func queryCmd() *cobra.Command {
	var topK int
	cmd := &cobra.Command{
		Use:   "query <question>",
		Short: "Search the knowledge base",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ag, err := buildAgent(cfg)
			if err != nil {
				return err
			}
			question := strings.Join(args, " ")
			results, err := ag.Query(cmd.Context(), question, topK)
			if err != nil {
				return err
			}
			fmt.Println(report.FormatQueryResults(results))
			return nil
		},
	}
	cmd.Flags().IntVarP(&topK, "top", "k", 3, "number of results to return")
	return cmd
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Add documents to the knowledge base",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ag, err := buildAgent(cfg)
			if err != nil {
				return err
			}
			if err := ag.AddKnowledge(cmd.Context(), args); err != nil {
				return err
			}
			fmt.Printf("added %d documents (%d total)\n", len(args), ag.KnowledgeSize())
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export OHLCV bars and indicators to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ag, err := buildAgent(cfg)
			if err != nil {
				return err
			}
			col := buildCollector(cfg)

			series, err := col.Collect(cfg.DataSource.Range)
			if err != nil {
				return fmt.Errorf("collect %s: %w", cfg.DataSource.Symbol, err)
			}
			set, err := ag.FetchIndicators(series)
			if err != nil {
				return err
			}
			if outPath == "" {
				name := fmt.Sprintf("%s_%s_%s.csv",
					strings.ToLower(series.Symbol), cfg.DataSource.Range,
					time.Now().Format("20060102"))
				outPath = filepath.Join(cfg.Export.Dir, name)
			}
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return fmt.Errorf("create export dir: %w", err)
			}
			if err := exporter.SaveCSV(series, set, outPath); err != nil {
				return err
			}
			fmt.Printf("exported %d bars to %s\n", series.Len(), outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default under export.dir)")
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API with a scheduled refresh loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ag, err := buildAgent(cfg)
			if err != nil {
				return err
			}
			col := buildCollector(cfg)
			rec, closeRec := buildRecorder(cfg)
			defer closeRec()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sched := scheduler.NewScheduler(ctx, col, ag, rec, cfg.DataSource.Range)
			if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
				return fmt.Errorf("register refresh task: %w", err)
			}
			sched.Start()
			defer sched.Stop()

			if os.Getenv("RUN_ON_START") == "true" {
				log.Println("[INFO] RUN_ON_START enabled, refreshing now")
				go sched.Refresh()
			}

			srv := api.NewServer(ag, col, rec, cfg.DataSource.Range)
			errCh := make(chan error, 1)
			go func() { errCh <- srv.Run(cfg.Server.Addr) }()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-sigCh:
				log.Printf("[INFO] received %v, shutting down", sig)
				return nil
			case err := <-errCh:
				return err
			}
		},
	}
}
