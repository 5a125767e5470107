// Command loomdb is the one-shot demo driver for the memory engine. It is
// an external collaborator, not part of the core: it loads or creates a
// graph from a backup file, wakes it up, seeds a little content on first
// run, and demonstrates search, ticking, and recording an episode with its
// derived mood, saving back to the file on exit. Separate subcommands run
// a search, print the context document, run a dream cycle, or print stats.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jorgeguberte/loom-db/pkg/engine"
	"github.com/jorgeguberte/loom-db/pkg/persistence"
)

var (
	cfg        = DefaultConfig()
	configPath string
)

func main() {
	root := &cobra.Command{
		Use:   "loomdb",
		Short: "loom-db - a biologically inspired working-memory graph engine",
		Long:  "A recursive, decaying, Hebbian-flavored memory graph for AI agents: add concepts, episodes, and affective states, connect them, stimulate them, and let them decay, spread, and consolidate over logical ticks.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			fromFlags := *cfg
			if err := ConfigFromFile(cfg, configPath); err != nil {
				return err
			}
			ConfigFromEnv(cfg)
			// Flags sit on top of the hierarchy: re-apply any set explicitly,
			// since the file and env overlays above write over them.
			flags := cmd.Flags()
			if flags.Changed("data") {
				cfg.DataPath = fromFlags.DataPath
			}
			if flags.Changed("decay") {
				cfg.DecayRate = fromFlags.DecayRate
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = fromFlags.LogLevel
			}
			return cfg.Validate()
		},
		RunE:         runDemo,
		SilenceUsage: true,
	}

	f := root.PersistentFlags()
	f.StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	f.StringVar(&cfg.DataPath, "data", cfg.DataPath, "backup file path")
	f.Float64Var(&cfg.DecayRate, "decay", cfg.DecayRate, "per-tick decay rate, used only when no backup exists yet")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zap log level (debug, info, warn, error)")

	root.AddCommand(
		newSearchCmd(),
		newContextCmd(),
		newDreamCmd(),
		newStatsCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) *zap.SugaredLogger {
	var zcfg zap.Config
	if level == "debug" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zcfg.Level = atomicLevel
	l, err := zcfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	return l.Sugar()
}

// loadOrCreate opens the backup at cfg.DataPath if present, otherwise
// starts a fresh graph at cfg.DecayRate. Either way it then calls WakeUp,
// mirroring the reference driver's load -> wake_up sequence.
func loadOrCreate(store *persistence.Store, log *zap.SugaredLogger) *engine.Graph {
	blob, err := store.Load()
	var g *engine.Graph
	if err != nil {
		log.Infow("no existing backup, starting fresh graph", "decay_rate", cfg.DecayRate)
		g = engine.New(cfg.DecayRate)
	} else {
		g = engine.ImportBackup(blob)
	}
	g.WakeUp()
	return g
}

func runDemo(cmd *cobra.Command, args []string) error {
	log := newLogger(cfg.LogLevel)
	defer log.Sync()

	store := persistence.NewStore(cfg.DataPath, log)
	g := loadOrCreate(store, log)

	if g.Store.Len() == 0 {
		log.Info("seeding a starter memory")
		genesis := g.AddConcept("Genesis", "the first memory this graph ever recorded")
		g.AddEpisode("the graph woke up for the first time")
		_ = genesis
	}

	results := g.Search("genesis")
	for _, r := range results {
		fmt.Printf("search hit: %s activation=%.4f\n", r.ID, r.Activation)
	}

	for i := 0; i < 5; i++ {
		g.Tick()
	}

	episodeID, _ := g.AddEpisodeWithMood(fmt.Sprintf("tick %d: still here", g.Clock.CurrentTick))
	fmt.Printf("recorded episode %s\n", episodeID)

	if err := store.Save(g.ExportBackup()); err != nil {
		return fmt.Errorf("save backup: %w", err)
	}
	return nil
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "search the graph and print ranked, projected-activation results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cfg.LogLevel)
			defer log.Sync()
			store := persistence.NewStore(cfg.DataPath, log)
			g := loadOrCreate(store, log)
			fmt.Println(g.SearchDocument(g.Search(args[0])))
			return nil
		},
	}
}

func newContextCmd() *cobra.Command {
	var minActivation float64
	cmd := &cobra.Command{
		Use:   "context",
		Short: "print the active-memories context document",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cfg.LogLevel)
			defer log.Sync()
			store := persistence.NewStore(cfg.DataPath, log)
			g := loadOrCreate(store, log)
			fmt.Println(g.ContextDocument(g.GetContext(minActivation)))
			return nil
		},
	}
	cmd.Flags().Float64Var(&minActivation, "min-activation", 0.1, "minimum projected activation to include")
	return cmd
}

func newDreamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dream",
		Short: "run a consolidation cycle and save",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cfg.LogLevel)
			defer log.Sync()
			store := persistence.NewStore(cfg.DataPath, log)
			g := loadOrCreate(store, log)
			summary := g.Dream()
			fmt.Printf("promoted=%d pruned=%d\n", summary.Promoted, summary.Pruned)
			return store.Save(g.ExportBackup())
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "print basic graph statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cfg.LogLevel)
			defer log.Sync()
			store := persistence.NewStore(cfg.DataPath, log)
			g := loadOrCreate(store, log)
			fmt.Printf("nodes=%d tick=%d decay_rate=%.4f\n", g.Store.Len(), g.Clock.CurrentTick, g.DecayRate)
			return nil
		},
	}
}
