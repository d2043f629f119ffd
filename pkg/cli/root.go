package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/antoniocali/wollama/pkg/catalog"
	"github.com/antoniocali/wollama/pkg/config"
	"github.com/antoniocali/wollama/pkg/hardware"
	"github.com/antoniocali/wollama/pkg/infra/logger"
)

var (
	cliVersion   = "dev"
	cliBuildDate = "unknown"
	cliGitCommit = "unknown"
)

type RootCommand struct {
	cmd      *cobra.Command
	cfg      *config.Config
	store    catalog.Store
	records  []catalog.ModelRecord
	profile  *hardware.Profile
	detector hardware.Detector

	opts       *OutputOptions
	formatStr  string
	catalogStr string
}

func NewRootCommand() *RootCommand {
	root := &RootCommand{
		opts:     NewOutputOptions(),
		detector: hardware.NewHostDetector(),
	}

	cmd := &cobra.Command{
		Use:   "wollama",
		Short: "wollama - browse AI model recommendations for your hardware",
		Long: `wollama ranks a catalog of local AI model recommendations against
a best-effort profile of the machine it runs on.

The hardware profile is a rough signal, never an authority: unknown
fields simply stop contributing to the ranking.`,
		PersistentPreRunE: root.persistentPreRunE,
	}

	pflags := cmd.PersistentFlags()

	pflags.StringVarP(&root.formatStr, "output", "o", "table", "Output format (table, json, yaml)")
	pflags.BoolVarP(&root.opts.Quiet, "quiet", "q", false, "Suppress output")
	pflags.String("config", "", "Config file path (default: built-in defaults)")
	pflags.StringVar(&root.catalogStr, "catalog", "", "Extra catalog JSON file or directory")

	viper.BindPFlag("output", pflags.Lookup("output"))
	viper.BindPFlag("quiet", pflags.Lookup("quiet"))
	viper.BindPFlag("config", pflags.Lookup("config"))

	root.cmd = cmd

	root.addSubCommands()

	return root
}

func (r *RootCommand) persistentPreRunE(cmd *cobra.Command, args []string) error {
	r.opts.Format = OutputFormat(r.formatStr)

	cfgPath := viper.GetString("config")
	var err error
	r.cfg, err = config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if r.catalogStr != "" {
		r.cfg.Catalog.Path = r.catalogStr
	}

	logger.Init(logger.Config{
		Level:  r.cfg.Logging.Level,
		Format: r.cfg.Logging.Format,
	})

	r.records = r.loadCatalog()
	r.store = catalog.NewMemoryStore(r.records)

	if r.cfg.Hardware.Detect {
		ctx, cancel := context.WithTimeout(cmd.Context(), r.cfg.Hardware.ProbeTimeoutD)
		defer cancel()

		profile, err := r.detector.Detect(ctx)
		if err != nil {
			// Detection is best-effort: ranking degrades to neutral.
			logger.Warn("hardware detection failed", "error", err)
		} else {
			r.profile = profile
		}
	}

	return nil
}

// loadCatalog assembles the session snapshot from the embedded default
// catalog plus any configured extra path. A load failure never aborts
// the command; the browser works against whatever loaded, down to an
// empty catalog.
func (r *RootCommand) loadCatalog() []catalog.ModelRecord {
	var records []catalog.ModelRecord

	if r.cfg.Catalog.UseEmbedded {
		embedded, err := catalog.LoadEmbedded()
		if err != nil {
			logger.Warn("failed to load embedded catalog", "error", err)
		} else {
			records = append(records, embedded...)
		}
	}

	if r.cfg.Catalog.Path != "" {
		extra, err := catalog.LoadPath(r.cfg.Catalog.Path)
		if err != nil {
			logger.Warn("failed to load catalog path", "path", r.cfg.Catalog.Path, "error", err)
		} else {
			records = append(records, extra...)
		}
	}

	return records
}

func (r *RootCommand) addSubCommands() {
	r.cmd.AddCommand(NewVersionCommand(r))
	r.cmd.AddCommand(NewBrowseCommand(r))
	r.cmd.AddCommand(NewCatalogCommand(r))
	r.cmd.AddCommand(NewHardwareCommand(r))
}

func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

func (r *RootCommand) Config() *config.Config {
	return r.cfg
}

func (r *RootCommand) Store() catalog.Store {
	return r.store
}

func (r *RootCommand) Records() []catalog.ModelRecord {
	return r.records
}

func (r *RootCommand) Profile() *hardware.Profile {
	return r.profile
}

func (r *RootCommand) OutputOptions() *OutputOptions {
	return r.opts
}

func (r *RootCommand) SetOutputWriter(w interface{ Write([]byte) (int, error) }) {
	r.opts.Writer = w
}

func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

func Execute() {
	root := NewRootCommand()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func SetVersion(version, buildDate, gitCommit string) {
	cliVersion = version
	cliBuildDate = buildDate
	cliGitCommit = gitCommit
}

func GetVersion() string {
	return cliVersion
}
