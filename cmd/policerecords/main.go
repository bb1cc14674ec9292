package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kjk/policerecords/autocorrect"
	"github.com/kjk/policerecords/config"
	"github.com/kjk/policerecords/inbox"
	"github.com/kjk/policerecords/log"
	"github.com/kjk/policerecords/storage"
	"github.com/spf13/cobra"
)

// app is what every command needs, set up in PersistentPreRunE
type app struct {
	configPath string
	filePath   string
	logDir     string
	verbose    bool

	cfg     *config.Config
	store   *storage.File
	dict    *autocorrect.Dictionary
	inboxes *inbox.Paths
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.StoragePath = a.filePath
	}
	if flags.Changed("log-dir") {
		cfg.LogDir = a.logDir
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}

	log.Out = cmd.ErrOrStderr()
	log.Init(&log.Config{Dir: cfg.LogDir, Verbose: cfg.Verbose})

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.store = store
	a.dict = cfg.Dictionary()
	a.inboxes = cfg.InboxPaths()
	log.Verbosef("using storage file '%s'\n", store.Path())
	log.Event("cmd", "name", cmd.Name())
	return nil
}

// unknownCommand is what we show for a command word cobra didn't match
func (a *app) unknownCommand(word string) error {
	if msg := a.dict.Message(word); msg != "" {
		return fmt.Errorf("unknown command '%s'. %s", word, msg)
	}
	return fmt.Errorf("unknown command '%s'", word)
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "policerecords",
		Short: "Manage police records stored in a local file",
		Long: `Manage police records stored in a local file.

If the storage file doesn't exist it's created with two sample records.`,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.unknownCommand(args[0])
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath, "path of the TOML config file")
	pf.StringVarP(&a.filePath, "file", "f", storage.DefaultPath, "storage file, must end with .txt")
	pf.StringVar(&a.logDir, "log-dir", "", "directory for log files")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(
		newListCmd(a),
		newViewAllCmd(a),
		newViewCmd(a),
		newFindCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newClearCmd(a),
		newDiffCmd(a),
		newInboxCmd(a),
	)
	return root
}

func main() {
	cmd := newRootCmd(os.Stdout)
	if err := cmd.Execute(); err != nil {
		msg := err.Error()
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		fmt.Fprintf(os.Stderr, "Error: %s", msg)
		os.Exit(1)
	}
}
