// internal/cli/cli.go
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kblast/internal/cmdutil"
	"kblast/internal/config"
	"kblast/internal/output"
	"kblast/internal/version"
)

// Handler runs one subcommand with the effective configuration.
type Handler func(ctx context.Context, c config.Config, stdout, stderr io.Writer) error

// Handlers are the command implementations wired into the tree.
type Handlers struct {
	Search Handler
	Index  Handler
	Config Handler
}

// NewRootCmd builds the kblast command tree around one viper instance.
func NewRootCmd(h Handlers, v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:   "kblast",
		Short: "Ungapped seed-and-extend DNA similarity search",
		Long: `kblast indexes a FASTA database of reference sequences with 2-bit packed
k-mers, seeds every query k-mer against it, extends seeds with an X-drop
ungapped extension and reports the best non-overlapping hits per query.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cmdutil.Exit(cmdutil.ExitUsage, err)
	})

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (toml, yaml or json)")
	pf.BoolP("quiet", "q", false, "only log errors")
	pf.BoolP("verbose", "V", false, "log progress information")
	pf.Bool("progress", false, "show a progress bar on stderr")

	root.AddCommand(
		newSearchCmd(h.Search, v),
		newIndexCmd(h.Index, v),
		newConfigCmd(h.Config, v),
		newDocsCmd(root),
		newVersionCmd(),
	)
	return root
}

func addSearchFlags(fs *pflag.FlagSet) {
	fs.IntP("k", "k", config.DefaultK, "k-mer size (1-16)")
	fs.Int("top", config.DefaultTop, "hits reported per query (0 = all)")
	fs.StringP("output", "o", config.DefaultOutput, "output format: "+strings.Join(output.Formats, " | "))
	fs.Bool("no-header", false, "suppress the TSV header line")
	fs.Int("no-match-exit-code", 0, "exit code when no query has a hit")
}

func newSearchCmd(h Handler, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search query sequences against a database",
		Example: `  kblast search --db refs.fa --query reads.fa
  kblast search --db refs.fa.gz --query reads.fa -k 8 --top 0 -o tsv
  cat reads.fa | kblast search --db refs.fa --query - -o jsonl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := load(cmd, v)
			if err != nil {
				return err
			}
			if err := c.ValidateSearch(); err != nil {
				return cmdutil.Exit(cmdutil.ExitUsage, err)
			}
			return classify(h(cmd.Context(), c, cmd.OutOrStdout(), cmd.ErrOrStderr()))
		},
	}
	fs := cmd.Flags()
	fs.String("db", "", "database FASTA file, plain or gzipped ('-' for stdin)")
	fs.String("query", "", "query FASTA file, plain or gzipped ('-' for stdin)")
	addSearchFlags(fs)
	return cmd
}

func newIndexCmd(h Handler, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the k-mer index of a database and report its statistics",
		Example: `  kblast index --db refs.fa -k 11
  kblast index --db refs.fa -k 4 --dump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := load(cmd, v)
			if err != nil {
				return err
			}
			if c.DB == "" {
				return cmdutil.Usagef("--db is required")
			}
			if err := c.Validate(); err != nil {
				return cmdutil.Exit(cmdutil.ExitUsage, err)
			}
			return classify(h(cmd.Context(), c, cmd.OutOrStdout(), cmd.ErrOrStderr()))
		},
	}
	fs := cmd.Flags()
	fs.String("db", "", "database FASTA file, plain or gzipped ('-' for stdin)")
	fs.IntP("k", "k", config.DefaultK, "k-mer size (1-16)")
	fs.StringP("output", "o", config.DefaultOutput, "output format: text | json | jsonl")
	fs.Bool("dump", false, "list every indexed k-mer with its occurrence count")
	return cmd
}

func newConfigCmd(h Handler, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := load(cmd, v)
			if err != nil {
				return err
			}
			return classify(h(cmd.Context(), c, cmd.OutOrStdout(), cmd.ErrOrStderr()))
		},
	}
	fs := cmd.Flags()
	fs.String("db", "", "database FASTA file")
	fs.String("query", "", "query FASTA file")
	addSearchFlags(fs)
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:    "docs",
		Short:  "Write markdown documentation for every command",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root.DisableAutoGenTag = true
			if err := doc.GenMarkdownTree(root, dir); err != nil {
				return cmdutil.Exit(cmdutil.ExitRuntime, errors.Wrapf(err, "write docs to %s", dir))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "kblast version %s\n", version.Version)
			return err
		},
	}
}

// load binds the invoked command's flags, merges --config and decodes.
func load(cmd *cobra.Command, v *viper.Viper) (config.Config, error) {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, cmdutil.Exit(cmdutil.ExitUsage, err)
	}
	path, _ := cmd.Flags().GetString("config")
	if err := config.ReadFile(v, path); err != nil {
		return config.Config{}, cmdutil.Exit(cmdutil.ExitUsage, err)
	}
	c, err := config.Load(v)
	if err != nil {
		return c, cmdutil.Exit(cmdutil.ExitUsage, err)
	}
	return c, nil
}

// classify leaves coded and canceled errors alone; anything else from a
// handler is a runtime failure.
func classify(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}
	var ee *cmdutil.ExitError
	if errors.As(err, &ee) {
		return err
	}
	return cmdutil.Exit(cmdutil.ExitRuntime, err)
}

// Execute runs root on argv. Errors raised by cobra itself (unknown command,
// bad arguments) come back as usage errors.
func Execute(ctx context.Context, root *cobra.Command, argv []string, stdout, stderr io.Writer) error {
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}
	var ee *cmdutil.ExitError
	if errors.As(err, &ee) {
		return err
	}
	return cmdutil.Exit(cmdutil.ExitUsage, err)
}
