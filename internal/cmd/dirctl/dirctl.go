// Package dirctl implements the operator CLI over the employee directory.
// Every command drives a directory.Session against the users service.
package dirctl

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/staffbook/internal/directory"
	entrypoint "github.com/louisbranch/staffbook/internal/platform/cmd"
	"github.com/louisbranch/staffbook/internal/platform/id"
	"github.com/louisbranch/staffbook/internal/platform/logging"
	"github.com/louisbranch/staffbook/internal/services/users/client"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// EnvPrefix namespaces dirctl environment variables.
const EnvPrefix = "STAFFBOOK_DIRCTL_"

// Config holds the persistent flag values shared by subcommands.
type Config struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:3004"`
	Verbose bool   `env:"VERBOSE"`
}

type cli struct {
	cfg    Config
	logger *zap.Logger
}

// NewRootCommand builds the dirctl command tree. Environment values seed
// the persistent flag defaults.
func NewRootCommand() (*cobra.Command, error) {
	c := &cli{logger: zap.NewNop()}
	if err := entrypoint.ParseConfig(&c.cfg, EnvPrefix); err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:           "dirctl",
		Short:         "Inspect and edit the employee directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !c.cfg.Verbose {
				return nil
			}
			logger, err := logging.New(entrypoint.ServiceDirctl, true)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = c.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&c.cfg.BaseURL, "base-url", c.cfg.BaseURL, "Users service base URL")
	root.PersistentFlags().BoolVarP(&c.cfg.Verbose, "verbose", "v", c.cfg.Verbose, "Log requests to stderr")

	root.AddCommand(c.newListCommand(), c.newAddCommand(), c.newDeleteCommand())
	return root, nil
}

// session opens a loaded directory session against the configured service.
func (c *cli) session(ctx context.Context, opts directory.Options) (*directory.Session, error) {
	usersClient, err := client.New(strings.TrimSpace(c.cfg.BaseURL))
	if err != nil {
		return nil, err
	}
	if opts.NewID == nil {
		opts.NewID = id.NewID
	}
	sess := directory.NewSession(usersClient, opts)
	if err := sess.Load(ctx); err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	c.logger.Debug("loaded records",
		zap.String("users_url", usersClient.UsersURL()),
		zap.Int("count", len(sess.Records())),
	)
	return sess, nil
}
