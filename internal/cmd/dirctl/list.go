package dirctl

import (
	"fmt"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/spf13/cobra"
)

type listOptions struct {
	orderBy     string
	page        int
	size        int
	filter      string
	filterScope string
	output      string
}

func (c *cli) newListCommand() *cobra.Command {
	opts := listOptions{size: directory.DefaultPageSize, filterScope: string(directory.FilterScopePage), output: formatTable}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of employees",
		Long: `Loads every employee, then sorts, pages, and filters them the way the
directory table does. With the default page filter scope only rows on the
selected page are matched.

Example:
  dirctl list --order-by "full_name desc" --size 10 --filter ann`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runList(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.orderBy, "order-by", opts.orderBy, `Ordering such as "full_name" or "email desc"`)
	flags.IntVar(&opts.page, "page", opts.page, "Zero-based page")
	flags.IntVar(&opts.size, "size", opts.size, "Rows per page")
	flags.StringVar(&opts.filter, "filter", opts.filter, "Case-insensitive name filter")
	flags.StringVar(&opts.filterScope, "filter-scope", opts.filterScope, "Filter scope: page or all")
	flags.StringVarP(&opts.output, "output", "o", opts.output, "Output format: table, json, or yaml")
	return cmd
}

func (c *cli) runList(cmd *cobra.Command, opts listOptions) error {
	if err := validateFormat(opts.output); err != nil {
		return err
	}
	if opts.size <= 0 || opts.size > directory.MaxPageSize {
		return fmt.Errorf("size must be between 1 and %d, got %d", directory.MaxPageSize, opts.size)
	}
	if opts.page < 0 {
		return fmt.Errorf("page must not be negative, got %d", opts.page)
	}
	scope, err := directory.ParseFilterScope(opts.filterScope)
	if err != nil {
		return err
	}
	sort, err := directory.ParseOrderBy(opts.orderBy)
	if err != nil {
		return err
	}

	sess, err := c.session(cmd.Context(), directory.Options{FilterScope: scope})
	if err != nil {
		return err
	}
	if err := sess.SetSort(sort); err != nil {
		return err
	}
	sess.SetPageSize(opts.size)
	sess.SetPage(opts.page)
	sess.SetFilter(opts.filter)
	return writeProjection(cmd.OutOrStdout(), opts.output, sess.View())
}
