package dirctl

import (
	"fmt"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/spf13/cobra"
)

type addOptions struct {
	values         directory.FormValues
	createResponse string
}

func (c *cli) newAddCommand() *cobra.Command {
	opts := addOptions{createResponse: string(directory.CreateResponseRecord)}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an employee",
		Long: `Creates an employee through the users service with a fresh id.

Example:
  dirctl add --name "Ann Lee" --email ann@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runAdd(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.values.FullName, "name", "", "Full name")
	flags.StringVar(&opts.values.Address, "address", "", "Address")
	flags.StringVar(&opts.values.PhoneNumber, "phone", "", "Phone number")
	flags.StringVar(&opts.values.Email, "email", "", "Email")
	flags.StringVar(&opts.createResponse, "create-response", opts.createResponse, "Expected response body: record or list")
	return cmd
}

func (c *cli) runAdd(cmd *cobra.Command, opts addOptions) error {
	mode, err := directory.ParseCreateResponseMode(opts.createResponse)
	if err != nil {
		return err
	}
	sess, err := c.session(cmd.Context(), directory.Options{CreateResponseMode: mode})
	if err != nil {
		return err
	}
	sess.OpenCreate()
	fields := map[directory.Field]string{
		directory.FieldFullName:    opts.values.FullName,
		directory.FieldAddress:     opts.values.Address,
		directory.FieldPhoneNumber: opts.values.PhoneNumber,
		directory.FieldEmail:       opts.values.Email,
	}
	for _, field := range directory.Fields() {
		if err := sess.SetField(string(field), fields[field]); err != nil {
			return err
		}
	}
	record, err := sess.Submit(cmd.Context())
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", record.FullName, record.ID)
	return err
}
