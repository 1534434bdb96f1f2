package dirctl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/spf13/cobra"
)

func (c *cli) newDeleteCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an employee after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDelete(cmd, args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func (c *cli) runDelete(cmd *cobra.Command, targetID string, yes bool) error {
	sess, err := c.session(cmd.Context(), directory.Options{})
	if err != nil {
		return err
	}
	if err := sess.RequestDelete(targetID); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !yes {
		confirmed, err := confirm(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		if !confirmed {
			sess.CancelDelete()
			_, err := fmt.Fprintln(out, "aborted")
			return err
		}
	}
	if err := sess.ConfirmDelete(cmd.Context(), targetID); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	_, err = fmt.Fprintf(out, "deleted %s\n", targetID)
	return err
}

// confirm asks the delete prompt question. Only y or yes confirms; end of
// input declines.
func confirm(in io.Reader, out io.Writer) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s %s [y/N]: ", directory.ConfirmTitle, directory.ConfirmSubtitle); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
