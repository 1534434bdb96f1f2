package directory

import "fmt"

const (
	// ConfirmTitle is the delete prompt heading.
	ConfirmTitle = "Are you sure?"
	// ConfirmSubtitle is the delete prompt warning line.
	ConfirmSubtitle = "You cant undo this!"
)

// DeleteConfirmation guards deletion behind an explicit second action.
type DeleteConfirmation struct {
	Open     bool
	TargetID string
}

// Request records intent to delete id and opens the prompt.
func (c *DeleteConfirmation) Request(id string) {
	c.Open = true
	c.TargetID = id
}

// Cancel closes the prompt without touching any record.
func (c *DeleteConfirmation) Cancel() {
	c.Open = false
	c.TargetID = ""
}

// Confirm accepts the pending prompt for id and closes it. Confirming with no
// prompt open, or for a different id, fails and leaves the prompt as it was.
func (c *DeleteConfirmation) Confirm(id string) (string, error) {
	if !c.Open || c.TargetID == "" || c.TargetID != id {
		return "", fmt.Errorf("%w: %s", ErrDeleteNotConfirmed, id)
	}
	target := c.TargetID
	c.Cancel()
	return target, nil
}
