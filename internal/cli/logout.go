package cli

import (
	"fmt"

	"github.com/zdzakic/booky/internal/keyring"
)

// LogoutCmd drops the stored session.
type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	err := keyring.Delete()
	if err == keyring.ErrNotFound {
		fmt.Println("No active session.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	fmt.Println("Logged out.")
	return nil
}
