package cli

import (
	"fmt"
)

// LangCmd shows or changes the display language for service names and
// backend messages.
type LangCmd struct {
	Language string `arg:"" optional:"" help:"Language to switch to (de|en)." enum:"de,en,"`
}

func (c *LangCmd) Run(ctx *Context) error {
	if c.Language == "" {
		fmt.Println(ctx.Settings.Language)
		return nil
	}

	ctx.Settings.Language = c.Language
	if err := ctx.Store.SaveSettings(ctx.Settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("Language set to %s.\n", c.Language)
	return nil
}
