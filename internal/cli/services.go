package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/zdzakic/booky/internal/constants"
)

// ServicesCmd lists the bookable services, useful for scripting and sanity
// checks without opening the TUI.
type ServicesCmd struct{}

func (c *ServicesCmd) Run(ctx *Context) error {
	client := ctx.PublicClient()

	reqCtx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeoutSeconds*time.Second)
	defer cancel()

	services, err := client.Services(reqCtx)
	if err != nil {
		return err
	}

	for _, s := range services {
		fmt.Printf("%3d  %s\n", s.ID, s.Name(ctx.Settings.Language))
	}
	return nil
}
