package cli

import (
	"time"

	"github.com/zdzakic/booky/internal/api"
	"github.com/zdzakic/booky/internal/constants"
	"github.com/zdzakic/booky/internal/keyring"
	"github.com/zdzakic/booky/internal/models"
	"github.com/zdzakic/booky/internal/storage"
)

// Context is shared by every command. The settings snapshot is read once at
// startup; commands that change settings write through the store.
type Context struct {
	Store    *storage.Store
	Settings models.Settings

	// BaseURL from flag or environment; overrides the stored setting.
	BaseURL string
}

// apiBaseURL resolves the backend URL: flag/env beats stored setting beats default.
func (ctx *Context) apiBaseURL() string {
	if ctx.BaseURL != "" {
		return ctx.BaseURL
	}
	if ctx.Settings.BaseURL != "" {
		return ctx.Settings.BaseURL
	}
	return constants.DefaultBaseURL
}

// PublicClient builds a client without a session, for the booking flow.
func (ctx *Context) PublicClient() *api.Client {
	c := api.NewClient(ctx.apiBaseURL(), constants.RequestTimeoutSeconds*time.Second, nil)
	c.SetLanguage(ctx.Settings.Language)
	return c
}

// AuthedClient builds a client backed by the keyring session.
func (ctx *Context) AuthedClient() *api.Client {
	c := api.NewClient(ctx.apiBaseURL(), constants.RequestTimeoutSeconds*time.Second, keyring.Store{})
	c.SetLanguage(ctx.Settings.Language)
	return c
}
