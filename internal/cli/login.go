package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/zdzakic/booky/internal/constants"
	"github.com/zdzakic/booky/internal/keyring"
	"github.com/zdzakic/booky/internal/logger"
	"github.com/zdzakic/booky/internal/validation"
)

// LoginCmd exchanges admin credentials for a token pair and stores it in the
// OS keyring. The password is never persisted.
type LoginCmd struct {
	Email string `short:"e" help:"Admin email. Prompted for when omitted."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}

	email := c.Email
	var password string

	fields := []huh.Field{}
	if email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(&email))
	}
	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password))

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return err
	}

	if result := validation.ValidateLogin(email, password); !result.Valid() {
		return fmt.Errorf("%s", result.Errors[0].Message)
	}

	client := ctx.PublicClient()
	reqCtx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeoutSeconds*time.Second)
	defer cancel()

	resp, err := client.Login(reqCtx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := keyring.Set(keyring.Session{
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
	}); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	logger.Info("Logged in", "email", email)
	fmt.Printf("Logged in as %s\n", resp.User.Email)
	return nil
}
