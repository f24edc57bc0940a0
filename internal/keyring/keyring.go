package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/zdzakic/booky/internal/constants"
)

var (
	// ErrNotFound is returned when no session is stored in the keyring
	ErrNotFound = errors.New("no stored session found")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Session holds the tokens issued by the login endpoint. They live in the
// OS keyring, never on disk.
type Session struct {
	AccessToken  string
	RefreshToken string
}

// Get retrieves the stored session. Returns ErrNotFound when the user has
// never logged in (or has logged out).
func Get() (Session, error) {
	access, err := keyring.Get(constants.AppName, constants.KeyringAccessKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return Session{}, ErrNotFound
		}
		return Session{}, fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}

	// A missing refresh token is tolerated: the session simply cannot be
	// renewed and the next 401 forces a fresh login.
	refresh, err := keyring.Get(constants.AppName, constants.KeyringRefreshKey)
	if err != nil && err != keyring.ErrNotFound {
		return Session{}, fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}

	return Session{AccessToken: access, RefreshToken: refresh}, nil
}

// Set stores the session in the OS keyring, replacing any previous one.
func Set(s Session) error {
	if s.AccessToken == "" {
		return errors.New("access token cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringAccessKey, s.AccessToken); err != nil {
		return fmt.Errorf("failed to store access token in keyring: %w", err)
	}
	if s.RefreshToken != "" {
		if err := keyring.Set(constants.AppName, constants.KeyringRefreshKey, s.RefreshToken); err != nil {
			return fmt.Errorf("failed to store refresh token in keyring: %w", err)
		}
	}
	return nil
}

// SetAccessToken replaces only the access token, keeping the refresh token.
// Used after a transparent token refresh.
func SetAccessToken(token string) error {
	if token == "" {
		return errors.New("access token cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringAccessKey, token); err != nil {
		return fmt.Errorf("failed to store access token in keyring: %w", err)
	}
	return nil
}

// Delete removes the stored session from the OS keyring.
func Delete() error {
	err := keyring.Delete(constants.AppName, constants.KeyringAccessKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session from keyring: %w", err)
	}
	// Best effort: the refresh token may legitimately be absent.
	_ = keyring.Delete(constants.AppName, constants.KeyringRefreshKey)
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
