package keyring

import "github.com/zdzakic/booky/internal/api"

// Store adapts the OS keyring to the API client's CredentialStore.
type Store struct{}

func (Store) Load() (api.Credentials, error) {
	s, err := Get()
	if err != nil {
		return api.Credentials{}, err
	}
	return api.Credentials{Access: s.AccessToken, Refresh: s.RefreshToken}, nil
}

func (Store) StoreAccess(token string) error {
	return SetAccessToken(token)
}

func (Store) Clear() error {
	err := Delete()
	if err == ErrNotFound {
		return nil
	}
	return err
}
