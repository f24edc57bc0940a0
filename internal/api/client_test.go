package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// fakeStore is an in-memory CredentialStore.
type fakeStore struct {
	access  string
	refresh string
	cleared bool
}

func (f *fakeStore) Load() (Credentials, error) {
	return Credentials{Access: f.access, Refresh: f.refresh}, nil
}

func (f *fakeStore) StoreAccess(token string) error {
	f.access = token
	return nil
}

func (f *fakeStore) Clear() error {
	f.cleared = true
	f.access, f.refresh = "", ""
	return nil
}

func testClient(t *testing.T, handler http.Handler, store CredentialStore) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, store), srv
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotReqID, gotAccept string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode([]any{})
	}), &fakeStore{access: "tok-1"})

	if _, err := client.Services(context.Background()); err != nil {
		t.Fatalf("Services: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want Bearer tok-1", gotAuth)
	}
	if gotReqID == "" {
		t.Error("X-Request-ID missing")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
}

func TestLanguageParam(t *testing.T) {
	var gotLang string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.URL.Query().Get("lang")
		json.NewEncoder(w).Encode([]any{})
	}), nil)
	client.SetLanguage("en")

	if _, err := client.Services(context.Background()); err != nil {
		t.Fatalf("Services: %v", err)
	}
	if gotLang != "en" {
		t.Errorf("lang = %q, want en", gotLang)
	}
}

func TestRefreshThenReplay(t *testing.T) {
	store := &fakeStore{access: "stale", refresh: "refresh-1"}
	calls := 0
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token/refresh/":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["refresh"] != "refresh-1" {
				t.Errorf("refresh body = %v", body)
			}
			json.NewEncoder(w).Encode(map[string]string{"access": "fresh"})
		case "/reservations/":
			calls++
			if r.Header.Get("Authorization") != "Bearer fresh" && calls > 1 {
				t.Errorf("replay carried %q", r.Header.Get("Authorization"))
			}
			if calls == 1 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode([]any{})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}), store)

	if _, err := client.Reservations(context.Background(), ReservationListOptions{}); err != nil {
		t.Fatalf("Reservations after refresh: %v", err)
	}
	if calls != 2 {
		t.Errorf("original request sent %d times, want 2", calls)
	}
	if store.access != "fresh" {
		t.Errorf("stored access = %q, want fresh", store.access)
	}
}

func TestRefreshFailureClearsSession(t *testing.T) {
	store := &fakeStore{access: "stale", refresh: "dead"}
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), store)

	_, err := client.Reservations(context.Background(), ReservationListOptions{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
	if !store.cleared {
		t.Error("failed refresh should clear the stored session")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{http.StatusForbidden, func(e error) bool { return errors.Is(e, ErrForbidden) }, "forbidden"},
		{http.StatusInternalServerError, func(e error) bool { return errors.Is(e, ErrServer) }, "server"},
		{http.StatusBadGateway, func(e error) bool { return errors.Is(e, ErrServer) }, "bad gateway"},
	}

	for _, c := range cases {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(c.status)
		}), nil)
		_, err := client.Services(context.Background())
		if !c.check(err) {
			t.Errorf("%s: got %v", c.name, err)
		}
	}
}

func TestValidationErrorCarriesDetail(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Dieser Termin ist bereits vergeben."})
	}), nil)

	err := client.CreateReservation(context.Background(), CreateReservationRequest{})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if ve.Detail != "Dieser Termin ist bereits vergeben." {
		t.Errorf("detail = %q, backend message must pass through verbatim", ve.Detail)
	}
}

func TestUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second, nil)
	_, err := client.Services(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("got %v, want ErrUnavailable", err)
	}
}

func TestLoginSkipsAuthAndRefresh(t *testing.T) {
	store := &fakeStore{access: "should-not-be-sent", refresh: "nope"}
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not carry a bearer token")
		}
		json.NewEncoder(w).Encode(LoginResponse{Access: "a", Refresh: "r"})
	}), store)

	resp, err := client.Login(context.Background(), "admin@example.ch", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Access != "a" || resp.Refresh != "r" {
		t.Errorf("token pair = %+v", resp)
	}
}

func TestCreateReservationExpects201(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}), nil)
	if err := client.CreateReservation(context.Background(), CreateReservationRequest{}); err != nil {
		t.Errorf("201 should be success, got %v", err)
	}
}
