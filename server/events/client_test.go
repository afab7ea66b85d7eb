package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, upstream http.Handler) *Client {
	t.Helper()

	api := httptest.NewServer(upstream)
	t.Cleanup(api.Close)

	return New(Config{BaseURL: api.URL}, api.Client())
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		status   int
		expected error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := client.GetGroup(context.Background(), Auth{SessionToken: "tok"}, "tampa-devs")
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestAPIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "username already taken"})
	}))

	_, err := client.GetGroup(context.Background(), Auth{SessionToken: "tok"}, "tampa-devs")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "username already taken", apiErr.Message)
	assert.Equal(t, "username already taken", apiErr.Error())
}

func TestCredentialForwarding(t *testing.T) {
	var (
		cookie        string
		authorization string
	)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(SessionCookieName); err == nil {
			cookie = c.Value
		}
		authorization = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(Group{ID: "g1"})
	}))

	_, err := client.GetGroup(context.Background(), Auth{SessionToken: "s3ss10n"}, "tampa-devs")
	require.NoError(t, err)
	assert.Equal(t, "s3ss10n", cookie)
	assert.Empty(t, authorization)

	cookie = ""
	_, err = client.GetGroup(context.Background(), Auth{BearerToken: "b34r3r"}, "tampa-devs")
	require.NoError(t, err)
	assert.Empty(t, cookie)
	assert.Equal(t, "Bearer b34r3r", authorization)
}

func TestAnonymousRequestsCarryNoCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Cookie"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]Group{})
	}))

	_, err := client.GetGroups(context.Background(), Auth{})
	require.NoError(t, err)
}

func TestGroupUpdateOmitsUnsetFields(t *testing.T) {
	var captured map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(Group{ID: "g1"})
	}))

	_, err := client.UpdateGroup(context.Background(), Auth{SessionToken: "tok"}, "g1", GroupUpdate{})
	require.NoError(t, err)
	assert.Empty(t, captured)
}
