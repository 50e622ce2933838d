package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientRoundTrips(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.RequestURI())
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/person":
			_, _ = w.Write([]byte(`{"persons":[{"id":"p1","slug":"jane-aaaaaa","name":"Jane","messages":[{"id":"m1","content":"hi","emoji":"sad","expectedResponse":null,"done":false}]}]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/person":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, _ = w.Write([]byte(`{"persons":[{"id":"p2","slug":"pookie-bbbbbb","name":"` + body["name"] + `","messages":[]}]}`))
		case r.Method == http.MethodDelete:
			_, _ = w.Write([]byte(`{"success":true}`))
		case r.Method == http.MethodPatch:
			_, _ = w.Write([]byte(`{"success":true,"message":{"id":"m1","done":true}}`))
		}
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL+"/", "tok", srv.Client())
	ctx := context.Background()

	persons, err := client.ListPersons(ctx)
	require.NoError(t, err)
	require.Len(t, persons, 1)
	assert.Nil(t, persons[0].Messages[0].ExpectedResponse)

	created, err := client.CreatePerson(ctx, "Pookie")
	require.NoError(t, err)
	assert.Equal(t, "Pookie", created.Name)

	require.NoError(t, client.DeletePerson(ctx, "jane-aaaaaa"))

	msg, err := client.ResolveMessage(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, msg.Done)

	assert.Equal(t, []string{
		"GET /api/person",
		"POST /api/person",
		"DELETE /api/person?slug=jane-aaaaaa",
		"PATCH /api/message?id=m1",
	}, seen)
}

func TestHTTPClientDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":"forbidden","message":"forbidden"}}`))
	}))
	defer srv.Close()

	err := NewHTTPClient(srv.URL, "tok", nil).DeletePerson(context.Background(), "x")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "forbidden", apiErr.Code)
}
