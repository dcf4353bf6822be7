package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crmctl/internal/testing/mockbackend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, opts...)
	require.NoError(t, err)
	return c
}

func janeDoe() CustomerInput {
	return CustomerInput{
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "555",
		AddressFields: AddressFields{
			StreetAddress: "1 A St",
			City:          "X",
			State:         "Y",
			PinCode:       "9",
		},
	}
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:5000", "://nope"} {
		_, err := NewClient(raw)
		assert.Error(t, err, raw)
	}
}

func TestListCustomers_SendsSearchParameter(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		wantQuery string
	}{
		{name: "empty term still sends parameter", term: "", wantQuery: "search="},
		{name: "plain term", term: "ann", wantQuery: "search=ann"},
		{name: "term is escaped", term: "jane doe&x", wantQuery: "search=jane+doe%26x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery, gotPath string
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery, gotPath = r.URL.RawQuery, r.URL.Path
				_, _ = io.WriteString(w, "[]")
			}))

			rows, err := c.ListCustomers(context.Background(), tt.term)
			require.NoError(t, err)
			assert.NotNil(t, rows)
			assert.Empty(t, rows)
			assert.Equal(t, "/customers", gotPath)
			assert.Equal(t, tt.wantQuery, gotQuery)
		})
	}
}

func TestListCustomers_DecodesNumericAndStringIDs(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"customer_id": 7, "first_name": "Ann", "last_name": "Lee", "phone_number": "1", "address_count": 1},
			{"customer_id": "c-9", "first_name": "Bo", "last_name": "Ng", "phone_number": "2", "address_count": 3}
		]`)
	}))

	rows, err := c.ListCustomers(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, ID("7"), rows[0].ID)
	assert.Equal(t, "Ann Lee", rows[0].FullName())
	assert.False(t, rows[0].HasMultipleAddresses())

	assert.Equal(t, ID("c-9"), rows[1].ID)
	assert.True(t, rows[1].HasMultipleAddresses())
}

func TestListCustomers_ServerErrorAndBadJSON(t *testing.T) {
	t.Run("non-2xx is a server error", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"error":"db down"}`)
		}))
		_, err := c.ListCustomers(context.Background(), "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrServer))
		assert.Contains(t, err.Error(), "db down")
	})

	t.Run("2xx with garbage is a transport error", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "<html>")
		}))
		_, err := c.ListCustomers(context.Background(), "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTransport))
	})
}

func TestClient_AgainstMockBackend(t *testing.T) {
	backend := mockbackend.New()
	c := newTestClient(t, backend)
	ctx := context.Background()

	res, err := c.CreateCustomer(ctx, janeDoe())
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, http.StatusCreated, res.Status)
	assert.Equal(t, "Customer created successfully", res.Message)
	assert.NoError(t, res.Err())

	rows, err := c.ListCustomers(ctx, "jane")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].AddressCount)
	id := rows[0].ID

	detail, err := c.GetCustomer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", detail.FullName())
	require.Len(t, detail.Addresses, 1)
	assert.Equal(t, "1 A St, X, Y - 9", detail.Addresses[0].Line())

	res, err = c.CreateAddress(ctx, AddressInput{
		CustomerID:    id,
		AddressFields: AddressFields{StreetAddress: "2 B St", City: "Z", State: "W", PinCode: "8"},
	})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, "Address added successfully", res.Message)

	rows, err = c.ListCustomers(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].HasMultipleAddresses())

	detail, err = c.GetCustomer(ctx, id)
	require.NoError(t, err)
	require.Len(t, detail.Addresses, 2)
	second := detail.Addresses[1]

	addr, err := c.GetAddress(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Z", addr.City)

	res, err = c.UpdateAddress(ctx, second.ID, AddressInput{
		CustomerID:    id,
		AddressFields: AddressFields{StreetAddress: "2 B St", City: "Q", State: "W", PinCode: "8"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Address updated successfully", res.Message)

	res, err = c.DeleteAddress(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, res.OK)

	in := janeDoe()
	in.FirstName = "Janet"
	res, err = c.UpdateCustomer(ctx, id, in)
	require.NoError(t, err)
	assert.Equal(t, "Customer updated successfully", res.Message)

	res, err = c.DeleteCustomer(ctx, id)
	require.NoError(t, err)
	assert.True(t, res.OK)

	_, err = c.GetCustomer(ctx, id)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCreateCustomer_SendsAdditionalAddresses(t *testing.T) {
	backend := mockbackend.New()
	c := newTestClient(t, backend)
	ctx := context.Background()

	in := janeDoe()
	in.AdditionalAddresses = []AddressFields{
		{StreetAddress: "2 B St", City: "P", State: "Q", PinCode: "1"},
		{StreetAddress: "3 C St", City: "R", State: "S", PinCode: "2"},
	}
	res, err := c.CreateCustomer(ctx, in)
	require.NoError(t, err)
	require.True(t, res.OK)

	rows, err := c.ListCustomers(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].AddressCount)
}

func TestCreateAddress_OpaqueCustomerID(t *testing.T) {
	var body map[string]interface{}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"message":"Address added successfully"}`)
	}))

	for _, id := range []ID{"007", "+5"} {
		res, err := c.CreateAddress(context.Background(), AddressInput{
			CustomerID:    id,
			AddressFields: janeDoe().AddressFields,
		})
		require.NoError(t, err, id)
		assert.True(t, res.OK)
		assert.Equal(t, string(id), body["customer_id"])

		_, err = c.UpdateAddress(context.Background(), "1", AddressInput{
			CustomerID:    id,
			AddressFields: janeDoe().AddressFields,
		})
		require.NoError(t, err, id)
		assert.Equal(t, string(id), body["customer_id"])
	}
}

func TestUpdateCustomer_DropsAdditionalAddresses(t *testing.T) {
	var body map[string]interface{}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"message":"Customer updated successfully"}`)
	}))

	in := janeDoe()
	in.AdditionalAddresses = []AddressFields{{StreetAddress: "s", City: "c", State: "st", PinCode: "p"}}
	_, err := c.UpdateCustomer(context.Background(), "4", in)
	require.NoError(t, err)

	assert.NotContains(t, body, "additional_addresses")
	assert.Equal(t, "Jane", body["first_name"])
	assert.Equal(t, "1 A St", body["street_address"])
}

func TestMutate_ResultMapping(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantOK    bool
		wantMsg   string
		transport bool
	}{
		{name: "success message", status: http.StatusOK, body: `{"message":"Customer deleted successfully"}`, wantOK: true, wantMsg: "Customer deleted successfully"},
		{name: "success with empty body", status: http.StatusNoContent, body: "", wantOK: true},
		{name: "error field", status: http.StatusBadRequest, body: `{"error":"Missing required fields"}`, wantMsg: "Missing required fields"},
		{name: "message on failure", status: http.StatusNotFound, body: `{"message":"Customer not found"}`, wantMsg: "Customer not found"},
		{name: "undecodable failure falls back to status text", status: http.StatusBadGateway, body: "<html>oops</html>", wantMsg: "Bad Gateway"},
		{name: "undecodable success is a transport error", status: http.StatusOK, body: "not json", transport: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))

			res, err := c.DeleteCustomer(context.Background(), "1")
			if tt.transport {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrTransport))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, res.OK)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.wantMsg, res.Message)
			if !tt.wantOK {
				assert.True(t, errors.Is(res.Err(), ErrServer))
			}
		})
	}
}

func TestClient_Headers(t *testing.T) {
	var get, post http.Header
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			get = r.Header.Clone()
			_, _ = io.WriteString(w, "[]")
			return
		}
		post = r.Header.Clone()
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	}))
	c.newRequestID = func() string { return "req-1" }

	_, err := c.ListCustomers(context.Background(), "")
	require.NoError(t, err)
	_, err = c.CreateCustomer(context.Background(), janeDoe())
	require.NoError(t, err)

	assert.Equal(t, "application/json", get.Get("Accept"))
	assert.Empty(t, get.Get("Content-Type"))
	assert.Equal(t, "req-1", get.Get("X-Request-ID"))
	assert.Equal(t, "application/json", post.Get("Content-Type"))
}

func TestClient_RequestIDReachesBackend(t *testing.T) {
	backend := mockbackend.New()
	c := newTestClient(t, backend)

	_, err := c.ListCustomers(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, backend.LastRequestID())
	assert.Equal(t, 1, backend.Requests())
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestWithHTTPClient_RoutesThroughGivenTransport(t *testing.T) {
	var seen []string
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		return http.DefaultTransport.RoundTrip(r)
	})}
	c := newTestClient(t, mockbackend.New(), WithHTTPClient(hc))

	_, err := c.CreateCustomer(context.Background(), janeDoe())
	require.NoError(t, err)
	_, err = c.ListCustomers(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"POST /customers", "GET /customers"}, seen)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(url)
	require.NoError(t, err)

	_, err = c.ListCustomers(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "list customers", te.Op)

	_, err = c.CreateCustomer(context.Background(), janeDoe())
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestClient_Timeout(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}), WithTimeout(20*time.Millisecond))

	_, err := c.ListCustomers(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestClient_EmptyIDNeverHitsNetwork(t *testing.T) {
	backend := mockbackend.New()
	c := newTestClient(t, backend)
	ctx := context.Background()

	_, err := c.GetCustomer(ctx, "")
	assert.True(t, errors.Is(err, ErrValidation))
	_, err = c.UpdateCustomer(ctx, "", janeDoe())
	assert.True(t, errors.Is(err, ErrValidation))
	_, err = c.DeleteCustomer(ctx, "")
	assert.True(t, errors.Is(err, ErrValidation))
	_, err = c.GetAddress(ctx, "")
	assert.True(t, errors.Is(err, ErrValidation))
	_, err = c.UpdateAddress(ctx, "", AddressInput{})
	assert.True(t, errors.Is(err, ErrValidation))
	_, err = c.DeleteAddress(ctx, "")
	assert.True(t, errors.Is(err, ErrValidation))

	assert.Zero(t, backend.Requests())
}

func TestGetAddress_NotFound(t *testing.T) {
	c := newTestClient(t, mockbackend.New())

	_, err := c.GetAddress(context.Background(), "42")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "server returned 404: Address not found", err.Error())
}
