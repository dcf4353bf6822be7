// Package mockbackend is an in-memory implementation of the customer REST API.
//
// It follows the same routes, status codes and {message}/{error} bodies as the
// production backend so gateway and front-end tests can run end to end without
// a database.
package mockbackend

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

type customer struct {
	ID        int
	FirstName string
	LastName  string
	Phone     string
}

type address struct {
	ID         int
	CustomerID int
	Street     string
	City       string
	State      string
	PinCode    string
}

type addressFields struct {
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PinCode       string `json:"pin_code"`
}

func (a addressFields) complete() bool {
	return a.StreetAddress != "" && a.City != "" && a.State != "" && a.PinCode != ""
}

type customerBody struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	addressFields
	AdditionalAddresses []addressFields `json:"additional_addresses"`
}

type addressBody struct {
	CustomerID json.Number `json:"customer_id"`
	addressFields
}

// Backend holds customers and addresses in memory.
type Backend struct {
	mu            sync.Mutex
	customers     map[int]*customer
	addresses     map[int]*address
	nextCustomer  int
	nextAddress   int
	requests      atomic.Int64
	lastRequestID atomic.Value
	router        chi.Router
}

// New returns an empty backend. Identifiers start at 1.
func New() *Backend {
	b := &Backend{
		customers:    make(map[int]*customer),
		addresses:    make(map[int]*address),
		nextCustomer: 1,
		nextAddress:  1,
	}

	r := chi.NewRouter()
	r.Use(b.countRequests)
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", b.listCustomers)
		r.Post("/", b.createCustomer)
		r.Get("/{id}", b.getCustomer)
		r.Put("/{id}", b.updateCustomer)
		r.Delete("/{id}", b.deleteCustomer)
	})
	r.Route("/addresses", func(r chi.Router) {
		r.Post("/", b.createAddress)
		r.Get("/{id}", b.getAddress)
		r.Put("/{id}", b.updateAddress)
		r.Delete("/{id}", b.deleteAddress)
	})
	b.router = r
	return b
}

// ServeHTTP makes Backend an http.Handler.
func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

// Requests returns how many requests have been served.
func (b *Backend) Requests() int { return int(b.requests.Load()) }

// LastRequestID returns the X-Request-ID header of the latest request.
func (b *Backend) LastRequestID() string {
	v, _ := b.lastRequestID.Load().(string)
	return v
}

func (b *Backend) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		b.lastRequestID.Store(r.Header.Get("X-Request-ID"))
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

func (b *Backend) addressesOf(customerID int) []*address {
	var out []*address
	for _, a := range b.addresses {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (b *Backend) insertAddress(customerID int, f addressFields) {
	b.addresses[b.nextAddress] = &address{
		ID:         b.nextAddress,
		CustomerID: customerID,
		Street:     f.StreetAddress,
		City:       f.City,
		State:      f.State,
		PinCode:    f.PinCode,
	}
	b.nextAddress++
}

func addressJSON(a *address) map[string]interface{} {
	return map[string]interface{}{
		"address_id":     a.ID,
		"customer_id":    a.CustomerID,
		"street_address": a.Street,
		"city":           a.City,
		"state":          a.State,
		"pin_code":       a.PinCode,
	}
}

// matches mirrors the reference backend: case-insensitive substring over
// names, phone and every address's city, state and pin code.
func matches(c *customer, addrs []*address, term string) bool {
	if term == "" {
		return true
	}
	fields := []string{c.FirstName, c.LastName, c.Phone}
	for _, a := range addrs {
		fields = append(fields, a.City, a.State, a.PinCode)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func (b *Backend) listCustomers(w http.ResponseWriter, r *http.Request) {
	term := strings.ToLower(r.URL.Query().Get("search"))

	b.mu.Lock()
	defer b.mu.Unlock()

	ids := make([]int, 0, len(b.customers))
	for id := range b.customers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	rows := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		c := b.customers[id]
		addrs := b.addressesOf(id)
		if !matches(c, addrs, term) {
			continue
		}
		rows = append(rows, map[string]interface{}{
			"customer_id":   c.ID,
			"first_name":    c.FirstName,
			"last_name":     c.LastName,
			"phone_number":  c.Phone,
			"address_count": len(addrs),
		})
	}
	writeJSON(w, http.StatusOK, rows)
}

func (b *Backend) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)

	b.mu.Lock()
	defer b.mu.Unlock()

	c, found := b.customers[id]
	if !ok || !found {
		writeError(w, http.StatusNotFound, "Customer not found")
		return
	}
	addrs := make([]map[string]interface{}, 0)
	for _, a := range b.addressesOf(id) {
		addrs = append(addrs, addressJSON(a))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"customer_id":  c.ID,
		"first_name":   c.FirstName,
		"last_name":    c.LastName,
		"phone_number": c.Phone,
		"addresses":    addrs,
	})
}

func (b *Backend) createCustomer(w http.ResponseWriter, r *http.Request) {
	var body customerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if body.FirstName == "" || body.LastName == "" || body.PhoneNumber == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	c := &customer{ID: b.nextCustomer, FirstName: body.FirstName, LastName: body.LastName, Phone: body.PhoneNumber}
	b.customers[c.ID] = c
	b.nextCustomer++
	if body.addressFields.complete() {
		b.insertAddress(c.ID, body.addressFields)
	}
	for _, extra := range body.AdditionalAddresses {
		if extra.complete() {
			b.insertAddress(c.ID, extra)
		}
	}
	writeMessage(w, http.StatusCreated, "Customer created successfully")
}

func (b *Backend) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	var body customerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	c, found := b.customers[id]
	if !ok || !found {
		writeError(w, http.StatusNotFound, "Customer not found")
		return
	}
	c.FirstName, c.LastName, c.Phone = body.FirstName, body.LastName, body.PhoneNumber
	writeMessage(w, http.StatusOK, "Customer updated successfully")
}

func (b *Backend) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, found := b.customers[id]; !ok || !found {
		writeError(w, http.StatusNotFound, "Customer not found")
		return
	}
	for _, a := range b.addressesOf(id) {
		delete(b.addresses, a.ID)
	}
	delete(b.customers, id)
	writeMessage(w, http.StatusOK, "Customer deleted successfully")
}

func (b *Backend) createAddress(w http.ResponseWriter, r *http.Request) {
	var body addressBody
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	customerID, err := strconv.Atoi(body.CustomerID.String())
	if err != nil || !body.addressFields.complete() {
		writeError(w, http.StatusBadRequest, "Missing required address fields")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, found := b.customers[customerID]; !found {
		writeError(w, http.StatusNotFound, "Customer not found")
		return
	}
	b.insertAddress(customerID, body.addressFields)
	writeMessage(w, http.StatusCreated, "Address added successfully")
}

func (b *Backend) getAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)

	b.mu.Lock()
	defer b.mu.Unlock()

	a, found := b.addresses[id]
	if !ok || !found {
		writeError(w, http.StatusNotFound, "Address not found")
		return
	}
	writeJSON(w, http.StatusOK, addressJSON(a))
}

func (b *Backend) updateAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	var body addressBody
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	a, found := b.addresses[id]
	if !ok || !found {
		writeError(w, http.StatusNotFound, "Address not found")
		return
	}
	a.Street, a.City, a.State, a.PinCode = body.StreetAddress, body.City, body.State, body.PinCode
	writeMessage(w, http.StatusOK, "Address updated successfully")
}

func (b *Backend) deleteAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, found := b.addresses[id]; !ok || !found {
		writeError(w, http.StatusNotFound, "Address not found")
		return
	}
	delete(b.addresses, id)
	writeMessage(w, http.StatusOK, "Address deleted successfully")
}
