package model

import "crmctl/internal/api"

// ListState is the customer list region.
type ListState struct {
	Term       string
	Rows       []api.CustomerSummary
	Selected   int
	Loading    bool
	Loaded     bool
	Failed     bool
	Generation uint64
}

// Begin starts a fetch for term and returns the generation the result must carry.
func (l *ListState) Begin(term string) uint64 {
	l.Term = term
	l.Loading = true
	l.Failed = false
	l.Generation++
	return l.Generation
}

// Apply replaces the rows with the result of fetch gen. Results from older
// generations are rejected and reported as false.
func (l *ListState) Apply(gen uint64, rows []api.CustomerSummary) bool {
	if gen != l.Generation {
		return false
	}
	l.Rows = rows
	l.Loading = false
	l.Loaded = true
	l.Failed = false
	l.clampSelection()
	return true
}

// Fail ends fetch gen without touching the rows. Older generations are ignored.
func (l *ListState) Fail(gen uint64) bool {
	if gen != l.Generation {
		return false
	}
	l.Loading = false
	l.Failed = true
	return true
}

// SelectedRow returns the highlighted customer, if any.
func (l *ListState) SelectedRow() (api.CustomerSummary, bool) {
	if l.Selected < 0 || l.Selected >= len(l.Rows) {
		return api.CustomerSummary{}, false
	}
	return l.Rows[l.Selected], true
}

// Move shifts the selection by delta, clamped to the rows.
func (l *ListState) Move(delta int) {
	l.Selected += delta
	l.clampSelection()
}

func (l *ListState) clampSelection() {
	if l.Selected >= len(l.Rows) {
		l.Selected = len(l.Rows) - 1
	}
	if l.Selected < 0 {
		l.Selected = 0
	}
}

// DetailState is the detail region. Customer is the active customer and is
// non-nil whenever the detail view is visible.
type DetailState struct {
	Customer   *api.Customer
	Selected   int
	Loading    bool
	Generation uint64
}

// ActiveID returns the active customer's identifier, or the empty ID.
func (d *DetailState) ActiveID() api.ID {
	if d.Customer == nil {
		return ""
	}
	return d.Customer.ID
}

// Begin starts a detail fetch and returns its generation.
func (d *DetailState) Begin() uint64 {
	d.Loading = true
	d.Generation++
	return d.Generation
}

// Apply installs c as the active customer if gen is current.
func (d *DetailState) Apply(gen uint64, c *api.Customer) bool {
	if gen != d.Generation {
		return false
	}
	if d.Customer == nil || d.Customer.ID != c.ID {
		d.Selected = 0
	}
	d.Customer = c
	d.Loading = false
	d.clampSelection()
	return true
}

// Fail ends fetch gen, keeping whatever customer was active.
func (d *DetailState) Fail(gen uint64) bool {
	if gen != d.Generation {
		return false
	}
	d.Loading = false
	return true
}

// Clear drops the active customer. Pending fetches are invalidated.
func (d *DetailState) Clear() {
	d.Customer = nil
	d.Selected = 0
	d.Loading = false
	d.Generation++
}

// Addresses returns the active customer's addresses.
func (d *DetailState) Addresses() []api.Address {
	if d.Customer == nil {
		return nil
	}
	return d.Customer.Addresses
}

// SelectedAddress returns the highlighted address, if any.
func (d *DetailState) SelectedAddress() (api.Address, bool) {
	addrs := d.Addresses()
	if d.Selected < 0 || d.Selected >= len(addrs) {
		return api.Address{}, false
	}
	return addrs[d.Selected], true
}

// Move shifts the address selection by delta.
func (d *DetailState) Move(delta int) {
	d.Selected += delta
	d.clampSelection()
}

func (d *DetailState) clampSelection() {
	n := len(d.Addresses())
	if d.Selected >= n {
		d.Selected = n - 1
	}
	if d.Selected < 0 {
		d.Selected = 0
	}
}
