package model

import (
	"crmctl/internal/api"
	"crmctl/pkg/logging"
)

// Action is what a row action asks for.
type Action int

const (
	ActionView Action = iota
	ActionEdit
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionView:
		return "view"
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Entity is the resource type an action or mutation targets.
type Entity int

const (
	EntityCustomer Entity = iota
	EntityAddress
)

func (e Entity) String() string {
	if e == EntityAddress {
		return "address"
	}
	return "customer"
}

// Op is a mutating gateway operation.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// ---- Row actions ----

// ActionMsg is a row action bound to an entity identifier at render time.
type ActionMsg struct {
	Action Action
	Entity Entity
	ID     api.ID
}

// ---- Gateway results ----

// CustomersLoadedMsg carries a list fetch result tagged with the generation it was issued under.
type CustomersLoadedMsg struct {
	Generation uint64
	Term       string
	Rows       []api.CustomerSummary
	Err        error
}

// CustomerDetailLoadedMsg carries a detail fetch result.
type CustomerDetailLoadedMsg struct {
	Generation uint64
	ID         api.ID
	Customer   *api.Customer
	Err        error
}

// CustomerLoadedForEditMsg carries the customer the form was asked to edit.
type CustomerLoadedForEditMsg struct {
	ID       api.ID
	Customer *api.Customer
	Err      error
}

// AddressLoadedForEditMsg carries the address the address form was asked to edit.
type AddressLoadedForEditMsg struct {
	ID      api.ID
	Address *api.Address
	Err     error
}

// MutationResultMsg reports a create, update or delete. CustomerID is the
// customer to re-open for address mutations.
type MutationResultMsg struct {
	Op         Op
	Entity     Entity
	ID         api.ID
	CustomerID api.ID
	Result     api.Result
	Err        error
}

// ---- Search ----

// SearchDebounceMsg fires after the debounce window for keystroke Seq.
type SearchDebounceMsg struct {
	Seq  uint64
	Term string
}

// ---- Misc overlay / status bar ----

type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

type ClearStatusBarMsg struct{}
