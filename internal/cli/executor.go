package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"crmctl/internal/api"
	"crmctl/pkg/logging"

	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

const cliSubsystem = "CLI"

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", s)
	}
}

// ExecutorOptions contains options for command execution
type ExecutorOptions struct {
	Format OutputFormat
	Quiet  bool
	Out    io.Writer
}

// Executor runs one gateway operation per CLI command and prints the result.
type Executor struct {
	gw      api.Gateway
	options ExecutorOptions
}

// NewExecutor creates an executor writing to options.Out, or stdout.
func NewExecutor(gw api.Gateway, options ExecutorOptions) *Executor {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	return &Executor{gw: gw, options: options}
}

// ListCustomers prints the customers matching search.
func (e *Executor) ListCustomers(ctx context.Context, search string) error {
	rows, err := e.gw.ListCustomers(ctx, search)
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}
	logging.Debug(cliSubsystem, "Listed %d customers (search=%q)", len(rows), search)

	if e.options.Format != OutputFormatTable {
		if rows == nil {
			rows = []api.CustomerSummary{}
		}
		return e.encode(rows)
	}
	if len(rows) == 0 {
		fmt.Fprintln(e.options.Out, text.FgYellow.Sprint("No customers found"))
		return nil
	}
	e.renderCustomerTable(rows)
	return nil
}

// GetCustomer prints one customer with its addresses.
func (e *Executor) GetCustomer(ctx context.Context, id api.ID) error {
	c, err := e.gw.GetCustomer(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get customer %s: %w", id, err)
	}
	if e.options.Format != OutputFormatTable {
		return e.encode(c)
	}
	e.renderCustomerDetail(c)
	return nil
}

// GetAddress prints one address.
func (e *Executor) GetAddress(ctx context.Context, id api.ID) error {
	a, err := e.gw.GetAddress(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get address %s: %w", id, err)
	}
	if e.options.Format != OutputFormatTable {
		return e.encode(a)
	}
	e.renderAddressDetail(a)
	return nil
}

// CreateCustomer validates in and creates the customer.
func (e *Executor) CreateCustomer(ctx context.Context, in api.CustomerInput) error {
	in = in.Trimmed()
	if err := in.Validate(); err != nil {
		return err
	}
	return e.report(e.gw.CreateCustomer(ctx, in))
}

// UpdateCustomer validates in and replaces customer id. The backend stores
// only name and phone on update; the address fields are validated like the
// edit form but otherwise ignored.
func (e *Executor) UpdateCustomer(ctx context.Context, id api.ID, in api.CustomerInput) error {
	in = in.Trimmed()
	in.AdditionalAddresses = nil
	if err := in.Validate(); err != nil {
		return err
	}
	return e.report(e.gw.UpdateCustomer(ctx, id, in))
}

// CustomerInput loads customer id as an update body, using its first
// address for the address fields.
func (e *Executor) CustomerInput(ctx context.Context, id api.ID) (api.CustomerInput, error) {
	c, err := e.gw.GetCustomer(ctx, id)
	if err != nil {
		return api.CustomerInput{}, err
	}
	in := api.CustomerInput{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
	}
	if len(c.Addresses) > 0 {
		a := c.Addresses[0]
		in.AddressFields = api.AddressFields{
			StreetAddress: a.StreetAddress,
			City:          a.City,
			State:         a.State,
			PinCode:       a.PinCode,
		}
	}
	return in, nil
}

// DeleteCustomer removes customer id and its addresses.
func (e *Executor) DeleteCustomer(ctx context.Context, id api.ID) error {
	return e.report(e.gw.DeleteCustomer(ctx, id))
}

// CreateAddress validates in and adds the address to its customer.
func (e *Executor) CreateAddress(ctx context.Context, in api.AddressInput) error {
	in.AddressFields = in.AddressFields.Trimmed()
	if err := in.Validate(); err != nil {
		return err
	}
	return e.report(e.gw.CreateAddress(ctx, in))
}

// UpdateAddress validates in and replaces address id.
func (e *Executor) UpdateAddress(ctx context.Context, id api.ID, in api.AddressInput) error {
	in.AddressFields = in.AddressFields.Trimmed()
	if err := in.Validate(); err != nil {
		return err
	}
	return e.report(e.gw.UpdateAddress(ctx, id, in))
}

// DeleteAddress removes address id.
func (e *Executor) DeleteAddress(ctx context.Context, id api.ID) error {
	return e.report(e.gw.DeleteAddress(ctx, id))
}

// report prints the backend's confirmation, or returns its rejection as a
// *api.ServerError.
func (e *Executor) report(res api.Result, err error) error {
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}
	if e.options.Quiet {
		return nil
	}
	switch e.options.Format {
	case OutputFormatJSON, OutputFormatYAML:
		return e.encode(map[string]string{"message": res.Message})
	default:
		fmt.Fprintln(e.options.Out, text.FgGreen.Sprint("✔ "+res.Message))
		return nil
	}
}

func (e *Executor) encode(v any) error {
	switch e.options.Format {
	case OutputFormatJSON:
		enc := json.NewEncoder(e.options.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputFormatYAML:
		enc := yaml.NewEncoder(e.options.Out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", e.options.Format)
	}
}
