package cmd

import (
	"fmt"
	"strings"

	"crmctl/internal/api"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addressFlagValues holds --street, --city, --state and --pin.
type addressFlagValues struct {
	street string
	city   string
	state  string
	pin    string
}

func (a *addressFlagValues) register(fs *pflag.FlagSet) {
	fs.StringVar(&a.street, "street", "", "street address")
	fs.StringVar(&a.city, "city", "", "city")
	fs.StringVar(&a.state, "state", "", "state")
	fs.StringVar(&a.pin, "pin", "", "pin code")
}

func (a *addressFlagValues) fields() api.AddressFields {
	return api.AddressFields{
		StreetAddress: a.street,
		City:          a.city,
		State:         a.state,
		PinCode:       a.pin,
	}
}

type customerFlagValues struct {
	firstName string
	lastName  string
	phone     string
	address   addressFlagValues
	extra     []string
}

func (c *customerFlagValues) register(fs *pflag.FlagSet) {
	fs.StringVar(&c.firstName, "first-name", "", "first name")
	fs.StringVar(&c.lastName, "last-name", "", "last name")
	fs.StringVar(&c.phone, "phone", "", "phone number")
	c.address.register(fs)
}

func (c *customerFlagValues) input() (api.CustomerInput, error) {
	in := api.CustomerInput{
		FirstName:     c.firstName,
		LastName:      c.lastName,
		PhoneNumber:   c.phone,
		AddressFields: c.address.fields(),
	}
	for _, raw := range c.extra {
		f, err := parseAddressSpec(raw)
		if err != nil {
			return api.CustomerInput{}, err
		}
		in.AdditionalAddresses = append(in.AdditionalAddresses, f)
	}
	return in, nil
}

// overlay copies the flags the user set onto in.
func (c *customerFlagValues) overlay(fs *pflag.FlagSet, in *api.CustomerInput) {
	set := func(name, value string, dst *string) {
		if fs.Changed(name) {
			*dst = value
		}
	}
	set("first-name", c.firstName, &in.FirstName)
	set("last-name", c.lastName, &in.LastName)
	set("phone", c.phone, &in.PhoneNumber)
	set("street", c.address.street, &in.StreetAddress)
	set("city", c.address.city, &in.City)
	set("state", c.address.state, &in.State)
	set("pin", c.address.pin, &in.PinCode)
}

// parseAddressSpec reads "street|city|state|pin".
func parseAddressSpec(raw string) (api.AddressFields, error) {
	parts := strings.Split(raw, "|")
	if len(parts) != 4 {
		return api.AddressFields{}, fmt.Errorf("invalid --additional-address %q: want street|city|state|pin", raw)
	}
	return api.AddressFields{
		StreetAddress: parts[0],
		City:          parts[1],
		State:         parts[2],
		PinCode:       parts[3],
	}, nil
}

func newCustomerCmd() *cobra.Command {
	var out outputFlags

	customerCmd := &cobra.Command{
		Use:     "customer",
		Aliases: []string{"customers", "c"},
		Short:   "List, inspect and change customers",
		Long: `Runs a single customer operation against the backend and prints the result.

Examples:
  crmctl customer list --search spring
  crmctl customer get 3 -o yaml
  crmctl customer create --first-name Jane --last-name Doe --phone 555-0100 \
      --street "1 Main St" --city Springfield --state IL --pin 62704
  crmctl customer delete 3 --yes`,
	}
	out.register(customerCmd)

	customerCmd.AddCommand(
		newCustomerListCmd(&out),
		newCustomerGetCmd(&out),
		newCustomerCreateCmd(&out),
		newCustomerUpdateCmd(&out),
		newCustomerDeleteCmd(&out),
	)
	return customerCmd
}

func newCustomerListCmd(out *outputFlags) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List customers, optionally filtered by a search term",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, _, err := newExecutor(cmd, out)
			if err != nil {
				return err
			}
			return exec.ListCustomers(cmd.Context(), search)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive term matched against names, phone and addresses")
	return cmd
}

func newCustomerGetCmd(out *outputFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a customer with all of their addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, _, err := newExecutor(cmd, out)
			if err != nil {
				return err
			}
			return exec.GetCustomer(cmd.Context(), api.ID(args[0]))
		},
	}
}

func newCustomerCreateCmd(out *outputFlags) *cobra.Command {
	var values customerFlagValues
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer with a primary address",
		Long: `Creates a customer. Every field is required; values are trimmed before
they are sent. Repeat --additional-address to create more addresses in the
same request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := values.input()
			if err != nil {
				return err
			}
			exec, _, err := newExecutor(cmd, out)
			if err != nil {
				return err
			}
			return exec.CreateCustomer(cmd.Context(), in)
		},
	}
	values.register(cmd.Flags())
	cmd.Flags().StringArrayVar(&values.extra, "additional-address", nil, "extra address as street|city|state|pin (repeatable)")
	return cmd
}

func newCustomerUpdateCmd(out *outputFlags) *cobra.Command {
	var values customerFlagValues
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a customer's name or phone number",
		Long: `Updates a customer. Flags that are not given keep the customer's current
values; the address flags default to the customer's first address.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, _, err := newExecutor(cmd, out)
			if err != nil {
				return err
			}
			id := api.ID(args[0])
			in, err := exec.CustomerInput(cmd.Context(), id)
			if err != nil {
				return err
			}
			values.overlay(cmd.Flags(), &in)
			return exec.UpdateCustomer(cmd.Context(), id, in)
		},
	}
	values.register(cmd.Flags())
	return cmd
}

func newCustomerDeleteCmd(out *outputFlags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a customer and all of their addresses",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, needConfirm, err := newExecutor(cmd, out)
			if err != nil {
				return err
			}
			if needConfirm && !yes && !confirm(cmd, fmt.Sprintf("Delete customer %s and all of their addresses?", args[0])) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
				return nil
			}
			return exec.DeleteCustomer(cmd.Context(), api.ID(args[0]))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
