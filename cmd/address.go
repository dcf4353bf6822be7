package cmd

import (
	"fmt"

	"crmctl/internal/api"

	"github.com/spf13/cobra"
)

func newAddressCmd() *cobra.Command {
	var out outputFlags

	addressCmd := &cobra.Command{
		Use:     "address",
		Aliases: []string{"addresses", "a"},
		Short:   "Inspect and change individual addresses",
		Long: `Runs a single address operation against the backend and prints the result.

Examples:
  crmctl address create --customer 3 --street "2 Oak Ave" --city Springfield --state IL --pin 62705
  crmctl address update 7 --customer 3 --street "2 Oak Ave" --city Shelbyville --state IL --pin 62705
  crmctl address delete 7 --yes`,
	}
	out.register(addressCmd)

	addressCmd.AddCommand(
		newAddressGetCmd(&out),
		newAddressCreateCmd(&out),
		newAddressUpdateCmd(&out),
		newAddressDeleteCmd(&out),
	)
	return addressCmd
}

func newAddressGetCmd(out *outputFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, _, err := newExecutor(cmd, out)
			if err != nil {
				return err
			}
			return exec.GetAddress(cmd.Context(), api.ID(args[0]))
		},
	}
}

func newAddressCreateCmd(out *outputFlags) *cobra.Command {
	var (
		customerID string
		values     addressFlagValues
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add an address to a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, _, err := newExecutor(cmd, out)
			if err != nil {
				return err
			}
			return exec.CreateAddress(cmd.Context(), api.AddressInput{
				CustomerID:    api.ID(customerID),
				AddressFields: values.fields(),
			})
		},
	}
	cmd.Flags().StringVar(&customerID, "customer", "", "ID of the owning customer")
	values.register(cmd.Flags())
	return cmd
}

func newAddressUpdateCmd(out *outputFlags) *cobra.Command {
	var (
		customerID string
		values     addressFlagValues
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, _, err := newExecutor(cmd, out)
			if err != nil {
				return err
			}
			return exec.UpdateAddress(cmd.Context(), api.ID(args[0]), api.AddressInput{
				CustomerID:    api.ID(customerID),
				AddressFields: values.fields(),
			})
		},
	}
	cmd.Flags().StringVar(&customerID, "customer", "", "ID of the owning customer")
	values.register(cmd.Flags())
	return cmd
}

func newAddressDeleteCmd(out *outputFlags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete one address",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, needConfirm, err := newExecutor(cmd, out)
			if err != nil {
				return err
			}
			if needConfirm && !yes && !confirm(cmd, fmt.Sprintf("Delete address %s?", args[0])) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
				return nil
			}
			return exec.DeleteAddress(cmd.Context(), api.ID(args[0]))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
