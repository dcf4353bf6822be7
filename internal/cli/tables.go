package cli

import (
	"fmt"
	"strings"

	"crmctl/internal/api"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func (e *Executor) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(e.options.Out)
	t.SetStyle(table.StyleRounded)
	return t
}

func header(cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = text.FgHiCyan.Sprint(strings.ToUpper(c))
	}
	return row
}

func (e *Executor) renderCustomerTable(rows []api.CustomerSummary) {
	t := e.newTable()
	t.AppendHeader(header("id", "name", "phone", "addresses"))
	for _, c := range rows {
		t.AppendRow(table.Row{c.ID, c.FullName(), c.PhoneNumber, formatAddressCount(c)})
	}
	t.Render()

	fmt.Fprintf(e.options.Out, "\n%s %s customers\n",
		text.FgHiBlue.Sprint("Total:"),
		text.FgHiWhite.Sprint(len(rows)))
}

// formatAddressCount pairs the count with the list badge.
func formatAddressCount(c api.CustomerSummary) string {
	if c.HasMultipleAddresses() {
		return text.FgGreen.Sprintf("%d (Multiple Addresses)", c.AddressCount)
	}
	return text.FgHiBlack.Sprintf("%d (Only One Address)", c.AddressCount)
}

func (e *Executor) renderCustomerDetail(c *api.Customer) {
	kv := e.newTable()
	kv.SetTitle(fmt.Sprintf("%s (ID: %s)", c.FullName(), c.ID))
	kv.AppendRows([]table.Row{
		{text.FgHiCyan.Sprint("First Name"), c.FirstName},
		{text.FgHiCyan.Sprint("Last Name"), c.LastName},
		{text.FgHiCyan.Sprint("Phone"), c.PhoneNumber},
	})
	kv.Render()

	if len(c.Addresses) == 0 {
		fmt.Fprintln(e.options.Out, text.FgYellow.Sprint("No addresses found"))
		return
	}

	t := e.newTable()
	t.AppendHeader(header("id", "street", "city", "state", "pin"))
	for _, a := range c.Addresses {
		t.AppendRow(table.Row{a.ID, a.StreetAddress, a.City, a.State, a.PinCode})
	}
	t.Render()
}

func (e *Executor) renderAddressDetail(a *api.Address) {
	kv := e.newTable()
	kv.SetTitle(fmt.Sprintf("Address %s", a.ID))
	kv.AppendRows([]table.Row{
		{text.FgHiCyan.Sprint("Customer"), a.CustomerID},
		{text.FgHiCyan.Sprint("Street"), a.StreetAddress},
		{text.FgHiCyan.Sprint("City"), a.City},
		{text.FgHiCyan.Sprint("State"), a.State},
		{text.FgHiCyan.Sprint("Pin Code"), a.PinCode},
	})
	kv.Render()
}
