package view

import (
	"fmt"
	"strings"

	"crmctl/internal/api"
	"crmctl/internal/tui/components"
	"crmctl/internal/tui/design"
	"crmctl/internal/tui/model"
	"crmctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const (
	badgeMultiple = "Multiple Addresses"
	badgeSingle   = "Only One Address"

	selectedMarker = "> "
	rowIndent      = "  "
)

// CustomerRowLabel is the text of one customer list row.
func CustomerRowLabel(c api.CustomerSummary) string {
	return fmt.Sprintf("%s - %s (ID: %s)", c.FullName(), c.PhoneNumber, c.ID)
}

// AddressBadge names the address count class of a customer.
func AddressBadge(c api.CustomerSummary) string {
	if c.HasMultipleAddresses() {
		return badgeMultiple
	}
	return badgeSingle
}

func renderCustomerListPanel(m *model.Model, width, height int) string {
	focused := m.CurrentView == model.ViewList && (m.Focus == model.FocusList || m.Focus == model.FocusSearch)
	panel := components.NewPanel("Customers").
		WithIcon(design.IconPerson).
		WithDimensions(width, height).
		SetFocused(focused)

	inner := panel.InnerWidth()
	lines := []string{renderSearchLine(m, inner), ""}
	rows := max(panel.ContentRows()-len(lines), 1)

	switch {
	case len(m.List.Rows) > 0:
		rendered := make([]string, len(m.List.Rows))
		for i, c := range m.List.Rows {
			rendered[i] = renderCustomerRow(c, i == m.List.Selected, m.Focus == model.FocusList, inner)
		}
		lines = append(lines, scrollWindow(rendered, m.List.Selected, rows)...)
	case m.List.Loading:
		lines = append(lines, design.TextSecondaryStyle.Render(design.IconText(design.IconHourglass, "Loading customers...")))
	case m.List.Failed:
		lines = append(lines,
			design.TextErrorStyle.Render(design.IconText(design.IconCross, "Could not load customers.")),
			design.TextSecondaryStyle.Render("Press L for the activity log, / to search again."))
	case m.List.Loaded:
		lines = append(lines, design.TextSecondaryStyle.Render("No customers found."))
	}

	return panel.WithContent(strings.Join(lines, "\n")).Render()
}

func renderSearchLine(m *model.Model, width int) string {
	line := m.SearchInput.View()
	if m.Focus == model.FocusSearch {
		return utils.Ellipsize(line, width)
	}
	return design.TextSecondaryStyle.Render(utils.Ellipsize(line, width))
}

// renderCustomerRow lays out marker, label and badge. The label is cut
// before styling so the badge stays visible.
func renderCustomerRow(c api.CustomerSummary, selected, listFocused bool, width int) string {
	badge := AddressBadge(c)
	labelWidth := max(width-len(rowIndent)-lipgloss.Width(badge)-2, 8)
	label := utils.PadRight(utils.Ellipsize(CustomerRowLabel(c), labelWidth), labelWidth)

	badgeStyle := design.BadgeSingleStyle
	if c.HasMultipleAddresses() {
		badgeStyle = design.BadgeMultipleStyle
	}

	prefix := rowIndent
	labelStyle := design.TextStyle
	if selected {
		prefix = selectedMarker
		if listFocused {
			labelStyle = design.ListItemSelectedStyle
		}
	}
	return prefix + labelStyle.Render(label) + "  " + badgeStyle.Render(badge)
}
