package view

import (
	"fmt"
	"strings"

	"crmctl/internal/api"
	"crmctl/internal/tui/components"
	"crmctl/internal/tui/design"
	"crmctl/internal/tui/model"
	"crmctl/internal/tui/utils"
)

// CustomerHeading is the detail view title for c.
func CustomerHeading(c *api.Customer) string {
	return fmt.Sprintf("%s (ID: %s)", c.FullName(), c.ID)
}

func renderDetailPanel(m *model.Model, width, height int) string {
	c := m.Detail.Customer
	title := "Customer"
	if c != nil {
		title = CustomerHeading(c)
	}

	panel := components.NewPanel(title).
		WithIcon(design.IconPerson).
		WithDimensions(width, height).
		SetFocused(m.Focus == model.FocusAddressList)

	if c == nil {
		return panel.WithContent(design.TextSecondaryStyle.Render("Loading customer...")).Render()
	}

	inner := panel.InnerWidth()
	lines := []string{
		"Phone: " + c.PhoneNumber,
		"",
		design.FormSectionStyle.Render(design.IconText(design.IconHome, "Addresses")),
	}
	rows := max(panel.ContentRows()-len(lines), 1)

	addrs := m.Detail.Addresses()
	if len(addrs) == 0 {
		lines = append(lines, design.TextSecondaryStyle.Render("No addresses found."))
		return panel.WithContent(strings.Join(lines, "\n")).Render()
	}

	rendered := make([]string, len(addrs))
	for i, a := range addrs {
		line := utils.Ellipsize(a.Line(), max(inner-len(rowIndent), 1))
		if i == m.Detail.Selected {
			style := design.TextStyle
			if m.Focus == model.FocusAddressList {
				style = design.ListItemSelectedStyle
			}
			rendered[i] = selectedMarker + style.Render(line)
			continue
		}
		rendered[i] = rowIndent + line
	}
	lines = append(lines, scrollWindow(rendered, m.Detail.Selected, rows)...)

	return panel.WithContent(strings.Join(lines, "\n")).Render()
}
