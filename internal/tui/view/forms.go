package view

import (
	"fmt"
	"strings"

	"crmctl/internal/tui/components"
	"crmctl/internal/tui/design"
	"crmctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/textinput"
)

func renderCustomerFormPanel(m *model.Model, width, height int) string {
	f := &m.CustomerForm
	focused := m.Focus == model.FocusCustomerForm

	title := "New Customer"
	if f.Mode() == model.FormEdit {
		title = fmt.Sprintf("Edit Customer (ID: %s)", f.BoundID)
	}

	panel := components.NewPanel(title).
		WithIcon(design.IconPencil).
		WithDimensions(width, height).
		WithFooter(submitButton(f.SubmitLabel(), f.Loading)).
		SetFocused(focused)
	if f.Validation != "" {
		panel.WithType(components.PanelTypeError)
	}

	var lines []string
	if f.Validation != "" {
		lines = append(lines, validationLine(f.Validation), "")
	}

	focusLine := 0
	for i, label := range model.CustomerFieldLabels {
		if focused && f.Cursor == i {
			focusLine = len(lines)
		}
		lines = append(lines, renderField(label, f.Inputs[i], focused && f.Cursor == i))
	}

	base := len(model.CustomerFieldLabels)
	for d, draft := range f.Drafts {
		lines = append(lines, "", design.FormSectionStyle.Render(fmt.Sprintf("Additional Address %d", d+1)))
		for j, label := range model.AddressFieldLabels {
			idx := base + d*len(model.AddressFieldLabels) + j
			if focused && f.Cursor == idx {
				focusLine = len(lines)
			}
			lines = append(lines, renderField(label, draft.Inputs[j], focused && f.Cursor == idx))
		}
	}

	if f.Mode() == model.FormCreate {
		lines = append(lines, "", design.DimStyle.Render("ctrl+a add address  ctrl+x remove last"))
	}

	lines = scrollWindow(lines, focusLine, panel.ContentRows())
	return panel.WithContent(strings.Join(lines, "\n")).Render()
}

func renderAddressFormPanel(m *model.Model, width, height int) string {
	f := &m.AddressForm
	focused := m.Focus == model.FocusAddressForm

	title := "New Address"
	if f.Mode() == model.FormEdit {
		title = fmt.Sprintf("Edit Address (ID: %s)", f.BoundID)
	}

	panel := components.NewPanel(title).
		WithIcon(design.IconHome).
		WithDimensions(width, height).
		WithFooter(submitButton(f.SubmitLabel(), f.Loading)).
		SetFocused(focused)
	if f.Validation != "" {
		panel.WithType(components.PanelTypeError)
	}

	var lines []string
	if f.Validation != "" {
		lines = append(lines, validationLine(f.Validation), "")
	}
	for i, label := range model.AddressFieldLabels {
		lines = append(lines, renderField(label, f.Inputs[i], focused && f.Cursor == i))
	}

	return panel.WithContent(strings.Join(lines, "\n")).Render()
}

func renderField(label string, input textinput.Model, focused bool) string {
	style := design.FormLabelStyle
	if focused {
		style = design.FormLabelFocusedStyle
	}
	return style.Render(label) + input.View()
}

func validationLine(msg string) string {
	return design.ValidationStyle.Render(design.IconText(design.IconCross, msg))
}

func submitButton(label string, saving bool) string {
	if saving {
		return design.ButtonDisabledStyle.Render("Saving...")
	}
	return design.ButtonStyle.Render(label) + design.DimStyle.Render("  ctrl+s")
}
