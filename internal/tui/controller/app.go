package controller

import (
	"crmctl/internal/tui/model"
	"crmctl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel wraps the model to handle updates and views
type AppModel struct {
	model *model.Model
}

// NewAppModel creates a new app wrapper
func NewAppModel(m *model.Model) AppModel {
	return AppModel{model: m}
}

// Model returns the wrapped state.
func (a AppModel) Model() *model.Model {
	return a.model
}

// Init implements tea.Model. Besides the model's own background commands it
// issues the first, unfiltered list fetch.
func (a AppModel) Init() tea.Cmd {
	return tea.Batch(a.model.Init(), refreshList(a.model, ""))
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := Update(msg, a.model)
	a.model = updatedModel
	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return view.Render(a.model)
}
