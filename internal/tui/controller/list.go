package controller

import (
	"fmt"

	"crmctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const listSubsystem = "CustomerList"

// refreshList issues a list fetch for term under a new generation.
func refreshList(m *model.Model, term string) tea.Cmd {
	gen := m.List.Begin(term)
	LogDebug(m, listSubsystem, "Fetching customers (generation %d, search %q)", gen, term)
	return model.FetchCustomersCmd(m.Gateway, gen, term)
}

// handleCustomersLoaded applies a list result. Results from superseded
// fetches are dropped.
func handleCustomersLoaded(m *model.Model, msg model.CustomersLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		if !m.List.Fail(msg.Generation) {
			LogDebug(m, listSubsystem, "Ignoring stale failure for generation %d", msg.Generation)
			return nil
		}
		LogError(listSubsystem, msg.Err, "Error fetching customers")
		return m.SetStatusMessage(fmt.Sprintf("Failed to load customers: %v", msg.Err), model.StatusBarError, m.StatusMessageDuration)
	}

	if !m.List.Apply(msg.Generation, msg.Rows) {
		LogDebug(m, listSubsystem, "Dropping stale result for generation %d (current %d)", msg.Generation, m.List.Generation)
		return nil
	}
	LogDebug(m, listSubsystem, "Loaded %d customers for search %q", len(msg.Rows), msg.Term)
	return nil
}

// handleSearchKey types into the search input and refreshes on every change.
func handleSearchKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	before := m.SearchInput.Value()
	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(keyMsg)
	if after := m.SearchInput.Value(); after != before {
		return tea.Batch(cmd, searchChanged(m, after))
	}
	return cmd
}

// searchChanged refreshes for term, or schedules the refresh when a debounce
// window is configured. Only the last keystroke in a window fires.
func searchChanged(m *model.Model, term string) tea.Cmd {
	m.SearchSeq++
	if m.SearchDebounce <= 0 {
		return refreshList(m, term)
	}
	return model.SearchDebounceCmd(m.SearchDebounce, m.SearchSeq, term)
}

func handleSearchDebounce(m *model.Model, msg model.SearchDebounceMsg) tea.Cmd {
	if msg.Seq != m.SearchSeq {
		return nil
	}
	return refreshList(m, msg.Term)
}

// clearSearch empties the search input and refreshes unfiltered.
func clearSearch(m *model.Model) tea.Cmd {
	m.SearchInput.SetValue("")
	m.SearchSeq++
	return refreshList(m, "")
}
