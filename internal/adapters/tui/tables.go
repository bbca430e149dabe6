package tui

import (
	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/charmbracelet/bubbles/table"
)

func newLibraryTable() table.Model {
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 14},
			{Title: "Prompt", Width: 40},
			{Title: "Created", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
}

func newTierTable() table.Model {
	tiers := domain.Tiers()
	rows := make([]table.Row, 0, len(tiers))
	for _, tier := range tiers {
		rows = append(rows, table.Row{string(tier.ID), tier.Name, tier.Credits.String(), tier.Price})
	}

	return table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 9},
			{Title: "Pack", Width: 9},
			{Title: "Credits", Width: 12},
			{Title: "Price", Width: 6},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
}

// syncTables copies the library controller's items into the table.
func (m *Model) syncTables() {
	items := m.studio.Library.View().Items
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		created := "-"
		if !item.CreatedAt.IsZero() {
			created = item.CreatedAt.Format("02 Jan 2006")
		}
		rows = append(rows, table.Row{string(item.ID), item.Prompt, created})
	}

	m.library.SetRows(rows)
	if len(rows) == 0 {
		return
	}
	// SetCursor on an empty table leaves the cursor at -1.
	switch cursor := m.library.Cursor(); {
	case cursor < 0:
		m.library.SetCursor(0)
	case cursor >= len(rows):
		m.library.SetCursor(len(rows) - 1)
	}
}

func (m *Model) selectedItem() domain.LibraryItemID {
	row := m.library.SelectedRow()
	if len(row) == 0 {
		return ""
	}
	return domain.LibraryItemID(row[0])
}
