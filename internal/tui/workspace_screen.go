package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/invoicegenius/internal/app"
	"github.com/andy/invoicegenius/internal/money"
	"github.com/andy/invoicegenius/internal/service"
)

type workspaceMode int

const (
	workspaceModeView workspaceMode = iota
	workspaceModeEdit
)

// aiResultMsg carries a generated suggestion back to the screen. The
// suggestion is applied in Update so all editor access stays on the
// program goroutine.
type aiResultMsg struct {
	itemID string // empty for terms
	text   string
}

// wsRow is one editable line in the workspace. apply parses and commits
// the entered value; generate is set on rows with an AI suggestion.
type wsRow struct {
	section  string // non-empty starts a new section heading
	label    string
	value    string
	raw      string // seed for the edit input, defaults to value
	itemID   string // non-empty for line item rows
	apply    func(value string) error
	generate tea.Cmd
}

// WorkspaceModel is the main editing screen: company profile, invoice
// metadata, client details and line items.
type WorkspaceModel struct {
	app    *app.App
	mode   workspaceMode
	rows   []wsRow
	cursor int
	input  textinput.Model
	busy   bool
	err    error
}

// NewWorkspaceModel creates the workspace screen
func NewWorkspaceModel(a *app.App) tea.Model {
	m := &WorkspaceModel{app: a}
	m.rebuildRows()
	return m
}

// IsCapturingInput returns true while the inline edit input is active
func (m *WorkspaceModel) IsCapturingInput() bool {
	return m.mode == workspaceModeEdit
}

func (m *WorkspaceModel) Init() tea.Cmd {
	return nil
}

func (m *WorkspaceModel) editor() *service.Editor {
	return m.app.Editor
}

func (m *WorkspaceModel) rebuildRows() {
	state := m.editor().State()
	ed := m.editor()
	ctx := context.Background()

	companyRow := func(label, value string, field service.CompanyField) wsRow {
		return wsRow{label: label, value: value, apply: func(v string) error {
			ed.UpdateCompany(ctx, field, v)
			return nil
		}}
	}
	invoiceRow := func(label, value string, field service.InvoiceField) wsRow {
		return wsRow{label: label, value: value, apply: func(v string) error {
			ed.UpdateInvoice(ctx, field, v)
			return nil
		}}
	}
	clientRow := func(label, value string, field service.ClientField) wsRow {
		return wsRow{label: label, value: value, apply: func(v string) error {
			ed.UpdateClient(ctx, field, v)
			return nil
		}}
	}

	rows := []wsRow{}

	first := companyRow("Name", state.Company.Name, service.CompanyName)
	first.section = "Your Company"
	rows = append(rows,
		first,
		companyRow("Email", state.Company.Email, service.CompanyEmail),
		companyRow("Phone", state.Company.Phone, service.CompanyPhone),
		companyRow("Address", state.Company.Address, service.CompanyAddress),
		companyRow("Website", state.Company.Website, service.CompanyWebsite),
		companyRow("Tax ID", state.Company.TaxID, service.CompanyTaxID),
		companyRow("Logo URL", state.Company.LogoURL, service.CompanyLogoURL),
	)

	number := invoiceRow("Number", state.Invoice.Number, service.InvoiceNumber)
	number.section = "Invoice"
	taxRow := wsRow{
		label: "Tax Rate (%)",
		value: strconv.FormatFloat(state.Invoice.TaxRate, 'f', -1, 64),
		apply: func(v string) error {
			rate, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("tax rate must be a number")
			}
			ed.SetTaxRate(ctx, rate)
			return nil
		},
	}
	termsRow := invoiceRow("Terms", state.Invoice.Terms, service.InvoiceTerms)
	termsRow.generate = m.generateTermsCmd()
	rows = append(rows,
		number,
		invoiceRow("Date", state.Invoice.Date, service.InvoiceDate),
		invoiceRow("Due Date", state.Invoice.DueDate, service.InvoiceDueDate),
		invoiceRow("Currency", state.Invoice.Currency, service.InvoiceCurrency),
		taxRow,
		invoiceRow("Notes", state.Invoice.Notes, service.InvoiceNotes),
		termsRow,
	)

	clientName := clientRow("Name", state.Invoice.Client.Name, service.ClientName)
	clientName.section = "Bill To"
	rows = append(rows,
		clientName,
		clientRow("Email", state.Invoice.Client.Email, service.ClientEmail),
		clientRow("Address", state.Invoice.Client.Address, service.ClientAddress),
	)

	for i, item := range state.Invoice.Items {
		item := item
		desc := wsRow{
			label:  "Description",
			value:  item.Description,
			itemID: item.ID,
			apply: func(v string) error {
				return ed.SetItemDescription(ctx, item.ID, v)
			},
			generate: m.generateDescriptionCmd(item.ID, item.Description),
		}
		if i == 0 {
			desc.section = "Items"
		} else {
			desc.section = fmt.Sprintf("Item %d", i+1)
		}
		rows = append(rows,
			desc,
			wsRow{
				label:  "Quantity",
				value:  strconv.FormatFloat(item.Quantity, 'f', -1, 64),
				itemID: item.ID,
				apply: func(v string) error {
					qty, err := strconv.ParseFloat(v, 64)
					if err != nil {
						return fmt.Errorf("quantity must be a number")
					}
					return ed.SetItemQuantity(ctx, item.ID, qty)
				},
			},
			wsRow{
				label:  "Unit Price",
				value:  strconv.FormatFloat(item.Price, 'f', -1, 64),
				itemID: item.ID,
				apply: func(v string) error {
					price, err := strconv.ParseFloat(v, 64)
					if err != nil {
						return fmt.Errorf("price must be a number")
					}
					return ed.SetItemPrice(ctx, item.ID, price)
				},
			},
		)
	}

	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.rows = rows
}

func (m *WorkspaceModel) generateTermsCmd() tea.Cmd {
	return func() tea.Msg {
		text := m.app.TextGen.GenerateTerms(context.Background(), "professional and friendly")
		return aiResultMsg{text: text}
	}
}

func (m *WorkspaceModel) generateDescriptionCmd(itemID, keywords string) tea.Cmd {
	return func() tea.Msg {
		text := m.app.TextGen.GenerateItemDescription(context.Background(), keywords)
		return aiResultMsg{itemID: itemID, text: text}
	}
}

func (m *WorkspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.rebuildRows()
		return m, nil

	case aiResultMsg:
		m.busy = false
		ctx := context.Background()
		if msg.itemID == "" {
			m.editor().UpdateInvoice(ctx, service.InvoiceTerms, msg.text)
		} else {
			// The item may have been deleted while generating; the
			// editor reports that and we drop the suggestion.
			_ = m.editor().SetItemDescription(ctx, msg.itemID, msg.text)
		}
		m.rebuildRows()
		return m, nil

	case tea.KeyMsg:
		if m.mode == workspaceModeEdit {
			return m.updateEdit(msg)
		}
		return m.updateView(msg)
	}

	return m, nil
}

func (m *WorkspaceModel) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, DefaultKeyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, DefaultKeyMap.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, DefaultKeyMap.Select):
		if len(m.rows) == 0 {
			return m, nil
		}
		row := m.rows[m.cursor]
		m.mode = workspaceModeEdit
		m.input = textinput.New()
		m.input.CharLimit = 256
		m.input.Width = 60
		seed := row.raw
		if seed == "" {
			seed = row.value
		}
		m.input.SetValue(seed)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, DefaultKeyMap.New):
		m.editor().AddItem(context.Background())
		m.rebuildRows()
		// Jump to the new item's description row
		for i := len(m.rows) - 1; i >= 0; i-- {
			if m.rows[i].label == "Description" {
				m.cursor = i
				break
			}
		}

	case key.Matches(msg, DefaultKeyMap.Delete):
		if len(m.rows) == 0 {
			return m, nil
		}
		if id := m.rows[m.cursor].itemID; id != "" {
			if err := m.editor().DeleteItem(context.Background(), id); err != nil {
				m.err = err
				return m, nil
			}
			m.rebuildRows()
		}

	case key.Matches(msg, DefaultKeyMap.Generate):
		if m.busy || len(m.rows) == 0 {
			return m, nil
		}
		if gen := m.rows[m.cursor].generate; gen != nil {
			m.busy = true
			return m, gen
		}
	}

	return m, nil
}

func (m *WorkspaceModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = workspaceModeView
		m.err = nil
		return m, nil

	case "enter":
		row := m.rows[m.cursor]
		if err := row.apply(m.input.Value()); err != nil {
			m.err = err
			return m, nil
		}
		m.mode = workspaceModeView
		m.rebuildRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *WorkspaceModel) View() string {
	state := m.editor().State()
	totals := money.CalculateTotals(state.Invoice.Items, state.Invoice.TaxRate)
	f := m.app.Formatter()

	var s string
	s += titleStyle.Render("Invoice Workspace") + "\n"

	if m.busy {
		s += busyStyle.Render("  Generating suggestion...") + "\n"
	}

	for i, row := range m.rows {
		if row.section != "" {
			s += "\n" + subtitleStyle.Render("  "+row.section) + "\n"
		}

		indicator := "  "
		labelStyle := lipgloss.NewStyle().Width(14)
		if i == m.cursor && m.mode == workspaceModeView {
			indicator = "> "
			labelStyle = labelStyle.Bold(true).Foreground(primaryColor)
		}

		if i == m.cursor && m.mode == workspaceModeEdit {
			s += fmt.Sprintf("%s%s %s\n", "> ", labelStyle.Render(row.label+":"), m.input.View())
			continue
		}

		value := row.value
		if value == "" {
			value = subtitleStyle.Render("(empty)")
		}
		s += fmt.Sprintf("%s%s %s\n", indicator, labelStyle.Render(row.label+":"), truncateStr(value, 60))
	}

	s += "\n" + subtitleStyle.Render("  Totals") + "\n"
	s += fmt.Sprintf("  %-14s %s\n", "Subtotal:", amountStyle.Render(f.Format(totals.Subtotal)))
	s += fmt.Sprintf("  %-14s %s\n", fmt.Sprintf("Tax (%s%%):", strconv.FormatFloat(state.Invoice.TaxRate, 'f', -1, 64)), amountStyle.Render(f.Format(totals.TaxAmount)))
	s += fmt.Sprintf("  %-14s %s\n", "Total:", amountStyle.Render(f.Format(totals.Total)))

	if m.err != nil {
		s += "\n" + lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n"
	}

	if m.mode == workspaceModeEdit {
		s += "\n" + helpStyle.Render("  enter: apply  esc: cancel")
	} else {
		s += "\n" + helpStyle.Render("  ↑/↓: move  enter: edit  n: new item  x: delete item  g: AI suggest")
	}

	return s
}
