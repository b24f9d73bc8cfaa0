// Package view implements the interactive order history screen. The
// Bubble Tea update loop is a three-state machine: the screen starts
// loading, then settles in either an error or a loaded order list, and
// stays there until the user reloads or the linked account changes.
package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/cmd/storefront/models"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type State int

const (
	StateLoading State = iota
	StateError
	StateLoaded
)

// FetchFailedMessage is shown for any transport-level failure. The
// underlying cause goes to the log only.
const FetchFailedMessage = "Failed to load orders"

const fetchTimeout = 15 * time.Second

// OrdersFetcher supplies the order list. A non-nil error is a transport
// failure; application-level failures travel inside OrdersResult.Error.
type OrdersFetcher interface {
	GetOrders(ctx context.Context, clientID string) (*models.OrdersResult, error)
}

// ClientProvider reports the currently linked client identifier, if any.
type ClientProvider interface {
	ClientID() (string, bool)
}

// Navigator opens the shop catalog for the empty-state call to action.
type Navigator interface {
	OpenCatalog() error
}

type ordersResultMsg struct {
	seq    int
	result *models.OrdersResult
	err    error
}

type clientChangedMsg struct{}

type Model struct {
	fetcher  OrdersFetcher
	provider ClientProvider
	nav      Navigator
	sugar    *zap.SugaredLogger
	styles   Styles
	spinner  spinner.Model

	state  State
	errMsg string
	orders []models.Order

	// fetchSeq stamps every fetch; results from superseded fetches are
	// dropped so a rapid account switch cannot resurrect stale data.
	fetchSeq int

	changes <-chan struct{}
	width   int
}

func New(fetcher OrdersFetcher, provider ClientProvider, nav Navigator,
	changes <-chan struct{}, logger *zap.SugaredLogger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	return Model{
		fetcher:  fetcher,
		provider: provider,
		nav:      nav,
		sugar:    logger,
		styles:   DefaultStyles(),
		spinner:  sp,
		state:    StateLoading,
		changes:  changes,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.fetchOrders(m.fetchSeq)}
	if m.changes != nil {
		cmds = append(cmds, m.waitForClientChange())
	}
	return tea.Batch(cmds...)
}

// fetchOrders resolves the linked client and requests their orders. No
// linked client is an empty result, not an error: un-onboarded users
// just see an empty history.
func (m Model) fetchOrders(seq int) tea.Cmd {
	return func() tea.Msg {
		clientID, ok := m.provider.ClientID()
		if !ok {
			return ordersResultMsg{seq: seq, result: &models.OrdersResult{Data: []models.Order{}}}
		}

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		result, err := m.fetcher.GetOrders(ctx, clientID)
		return ordersResultMsg{seq: seq, result: result, err: err}
	}
}

func (m Model) waitForClientChange() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return clientChangedMsg{}
	}
}

// reload drops everything and re-enters the initial state. It is the
// only recovery path from an error.
func (m Model) reload() (Model, tea.Cmd) {
	m.fetchSeq++
	m.state = StateLoading
	m.errMsg = ""
	m.orders = nil
	return m, tea.Batch(m.spinner.Tick, m.fetchOrders(m.fetchSeq))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ordersResultMsg:
		if msg.seq != m.fetchSeq {
			// Superseded fetch, a newer one is in flight.
			return m, nil
		}
		switch {
		case msg.err != nil:
			m.sugar.Errorf("order fetch failed: %v", msg.err)
			m.state = StateError
			m.errMsg = FetchFailedMessage
		case msg.result != nil && msg.result.Error != "":
			m.state = StateError
			m.errMsg = msg.result.Error
		default:
			m.state = StateLoaded
			if msg.result != nil {
				m.orders = msg.result.Data
			} else {
				m.orders = nil
			}
		}
		return m, nil

	case clientChangedMsg:
		var cmd tea.Cmd
		m, cmd = m.reload()
		return m, tea.Batch(cmd, m.waitForClientChange())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.state == StateError {
				return m.reload()
			}
		case "b":
			if m.nav != nil {
				if err := m.nav.OpenCatalog(); err != nil {
					m.sugar.Errorf("open catalog: %v", err)
				}
			}
		}
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Your Orders"))
	b.WriteString("\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading your orders...")

	case StateError:
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
		b.WriteString(m.styles.Hint.Render("press r to reload · q to quit"))

	case StateLoaded:
		if len(m.orders) == 0 {
			b.WriteString(m.styles.Empty.Render("You haven't placed any orders yet."))
			b.WriteString("\n")
			b.WriteString(m.styles.Hint.Render("press b to browse the catalog · q to quit"))
			break
		}

		b.WriteString(m.styles.Header.Render(fmt.Sprintf("%-14s %-16s %-14s %-19s %10s",
			"ORDER", "STATUS", "PAYMENT", "PLACED", "TOTAL")))
		b.WriteString("\n")
		for _, o := range m.orders {
			row := fmt.Sprintf("%-14s %-16s %-14s %-19s %10s",
				models.ShortOrderID(o.OrderID),
				m.styles.Badge(o.Status),
				m.styles.Badge(o.PaymentStatus),
				models.FormatOrderDate(o.CreatedAt),
				models.FormatMoney(o.TotalAmount),
			)
			b.WriteString(m.styles.Row.Render(row))
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Hint.Render("press b to browse the catalog · q to quit"))
	}

	b.WriteString("\n")
	return b.String()
}

// State is exposed for the update-loop tests.
func (m Model) CurrentState() State { return m.state }

// Orders returns the loaded order list in fetch order.
func (m Model) Orders() []models.Order { return m.orders }

// ErrorMessage returns the message shown in the error state.
func (m Model) ErrorMessage() string { return m.errMsg }
