package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/jmpaz/wl-color-picker/internal/db"
	"github.com/jmpaz/wl-color-picker/pkg/models"
	"github.com/jmpaz/wl-color-picker/pkg/wayland"
)

var (
	historyLimit       int
	historyFilter      string
	historyInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously picked colors",
	Run:   runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 50, "Max records to show")
	historyCmd.Flags().StringVar(&historyFilter, "filter", "", "Substring match on hex or name")
	historyCmd.Flags().BoolVarP(&historyInteractive, "interactive", "i", false, "Browse history in a TUI; Enter copies the selected color")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	if historyFilter == "" && len(args) > 0 {
		historyFilter = args[0]
	}

	path, err := storePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store, err := db.New(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing DB: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	picks, err := store.List(historyLimit, historyFilter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing picks: %v\n", err)
		os.Exit(1)
	}

	if historyInteractive {
		if err := browseHistory(picks); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The swatch goes in the trailing column: its ANSI escapes would throw
	// off tabwriter's width accounting anywhere else.
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tCOLOR\tNAME\t")
	for _, p := range picks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.40s\t%s\n",
			p.ID,
			p.PickedAt.Local().Format("2006-01-02 15:04"),
			p.Hex,
			p.Name,
			swatch(p.Hex),
		)
	}
	w.Flush()
}

// swatch renders a small colored block for a valid hex value.
func swatch(hex string) string {
	if _, err := colorful.Hex(hex); err != nil {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

var browserFrame = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type browseModel struct {
	table  table.Model
	picks  []models.Pick
	status string
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if i := m.table.Cursor(); i >= 0 && i < len(m.picks) {
				p := m.picks[i]
				if err := wayland.CopyToClipboard(p.Hex); err != nil {
					m.status = fmt.Sprintf("clipboard: %v", err)
				} else {
					m.status = fmt.Sprintf("%s copied to clipboard", p.Hex)
				}
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	view := browserFrame.Render(m.table.View()) + "\n"
	if i := m.table.Cursor(); i >= 0 && i < len(m.picks) {
		view += swatch(m.picks[i].Hex) + " " + m.picks[i].Display() + "\n"
	}
	if m.status != "" {
		view += m.status + "\n"
	}
	return view + "enter: copy   q: quit\n"
}

func browseHistory(picks []models.Pick) error {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Time", Width: 16},
		{Title: "Color", Width: 11},
		{Title: "Name", Width: 28},
	}

	rows := make([]table.Row, 0, len(picks))
	for _, p := range picks {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", p.ID),
			p.PickedAt.Local().Format("2006-01-02 15:04"),
			p.Hex,
			p.Name,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	_, err := tea.NewProgram(browseModel{table: t, picks: picks}).Run()
	return err
}
