package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"legion/internal/app"
	"legion/internal/launcher"
	"legion/internal/profile"
)

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	List() ([]profile.Profile, error)
	Launch(app.LaunchParams) (app.LaunchResult, error)
}

// Model represents the Bubble Tea state.
type Model struct {
	controller Controller

	list     list.Model
	profiles []profile.Profile

	statusMsg  string
	lastLaunch *app.LaunchResult

	err       error
	loading   bool
	launching bool

	width  int
	height int

	lastUpdated time.Time
}

// New constructs a TUI model with default styles.
func New(ctrl Controller) *Model {
	delegate := list.NewDefaultDelegate()
	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Profiles"
	lst.SetShowHelp(false)
	lst.DisableQuitKeybindings()

	return &Model{
		controller: ctrl,
		list:       lst,
		statusMsg:  "Loading profiles…",
		loading:    true,
	}
}

// Run spins up the Bubble Tea program with sensible defaults.
func Run(ctrl Controller) error {
	m := New(ctrl)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return loadProfilesCmd(m.controller)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 4 {
			m.list.SetSize(msg.Width, msg.Height-4)
		}

	case profilesLoadedMsg:
		m.loading = false
		m.err = nil
		m.profiles = msg.profiles
		items := make([]list.Item, 0, len(msg.profiles))
		for _, p := range msg.profiles {
			items = append(items, profileItem{Profile: p})
		}
		m.list.SetItems(items)
		m.lastUpdated = time.Now()
		if len(msg.profiles) == 0 {
			m.statusMsg = "No profiles found. Create one with `legion create <name>`."
		} else {
			m.statusMsg = "Press enter to launch the selected profile, r to reload, q to quit."
		}

	case launchedMsg:
		m.launching = false
		m.err = nil
		res := msg.result
		m.lastLaunch = &res
		m.statusMsg = launchSummary(res)

	case errMsg:
		m.loading = false
		m.launching = false
		m.err = msg.err

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, loadProfilesCmd(m.controller)
		case "enter":
			current := m.currentProfile()
			if current == nil || m.launching {
				return m, nil
			}
			m.launching = true
			m.statusMsg = fmt.Sprintf("Launching %s…", current.Name)
			return m, launchCmd(m.controller, current.Name)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	if m.lastLaunch != nil && m.lastLaunch.Failed > 0 {
		statusStyle = statusStyle.Foreground(lipgloss.Color("203"))
	}
	b.WriteString(statusStyle.Render(m.statusMsg))
	b.WriteByte('\n')

	if m.loading {
		b.WriteString("Loading profiles…\n")
	} else if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteByte('\n')
	}

	if len(m.list.Items()) > 0 {
		b.WriteString(m.list.View())
		b.WriteByte('\n')
	}

	detailStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginBottom(1)
	if current := m.currentProfile(); current != nil {
		b.WriteString(detailStyle.Render(profileDetail(*current)))
		b.WriteByte('\n')
	}
	if m.lastLaunch != nil && len(m.lastLaunch.Results) > 0 {
		b.WriteString(detailStyle.Render(launchDetail(*m.lastLaunch)))
		b.WriteByte('\n')
	}

	help := "Commands: q quit • r reload • enter launch • / filter"
	if !m.lastUpdated.IsZero() {
		help += fmt.Sprintf(" • last update %s", m.lastUpdated.Format(time.Kitchen))
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// profileItem adapts profile.Profile to the bubbles list item interface.
type profileItem struct {
	Profile profile.Profile
}

func (p profileItem) Title() string {
	return p.Profile.Name
}

func (p profileItem) Description() string {
	n := len(p.Profile.Programs)
	if n == 1 {
		return "1 program"
	}
	return fmt.Sprintf("%d programs", n)
}

func (p profileItem) FilterValue() string {
	return p.Profile.Name
}

func (m *Model) currentProfile() *profile.Profile {
	item, ok := m.list.SelectedItem().(profileItem)
	if !ok {
		return nil
	}
	p := item.Profile
	return &p
}

func profileDetail(p profile.Profile) string {
	if len(p.Programs) == 0 {
		return fmt.Sprintf("%s\n(no programs)", p.Name)
	}
	lines := make([]string, 0, len(p.Programs)+1)
	lines = append(lines, p.Name)
	for i, prog := range p.Programs {
		lines = append(lines, fmt.Sprintf("%2d. %s  %s", i+1, filepath.Base(prog), prog))
	}
	return strings.Join(lines, "\n")
}

func launchDetail(res app.LaunchResult) string {
	lines := make([]string, 0, len(res.Results)+1)
	lines = append(lines, "Last launch: "+res.Profile)
	for _, r := range res.Results {
		if r.Outcome == launcher.Started {
			lines = append(lines, fmt.Sprintf("started pid=%d %s", r.PID, r.Path))
			continue
		}
		lines = append(lines, fmt.Sprintf("failed  %v", r.Err))
	}
	return strings.Join(lines, "\n")
}

func launchSummary(res app.LaunchResult) string {
	total := len(res.Results)
	switch {
	case total == 0:
		return fmt.Sprintf("Profile '%s' has no programs.", res.Profile)
	case res.Failed == 0:
		return fmt.Sprintf("Launched %d program(s) from '%s'.", res.Started, res.Profile)
	default:
		return fmt.Sprintf("Launched %d/%d program(s) from '%s'; %d failed.", res.Started, total, res.Profile, res.Failed)
	}
}

type profilesLoadedMsg struct {
	profiles []profile.Profile
}

type launchedMsg struct {
	result app.LaunchResult
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func loadProfilesCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		profiles, err := ctrl.List()
		if err != nil {
			return errMsg{err}
		}
		return profilesLoadedMsg{profiles: profiles}
	}
}

func launchCmd(ctrl Controller, name string) tea.Cmd {
	return func() tea.Msg {
		res, err := ctrl.Launch(app.LaunchParams{Name: name})
		if err != nil {
			return errMsg{err}
		}
		return launchedMsg{result: res}
	}
}
