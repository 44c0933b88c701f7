package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/habitflow/internal/tui/components"
	"github.com/hy4ri/habitflow/internal/tui/state"
	"github.com/hy4ri/habitflow/internal/tui/styles"
)

const (
	sidebarWidth          = 18
	sidebarCollapsedWidth = 5
)

type Renderer struct {
	*state.State

	HelpComp *components.HelpModel
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s, HelpComp: components.NewHelp()}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	if r.ShowHelp {
		r.HelpComp.SetSize(r.Width, r.Height)
		r.HelpComp.SetKeymap(r.Keymap.HelpItems())
		return r.HelpComp.View()
	}

	content := r.renderMainView()

	type overlay struct {
		active bool
		render func() string
	}

	// The last active entry is shown; the confirm modal can sit on top of
	// the manage list.
	overlays := []overlay{
		{r.Manage != nil && r.Manage.Open, r.renderManageDialog},
		{r.HabitForm != nil, r.renderHabitForm},
		{r.TaskForm != nil, r.renderTaskForm},
		{r.DatePicker != nil, r.renderDatePicker},
		{r.Confirm != nil, r.renderConfirmDialog},
	}

	var top func() string
	for _, o := range overlays {
		if o.active {
			top = o.render
		}
	}
	if top != nil {
		return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, top())
	}
	return content
}

// renderMainView renders sidebar, page content and status bar.
func (r *Renderer) renderMainView() string {
	statusBar := r.renderStatusBar()
	contentHeight := r.Height - lipgloss.Height(statusBar)
	if contentHeight < 1 {
		contentHeight = 1
	}

	sidebar := r.renderSidebar(contentHeight)
	contentWidth := r.Width - lipgloss.Width(sidebar) - 1
	if contentWidth < 20 {
		contentWidth = 20
	}

	var page string
	if r.Loading && !r.hasPageData() {
		page = r.Spinner.View() + " Loading..."
	} else {
		switch r.CurrentPage {
		case state.PageHabits:
			page = r.renderHabits(contentWidth)
		case state.PageTasks:
			page = r.renderTasks(contentWidth)
		case state.PageMusic:
			page = r.renderMusic(contentWidth)
		case state.PageReports:
			page = r.renderReports(contentWidth)
		default:
			page = r.renderDashboard(contentWidth)
		}
	}
	page = lipgloss.Place(contentWidth, contentHeight, lipgloss.Left, lipgloss.Top,
		lipgloss.NewStyle().MaxHeight(contentHeight).MaxWidth(contentWidth).Render(page))

	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", page)
	return lipgloss.JoinVertical(lipgloss.Left, main, statusBar)
}

// hasPageData reports whether the current page has something to show
// while a reload is in flight.
func (r *Renderer) hasPageData() bool {
	switch r.CurrentPage {
	case state.PageDashboard:
		return r.Stats != nil
	case state.PageHabits:
		return r.Habits != nil
	case state.PageTasks:
		return r.Tasks != nil
	case state.PageReports:
		return r.Analytics != nil
	}
	return true
}

// renderSidebar renders page navigation; collapsed shows icons only.
func (r *Renderer) renderSidebar(height int) string {
	var b strings.Builder
	if !r.SidebarCollapsed {
		b.WriteString(styles.Title.Render("HabitFlow") + "\n\n")
	} else {
		b.WriteString("\n\n")
	}

	for _, p := range state.GetPageDefinitions() {
		label := p.Icon
		if !r.SidebarCollapsed {
			label = fmt.Sprintf("%s %s", p.Icon, p.Name)
		}
		if r.CurrentPage == p.Page {
			b.WriteString(styles.SidebarActive.Render(label))
		} else {
			b.WriteString(styles.SidebarItem.Render(label))
		}
		b.WriteString("\n")
	}

	width := sidebarWidth
	if r.SidebarCollapsed {
		width = sidebarCollapsedWidth
	}
	frame := styles.Sidebar.GetVerticalFrameSize()
	return styles.Sidebar.Width(width).Height(max(height-frame, 1)).Render(b.String())
}

// renderStatusBar renders the bottom status bar.
func (r *Renderer) renderStatusBar() string {
	left := ""
	if r.Err != nil {
		errStr := strings.ReplaceAll(r.Err.Error(), "\n", " ")
		left = styles.StatusBarError.Render("Error: " + errStr)
	} else if r.StatusMsg != "" {
		msgStr := strings.ReplaceAll(r.StatusMsg, "\n", " ")
		left = styles.StatusBarSuccess.Render(msgStr)
	} else if r.Loading {
		left = styles.StatusBarText.Render(r.Spinner.View() + " Loading")
	}

	var rightParts []string
	if r.Focus != nil && r.Focus.Running && r.CurrentPage != state.PageMusic {
		rightParts = append(rightParts, styles.StatusBarText.Render(
			fmt.Sprintf("%s %s", r.Focus.Phase, components.FormatDuration(r.Focus.Remaining))))
	}
	sound := "off"
	if r.SoundEnabled {
		sound = "on"
	}
	rightParts = append(rightParts,
		styles.StatusBarKey.Render("S")+styles.StatusBarText.Render(":sound "+sound),
		styles.StatusBarKey.Render("T")+styles.StatusBarText.Render(":"+r.Theme),
		styles.StatusBarKey.Render("?")+styles.StatusBarText.Render(":keys"),
	)
	right := strings.Join(rightParts, "  ")

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	padding := styles.StatusBar.GetHorizontalFrameSize()

	maxLeftWidth := r.Width - rightWidth - padding - 4
	if leftWidth > maxLeftWidth && maxLeftWidth > 10 {
		left = truncateString(left, maxLeftWidth)
		leftWidth = lipgloss.Width(left)
	}

	spacing := r.Width - leftWidth - rightWidth - padding
	if spacing < 0 {
		spacing = 0
	}

	return styles.StatusBar.Width(r.Width - padding).Render(left + strings.Repeat(" ", spacing) + right)
}

// renderHints renders a row of page-local key hints.
func renderHints(hints ...[2]string) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, styles.HelpKey.Render(h[0])+" "+styles.HelpDesc.Render(h[1]))
	}
	return strings.Join(parts, "  ")
}
