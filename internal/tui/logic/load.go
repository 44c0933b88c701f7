package logic

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/dateutil"
	"github.com/hy4ri/habitflow/internal/tui/state"
)

// FocusSessionsKey is the server setting holding the completed focus session count.
const FocusSessionsKey = "focus_sessions"

// loadPage returns the single loader for page.
func (h *Handler) loadPage(page state.Page) tea.Cmd {
	switch page {
	case state.PageHabits:
		return h.LoadHabits()
	case state.PageTasks:
		return h.LoadTasks()
	case state.PageMusic:
		return h.LoadMusic()
	case state.PageReports:
		return h.LoadReports()
	default:
		return h.LoadDashboard()
	}
}

// LoadDashboard fetches the stats summary and resets the week offset.
func (h *Handler) LoadDashboard() tea.Cmd {
	h.WeekOffset = 0
	h.Loading = true
	client := h.Client
	return func() tea.Msg {
		stats, err := client.GetStats()
		if err != nil {
			return errMsg{err}
		}
		return dashboardLoadedMsg{stats: stats}
	}
}

// LoadWeekly fetches only the weekly series for the current week offset.
func (h *Handler) LoadWeekly() tea.Cmd {
	h.Loading = true
	client := h.Client
	start := dateutil.FormatDate(dateutil.GetWeekDates(h.Now(), h.WeekOffset).Start)
	return func() tea.Msg {
		days, err := client.GetWeeklyStats(start)
		if err != nil {
			return errMsg{err}
		}
		return weeklyLoadedMsg{days: days}
	}
}

// LoadHabits fetches the habit list and the calendar month concurrently.
func (h *Handler) LoadHabits() tea.Cmd {
	h.Loading = true
	client := h.Client
	year, month := h.CalendarMonth.Year(), h.CalendarMonth.Month()
	return func() tea.Msg {
		type habitResult struct {
			data []api.Habit
			err  error
		}
		type calendarResult struct {
			data api.CalendarMonth
			err  error
		}

		habitChan := make(chan habitResult, 1)
		calChan := make(chan calendarResult, 1)

		go func() {
			d, e := client.GetHabits()
			habitChan <- habitResult{data: d, err: e}
		}()

		go func() {
			d, e := client.GetCalendar(year, month)
			calChan <- calendarResult{data: d, err: e}
		}()

		hRes := <-habitChan
		cRes := <-calChan
		if hRes.err != nil {
			return errMsg{hRes.err}
		}
		if cRes.err != nil {
			return errMsg{cRes.err}
		}
		return habitsLoadedMsg{habits: hRes.data, calendar: cRes.data}
	}
}

// LoadCalendar refetches the completion map for the calendar month.
func (h *Handler) LoadCalendar() tea.Cmd {
	client := h.Client
	year, month := h.CalendarMonth.Year(), h.CalendarMonth.Month()
	return func() tea.Msg {
		cal, err := client.GetCalendar(year, month)
		if err != nil {
			return errMsg{err}
		}
		return calendarLoadedMsg{calendar: cal}
	}
}

// LoadTasks fetches the tasks for the task date.
func (h *Handler) LoadTasks() tea.Cmd {
	h.Loading = true
	client := h.Client
	date := dateutil.FormatDate(h.TaskDate)
	return func() tea.Msg {
		tasks, err := client.GetTasks(date)
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

// LoadMusic fetches the stored focus session count.
func (h *Handler) LoadMusic() tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		v, err := client.GetSetting(FocusSessionsKey)
		if err != nil {
			return errMsg{err}
		}
		n, _ := strconv.Atoi(v)
		return musicLoadedMsg{total: n}
	}
}

// LoadReports fetches analytics, the monthly series and the daily report
// concurrently and waits for all three.
func (h *Handler) LoadReports() tea.Cmd {
	h.Loading = true
	client := h.Client
	year, month := h.ReportMonth.Year(), h.ReportMonth.Month()
	day := dateutil.FormatDate(h.ReportDay())
	return func() tea.Msg {
		type analyticsResult struct {
			data *api.Analytics
			err  error
		}
		type monthlyResult struct {
			data *api.MonthlyTrends
			err  error
		}
		type dailyResult struct {
			data *api.DailyReport
			err  error
		}

		aChan := make(chan analyticsResult, 1)
		mChan := make(chan monthlyResult, 1)
		dChan := make(chan dailyResult, 1)

		go func() {
			d, e := client.GetAnalytics()
			aChan <- analyticsResult{data: d, err: e}
		}()

		go func() {
			d, e := client.GetMonthlyTrends(year, month)
			mChan <- monthlyResult{data: d, err: e}
		}()

		go func() {
			d, e := client.GetDailyReport(day)
			dChan <- dailyResult{data: d, err: e}
		}()

		aRes, mRes, dRes := <-aChan, <-mChan, <-dChan
		for _, err := range []error{aRes.err, mRes.err, dRes.err} {
			if err != nil {
				return errMsg{err}
			}
		}
		return reportsLoadedMsg{analytics: aRes.data, monthly: mRes.data, daily: dRes.data}
	}
}

// incrementFocusSessions adds one to the stored session count. The count is
// read back from the server first so an unloaded local total never overwrites it.
func (h *Handler) incrementFocusSessions() tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		v, err := client.GetSetting(FocusSessionsKey)
		if err != nil {
			return errMsg{err}
		}
		n, _ := strconv.Atoi(v)
		n++
		if err := client.SetSetting(FocusSessionsKey, strconv.Itoa(n)); err != nil {
			return errMsg{err}
		}
		return focusSessionsSavedMsg{total: n}
	}
}
