package dashboard

import (
	"github.com/pkg/errors"

	"github.com/dikshafoundation/diksha/core/course"
)

var ErrUnknownTab = errors.New("unknown tab")

type Tab string

// Student dashboard tabs
const (
	TabOverview     Tab = "overview"
	TabCourses      Tab = "courses"
	TabCertificates Tab = "certificates"
	TabProfile      Tab = "profile"
)

// Admin dashboard tabs
const (
	TabStudents   Tab = "students"
	TabVolunteers Tab = "volunteers"
	TabDonations  Tab = "donations"
	TabBlog       Tab = "blog"
)

// Nav tracks the active top-level view and, for the student dashboard,
// the optional course drill-down. The drill-down overlays whatever tab is
// active: renderers must check SelectedCourse first.
type Nav struct {
	tabs     []Tab
	active   Tab
	selected *course.Course
}

// NewNav builds a Nav over a fixed tab set; the first tab starts active.
func NewNav(tabs ...Tab) *Nav {
	n := &Nav{tabs: tabs}
	if len(tabs) > 0 {
		n.active = tabs[0]
	}
	return n
}

func (n *Nav) Tabs() []Tab    { return n.tabs }
func (n *Nav) ActiveTab() Tab { return n.active }

// SelectTab activates a tab and always clears the drill-down; a detail
// view never survives a tab switch.
func (n *Nav) SelectTab(tab Tab) error {
	for _, t := range n.tabs {
		if t == tab {
			n.active = tab
			n.selected = nil
			return nil
		}
	}
	return errors.Wrap(ErrUnknownTab, string(tab))
}

// SelectCourse opens the drill-down without changing the active tab.
func (n *Nav) SelectCourse(crs course.Course) {
	n.selected = &crs
}

func (n *Nav) ClearSelection() {
	n.selected = nil
}

func (n *Nav) SelectedCourse() (course.Course, bool) {
	if n.selected == nil {
		return course.Course{}, false
	}
	return *n.selected, true
}
