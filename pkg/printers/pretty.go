// Package printers renders guide data as colored terminal tables for the
// non-interactive commands.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/guiatv/pkg/guide"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = fmt.Fprintln(color.Output, t.Sprint(title))
}

// Channels prints one row per channel with its categories and handle.
func (pp *PrettyPrint) Channels(channels ...guide.Channel) {
	if len(channels) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Canal"), bold.Sprint("Categorías"), bold.Sprint("Handle"))
	} else {
		tbl.AddRow(bold.Sprint("Canal"), bold.Sprint("Categorías"), bold.Sprint("Handle"))
	}
	for _, c := range channels {
		cats := make([]string, 0, len(c.Categories))
		for _, cat := range c.Categories {
			cats = append(cats, cat.Name)
		}
		handle := faint.Sprint(c.Handle)
		if pp.ShowID {
			tbl.AddRow(c.ID, c.Name, strings.Join(cats, ", "), handle)
		} else {
			tbl.AddRow(c.Name, strings.Join(cats, ", "), handle)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Categories prints the category list in display order.
func (pp *PrettyPrint) Categories(categories ...guide.Category) {
	if len(categories) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Categoría"))
	} else {
		tbl.AddRow(bold.Sprint("Categoría"))
	}
	for _, c := range categories {
		if pp.ShowID {
			tbl.AddRow(c.ID, c.Name)
		} else {
			tbl.AddRow(c.Name)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Schedules prints one channel's programs for a day, earliest first.
func (pp *PrettyPrint) Schedules(channel guide.Channel, schedules ...guide.Schedule) {
	name := color.New(color.Bold).Sprint(channel.Name)
	_, _ = fmt.Fprintln(color.Output, name)

	if len(schedules) == 0 {
		pp.none()
		return
	}

	faint := color.New(color.Faint)
	live := color.New(color.FgHiRed, color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, s := range schedules {
		status := ""
		if s.Program.IsLive {
			status = live.Sprint("● EN VIVO")
		}
		span := faint.Sprintf("%s - %s", shortClock(s.StartTime), shortClock(s.EndTime))
		tbl.AddRow(span, s.Program.Name, status)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = fmt.Fprintln(color.Output, f.Sprint(" none"))
	pp.NewLine()
}

// shortClock trims "HH:MM:SS" to "HH:MM".
func shortClock(s string) string {
	if strings.Count(s, ":") == 2 {
		return s[:strings.LastIndex(s, ":")]
	}
	return s
}
