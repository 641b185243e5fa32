package calendar

import (
	"time"

	"github.com/alexanderramin/chantcounter/internal/domain"
)

// DefaultBreakpoint is the terminal width, in columns, below which the
// calendar shows one month at a time.
const DefaultBreakpoint = 88

const (
	mobilePage  = 1
	desktopPage = 4
)

// ClassifyWidth maps a viewport width to a device class.
func ClassifyWidth(width, breakpoint int) domain.DeviceClass {
	if width < breakpoint {
		return domain.DeviceMobile
	}
	return domain.DeviceDesktop
}

// PageSize is the number of months shown at once for a device class.
func PageSize(class domain.DeviceClass) int {
	if class == domain.DeviceMobile {
		return mobilePage
	}
	return desktopPage
}

// ViewState is the navigation cursor of the calendar.
type ViewState struct {
	Year       int
	StartMonth int // 0 = January
}

// Initial places the cursor on today's month, aligned down to a page
// boundary (0, 4, 8) on desktop.
func Initial(today time.Time, class domain.DeviceClass) ViewState {
	v := ViewState{Year: today.Year(), StartMonth: int(today.Month()) - 1}
	if class == domain.DeviceDesktop {
		v.StartMonth = alignToPage(v.StartMonth)
	}
	return v
}

func (v ViewState) Next(class domain.DeviceClass) ViewState {
	v.StartMonth += PageSize(class)
	for v.StartMonth >= 12 {
		v.StartMonth -= 12
		v.Year++
	}
	return v
}

func (v ViewState) Prev(class domain.DeviceClass) ViewState {
	v.StartMonth -= PageSize(class)
	for v.StartMonth < 0 {
		v.StartMonth += 12
		v.Year--
	}
	return v
}

// Resize adjusts the cursor when the device class changes. Switching to
// desktop realigns to a page boundary; switching to mobile keeps the month.
func (v ViewState) Resize(from, to domain.DeviceClass) ViewState {
	if from != to && to == domain.DeviceDesktop {
		v.StartMonth = alignToPage(v.StartMonth)
	}
	return v
}

// Request builds the grid request for the current page.
func (v ViewState) Request(class domain.DeviceClass, log domain.DailyLog, today string, dailyTarget int) Request {
	return Request{
		Year:        v.Year,
		StartMonth:  v.StartMonth,
		Months:      PageSize(class),
		Log:         log,
		Today:       today,
		DailyTarget: dailyTarget,
	}
}

func alignToPage(month int) int {
	return month / desktopPage * desktopPage
}
