package listapi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// listTimeLayout is the wire format of every timestamp LIST renders.
const listTimeLayout = "02.01.2006 15:04:05"

// notFinishedSentinel is the literal the queue renders in the end-time
// column while a run is still in progress.
const notFinishedSentinel = "Ešte neukončené!"

// listLocation is the zone the portal renders wall-clock times in.
// Queue timestamps are parsed in it so they name the right instant and
// stay comparable with the local clock wherever the client runs.
var listLocation = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Bratislava")
	if err != nil {
		return time.Local
	}
	return loc
}()

// ParseTestQueue extracts grading runs from the student test queue
// page. The server returns them unsorted; ordering is the caller's
// responsibility.
//
// Contract: one tbody row per run; the run id is the numeric
// extension-free href tail of the row's first anchor; the 3rd column is
// the start time, the 4th the end time. The end-time column is either a
// timestamp or the not-finished sentinel; anything else fails.
func ParseTestQueue(html string) ([]TestRun, error) {
	doc, derr := newDoc(html, "test queue page")
	if derr != nil {
		return nil, derr
	}

	var runs []TestRun
	var parseErr error
	doc.Find("tbody tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		anchor := row.Find("td > a").First()
		if anchor.Length() == 0 {
			parseErr = newErrParse(fmt.Sprintf("test queue row %d has no run link", i))
			return false
		}
		href, ok := anchor.Attr("href")
		if !ok {
			parseErr = newErrParse(fmt.Sprintf("test queue row %d run link has no href", i))
			return false
		}
		id, err := strconv.Atoi(hrefTail(href))
		if err != nil {
			parseErr = newErrParse(fmt.Sprintf(
				"test queue row %d: run href %q has no numeric tail", i, href)).SetDebug(err)
			return false
		}

		cols := row.Find("td")
		if cols.Length() < 4 {
			parseErr = newErrParse(fmt.Sprintf(
				"test queue row %d has %d columns, want at least 4", i, cols.Length()))
			return false
		}

		startText := strings.TrimSpace(cols.Eq(2).Text())
		startTime, err := time.ParseInLocation(listTimeLayout, startText, listLocation)
		if err != nil {
			parseErr = newErrParse(fmt.Sprintf(
				"test queue row %d: start time %q does not match %s", i, startText, listTimeLayout)).SetDebug(err)
			return false
		}

		var endTime *time.Time
		endText := strings.TrimSpace(cols.Eq(3).Text())
		if endText != notFinishedSentinel {
			t, err := time.ParseInLocation(listTimeLayout, endText, listLocation)
			if err != nil {
				parseErr = newErrParse(fmt.Sprintf(
					"test queue row %d: end time %q does not match %s", i, endText, listTimeLayout)).SetDebug(err)
				return false
			}
			endTime = &t
		}

		runs = append(runs, TestRun{ID: id, StartTime: startTime, EndTime: endTime})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return runs, nil
}
