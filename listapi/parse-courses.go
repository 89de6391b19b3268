package listapi

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

// courseDetailsLabel is the only integrity check available that the
// id-bearing anchor of a course block is the right one.
const courseDetailsLabel = "Zobraz detaily"

// ParseCourses extracts courses from the courses page.
//
// Contract: each div.period_course block holds the course name in an h4
// and the course id in the extension-free href tail of the block's last
// anchor. That anchor must read "Zobraz detaily"; any other text is a
// protocol violation and fails the whole parse.
func ParseCourses(html string) ([]Course, error) {
	doc, derr := newDoc(html, "courses page")
	if derr != nil {
		return nil, derr
	}

	var courses []Course
	var parseErr error
	doc.Find("div.period_course").EachWithBreak(func(_ int, block *goquery.Selection) bool {
		nameH4 := block.Find("h4").First()
		if nameH4.Length() == 0 {
			slog.Debug("failed to parse course name, no h4 found, skipping course")
			return true
		}
		name := nameH4.Text()

		anchors := block.Find("a")
		if anchors.Length() == 0 {
			slog.Debug("failed to parse course id, no anchors found, skipping course", "course", name)
			return true
		}
		anchor := anchors.Last()
		if anchor.Text() != courseDetailsLabel {
			parseErr = newErrParse(fmt.Sprintf(
				"course %q: %q is not present in the anchor text %q",
				name, courseDetailsLabel, anchor.Text()))
			return false
		}

		href, ok := anchor.Attr("href")
		if !ok {
			slog.Debug("failed to parse course id, no href found, skipping course", "course", name)
			return true
		}
		id, err := strconv.Atoi(hrefTail(href))
		if err != nil {
			parseErr = newErrParse(fmt.Sprintf(
				"course %q: details href %q has no numeric tail", name, href)).SetDebug(err)
			return false
		}

		courses = append(courses, Course{ID: id, Name: name})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return courses, nil
}
