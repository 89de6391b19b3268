package listapi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseProblems extracts problems from the tasks page.
//
// Contract: each td.td_name cell contains exactly one link; the
// extension-free href tail is the full id, and the numeric prefix of
// the full id before its first underscore is the problem id.
func ParseProblems(html string) ([]Problem, error) {
	doc, derr := newDoc(html, "tasks page")
	if derr != nil {
		return nil, derr
	}

	var problems []Problem
	var parseErr error
	doc.Find("td.td_name").EachWithBreak(func(i int, cell *goquery.Selection) bool {
		anchor := cell.Find("a").First()
		if anchor.Length() == 0 {
			parseErr = newErrParse(fmt.Sprintf("problem cell %d has no link", i))
			return false
		}
		href, ok := anchor.Attr("href")
		if !ok {
			parseErr = newErrParse(fmt.Sprintf("problem cell %d link has no href", i))
			return false
		}

		fullID := hrefTail(href)
		idStr, _, _ := strings.Cut(fullID, "_")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			parseErr = newErrParse(fmt.Sprintf(
				"problem full id %q has no numeric prefix", fullID)).SetDebug(err)
			return false
		}

		problems = append(problems, Problem{ID: id, FullID: fullID, Name: anchor.Text()})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return problems, nil
}
