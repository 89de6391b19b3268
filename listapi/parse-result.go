package listapi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseTestResult extracts the graded outcome of a completed run.
//
// Contract: in the summary table the 4th row's single cell holds the
// normal points and the 5th row's the bonus points. Each evaluation
// table row is paired by list position with a fieldset pre output block
// elsewhere in the document; a length mismatch means the page schema
// changed and the parse fails as a whole rather than truncating.
// Percentages carry a % suffix that is stripped before the numeric
// parse.
func ParseTestResult(html string) (*TestResult, error) {
	doc, derr := newDoc(html, "test result page")
	if derr != nil {
		return nil, derr
	}

	normalPoints, err := parseSummaryCell(doc, 4)
	if err != nil {
		return nil, err
	}
	bonusPoints, err := parseSummaryCell(doc, 5)
	if err != nil {
		return nil, err
	}

	rows := doc.Find("table.tests_evaluation_table > tbody > tr")
	outputs := doc.Find("fieldset pre")
	if rows.Length() != outputs.Length() {
		return nil, newErrParse(fmt.Sprintf(
			"result has %d problem rows but %d output blocks", rows.Length(), outputs.Length()))
	}

	var problems []TestResultProblem
	var parseErr error
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 3 {
			parseErr = newErrParse(fmt.Sprintf(
				"result row %d has %d cells, want at least 3", i, cells.Length()))
			return false
		}
		name := strings.TrimSpace(cells.Eq(0).Text())

		percentageText := strings.TrimSpace(cells.Eq(1).Text())
		trimmed, ok := strings.CutSuffix(percentageText, "%")
		if !ok {
			parseErr = newErrParse(fmt.Sprintf(
				"result row %d: percentage %q has no %% suffix", i, percentageText))
			return false
		}
		percentage, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			parseErr = newErrParse(fmt.Sprintf(
				"result row %d: percentage %q is not numeric", i, percentageText)).SetDebug(err)
			return false
		}

		pointsText := strings.TrimSpace(cells.Eq(2).Text())
		points, err := strconv.ParseFloat(pointsText, 64)
		if err != nil {
			parseErr = newErrParse(fmt.Sprintf(
				"result row %d: points %q is not numeric", i, pointsText)).SetDebug(err)
			return false
		}

		problems = append(problems, TestResultProblem{
			Name:       name,
			Percentage: percentage,
			Points:     points,
			Output:     strings.TrimSpace(outputs.Eq(i).Text()),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return &TestResult{
		NormalPoints: normalPoints,
		BonusPoints:  bonusPoints,
		Problems:     problems,
	}, nil
}

func parseSummaryCell(doc *goquery.Document, row int) (float64, error) {
	selector := fmt.Sprintf("table.tests_result_sum_table > tbody > tr:nth-child(%d) > td", row)
	cell := doc.Find(selector).First()
	if cell.Length() == 0 {
		return 0, newErrParse(fmt.Sprintf("summary cell %q not found", selector))
	}
	text := strings.TrimSpace(cell.Text())
	points, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, newErrParse(fmt.Sprintf(
			"summary cell %q: %q is not numeric", selector, text)).SetDebug(err)
	}
	return points, nil
}
