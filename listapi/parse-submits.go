package listapi

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseSubmissions extracts the submission history rendered on the
// upload page, in document order. The most recently created submission
// is the last element.
//
// Contract: one table.solutions_table row per submission; rows without
// an input (header rows) are skipped; the version is the trimmed
// numeric value of the row's first input, the id the extension-free
// href tail of the file link inside td.file.
func ParseSubmissions(html string, problemID int) ([]Submission, error) {
	doc, derr := newDoc(html, "upload page")
	if derr != nil {
		return nil, derr
	}

	var submissions []Submission
	var parseErr error
	doc.Find("table.solutions_table tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		input := row.Find("input").First()
		if input.Length() == 0 {
			slog.Debug("failed to parse submission, no input found, skipping row", "row", i)
			return true
		}
		value := strings.TrimSpace(input.AttrOr("value", ""))
		version, err := strconv.Atoi(value)
		if err != nil {
			parseErr = newErrParse(fmt.Sprintf(
				"submission row %d: version %q is not numeric", i, value)).SetDebug(err)
			return false
		}

		fileAnchor := row.Find("td.file a").First()
		if fileAnchor.Length() == 0 {
			parseErr = newErrParse(fmt.Sprintf("submission row %d has no file link", i))
			return false
		}
		href, ok := fileAnchor.Attr("href")
		if !ok {
			parseErr = newErrParse(fmt.Sprintf("submission row %d file link has no href", i))
			return false
		}

		submissions = append(submissions, Submission{
			ID:        hrefTail(href),
			Version:   version,
			Name:      fileAnchor.Text(),
			ProblemID: problemID,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return submissions, nil
}
