package listapi

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

// ParseSubmitForm extracts the hidden test-enqueue form from a problem
// page. A page without the test[task_set_id] input belongs to a problem
// that does not support automated testing; that is a legitimate outcome
// and reported as (nil, nil).
//
// Contract: test[id][] inputs are multi-valued and collected in
// document order; test[task_set_id], test[student_id] and
// select_test_type are single hidden inputs whose value attribute is
// required once the form is present at all.
func ParseSubmitForm(html string) (*SubmitForm, error) {
	doc, derr := newDoc(html, "problem page")
	if derr != nil {
		return nil, derr
	}

	taskSet := doc.Find(`input[name="test[task_set_id]"]`).First()
	if taskSet.Length() == 0 {
		return nil, nil
	}
	taskSetID, ok := taskSet.Attr("value")
	if !ok {
		return nil, newErrParse(`input test[task_set_id] has no value attribute`)
	}

	studentInput := doc.Find(`input[name="test[student_id]"]`).First()
	if studentInput.Length() == 0 {
		return nil, newErrParse(`input test[student_id] not found`)
	}
	studentRaw, ok := studentInput.Attr("value")
	if !ok {
		return nil, newErrParse(`input test[student_id] has no value attribute`)
	}
	studentID, err := strconv.Atoi(studentRaw)
	if err != nil {
		return nil, newErrParse(`input test[student_id] value is not numeric`).SetDebug(err)
	}

	testTypeInput := doc.Find(`input[name="select_test_type"]`).First()
	if testTypeInput.Length() == 0 {
		return nil, newErrParse(`input select_test_type not found`)
	}
	selectTestType, ok := testTypeInput.Attr("value")
	if !ok {
		return nil, newErrParse(`input select_test_type has no value attribute`)
	}

	var tests []string
	doc.Find(`input[name="test[id][]"]`).Each(func(_ int, input *goquery.Selection) {
		if value, ok := input.Attr("value"); ok {
			tests = append(tests, value)
		}
	})

	return &SubmitForm{
		TaskSetID:      taskSetID,
		StudentID:      studentID,
		SelectTestType: selectTestType,
		Tests:          tests,
	}, nil
}
