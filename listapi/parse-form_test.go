package listapi_test

import (
	"testing"

	"github.com/list-fmph/list-submit/listapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const problemPageWithForm = `
<form action="/fetests/enqueue_test" method="post">
	<input type="hidden" name="test[task_set_id]" value="ts-77">
	<input type="hidden" name="test[student_id]" value="1337">
	<input type="checkbox" name="test[id][]" value="10">
	<input type="checkbox" name="test[id][]" value="7">
	<input type="checkbox" name="test[id][]" value="9">
	<input type="hidden" name="select_test_type" value="FeTestCompile">
</form>`

func TestParseSubmitForm(t *testing.T) {
	form, err := listapi.ParseSubmitForm(problemPageWithForm)
	require.NoError(t, err)
	require.NotNil(t, form)

	assert.Equal(t, "ts-77", form.TaskSetID)
	assert.Equal(t, 1337, form.StudentID)
	assert.Equal(t, "FeTestCompile", form.SelectTestType)
	// Multi-valued field collected in document order.
	assert.Equal(t, []string{"10", "7", "9"}, form.Tests)
}

func TestParseSubmitFormTestingUnsupported(t *testing.T) {
	// A problem page without the task set input has no automated tests
	// configured. That is a legitimate outcome, not an error.
	form, err := listapi.ParseSubmitForm(`<html><body><h1>Úloha</h1></body></html>`)
	require.NoError(t, err)
	assert.Nil(t, form)
}

func TestParseSubmitFormMissingSingularFieldsFail(t *testing.T) {
	testCases := []struct {
		name string
		page string
	}{
		{
			name: "missing student id",
			page: `
<input type="hidden" name="test[task_set_id]" value="ts-77">
<input type="hidden" name="select_test_type" value="FeTestCompile">`,
		},
		{
			name: "missing select test type",
			page: `
<input type="hidden" name="test[task_set_id]" value="ts-77">
<input type="hidden" name="test[student_id]" value="1337">`,
		},
		{
			name: "task set id without value",
			page: `
<input type="hidden" name="test[task_set_id]">
<input type="hidden" name="test[student_id]" value="1337">
<input type="hidden" name="select_test_type" value="FeTestCompile">`,
		},
		{
			name: "non-numeric student id",
			page: `
<input type="hidden" name="test[task_set_id]" value="ts-77">
<input type="hidden" name="test[student_id]" value="john">
<input type="hidden" name="select_test_type" value="FeTestCompile">`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := listapi.ParseSubmitForm(tc.page)
			requireErrCode(t, err, listapi.ErrCodeParse)
		})
	}
}

func TestParseSubmitFormNoTests(t *testing.T) {
	page := `
<input type="hidden" name="test[task_set_id]" value="ts-77">
<input type="hidden" name="test[student_id]" value="1337">
<input type="hidden" name="select_test_type" value="FeTestCompile">`

	form, err := listapi.ParseSubmitForm(page)
	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Empty(t, form.Tests)
}
