package listapi_test

import (
	"fmt"
	"testing"

	"github.com/list-fmph/list-submit/listapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const solutionsPage = `
<table class="solutions_table">
<tr>
	<th>Verzia</th><th>Súbor</th><th>Dátum</th>
</tr>
<tr>
	<td><input type="radio" name="version" value="1"></td>
	<td class="file"><a href="/tasks/download_solution/s81aa.zip">riesenie.zip</a></td>
	<td>01.03.2024 09:12:00</td>
</tr>
<tr>
	<td><input type="radio" name="version" value=" 2 "></td>
	<td class="file"><a href="/tasks/download_solution/s81ab.zip">riesenie.zip</a></td>
	<td>02.03.2024 18:40:11</td>
</tr>
<tr>
	<td><input type="radio" name="version" value="3"></td>
	<td class="file"><a href="/tasks/download_solution/s81ac.zip">riesenie_v2.zip</a></td>
	<td>03.03.2024 08:01:59</td>
</tr>
</table>`

func TestParseSubmissions(t *testing.T) {
	submissions, err := listapi.ParseSubmissions(solutionsPage, 4242)
	require.NoError(t, err)
	require.Len(t, submissions, 3)

	// Document order, header row skipped, extension-free ids, trimmed
	// numeric versions.
	for i, submission := range submissions {
		assert.Equal(t, i+1, submission.Version)
		assert.Equal(t, 4242, submission.ProblemID)
		assert.Equal(t, fmt.Sprintf("s81a%c", 'a'+i), submission.ID)
	}
	assert.Equal(t, "riesenie_v2.zip", submissions[2].Name)
}

func TestParseSubmissionsNonNumericVersionFails(t *testing.T) {
	page := `
<table class="solutions_table">
<tr>
	<td><input type="radio" name="version" value="first"></td>
	<td class="file"><a href="/tasks/download_solution/s1.zip">riesenie.zip</a></td>
</tr>
</table>`
	_, err := listapi.ParseSubmissions(page, 1)
	requireErrCode(t, err, listapi.ErrCodeParse)
}

func TestParseSubmissionsRowWithoutFileLinkFails(t *testing.T) {
	page := `
<table class="solutions_table">
<tr>
	<td><input type="radio" name="version" value="1"></td>
	<td class="file">riesenie.zip</td>
</tr>
</table>`
	_, err := listapi.ParseSubmissions(page, 1)
	requireErrCode(t, err, listapi.ErrCodeParse)
}

func TestParseSubmissionsEmptyHistory(t *testing.T) {
	submissions, err := listapi.ParseSubmissions(`<table class="solutions_table"></table>`, 1)
	require.NoError(t, err)
	assert.Empty(t, submissions)
}
