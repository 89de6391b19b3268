package listapi_test

import (
	"testing"

	"github.com/list-fmph/list-submit/listapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coursesPage = `
<html><body>
<div class="period_course">
	<h4>Programovanie (1) v jazyku C</h4>
	<p>Zimný semester</p>
	<a href="/courses/show/92.html">Zobraz detaily</a>
</div>
<div class="period_course">
	<h4>Algoritmy a dátové štruktúry</h4>
	<a href="/courses/enroll/105.html">Prihlás sa</a>
	<a href="/courses/show/105.html">Zobraz detaily</a>
</div>
</body></html>`

func TestParseCourses(t *testing.T) {
	courses, err := listapi.ParseCourses(coursesPage)
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, 92, courses[0].ID)
	assert.Equal(t, "Programovanie (1) v jazyku C", courses[0].Name)
	assert.Equal(t, 105, courses[1].ID)
	assert.Equal(t, "Algoritmy a dátové štruktúry", courses[1].Name)
}

func TestParseCoursesBadDetailsLabelFailsWholeParse(t *testing.T) {
	// Three course blocks, the middle one without the expected details
	// label. The label is the only integrity check that the id-bearing
	// anchor is the right one, so this must not yield a partial list.
	page := `
<div class="period_course">
	<h4>Kurz A</h4>
	<a href="/courses/show/1.html">Zobraz detaily</a>
</div>
<div class="period_course">
	<h4>Kurz B</h4>
	<a href="/courses/show/2.html">Detaily</a>
</div>
<div class="period_course">
	<h4>Kurz C</h4>
	<a href="/courses/show/3.html">Zobraz detaily</a>
</div>`

	courses, err := listapi.ParseCourses(page)
	requireErrCode(t, err, listapi.ErrCodeParse)
	assert.Nil(t, courses)
}

func TestParseCoursesSkipsBlockWithoutHeading(t *testing.T) {
	page := `
<div class="period_course">
	<a href="/courses/show/1.html">Zobraz detaily</a>
</div>
<div class="period_course">
	<h4>Kurz B</h4>
	<a href="/courses/show/2.html">Zobraz detaily</a>
</div>`

	courses, err := listapi.ParseCourses(page)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, 2, courses[0].ID)
}

func TestParseCoursesNonNumericIdFails(t *testing.T) {
	page := `
<div class="period_course">
	<h4>Kurz A</h4>
	<a href="/courses/show/abc.html">Zobraz detaily</a>
</div>`

	_, err := listapi.ParseCourses(page)
	requireErrCode(t, err, listapi.ErrCodeParse)
}

func TestParseCoursesEmptyPage(t *testing.T) {
	courses, err := listapi.ParseCourses("<html><body></body></html>")
	require.NoError(t, err)
	assert.Empty(t, courses)
}
