package listapi

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/list-fmph/list-submit/srvcerror"
)

// Page parsers are pure: one HTML document in, one domain value (or a
// parse error with a location hint) out. Every structural assumption a
// parser makes about its page is the real protocol here and is spelled
// out on the function itself.

// hrefTail returns the last path segment of href with its extension
// stripped, e.g. "/tasks/task/123_foo.html" -> "123_foo".
func hrefTail(href string) string {
	segment := href[strings.LastIndex(href, "/")+1:]
	if dot := strings.Index(segment, "."); dot != -1 {
		segment = segment[:dot]
	}
	return segment
}

func newDoc(html string, page string) (*goquery.Document, *srvcerror.Error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newErrParse(page + " is not parseable HTML").SetDebug(err)
	}
	return doc, nil
}
