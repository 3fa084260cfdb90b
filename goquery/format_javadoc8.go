package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// scanJavadoc8 handles pages generated by Javadoc 8. Each member is
// documented in a block-list item headed by an anchor and an h4:
//
//	<a name="process-java.lang.String-int-"></a>
//	<li class="blockList">
//	<h4>process</h4>
//	<pre>public&nbsp;void&nbsp;process(java.lang.String&nbsp;name,
//	                                   int&nbsp;count)</pre>
//	<div class="block">Prose description.</div>
//	</li>
//
// Summary tables link to these anchors but carry no h4 heading of their
// own, so matching on the heading text never selects a summary row.
func scanJavadoc8(doc *goquery.Document, target string) []*candidate {
	var cands []*candidate
	doc.Find("li.blockList h4, li.blockListLast h4").Each(func(_ int, sel *goquery.Selection) {
		if strings.TrimSpace(sel.Text()) != target {
			return
		}
		pre := sel.NextAllFiltered("pre").First()
		if pre.Length() == 0 {
			return
		}
		raw, ok := parenContents(collapseSpace(pre.Text()))
		if !ok {
			return
		}
		cand := &candidate{params: parseParamList(raw)}
		if block := sel.NextAllFiltered("div.block").First(); block.Length() > 0 {
			if html, err := goquery.OuterHtml(block); err == nil {
				cand.description = html
			}
		}
		cands = append(cands, cand)
	})
	return cands
}
