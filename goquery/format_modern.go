package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// scanModern handles pages generated by Javadoc 11 and later. Each member
// is documented in a detail section:
//
//	<section class="detail" id="process(java.lang.String,int)">
//	<h3>process</h3>
//	<div class="member-signature">
//	  <span class="modifiers">public</span>
//	  <span class="return-type">void</span>
//	  <span class="element-name">process</span>
//	  <span class="parameters">(java.lang.String&nbsp;name, int&nbsp;count)</span>
//	</div>
//	<div class="block">Prose description.</div>
//	</section>
func scanModern(doc *goquery.Document, target string) []*candidate {
	var cands []*candidate
	doc.Find("section.detail").Each(func(_ int, sel *goquery.Selection) {
		if strings.TrimSpace(sel.Find("h3").First().Text()) != target {
			return
		}
		sig := sel.Find("div.member-signature").First()
		if sig.Length() == 0 {
			return
		}
		raw, ok := parenContents(collapseSpace(sig.Text()))
		if !ok {
			return
		}
		cand := &candidate{params: parseParamList(raw)}
		if block := sel.Find("div.block").First(); block.Length() > 0 {
			if html, err := goquery.OuterHtml(block); err == nil {
				cand.description = html
			}
		}
		cands = append(cands, cand)
	})
	return cands
}
