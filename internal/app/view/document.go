package view

import "github.com/PuerkitoBio/goquery"

// DocumentBinder binds to a parsed HTML document. Visibility is expressed
// with HiddenClass.
type DocumentBinder struct {
	doc *goquery.Document
}

func NewDocumentBinder(doc *goquery.Document) *DocumentBinder {
	return &DocumentBinder{doc: doc}
}

func (b *DocumentBinder) SetText(selector, text string) {
	b.doc.Find(selector).SetText(text)
}

func (b *DocumentBinder) ToggleClass(selector, class string, on bool) {
	sel := b.doc.Find(selector)
	if on {
		sel.AddClass(class)
		return
	}
	sel.RemoveClass(class)
}

func (b *DocumentBinder) SetVisible(selector string, visible bool) {
	b.ToggleClass(selector, HiddenClass, !visible)
}
