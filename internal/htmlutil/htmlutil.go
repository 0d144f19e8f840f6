// Package htmlutil holds small helpers for pulling text out of parsed
// swimrankings markup.
package htmlutil

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// CellText returns the visible text of a selection with surrounding
// whitespace trimmed and runs of inner whitespace collapsed.
func CellText(sel *goquery.Selection) string {
	text := strings.Trim(sel.Text(), " \t\n")
	return innerWhitespace.ReplaceAllString(text, " ")
}

// NormalizedCellText is CellText run through unicode NFKD normalization,
// which among other things turns the non-breaking spaces swimrankings
// likes to render into plain ones.
func NormalizedCellText(sel *goquery.Selection) string {
	text := norm.NFKD.String(sel.Text())
	text = strings.Trim(text, " \t\n")
	return innerWhitespace.ReplaceAllString(text, " ")
}

// TextAfterBreak returns the trimmed text of the node immediately
// following the first <br> inside the selection, or "" when there is none.
func TextAfterBreak(sel *goquery.Selection) string {
	for _, n := range sel.Nodes {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode || child.Data != "br" {
				continue
			}
			var buffer bytes.Buffer
			getTextRecursive(child.NextSibling, &buffer)
			return strings.Trim(buffer.String(), " \t\n")
		}
	}
	return ""
}
