package htmlutil

import (
	"bytes"

	"golang.org/x/net/html"
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

func HasClass(node *html.Node, class string) bool {
	for _, a := range node.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range bytes.Fields([]byte(a.Val)) {
			if string(c) == class {
				return true
			}
		}
	}
	return false
}
