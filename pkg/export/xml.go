package export

import (
	"strings"

	"github.com/beevik/etree"
)

// ClasspathXML renders the snapshot as an Eclipse-style .classpath
// document, one lib entry per locator, so IDEs pointed at an installation
// can mirror the runtime search path.
func (s Snapshot) ClasspathXML() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("classpath")
	for _, loc := range s.Locators {
		entry := root.CreateElement("classpathentry")
		if strings.HasSuffix(loc.Path, "/") {
			entry.CreateAttr("kind", "src")
		} else {
			entry.CreateAttr("kind", "lib")
		}
		entry.CreateAttr("path", loc.Path)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
