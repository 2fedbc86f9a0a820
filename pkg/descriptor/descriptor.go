/*
Package descriptor renders a modapi.ModuleSpec as a module.xml document.

The document looks like this:

	<?xml version="1.0" encoding="UTF-8"?>
	<module xmlns="urn:jboss:module:1.1" name="com.example.foo" slot="main">
	    <resources>
	        <resource-root path="foo.jar"/>
	    </resources>
	    <dependencies>
	        <module name="javax.api"/>
	    </dependencies>
	</module>

The slot attribute is only present when the spec has a slot,
and the dependencies element is only present when there is at least one dependency.
Elements without content are written in their self-closing form.
Rendering is deterministic: the same spec always produces the same bytes.

Writing the document to disk is done by package dab.
*/
package descriptor

import (
	"bytes"
	"encoding/xml"
	"regexp"

	"github.com/warptools/modcreator/modapi"
)

// Namespace is the XML namespace of the root element.
const Namespace = "urn:jboss:module:1.1"

const indent = "    "

// encoding/xml always writes an end tag; an empty element comes out as
// a start tag immediately followed by its end tag.
// Attribute values never contain a raw '<' or '>', so this only matches such pairs.
var emptyElement = regexp.MustCompile(`(<[^/?<>][^<>]*)></[^<>]+>`)

type moduleElement struct {
	XMLName      xml.Name             `xml:"urn:jboss:module:1.1 module"`
	Name         string               `xml:"name,attr"`
	Slot         string               `xml:"slot,attr,omitempty"`
	Resources    resourcesElement     `xml:"resources"`
	Dependencies *dependenciesElement `xml:"dependencies,omitempty"`
}

type resourcesElement struct {
	Roots []resourceRootElement `xml:"resource-root"`
}

type resourceRootElement struct {
	Path string `xml:"path,attr"`
}

type dependenciesElement struct {
	Modules []dependencyElement `xml:"module"`
}

type dependencyElement struct {
	Name string `xml:"name,attr"`
	Slot string `xml:"slot,attr,omitempty"`
}

func slotAttr(slot *modapi.SlotName) string {
	if slot == nil {
		return ""
	}
	return string(*slot)
}

func build(spec modapi.ModuleSpec) moduleElement {
	elem := moduleElement{
		Name: string(spec.Name),
		Slot: slotAttr(spec.Slot),
	}
	for _, res := range spec.Resources {
		elem.Resources.Roots = append(elem.Resources.Roots, resourceRootElement{Path: res.Path})
	}
	if len(spec.Dependencies) > 0 {
		elem.Dependencies = &dependenciesElement{}
		for _, dep := range spec.Dependencies {
			elem.Dependencies.Modules = append(elem.Dependencies.Modules, dependencyElement{
				Name: string(dep.Name),
				Slot: slotAttr(dep.Slot),
			})
		}
	}
	return elem
}

// Marshal renders spec as an indented module.xml document, header and trailing newline included.
// Resource paths are emitted as they are in the spec;
// callers that copied resources are expected to have rewritten them already.
//
// Errors:
//
//   - modcreator-error-serialization -- when the document cannot be encoded
func Marshal(spec modapi.ModuleSpec) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", indent)
	if err := enc.Encode(build(spec)); err != nil {
		return nil, modapi.ErrorSerialization("encoding module descriptor", "", err)
	}
	if err := enc.Flush(); err != nil {
		return nil, modapi.ErrorSerialization("encoding module descriptor", "", err)
	}
	buf.WriteString("\n")
	return emptyElement.ReplaceAll(buf.Bytes(), []byte("$1/>")), nil
}
