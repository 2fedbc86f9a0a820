package descriptor

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec/json"
	"github.com/warpfork/go-testmark"

	"github.com/warptools/modcreator/modapi"
)

func TestDescriptorFixtures(t *testing.T) {
	doc, err := testmark.ReadFile("../../examples/200-descriptor/descriptors.md")
	if err != nil {
		t.Fatalf("spec file parse failed?!: %s", err)
	}

	doc.BuildDirIndex()
	for _, dir := range doc.DirEnt.ChildrenList {
		dir := dir
		t.Run(dir.Name, func(t *testing.T) {
			qt.Assert(t, dir.Children["spec"], qt.IsNotNil)
			qt.Assert(t, dir.Children["module.xml"], qt.IsNotNil)

			spec := modapi.ModuleSpec{}
			_, err := ipld.Unmarshal(dir.Children["spec"].Hunk.Body, json.Decode, &spec, modapi.TypeSystem.TypeByName("ModuleSpec"))
			qt.Assert(t, err, qt.IsNil)

			out, err := Marshal(spec)
			qt.Assert(t, err, qt.IsNil)
			qt.Assert(t, string(out), qt.CmpEquals(), string(dir.Children["module.xml"].Hunk.Body))
		})
	}
}

func TestMarshalDeterministic(t *testing.T) {
	slot := modapi.SlotName("slotX")
	spec := modapi.ModuleSpec{
		Name:      "a.b.c",
		Resources: []modapi.ResourceRef{{Path: "a.jar"}, {Path: "b.jar"}},
		Dependencies: []modapi.DependencyRef{
			{Name: "foo"},
			{Name: "bar", Slot: &slot},
		},
	}
	first, err := Marshal(spec)
	qt.Assert(t, err, qt.IsNil)
	second, err := Marshal(spec)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, string(second), qt.Equals, string(first))
}

func TestMarshalOrdering(t *testing.T) {
	slot := modapi.SlotName("slotX")
	spec := modapi.ModuleSpec{
		Name:      "x",
		Resources: []modapi.ResourceRef{{Path: "a.jar"}, {Path: "b.jar"}},
		Dependencies: []modapi.DependencyRef{
			{Name: "foo"},
			{Name: "bar", Slot: &slot},
		},
	}
	out, err := Marshal(spec)
	qt.Assert(t, err, qt.IsNil)
	doc := string(out)

	qt.Assert(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"), qt.IsTrue)
	qt.Assert(t, strings.HasSuffix(doc, "</module>\n"), qt.IsTrue)
	qt.Assert(t, doc, qt.Contains, `<module xmlns="urn:jboss:module:1.1" name="x">`)

	a := strings.Index(doc, `<resource-root path="a.jar"/>`)
	b := strings.Index(doc, `<resource-root path="b.jar"/>`)
	qt.Assert(t, a > 0 && b > a, qt.IsTrue, qt.Commentf("resource order: a=%d b=%d", a, b))

	foo := strings.Index(doc, `<module name="foo"/>`)
	bar := strings.Index(doc, `<module name="bar" slot="slotX"/>`)
	qt.Assert(t, foo > 0 && bar > foo, qt.IsTrue, qt.Commentf("dependency order: foo=%d bar=%d", foo, bar))
}

func TestMarshalSelfClosing(t *testing.T) {
	for _, tt := range []struct {
		name   string
		spec   modapi.ModuleSpec
		expect []string
	}{
		{
			name:   "no resources",
			spec:   modapi.ModuleSpec{Name: "x"},
			expect: []string{"    <resources/>\n"},
		},
		{
			name: "leaf elements",
			spec: modapi.ModuleSpec{
				Name:         "x",
				Resources:    []modapi.ResourceRef{{Path: "a<b>.jar"}},
				Dependencies: []modapi.DependencyRef{{Name: "foo"}},
			},
			expect: []string{
				`        <resource-root path="a&lt;b&gt;.jar"/>` + "\n",
				`        <module name="foo"/>` + "\n",
				"    </resources>\n",
				"    </dependencies>\n",
			},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			out, err := Marshal(tt.spec)
			qt.Assert(t, err, qt.IsNil)
			doc := string(out)
			qt.Assert(t, doc, qt.Not(qt.Contains), "></")
			for _, line := range tt.expect {
				qt.Assert(t, doc, qt.Contains, line)
			}
			qt.Assert(t, strings.HasSuffix(doc, "\n</module>\n"), qt.IsTrue)
		})
	}
}
