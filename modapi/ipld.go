package modapi

import (
	"embed"
	"fmt"

	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/node/bindnode"
	"github.com/ipld/go-ipld-prime/schema"
	schemadmt "github.com/ipld/go-ipld-prime/schema/dmt"
	schemadsl "github.com/ipld/go-ipld-prime/schema/dsl"
)

// TypeSystem describes all our API data types and their representation strategies in IPLD Schema form.
// This is parsed from the modapi.ipldsch file, which is embedded into the binary at build time.

//go:embed modapi.ipldsch
var schFs embed.FS

var SchemaDMT, TypeSystem = func() (*schemadmt.Schema, *schema.TypeSystem) {
	r, err := schFs.Open("modapi.ipldsch")
	if err != nil {
		panic(fmt.Sprintf("failed to open embedded modapi.ipldsch: %s", err))
	}
	schemaDmt, err := schemadsl.Parse("modapi.ipldsch", r)
	if err != nil {
		panic(fmt.Sprintf("failed to parse api schema: %s", err))
	}
	ts := new(schema.TypeSystem)
	ts.Init()
	if err := schemadmt.Compile(ts, schemaDmt); err != nil {
		panic(fmt.Sprintf("failed to compile api schema: %s", err))
	}
	return schemaDmt, ts
}()

// Node returns the result as a representation-level node, ready for any codec.
func (r *GenerateResult) Node() datamodel.Node {
	return bindnode.Wrap(r, TypeSystem.TypeByName("GenerateResult")).Representation()
}
