package streamkit

// Package streamkit turns a character-by-character JSON stream into
// fine-grained, typed, schema-driven callbacks, and separately tracks
// mutations to an in-memory document as a compact sequence of JSON Patch
// operations.
//
// Design policy:
//   - Keep only public APIs in the root package; put the tokeniser under
//     internal/charstream.
//   - Place DSL sugar under dsl/, the external-schema representation and
//     validator under jsonschema/ (the adapter to descriptors stays in
//     the root package), and the mutation tracker under tracker/.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := dsl.Object().Field("message", dsl.String())
//	node, err := schema.Create("")
//	obj := node.(*streamkit.ObjectNode)
//	obj.Field("message").(*streamkit.StringNode).OnAppend(func(chunk string) {
//	    fmt.Print(chunk)
//	})
//	p := streamkit.NewParser(obj)
//	for _, chunk := range chunks {
//	    if err := p.Push(chunk); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	_ = p.Complete()
