// Package generator provides the file-operation and template-rendering
// primitives used to materialize projects on disk.
//
// # Operations
//
// Every artifact is described as an Operation before anything touches the
// filesystem. Operations are validated as a batch and then executed one at a
// time, in order:
//
//	ops := []generator.Operation{
//	    &generator.MkdirOp{Path: "myagent/src", Mode: 0755},
//	    &generator.WriteFileOp{Path: "myagent/README.md", Content: readme, Mode: 0644},
//	}
//
//	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{}); err != nil {
//	    return err
//	}
//
// Execution stops at the first failure. Files written before the failure are
// left in place.
//
// # Rendering
//
// Renderer parses text/template sources (strings or embedded files), caches
// the parsed templates and executes them with a small helper func map.
package generator
