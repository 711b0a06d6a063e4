/*
Package operation runs rule sets over the files of a website root.

	+-------------+      +-------------+      +-------------+
	|  Provider   | ---> |  Operator   | ---> |  Reporter   |
	| (targets)   |      | (rewrite)   |      | (outcomes)  |
	+-------------+      +------+------+      +-------------+
	                            |
	                     +------+------+
	                     | FileManager |
	                     | (read/write)|
	                     +-------------+

🎯 Purpose:
- Checks the entry file before touching anything
- Applies the rules scoped to each target, one file at a time
- Writes changed files in apply mode, never in preview mode
- Turns every per-file failure into an outcome and keeps going

🔄 Flow:
1. Entry check (fatal when missing)
2. Invalid rules reported once
3. For each target: read, apply, classify, write
4. Reporter holds the per-file records and the summary

🔍 Example:

	op, err := operation.New(operation.Options{
		Provider: provider.NewRecursiveScan(root),
		Files:    provider.NewLocalFiles(root),
		Rules:    rules,
		Mode:     operation.ModePreview,
		Entry:    "index.html",
	})
	reporter, err := op.Run(ctx)
*/
package operation
