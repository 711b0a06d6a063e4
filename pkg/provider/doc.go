/*
Package provider finds and stores the files a run works on.

	            +-------------+
	            |  Provider   |
	            |  (targets)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |                         |
	+-----+------+          +-------+-------+
	| FixedList  |          | RecursiveScan |
	| (ordered)  |          | (sorted walk) |
	+------------+          +---------------+

	            +-------------+
	            | FileManager |
	            | (LocalFiles)|
	            +-------------+

🎯 Purpose:
- Yields relative, slash separated paths in a deterministic order
- Keeps walking when a single entry fails; the error travels with its path
- Reads and atomically rewrites existing files, keeping their mode

⚡ Key Responsibilities:
- FixedList keeps the caller's order and skips missing optional paths
- RecursiveScan skips excluded directory names and matches doublestar patterns
- LocalFiles never creates or deletes content files

Every range over ListTargets walks the source again, so a provider can be
reused across runs.
*/
package provider
