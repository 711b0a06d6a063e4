/*
Package status records and reports what a run did to each file.

	            +-------------+
	            |  Reporter   |
	            |  (one run)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  Records  |           | Summary |
	| (per file)|           | (table) |
	+-----------+           +---------+

🎯 Purpose:
- Classifies each file as applied, skipped, not-found or io-error
- Keeps "already updated" and "no matching patterns" apart; the first
  means there is nothing to do, the second that the page drifted from what
  the rules expect
- Renders per file lines and a summary table

🔄 Flow:
1. The operation derives an Outcome from the rewriter result (FromResult)
   or from an I/O failure (IOError)
2. Reporter.Record stores it and mirrors it to zerolog
3. Reporter.Render prints everything once the run is over

A Reporter lives for exactly one run. Nothing here is global.
*/
package status
