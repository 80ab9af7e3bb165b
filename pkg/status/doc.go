/*
Package status manages file access and per-file outcome reporting for
fixbrackets.

	            +-------------+
	            |   Status    |
	            | (Tracking)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           |  Lines  |
	|  (I/O)    |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Reads and writes the assembly sources being rewritten
- Records one FileResult per processed path
- Renders the per-file console line for each outcome
- Aggregates run totals for the summary

🔄 Flow:
1. Operation asks FileManager for existence checks and file content
2. Operation hands each outcome to StatusReporter.Track
3. Track prints the formatted line and records the result
4. Summary rolls the recorded results into log.RunSummary

🤝 Interfaces:
- FileManager: file system operations (read, atomic write, backup)
- StatusReporter: outcome tracking and totals
- FileFormatter: renders outcomes as console lines

📝 Design Philosophy:
Writes are atomic (temp file then rename) so an interrupted run never
leaves a half-rewritten source behind. The plain formatter's lines are a
stable interface; the color formatter only recolors the status word and is
selected when stdout is a terminal.

🔍 Example:

	mgr := status.New(logger, status.NewFileFormatter(noColor))

	content, err := mgr.ReadFile(ctx, path)
	// ... rewrite content ...
	err = mgr.WriteFileAtomic(ctx, path, rewritten)

	mgr.Track(ctx, status.FileResult{Path: path, Status: status.StatusFixed})
	summary := mgr.Summary(ctx)
*/
package status
