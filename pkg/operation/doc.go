/*
Package operation implements the per-file rewrite loop.

	+-------------+
	|  Operation  |
	| (File Loop) |
	+------+------+
	       |
	+------+------+
	|  Rewriter   |
	| (Transform) |
	+------+------+

🎯 Purpose:
- Orchestrates the sequential rewrite of each argument file
- Expands glob arguments and applies ignore patterns
- Coordinates between the rewriter (transform) and status (file I/O, outcomes)

🔄 Flow:
1. Expands arguments into concrete file paths, in argument order
2. Reads each file fully, rewrites its contents, compares
3. Writes back only when the content changed (atomic write, optional backup)
4. Records every outcome with the status manager, which prints the per-file line

⚡ Key Responsibilities:
- Deterministic processing order (argument order, globs sorted)
- Missing files are warned and skipped; hard I/O errors abort the run
- Dry-run reporting without touching the filesystem
- Context cancellation between files

🤝 Interfaces:
- Rewriter: transforms file contents, no I/O
- StatusMgr: owns reads, atomic writes, backups, and outcome tracking
- Console: user-facing output (per-file lines, verbose feedback, summary)

📝 Design Philosophy:
The operation package holds the loop and nothing else. It never touches the
filesystem directly and never formats output; those belong to the status and
log packages. Each file is independent: read fully, transformed fully, written
fully, with no state carried between files.

🔍 Example:

	op, err := operation.NewFixOperation(operation.Options{
		Rewriter:  rewrite.New(),
		StatusMgr: statusMgr,
		Console:   console,
		Args:      []string{"prog.asm"},
	})
	if err != nil {
		return err
	}
	err = operation.NewRunner(&logger, true).Run(ctx, op)
*/
package operation
