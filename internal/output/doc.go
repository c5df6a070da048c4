// Package output provides structured output and exit-code handling for the
// curve2svg CLI.
//
// # Printer
//
// Commands report through a Printer, which switches between human-readable
// and JSON output based on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Exported 3 paths"})
//	printer.Error(err)
//
// Human output is styled with lipgloss when writing to a terminal. Styles are
// dropped when output is piped or when --color never is given.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: success
//	output.ExitUserError   // 1: bad arguments, invalid scene, unknown object
//	output.ExitSystemError // 2: I/O failure
//	output.ExitUnsupported // 3: object cannot be exported (3D curve, not a curve)
//
// Errors built with NewUserError, NewSystemErrorWithCause and
// NewUnsupportedError carry their exit code; GetExitCode recovers it through wrapping.
package output
