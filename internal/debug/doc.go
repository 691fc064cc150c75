// Package debug provides the process-wide structured logger.
//
// Init configures a zap logger with a console or JSON encoder and an optional
// rotating file sink. When the GUI_DEBUG environment variable is set to a file
// path, debug-level messages are also appended to that file. Before Init,
// L returns a no-op logger.
package debug
