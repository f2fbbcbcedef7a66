// Package commands defines the piecework CLI.
//
// Commands
//
//   - serve   Run the web form on APP_ADDR (or --addr)
//   - calc    Compute a wage from flags and print it, optionally writing report.pdf
//
// Configuration is read from the environment before any subcommand runs; the
// --log-level and --log-format flags override LOG_LEVEL and LOG_FORMAT.
package commands
