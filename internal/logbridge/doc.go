// Package logbridge joins the delegated builder's logging to the host tool.
//
// The builder produces five severities (debug, info, warn, error, fatal);
// the host logging surface has four channels (verbose, log, warning,
// error). The bridge applies a fixed total mapping between the two:
//
//	debug → verbose
//	info  → log
//	warn  → warning
//	error → error
//	fatal → error
//	other → log
//
// Every message is prefixed with the plugin tag before it reaches the host.
// Entries are forwarded synchronously as received; nothing is buffered.
// When the host supplies no logger, a console fallback writes to stderr.
package logbridge
