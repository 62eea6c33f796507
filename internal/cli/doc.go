// Parses flags and dispatches the plugin's commands.
//
// The plugin accepts the following flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//	-c, --config    Path to the service configuration file.
//
// Commands map onto the host tool's lifecycle: "offline" runs the
// pre-emulation hook, "package" runs the pre-packaging hook, and "hook"
// runs any hook by its host-side name. Flags override build-time defaults
// set via linker flags. After parsing, the global logger is reconfigured to
// reflect the final level before any command runs.
package cli
