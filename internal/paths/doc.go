// Provides platform-appropriate paths for the plugin.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS and Windows. The plugin name "serverless-angular" is used as the
// subdirectory under each base path. Watch sessions record their PID here so
// stray watchers from interrupted development sessions are discoverable.
package paths
