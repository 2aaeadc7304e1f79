// Package misc keeps build identity helpers used by logging and CLI setup.
package misc

import "runtime/debug"

const appName = "sassc"

var version = "development"

// GetAppName returns short program name to be used in logs and file names.
func GetAppName() string {
	return appName
}

// GetVersion returns program version set at build time.
func GetVersion() string {
	return version
}

// GetGitHash returns VCS revision recorded in the build info, if any.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
