// Package version provides version information for cfscan
package version

const (
	// Version is the current version of cfscan
	Version = "1.0.0"

	// AppName is the application name
	AppName = "cfscan"

	// Repository is the GitHub repository URL
	Repository = "https://github.com/loglnx/ProxyIP"
)
