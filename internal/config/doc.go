// Package config loads the settings of the medi-vault client and its sync
// backend.
//
// Environment variables win over command-line flags, flags win over the
// JSON file named by CONFIG or -c, and built-in defaults fill whatever is
// left. [GetClientConfig] and [GetServerConfig] return the validated view
// each binary needs.
package config
