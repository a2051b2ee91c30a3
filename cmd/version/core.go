// Package version reports dateto's version
package version

// BuildVersion reports dateto's build version. It is set with
// `go build -ldflags="-X github.com/puppetlabs/dateto/cmd/version.BuildVersion=${VERSION}"`
// as part of tagged builds.
var BuildVersion = "unknown"
