// Package logging provides a thin, package-scoped wrapper over logrus so
// every package in this module logs with a consistent field set instead
// of reaching for the global logrus logger directly.
package logging

import "github.com/sirupsen/logrus"

// NamedLogger returns an entry tagged with pkg and name, mirroring the
// call-site convention used throughout this codebase's ambient logging:
// one named logger per concern (the hook engine obtains its own in
// NewEngine).
func NamedLogger(pkg, name string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"pkg":  pkg,
		"name": name,
	})
}
