package starter

import (
	"regexp"
	"strings"
)

const maxNameLength = 214

var namePattern = regexp.MustCompile(`^(?:@[a-z0-9-*~][a-z0-9-*._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)

// Names npm refuses for new packages.
var blacklistedNames = map[string]bool{
	"node_modules": true,
	"favicon.ico":  true,
}

// Core node modules cannot be shadowed by new packages.
var builtinModules = map[string]bool{
	"assert": true, "async_hooks": true, "buffer": true, "child_process": true,
	"cluster": true, "console": true, "constants": true, "crypto": true,
	"dgram": true, "diagnostics_channel": true, "dns": true, "domain": true,
	"events": true, "fs": true, "http": true, "http2": true, "https": true,
	"inspector": true, "module": true, "net": true, "os": true, "path": true,
	"perf_hooks": true, "process": true, "punycode": true, "querystring": true,
	"readline": true, "repl": true, "stream": true, "string_decoder": true,
	"sys": true, "timers": true, "tls": true, "trace_events": true, "tty": true,
	"url": true, "util": true, "v8": true, "vm": true, "wasi": true,
	"worker_threads": true, "zlib": true,
}

// ValidateName checks name against npm's rules for new package names,
// including the optional "@scope/" prefix.
func ValidateName(name string) error {
	invalid := func(reason string) error {
		return &InvalidNameError{Name: name, Reason: reason}
	}

	switch {
	case name == "":
		return invalid("name cannot be empty")
	case strings.TrimSpace(name) != name:
		return invalid("name cannot contain leading or trailing spaces")
	case len(name) > maxNameLength:
		return invalid("name cannot be longer than 214 characters")
	case strings.ToLower(name) != name:
		return invalid("name can no longer contain capital letters")
	case strings.HasPrefix(name, "."):
		return invalid("name cannot start with a period")
	case strings.HasPrefix(name, "_"):
		return invalid("name cannot start with an underscore")
	case blacklistedNames[name]:
		return invalid("name is blacklisted")
	case builtinModules[name]:
		return invalid("name is a core module name")
	}

	if !namePattern.MatchString(name) {
		if strings.HasPrefix(name, "@") && strings.Count(name, "/") != 1 {
			return invalid("scoped names must look like @scope/name")
		}
		return invalid("name can only contain URL-friendly characters")
	}
	return nil
}
