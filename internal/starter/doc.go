// Package starter turns command-line flags, interactive answers, user
// defaults and the environment into a single immutable Config describing the
// project to scaffold.
//
// Resolution order for every value is: explicit flag, interactive answer,
// user config default, built-in default. The version check runs before any of
// it; a stale or unreachable CLI never produces a Config.
package starter
