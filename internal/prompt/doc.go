// Package prompt asks the user for project settings that were not given on
// the command line. It is only used when both stdin and stdout are
// terminals; everything else runs non-interactively.
package prompt
