// Package sorter moves files from a source tree into a target tree laid out
// by date.
//
// Every eligible file under the source root is renamed to
//
//	<target>/<YYYY>/<MM>/<date>[ <old stem>].<ext>
//
// where <date> is one of its timestamps (modified, accessed or created)
// rendered with a strftime pattern, and YYYY/MM come from the same timestamp.
// Eligibility is decided by extension: an only-list, when given, replaces the
// exclude-list entirely.
//
// A run has two steps. Plan walks the source tree in a fixed order and gives
// every eligible file a unique destination, numbering repeated ones
// "stem_2.ext", "stem_3.ext", ... in walk order. Execute then renames the
// files in plan order, or only reports the plan on a dry run. Sort does both.
//
// Failures are reported with the sentinel errors in errors.go and can be
// matched with errors.Is.
package sorter
