package shell

import "strings"

// Line classifiers for the managed profile content. Each is a small
// pure predicate over a single line so install/uninstall can be plain
// line-sequence transforms. A line is "managed" when it matches any of
// these, whether or not it sits inside the marker block — historical
// installs left loose copies outside it.

var managedExportPrefixes = []string{
	"export ZEROBREW_DIR=",
	"export ZEROBREW_BIN=",
	"export ZEROBREW_ROOT=",
	"export ZEROBREW_PREFIX=",
}

func isMarkerLine(line string) bool {
	return strings.TrimSpace(line) == "# zerobrew"
}

func isManagedExport(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range managedExportPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	// The derived library-search-path export is managed only when it
	// points into the zerobrew prefix; a user's own PKG_CONFIG_PATH
	// line is unrelated content.
	if strings.HasPrefix(trimmed, "export PKG_CONFIG_PATH=") && strings.Contains(trimmed, "ZEROBREW_PREFIX") {
		return true
	}
	return false
}

func isAppendInvocation(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "_zb_path_append ")
}

func isHelperOpen(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "_zb_path_append()")
}

func isHelperClose(line string) bool {
	return strings.TrimSpace(line) == "}"
}
