// Package shell owns the idempotent read-modify-write of the user's
// shell startup file. The file is modeled as an ordered sequence of
// lines; install and uninstall are pure line transforms, never in-place
// pattern substitution across the whole file.
package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/zerobrew/zbstrap/internal/domain"
	"github.com/zerobrew/zbstrap/internal/pkg/filesystem"
	"github.com/zerobrew/zbstrap/internal/ports"
)

// Editor implements ports.ProfileEditor.
type Editor struct {
	logger ports.Logger
	exists func(string) bool
}

// NewEditor builds a profile editor.
func NewEditor(logger ports.Logger) *Editor {
	return &Editor{
		logger: logger,
		exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

// blockLines renders the managed block body: marker, exports in fixed
// order, then the PATH-deduplicating helper. Invocations are appended
// separately so missing entries can be added to an existing block's
// file without duplicating the structure.
func blockLines(locations domain.InstallLocations) []string {
	vars := locations.ManagedVars()
	return []string{
		domain.ProfileMarker,
		fmt.Sprintf("export %s=%q", domain.EnvDataDir, vars[domain.EnvDataDir]),
		fmt.Sprintf("export %s=%q", domain.EnvBinDir, vars[domain.EnvBinDir]),
		fmt.Sprintf("export %s=%q", domain.EnvInstallRoot, vars[domain.EnvInstallRoot]),
		fmt.Sprintf("export %s=%q", domain.EnvPrefix, vars[domain.EnvPrefix]),
		`export PKG_CONFIG_PATH="$ZEROBREW_PREFIX/lib/pkgconfig:${PKG_CONFIG_PATH:-}"`,
		domain.PathAppendFunc + `() {`,
		`    case ":${PATH}:" in`,
		`        *:"$1":*) ;;`,
		`        *) export PATH="$1:$PATH" ;;`,
		`    esac`,
		`}`,
	}
}

func invocationLine(entry string) string {
	return fmt.Sprintf("%s %q", domain.PathAppendFunc, entry)
}

// RenderBlock returns the full managed block, invocations included, for
// display when the user opts out of automatic profile editing.
func RenderBlock(locations domain.InstallLocations) string {
	lines := blockLines(locations)
	for _, entry := range locations.PathEntries() {
		lines = append(lines, invocationLine(entry))
	}
	return strings.Join(lines, "\n")
}

// Install appends the managed block when its marker is absent, then one
// append invocation per path entry whose invocation line is not already
// present. With the marker present it makes no structural change and
// only adds missing entries. Never a second block, never a duplicate
// invocation.
func (e *Editor) Install(profilePath string, locations domain.InstallLocations) (domain.ProfileEdit, error) {
	edit := domain.ProfileEdit{Path: profilePath}

	content, existed, err := readProfile(profilePath)
	if err != nil {
		return edit, err
	}
	if existed && !filesystem.IsWritable(profilePath) {
		return edit, fmt.Errorf("%w: %s", domain.ErrProfileNotWritable, profilePath)
	}

	var additions []string
	if !hasMarker(content) {
		additions = append(additions, blockLines(locations)...)
		edit.BlockAdded = true
	}
	for _, entry := range locations.PathEntries() {
		// Match the exact invocation line, not the bare path: an entry
		// like /b is a substring of unrelated text such as /usr/bin.
		if strings.Contains(content, invocationLine(entry)) {
			continue
		}
		additions = append(additions, invocationLine(entry))
		edit.EntriesAdded = append(edit.EntriesAdded, entry)
	}

	if len(additions) == 0 {
		return edit, nil
	}

	// A file that ended without a final newline keeps that property, so
	// removing the managed lines later restores the original bytes.
	terminated := content == "" || strings.HasSuffix(content, "\n")
	updated := content
	if !terminated {
		updated += "\n"
	}
	updated += strings.Join(additions, "\n")
	if terminated {
		updated += "\n"
	}

	if err := writeProfile(profilePath, updated); err != nil {
		return edit, err
	}
	edit.Changed = true
	return edit, nil
}

// Uninstall is the exact inverse: it removes the marker-to-helper-close
// range plus every loose managed line (append invocations, managed
// exports, stray helper definitions) wherever they appear. Without the
// marker it is a no-op. All unrelated content and ordering is preserved.
func (e *Editor) Uninstall(profilePath string) (domain.ProfileEdit, error) {
	edit := domain.ProfileEdit{Path: profilePath}

	content, existed, err := readProfile(profilePath)
	if err != nil {
		return edit, err
	}
	if !existed || !hasMarker(content) {
		return edit, nil
	}
	if !filesystem.IsWritable(profilePath) {
		return edit, fmt.Errorf("%w: %s", domain.ErrProfileNotWritable, profilePath)
	}

	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		line := lines[i]
		switch {
		case isMarkerLine(line):
			// Marker through exports through helper definition.
			start := i
			i++
			for i < len(lines) && isManagedExport(lines[i]) {
				i++
			}
			if i < len(lines) && isHelperOpen(lines[i]) {
				for i < len(lines) && !isHelperClose(lines[i]) {
					i++
				}
				if i < len(lines) {
					i++
				}
			}
			edit.BlockRemoved = true
			edit.LinesRemoved += i - start
		case isHelperOpen(line):
			// Loose helper definition left by a historical install.
			start := i
			for i < len(lines) && !isHelperClose(lines[i]) {
				i++
			}
			if i < len(lines) {
				i++
			}
			edit.LinesRemoved += i - start
		case isManagedExport(line), isAppendInvocation(line):
			i++
			edit.LinesRemoved++
		default:
			kept = append(kept, line)
			i++
		}
	}

	if err := writeProfile(profilePath, strings.Join(kept, "\n")); err != nil {
		return edit, err
	}
	edit.Changed = true
	return edit, nil
}

// TargetFile selects the startup file for the platform's shell,
// preferring the file sourced for every session over login- or
// interactive-only ones, and a generic profile for unrecognized shells.
func (e *Editor) TargetFile(platform domain.PlatformContext) string {
	home := platform.Home
	switch platform.Shell {
	case domain.ShellZsh:
		zdot := platform.ZDotDir
		if zdot == "" {
			zdot = home
		}
		if zshenv := filepath.Join(zdot, ".zshenv"); e.exists(zshenv) {
			return zshenv
		}
		if zshrc := filepath.Join(zdot, ".zshrc"); e.exists(zshrc) {
			return zshrc
		}
		return filepath.Join(home, ".zshrc")
	case domain.ShellBash:
		if profile := filepath.Join(home, ".bash_profile"); e.exists(profile) {
			return profile
		}
		return filepath.Join(home, ".bashrc")
	default:
		return filepath.Join(home, ".profile")
	}
}

// HasMarker reports whether the profile currently carries the managed
// block marker. Used by status reporting.
func (e *Editor) HasMarker(profilePath string) bool {
	content, existed, err := readProfile(profilePath)
	return err == nil && existed && hasMarker(content)
}

func hasMarker(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		if isMarkerLine(line) {
			return true
		}
	}
	return false
}

func readProfile(path string) (content string, existed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read profile: %w", err)
	}
	return string(data), true, nil
}

func writeProfile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotWritable, path)
	}
	if err := os.WriteFile(path, []byte(content), domain.ProfilePermissions); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotWritable, path)
	}
	return nil
}

var _ ports.ProfileEditor = (*Editor)(nil)
