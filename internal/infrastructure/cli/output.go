package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/zerobrew/zbstrap/internal/domain"
)

var (
	sectionStyle = color.New(color.FgCyan, color.Bold)
	okStyle      = color.New(color.FgGreen)
	warnStyle    = color.New(color.FgYellow, color.Bold)
	errStyle     = color.New(color.FgRed, color.Bold)
)

func section(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", sectionStyle.Sprint("==>"), fmt.Sprintf(format, args...))
}

func stepDone(w io.Writer, step domain.Step, detail string) {
	if detail != "" {
		fmt.Fprintf(w, "    %s %s: %s\n", okStyle.Sprint("✓"), step, detail)
		return
	}
	fmt.Fprintf(w, "    %s %s\n", okStyle.Sprint("✓"), step)
}

func warnLine(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "    %s %s\n", warnStyle.Sprint("Warning:"), fmt.Sprintf(format, args...))
}

func printResultWarnings(w io.Writer, result domain.LifecycleResult) {
	for _, warning := range result.Warnings {
		warnLine(w, "%s: %v", warning.Step, warning.Err)
	}
}
