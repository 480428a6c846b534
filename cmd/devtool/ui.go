package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"text/tabwriter"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// out is swapped by tests
var out io.Writer = os.Stdout

// useColor follows the NO_COLOR convention
var useColor = os.Getenv("NO_COLOR") == ""

func printLine(color, symbol, format string, a ...interface{}) {
	msg := symbol + " " + fmt.Sprintf(format, a...)
	if useColor {
		msg = color + msg + colorReset
	}
	fmt.Fprintln(out, msg)
}

func PrintInfo(format string, a ...interface{})    { printLine(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { printLine(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...interface{}) { printLine(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...interface{})   { printLine(colorRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Fprintln(out)
	printLine(colorYellow, "===", "%s ===", title)
}

// PrintTable writes rows aligned under the header
func PrintTable(header []string, rows [][]string) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

// checkHostile rejects arguments carrying shell metacharacters or line breaks
func checkHostile(inputs ...string) error {
	dangerousPats := []string{"|", "`", "$(", "&&", "||", ">", "<"}
	for _, s := range inputs {
		if strings.ContainsAny(s, "\n\r") {
			return fmt.Errorf("hostile input detected: newlines or carriage returns")
		}
		if strings.Contains(s, "\x00") {
			return fmt.Errorf("hostile input detected: null byte")
		}
		for _, p := range dangerousPats {
			if strings.Contains(s, p) {
				return fmt.Errorf("hostile input detected: pattern %q in %q", p, s)
			}
		}
	}
	return nil
}

func command(name string, args ...string) (*exec.Cmd, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return nil, err
	}
	// #nosec G204 - arguments are screened above
	return exec.Command(name, args...), nil
}

func getCommandOutput(name string, args ...string) (string, error) {
	cmd, err := command(name, args...)
	if err != nil {
		return "", err
	}
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

func runCommand(name string, args ...string) error {
	cmd, err := command(name, args...)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// runCommandVerbose streams the child's output
func runCommandVerbose(name string, args ...string) error {
	cmd, err := command(name, args...)
	if err != nil {
		return err
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
