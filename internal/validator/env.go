// Package validator checks that the host can actually run the bridge: the
// automation channel is osascript talking to iTerm2, so both need to exist.
package validator

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Check is one host-environment probe result.
type Check struct {
	Name   string
	OK     bool
	Detail string
	Fatal  bool
}

// Result aggregates the environment checks.
type Result struct {
	Checks []Check
}

// Valid reports whether every fatal check passed.
func (r *Result) Valid() bool {
	for _, c := range r.Checks {
		if c.Fatal && !c.OK {
			return false
		}
	}
	return true
}

// ValidateHost probes the environment the bridge depends on.
func ValidateHost() *Result {
	result := &Result{}

	if runtime.GOOS == "darwin" {
		result.add("macOS", true, "", true)
	} else {
		result.add("macOS", false, fmt.Sprintf("running on %s; iTerm2 automation requires macOS", runtime.GOOS), true)
	}

	if hasBinary("osascript") {
		result.add("osascript", true, "", true)
	} else {
		result.add("osascript", false, "osascript not found in PATH", true)
	}

	if appExists("iTerm") {
		result.add("iTerm2", true, "", false)
	} else {
		result.add("iTerm2", false, "iTerm.app not found in /Applications or ~/Applications", false)
	}

	return result
}

func (r *Result) add(name string, ok bool, detail string, fatal bool) {
	r.Checks = append(r.Checks, Check{Name: name, OK: ok, Detail: detail, Fatal: fatal})
}

func hasBinary(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// appExists checks the common macOS app bundle locations.
func appExists(appName string) bool {
	paths := []string{
		"/Applications/" + appName + ".app",
		os.Getenv("HOME") + "/Applications/" + appName + ".app",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}
