package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions, holding the global flags.
const (
	EnvSource   = EnvPrefix + "_SOURCE"
	EnvFormat   = EnvPrefix + "_FORMAT"
	EnvJSONPath = EnvPrefix + "_JSON_PATH"
	EnvSheet    = EnvPrefix + "_SHEET"
	EnvCurrency = EnvPrefix + "_CURRENCY"
	EnvModel    = EnvPrefix + "_MODEL"
	EnvNoCache  = EnvPrefix + "_NO_CACHE"
	EnvRaw      = EnvPrefix + "_RAW"
	EnvJSON     = EnvPrefix + "_JSON"
)

// extensionEnv returns the global flags as environment variables, in a form
// LoadConfig reads back.
func extensionEnv() []string {
	return []string{
		EnvSource + "=" + global.Source,
		EnvFormat + "=" + global.Format,
		EnvJSONPath + "=" + global.JSONPath,
		EnvSheet + "=" + global.Sheet,
		EnvCurrency + "=" + global.Currency,
		EnvModel + "=" + global.Model,
		EnvNoCache + "=" + strconv.FormatBool(global.NoCache),
		EnvRaw + "=" + strconv.FormatBool(global.Raw),
		EnvJSON + "=" + strconv.FormatBool(global.JSON),
	}
}

// RunExtension attempts to find and execute an external msr-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "msr-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
