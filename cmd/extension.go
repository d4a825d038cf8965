package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

const (
	EnvOwner   = "SMON_OWNER"
	EnvRepo    = "SMON_REPO"
	EnvVerbose = "SMON_VERBOSE"
)

// RunExtension attempts to find and execute an external smon-<subcommand>
// binary. It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) otherwise.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "smon-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		if *Verbose {
			log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		}
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvOwner+"="+*owner)
	cmd.Env = append(cmd.Env, EnvRepo+"="+*repo)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
