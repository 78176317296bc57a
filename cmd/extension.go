package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"go.uber.org/zap"
)

// Environment variables passing the global settings to extensions.
const (
	EnvConfigFile = "INV_CONFIG"
	EnvProvider   = "INV_PROVIDER"
	EnvCurrency   = "INV_CURRENCY"
	EnvTimeout    = "INV_TIMEOUT"
	EnvCache      = "INV_CACHE"
	EnvVerbose    = "INV_VERBOSE"
)

// RunExtension attempts to find and execute an external inv-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	log := newLogger()
	externalCmdName := "inv-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug("external command not found", zap.String("command", externalCmdName), zap.Error(err))
		return false, 0
	}

	cfg, err := settings()
	if err != nil {
		fmt.Fprintln(os.Stderr, message(err))
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global settings as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvConfigFile+"="+*configFile)
	cmd.Env = append(cmd.Env, EnvProvider+"="+cfg.Provider)
	cmd.Env = append(cmd.Env, EnvCurrency+"="+cfg.Currency)
	cmd.Env = append(cmd.Env, EnvTimeout+"="+cfg.Timeout.String())
	cmd.Env = append(cmd.Env, EnvCache+"="+cfg.Cache)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	log.Debug("running extension", zap.String("path", lp), zap.Strings("args", args))
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
