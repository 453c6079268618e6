// SPDX-License-Identifier: MIT
//
// File: executor.go
// Role: Process execution behind the Executor contract.

package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Executor runs program with args, split on white space, in dir ("" for
// the current directory). A process that ran reports its exit status with
// a nil error; err is reserved for processes that could not run at all.
type Executor func(ctx context.Context, dir, program, args string) (status int, stdout, stderr string, err error)

// ExecExecutor is the os/exec backed Executor.
func ExecExecutor(ctx context.Context, dir, program, args string) (int, string, string, error) {
	cmd := exec.CommandContext(ctx, program, strings.Fields(args)...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, stdout.String(), stderr.String(), nil
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		return exitErr.ExitCode(), stdout.String(), stderr.String(), nil
	case ctx.Err() != nil:
		return -1, stdout.String(), stderr.String(), ctx.Err()
	default:
		return -1, stdout.String(), stderr.String(), err
	}
}
