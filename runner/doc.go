// Package runner drives the velvet assembler binaries.
//
// velveth hashes the reads into a result directory, velvetg builds the
// graph there. A Result remembers the directory and the captured output
// of both steps and locates the files velvetg writes:
//
//	r := runner.New()
//	res, err := r.Velvet(ctx, 29, "-short reads.fa", "-read_trkg yes", "")
//	g, err := res.LastGraph()
//
// Processes are started by an Executor; ExecExecutor uses os/exec and tests
// substitute their own.
package runner
