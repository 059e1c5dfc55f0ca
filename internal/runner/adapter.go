package runner

// Adapter invokes the external scheduler once: path to the generated
// input file, the quantum value, and any extra arguments. It returns
// the program's raw stdout, or an error when the program could not be
// run or exited non-zero.
type Adapter func(path, quantum string, extra ...string) (string, error)
