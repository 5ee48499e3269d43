// Package runtime executes registered tools. The Invoker runs a resolved
// program with its default arguments plus caller arguments and turns a failing
// exit status into an error; the Prober runs a program with a version flag and
// parses what it prints. Both go through a Runner so process spawning can be
// replaced in tests.
package runtime
