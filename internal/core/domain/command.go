package domain

import "strings"

// EnvVar is one environment variable handed to a child process.
type EnvVar struct {
	Key   string
	Value string
}

// String renders the variable as KEY=VALUE.
func (e EnvVar) String() string {
	return e.Key + "=" + e.Value
}

// Command is a fully assembled process invocation.
type Command struct {
	Program string
	Args    []string
	// Env is applied on top of the inherited environment, later entries winning.
	Env []EnvVar
	Dir string
}

// Lookup returns the value of key in the command environment.
func (c Command) Lookup(key string) (string, bool) {
	for i := len(c.Env) - 1; i >= 0; i-- {
		if c.Env[i].Key == key {
			return c.Env[i].Value, true
		}
	}
	return "", false
}

// String renders the command line for logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}
