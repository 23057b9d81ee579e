package gocmdtester

type runConfig struct {
	env        map[string]string
	workingDir string
}

// Option configures how a CmdTester runs its binary.
type Option func(*runConfig)

// WithEnv sets an environment variable for the command, on top of the
// current environment. The last value for a key wins.
func WithEnv(key, value string) Option {
	return func(c *runConfig) {
		if c.env == nil {
			c.env = make(map[string]string)
		}

		c.env[key] = value
	}
}

// WithWorkingDir sets the working directory of the command.
func WithWorkingDir(path string) Option {
	return func(c *runConfig) {
		c.workingDir = path
	}
}
