package commands

import (
	"time"

	"github.com/spf13/cobra"
)

type RunFunc func(cmd *cobra.Command, env *Env, args []string) error

// Runner opens an Env for each command run and closes it afterwards
type Runner struct {
	Flags *GlobalFlags
	Clock func() time.Time
}

func (r *Runner) Wrap(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		env, err := Open(cmd.Context(), r.Flags, r.Clock)
		if err != nil {
			return err
		}
		defer env.Close()
		return fn(cmd, env, args)
	}
}
