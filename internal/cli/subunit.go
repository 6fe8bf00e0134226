package cli

import (
	"github.com/rpgo/numfmt/internal/output"
	"github.com/rpgo/numfmt/pkg/units"
	"github.com/spf13/cobra"
)

func newSubunitCommand(opts *options) *cobra.Command {
	var exact bool
	cmd := &cobra.Command{
		Use:     "subunit <value>",
		Short:   "Convert a unit amount to subunits (x 1 000 000 000)",
		Long:    "Convert a unit amount to subunits (x 1 000 000 000).\n" +
			"Values may be decimal literals with an optional exponent, Infinity,\n" +
			"or 0x, 0o and 0b integers. --exact accepts the same forms except\n" +
			"Infinity, which has no exact value.",
		Example: "  numfmt subunit 1.5\n  numfmt subunit --exact 0.1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			result := output.Result{Operation: "subunit", Input: args[0]}

			if exact {
				a, err := units.ParseAmount(args[0])
				if err != nil {
					return err
				}
				if !a.IsWholeSubunits() {
					s.log.Warnf("%s is not a whole number of subunits", args[0])
				}
				result.Output = output.FormatDecimal(a.Subunits())
				return s.write(cmd, result)
			}

			v, err := units.ParseNumber(args[0])
			if err != nil {
				return err
			}
			s.log.Debugf("parsed %q as %v", args[0], v)
			result.Output = output.FormatFloat(units.ConvertUnitToSubunit(v))
			return s.write(cmd, result)
		},
	}
	cmd.Flags().BoolVarP(&exact, "exact", "e", false, "use exact decimal arithmetic")
	return cmd
}
