package cli

import (
	"github.com/rpgo/numfmt/internal/config"
	"github.com/rpgo/numfmt/internal/output"
	"github.com/rpgo/numfmt/pkg/numfmt"
	"github.com/rpgo/numfmt/pkg/units"
	"github.com/spf13/cobra"
)

func newGroupCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group [value]",
		Short: "Print a number with digit groups separated by spaces",
		Long: "Print a number with digit groups separated by single spaces.\n" +
			"A missing or zero value prints 0. Pass negative values after --.",
		Example: "  numfmt group 1234567\n  numfmt group --locale de-DE -- -1234.5",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			var grouper numfmt.Grouper = numfmt.PlainGrouper{}
			locale := ""
			if s.config.Grouper == config.GrouperLocale {
				lg := numfmt.NewLocaleGrouper(s.locale())
				grouper = lg
				locale = lg.Tag().String()
			}
			s.log.Debugf("grouper=%s locale=%s separator=%q", s.config.Grouper, locale, grouper.Separator())
			f := numfmt.NewFormatter(grouper)

			result := output.Result{Operation: "group", Locale: locale}
			if len(args) == 0 {
				result.Output = f.FormatOptional(nil)
				return s.write(cmd, result)
			}

			v, err := units.ParseNumber(args[0])
			if err != nil {
				return err
			}
			result.Input = args[0]
			result.Output = f.Format(v)
			return s.write(cmd, result)
		},
	}
	cmd.Flags().StringVarP(&opts.locale, "locale", "l", "", "BCP 47 or POSIX locale (default from LC_ALL, LC_NUMERIC, LANG)")
	cmd.Flags().StringVarP(&opts.grouper, "grouper", "g", config.GrouperLocale, "grouping strategy: locale or plain")
	return cmd
}
