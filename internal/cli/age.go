package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-patientview/internal/prompt"
	"github.com/goliatone/go-patientview/pkg/calendar"
)

var errBirthdayRequired = errors.New("cli: --birthday is required when stdin is not a terminal")

func ageCmd(a *app) *cobra.Command {
	var birthdayFlag, todayFlag string

	cmd := &cobra.Command{
		Use:   "age",
		Short: "Print the age for a birthday as years, months and days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			today := calendar.Today()
			if todayFlag != "" {
				parsed, err := calendar.ParseDate(todayFlag)
				if err != nil {
					return fmt.Errorf("cli: --today: %w", err)
				}
				today = parsed
			}

			var birthday calendar.Date
			switch {
			case birthdayFlag != "":
				parsed, err := calendar.ParseDate(birthdayFlag)
				if err != nil {
					return fmt.Errorf("cli: --birthday: %w", err)
				}
				birthday = parsed
			case a.deps.Interactive():
				asked, err := prompt.AskBirthday(cmd.Context(), a.deps.Prompter)
				if err != nil {
					return err
				}
				birthday = asked
			default:
				return errBirthdayRequired
			}

			span, ok := calendar.Age(birthday, today)
			if !ok {
				return fmt.Errorf("cli: birthday %s is after %s", birthday, today)
			}
			a.log.Debug().Stringer("birthday", birthday).Stringer("today", today).Msg("age computed")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), span.String())
			return err
		},
	}

	cmd.Flags().StringVar(&birthdayFlag, "birthday", "", "birthday as YYYY-MM-DD (prompted when omitted)")
	cmd.Flags().StringVar(&todayFlag, "today", "", "reference date as YYYY-MM-DD (defaults to the current date)")
	return cmd
}
