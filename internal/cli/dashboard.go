package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"grievance-portal-go/internal/dashboard"
	"grievance-portal-go/pkg/logger"
)

var errAborted = errors.New("aborted")

type dashboardOptions struct {
	remoteOptions
	Yes bool
}

// NewDashboardCommand drives the owner dashboard from the terminal through
// the same controller the web dashboard state is built on.
func NewDashboardCommand(log logger.Logger) *cobra.Command {
	opts := &dashboardOptions{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "List and manage your people and their grievances",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.Token) == "" {
				return errors.New("a token is required: pass --token or set GRIEVANCE_TOKEN")
			}
			return nil
		},
	}

	opts.bind(cmd)
	cmd.PersistentFlags().BoolVarP(&opts.Yes, "yes", "y", false, "skip confirmation prompts")

	cmd.AddCommand(newDashboardListCommand(opts, log))
	cmd.AddCommand(newDashboardAddCommand(opts, log))
	cmd.AddCommand(newDashboardRemoveCommand(opts, log))
	cmd.AddCommand(newDashboardResolveCommand(opts, log))
	cmd.AddCommand(newDashboardLinkCommand(opts, log))

	return cmd
}

func (o *dashboardOptions) controller(log logger.Logger) *dashboard.Controller {
	client := dashboard.NewHTTPClient(o.Server, o.Token, nil)
	return dashboard.NewController(client, nil, o.shareBaseURL(), log)
}

func newDashboardListCommand(opts *dashboardOptions, log logger.Logger) *cobra.Command {
	var showResolved bool

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "Show every person with their pending grievances",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := opts.controller(log)
			if err := ctrl.Load(cmd.Context()); err != nil {
				return err
			}
			if showResolved {
				for _, p := range ctrl.State().Persons {
					ctrl.ToggleResolved(p.Slug)
				}
			}
			printViews(cmd.OutOrStdout(), ctrl.Views())
			return nil
		},
	}

	cmd.Flags().BoolVar(&showResolved, "resolved", false, "also show resolved grievances")
	return cmd
}

func newDashboardAddCommand(opts *dashboardOptions, log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:          "add <name>",
		Short:        "Add a person and print their share link",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := opts.controller(log)
			ctrl.OpenCreate()
			ctrl.SetCreateName(strings.Join(args, " "))

			person, err := ctrl.ConfirmCreate(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n%s\n", person.Name, dashboard.ShareLink(opts.shareBaseURL(), person.Slug))
			return nil
		},
	}
}

func newDashboardRemoveCommand(opts *dashboardOptions, log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:          "remove <slug>",
		Short:        "Delete a person together with all of their grievances",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			ctrl := opts.controller(log)
			ctrl.OpenDelete(slug)

			ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
				fmt.Sprintf("Delete %s and all of their messages?", slug), opts.Yes)
			if err != nil {
				return err
			}
			if !ok {
				ctrl.Dispatch(dashboard.CancelDelete{})
				return errAborted
			}

			if err := ctrl.ConfirmDelete(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", slug)
			return nil
		},
	}
}

func newDashboardResolveCommand(opts *dashboardOptions, log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:          "resolve <slug> <message-id>",
		Short:        "Mark a grievance as resolved",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			slug, messageID := args[0], args[1]
			ctrl := opts.controller(log)
			ctrl.OpenResolve(slug, messageID)

			ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Mark this grievance as resolved?", opts.Yes)
			if err != nil {
				return err
			}
			if !ok {
				ctrl.Dispatch(dashboard.CancelResolve{})
				return errAborted
			}

			if err := ctrl.ConfirmResolve(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "resolved %s\n", messageID)
			return nil
		},
	}
}

func newDashboardLinkCommand(opts *dashboardOptions, log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:          "link <slug>",
		Short:        "Print the share link for a person",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := opts.controller(log)
			if err := ctrl.Load(cmd.Context()); err != nil {
				return err
			}
			if _, ok := ctrl.State().FindPerson(args[0]); !ok {
				return fmt.Errorf("no person with slug %q", args[0])
			}

			link, err := ctrl.CopyLink(args[0])
			var manual *dashboard.ManualCopyError
			if err != nil && !errors.As(err, &manual) {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
}

func printViews(w io.Writer, views []dashboard.PersonView) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No people yet. Add one with: dashboard add <name>")
		return
	}

	for i, view := range views {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n", view.Name, view.Slug)
		fmt.Fprintf(w, "  link: %s\n", view.ShareLink)
		fmt.Fprintf(w, "  %d active, %d resolved\n", len(view.Active), len(view.Resolved))
		for _, msg := range view.Active {
			printMessage(w, msg)
		}
		if view.Expanded {
			for _, msg := range view.Resolved {
				printMessage(w, msg)
			}
		}
	}
}

func printMessage(w io.Writer, msg dashboard.Message) {
	status := " "
	if msg.Done {
		status = "x"
	}
	fmt.Fprintf(w, "  [%s] %s %s: %s\n", status, msg.ID, dashboard.EmojiLabel(msg.Emoji), msg.Content)
	if msg.ExpectedResponse != nil {
		fmt.Fprintf(w, "      expected: %s\n", *msg.ExpectedResponse)
	}
	fmt.Fprintf(w, "      sent %s\n", msg.CreatedAt.Format("2006-01-02 15:04"))
}
