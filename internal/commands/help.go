package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show comprehensive help for myday",
	Long:  `Display detailed help for all myday commands and flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			target, _, err := rootCmd.Find(args)
			if err != nil || target == rootCmd {
				return fmt.Errorf("unknown help topic %q", args)
			}
			return target.Help()
		}
		showCustomHelp(cmd.OutOrStdout())
		return nil
	},
}

func showCustomHelp(w io.Writer) {
	fmt.Fprint(w, `
███╗   ███╗██╗   ██╗██████╗  █████╗ ██╗   ██╗
████╗ ████║╚██╗ ██╔╝██╔══██╗██╔══██╗╚██╗ ██╔╝
██╔████╔██║ ╚████╔╝ ██║  ██║███████║ ╚████╔╝
██║╚██╔╝██║  ╚██╔╝  ██║  ██║██╔══██║  ╚██╔╝
██║ ╚═╝ ██║   ██║   ██████╔╝██║  ██║   ██║
╚═╝     ╚═╝   ╚═╝   ╚═════╝ ╚═╝  ╚═╝   ╚═╝

myday - terminal task manager

SESSION:

  login <email> <password>  Log in (any credentials work)
  logout                    Log out, tasks are kept
  whoami                    Show the current user

TASKS:

  add <task>                Create a task at the top of the list
    --priority              low|medium|high
    --status                todo|in-progress|done
    --due                   Due date (today, tomorrow, dd/mm/yyyy, 3 days)
    --remind                Reminder (30 minutes, 2 hours, tomorrow)
    --repeat                none|daily
    --note                  Notes

    Smart syntax:
      +priority     Set priority (low/medium/high)
      due:tomorrow  Set due date
      remind:2h     Set reminder
      repeat:daily  Set repeat rule

    Example:
      myday add "Pay rent +high due:tomorrow remind:2h"

  done <id>                 Toggle completed
  rm <id>                   Delete a task
  priority <id> <prio>      Set priority
  status <id> <status>      Set workflow status
  notes <id> [text]         Replace notes
  remind <id> [when]        Set reminder (default: in 1 hour)
  due <id> [when]           Set due date (default: tomorrow)
  repeat <id> <rule>        Set repeat rule
  assign <id> [user]        Assign to a user (default: you)
  select [id]               Select a task and show its details
  step add <id> <title>     Append a step
  step done <id> <step>     Toggle a step

  Task ids can be shortened to any unique prefix.

VIEWS:

  view [name]               Show or switch the view (today, important,
                            planned, assigned, all)
  ls                        Tasks of the current view and status filter
    --view, --status        Peek at another view or status
  list                      Every task
    --sort                  newest|oldest|priority
    --filter                all|active|completed|high|medium|low
    --json                  JSON output
  search <query>            Ranked search over titles, notes and steps
  stats                     View counts and today's progress

OTHER:

  ui                        Interactive task manager
  weather [city]            Current weather
  export <file>             Save everything to JSON
  import <file>             Replace everything from JSON
  version                   Print version
  help [command]            Show this help or a command's help

GLOBAL FLAGS:

  --config <file>           Config file (default ~/.config/myday/config.json)
  --db <file>               Database file
  -v, --verbose             Debug logging

`)
}
