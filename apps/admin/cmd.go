package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/absedu/campus/core/schedule"
	"github.com/absedu/campus/core/user"
	"github.com/absedu/campus/storage/database"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	migrateFunc      = database.Migrate  // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db          *sql.DB
	engine      string
	cacheDriver string
	usrSvc      *user.Service
	schedSvc    *schedule.Service
	out         io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]                    - run a goose command against the database")
	fmt.Fprintln(cli.out, "  login -number NUMBER                      - check a user's credentials")
	fmt.Fprintln(cli.out, "  hashpassword                              - print the bcrypt hash of a password")
	fmt.Fprintln(cli.out, "  branches [-suggest NAME]                  - list branches or suggest close matches")
	fmt.Fprintln(cli.out, "  export -branch BRANCH -out FILE [-days N] - export a branch schedule to an xlsx workbook")
	fmt.Fprintln(cli.out, "  invalidate-cache                          - drop the user table from a redis or bolt cache")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginNumber := loginCmd.String("number", "", "The user's phone number. The password will be prompted next.")

	branchesCmd := flag.NewFlagSet("branches", flag.ExitOnError)
	branchesSuggest := branchesCmd.String("suggest", "", "Suggest branch names close to this one.")

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportBranch := exportCmd.String("branch", "", "The branch to export.")
	exportOut := exportCmd.String("out", "", "The xlsx file to write.")
	exportDays := exportCmd.Int("days", 0, "Export today plus N days instead of the current month.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			fmt.Fprintln(cli.out, "Usage: migrate up|up-by-one|up-to|down|down-to|redo|reset|status|version|create|fix [ARGS]")
			return errHelp
		}
		return cli.migrate(args[2:])

	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginNumber == "" {
			loginCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginNumber, pwd)

	case "hashpassword":
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			return errHelp
		}
		return cli.hashPassword(pwd)

	case "branches":
		if err := branchesCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.branches(*branchesSuggest)

	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportBranch == "" || *exportOut == "" || *exportDays < 0 {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportBranch, *exportOut, *exportDays)

	case "invalidate-cache":
		return cli.invalidateCache()

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
