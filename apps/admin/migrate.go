package main

import "errors"

var errNoDatabase = errors.New("migrate: the memory engine has no database")

func (cli *commandLine) migrate(args []string) error {
	if cli.db == nil {
		return errNoDatabase
	}
	return migrateFunc(cli.db, cli.engine, args[0], args[1:]...)
}
