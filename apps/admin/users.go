package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/absedu/campus/apps/shared"
	"github.com/absedu/campus/core/user"
)

var errLocalCache = errors.New("invalidate-cache: the memory cache lives in the API process, use DELETE /v1/admin/users-cache instead")

func (cli *commandLine) login(number, pwd string) error {
	usr, err := cli.usrSvc.Authenticate(context.Background(), number, pwd)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s (%s) authenticated\n", usr.Name, usr.Role)
	return nil
}

func (cli *commandLine) hashPassword(pwd string) error {
	hash, err := user.HashPassword(pwd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, hash)
	return nil
}

// invalidateCache drops the users table from a cache shared with the API.
// A bolt file can only be opened while the API is stopped.
func (cli *commandLine) invalidateCache() error {
	if cli.cacheDriver == shared.CacheMemory || cli.cacheDriver == "" {
		return errLocalCache
	}
	if err := cli.usrSvc.Invalidate(context.Background()); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "users cache invalidated")
	return nil
}
