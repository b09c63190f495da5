package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/schedule"
)

const (
	suggestLimit  = 3
	suggestCutoff = 0.6
)

func (cli *commandLine) branches(suggestFor string) error {
	branches, err := cli.schedSvc.Branches(context.Background())
	if err != nil {
		return err
	}
	names := branchNames(branches)

	if suggestFor == "" {
		for _, name := range names {
			fmt.Fprintln(cli.out, name)
		}
		return nil
	}

	matches := closeMatches(suggestFor, names, suggestLimit, suggestCutoff)
	if len(matches) == 0 {
		fmt.Fprintf(cli.out, "no branch matches %q\n", suggestFor)
		return nil
	}
	fmt.Fprintf(cli.out, "did you mean: %s?\n", strings.Join(matches, ", "))
	return nil
}

// branchNames returns the distinct, non-empty branch names in table order.
func branchNames(branches []schedule.Branch) []string {
	seen := make(map[string]bool, len(branches))
	names := make([]string, 0, len(branches))
	for _, b := range branches {
		name := strings.TrimSpace(b.Branch)
		if name == "" || seen[core.CleanString(name, true)] {
			continue
		}
		seen[core.CleanString(name, true)] = true
		names = append(names, name)
	}
	return names
}

// closeMatches returns at most n candidates whose similarity to word is at least cutoff, best first.
func closeMatches(word string, candidates []string, n int, cutoff float64) []string {
	type scored struct {
		name  string
		ratio float64
	}

	m := difflib.NewMatcher(nil, strings.Split(core.CleanString(word, true), ""))
	hits := make([]scored, 0)
	for _, c := range candidates {
		m.SetSeq1(strings.Split(core.CleanString(c, true), ""))
		if r := m.Ratio(); r >= cutoff {
			hits = append(hits, scored{name: c, ratio: r})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].ratio > hits[j].ratio })

	if len(hits) > n {
		hits = hits[:n]
	}
	matches := make([]string, len(hits))
	for i, h := range hits {
		matches[i] = h.name
	}
	return matches
}
