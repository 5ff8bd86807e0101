package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cordial-dev/cordial/pkg/improv"
)

func newImprovCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "improv",
		Short: "Make up names, passwords and guests",
	}
	cmd.AddCommand(newImprovNameCommand(), newImprovPassCommand(), newImprovGuestCommand())
	return cmd
}

func newImprovNameCommand() *cobra.Command {
	var (
		numbered bool
		count    int
	)

	cmd := &cobra.Command{
		Use:   "name",
		Short: "Print made-up adjective-noun names",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := improv.New(numbered).Names(count)
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), color.CyanString(n))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&numbered, "numbered", false, "Append a four digit suffix")
	cmd.Flags().IntVar(&count, "count", 1, "Number of names")
	return cmd
}

func newImprovPassCommand() *cobra.Command {
	var count int
	policy := improv.DefaultPolicy()

	cmd := &cobra.Command{
		Use:   "pass",
		Short: "Print generated passwords",
		RunE: func(cmd *cobra.Command, args []string) error {
			passes, err := improv.New(true, improv.WithPolicy(policy)).Passes(count)
			if err != nil {
				return err
			}
			for _, p := range passes {
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString(p))
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&count, "count", 1, "Number of passwords")
	fs.IntVar(&policy.Length, "length", policy.Length, "Password length")
	fs.BoolVar(&policy.Numbers, "numbers", policy.Numbers, "Allow digits")
	fs.BoolVar(&policy.Lowercase, "lowercase", policy.Lowercase, "Allow lowercase letters")
	fs.BoolVar(&policy.Uppercase, "uppercase", policy.Uppercase, "Allow uppercase letters")
	fs.BoolVar(&policy.Symbols, "symbols", policy.Symbols, "Allow symbols")
	fs.BoolVar(&policy.Spaces, "spaces", policy.Spaces, "Allow spaces")
	fs.BoolVar(&policy.Exclude, "exclude-similar", policy.Exclude, "Leave out look-alike characters")
	fs.BoolVar(&policy.Strict, "strict", policy.Strict, "Require every allowed class at least once")
	return cmd
}

func newImprovGuestCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "guest",
		Short: "Print made-up guests without storing them",
		RunE: func(cmd *cobra.Command, args []string) error {
			guests, err := improv.New(true).Guests(count)
			if err != nil {
				return err
			}
			for _, g := range guests {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", g.ID, color.CyanString(g.Name), color.YellowString(g.Hash))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "Number of guests")
	return cmd
}
