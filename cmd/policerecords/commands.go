package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kjk/policerecords/person"
	"github.com/kjk/policerecords/u"
	"github.com/spf13/cobra"
)

func printPersons(w io.Writer, persons []*person.Person, full bool) {
	if len(persons) == 0 {
		fmt.Fprintf(w, "0 persons listed!\n")
		return
	}
	for i, p := range persons {
		if full {
			fmt.Fprintf(w, "%d. %s\n", i+1, p)
			continue
		}
		fmt.Fprintf(w, "%d. %s NRIC: %s Status: %s\n", i+1, p.Name, p.NRIC, u.Capitalize(string(p.Status)))
	}
	fmt.Fprintf(w, "%d persons listed!\n", len(persons))
}

// mutate loads the book, applies fn and saves the result
func (a *app) mutate(fn func(book *person.AddressBook) error) error {
	book, err := a.store.Load()
	if err != nil {
		return err
	}
	if err = fn(book); err != nil {
		return err
	}
	return a.store.Save(book)
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List names and NRICs of all persons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.store.Load()
			if err != nil {
				return err
			}
			printPersons(cmd.OutOrStdout(), book.Persons(), false)
			return nil
		},
	}
}

func newViewAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "viewall",
		Short: "List all persons with all details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.store.Load()
			if err != nil {
				return err
			}
			printPersons(cmd.OutOrStdout(), book.Persons(), true)
			return nil
		},
	}
}

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view NRIC",
		Short: "Show all details of a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.store.Load()
			if err != nil {
				return err
			}
			p, err := book.Get(person.NRIC(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", p)
			return nil
		},
	}
}

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find KEYWORD...",
		Short: "Find persons whose name contains any of the keywords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.store.Load()
			if err != nil {
				return err
			}
			printPersons(cmd.OutOrStdout(), book.Find(args...), false)
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	var f person.Fields
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := person.Parse(f)
			if err != nil {
				return err
			}
			err = a.mutate(func(book *person.AddressBook) error {
				return book.Add(p)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "New person added: %s\n", p)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.Name, "name", "", "full name")
	fl.StringVar(&f.NRIC, "nric", "", "NRIC, e.g. s1234567a")
	fl.StringVar(&f.DateOfBirth, "dob", "", "year of birth")
	fl.StringVar(&f.PostalCode, "postal", "", "6 digit postal code")
	fl.StringVar(&f.Status, "status", "clear", "wanted, xc or clear")
	fl.StringVar(&f.WantedFor, "wanted-for", "none", "offense the person is wanted for")
	fl.StringSliceVar(&f.PastOffenses, "offense", nil, "past offense, can be repeated")
	for _, name := range []string{"name", "nric", "dob", "postal"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var status, wantedFor string
	cmd := &cobra.Command{
		Use:   "edit NRIC",
		Short: "Change status of a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := person.NewStatus(status)
			if err != nil {
				return err
			}
			o, err := person.NewOffense(wantedFor)
			if err != nil {
				return err
			}
			var edited *person.Person
			err = a.mutate(func(book *person.AddressBook) error {
				p, err := book.Get(person.NRIC(args[0]))
				if err != nil {
					return err
				}
				edited = p.WithStatus(st, o)
				return book.Replace(edited)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Edited person: %s\n", edited)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "wanted, xc or clear")
	cmd.Flags().StringVar(&wantedFor, "wanted-for", "none", "offense the person is wanted for")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NRIC",
		Short: "Delete a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nric := person.NRIC(args[0])
			err := a.mutate(func(book *person.AddressBook) error {
				return book.Remove(nric)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted person: %s\n", nric)
			return nil
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all persons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Save(&person.AddressBook{}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Address book has been cleared!\n")
			return nil
		},
	}
}

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show how re-saving would change the storage file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.store.Load()
			if err != nil {
				return err
			}
			s, err := a.store.Diff(book)
			if err != nil {
				return err
			}
			if s == "" {
				s = "no changes\n"
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newInboxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inbox USER",
		Short: "Show path of the inbox file of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", a.inboxes.For(strings.ToLower(args[0])))
			return nil
		},
	}
}
