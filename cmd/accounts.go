package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dev-ashishk/passbook/model"
)

// printJSON writes a result to stdout the way the portal UI would render it.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

func accountCommands(b *passbookInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "manage bank accounts",
	}
	cmd.AddCommand(
		createAccountCommand(b),
		depositCommand(b),
		withdrawCommand(b),
		viewCommand(b),
		updateCommand(b),
		deleteCommand(b),
		listCommand(b),
	)
	return cmd
}

func createAccountCommand(b *passbookInstance) *cobra.Command {
	var req model.CreateAccount

	cmd := &cobra.Command{
		Use:   "create",
		Short: "open a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := b.passbook.CreateAccount(req)
			if err != nil {
				return err
			}
			fmt.Printf("Please keep your account safe, your account number is %s\n", account.Number)
			return printJSON(account.View())
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "account holder name")
	cmd.Flags().StringVar(&req.Email, "email", "", "account holder email")
	cmd.Flags().IntVar(&req.Age, "age", 0, "account holder age")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "10 digit phone number")
	cmd.Flags().StringVar(&req.Pin, "pin", "", "4 digit pin")

	return cmd
}

func depositCommand(b *passbookInstance) *cobra.Command {
	var number, pin string
	var amount int64

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "deposit money into an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := b.passbook.Deposit(number, pin, amount)
			if err != nil {
				return err
			}
			return printJSON(account.View())
		},
	}
	cmd.Flags().StringVar(&number, "account", "", "account number")
	cmd.Flags().StringVar(&pin, "pin", "", "4 digit pin")
	cmd.Flags().Int64Var(&amount, "amount", 0, "amount to deposit")

	return cmd
}

func withdrawCommand(b *passbookInstance) *cobra.Command {
	var number, pin string
	var amount int64

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "withdraw money from an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := b.passbook.Withdraw(number, pin, amount)
			if err != nil {
				return err
			}
			return printJSON(account.View())
		},
	}
	cmd.Flags().StringVar(&number, "account", "", "account number")
	cmd.Flags().StringVar(&pin, "pin", "", "4 digit pin")
	cmd.Flags().Int64Var(&amount, "amount", 0, "amount to withdraw")

	return cmd
}

func viewCommand(b *passbookInstance) *cobra.Command {
	var number, pin string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "view account details",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := b.passbook.ViewAccount(number, pin)
			if err != nil {
				return err
			}
			return printJSON(view)
		},
	}
	cmd.Flags().StringVar(&number, "account", "", "account number")
	cmd.Flags().StringVar(&pin, "pin", "", "4 digit pin")

	return cmd
}

func updateCommand(b *passbookInstance) *cobra.Command {
	var number, pin string
	var name, email, phone, newPin string
	var age int

	cmd := &cobra.Command{
		Use:   "update",
		Short: "update account details, skipping flags you don't pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req model.UpdateAccount
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			if cmd.Flags().Changed("age") {
				req.Age = &age
			}
			if cmd.Flags().Changed("phone") {
				req.Phone = &phone
			}
			if cmd.Flags().Changed("new-pin") {
				req.Pin = &newPin
			}

			account, err := b.passbook.UpdateAccount(number, pin, req)
			if err != nil {
				return err
			}
			return printJSON(account.View())
		},
	}
	cmd.Flags().StringVar(&number, "account", "", "account number")
	cmd.Flags().StringVar(&pin, "pin", "", "current 4 digit pin")
	cmd.Flags().StringVar(&name, "name", "", "new account holder name")
	cmd.Flags().StringVar(&email, "email", "", "new account holder email")
	cmd.Flags().IntVar(&age, "age", 0, "new account holder age")
	cmd.Flags().StringVar(&phone, "phone", "", "new 10 digit phone number")
	cmd.Flags().StringVar(&newPin, "new-pin", "", "new 4 digit pin")

	return cmd
}

func deleteCommand(b *passbookInstance) *cobra.Command {
	var number, pin string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "delete an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := b.passbook.DeleteAccount(number, pin); err != nil {
				return err
			}
			fmt.Println("Account deleted successfully")
			return nil
		},
	}
	cmd.Flags().StringVar(&number, "account", "", "account number")
	cmd.Flags().StringVar(&pin, "pin", "", "4 digit pin")

	return cmd
}

func listCommand(b *passbookInstance) *cobra.Command {
	var reload bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list every account in the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			if reload {
				if err := b.passbook.Reload(); err != nil {
					return err
				}
			}
			return printJSON(b.passbook.ListAccounts())
		},
	}
	cmd.Flags().BoolVar(&reload, "reload", false, "re-read the data file before listing")

	return cmd
}
