package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/temirbekov/flowdeck/internal/db"
	"golang.org/x/term"
)

var signupCmd = &cobra.Command{
	Use:   "signup [email]",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		if _, err := db.CurrentSession(); err == nil {
			fmt.Println("❌ Already signed in. Run 'flowdeck logout' first.")
			return
		}

		name, _ := cmd.Flags().GetString("name")
		password, err := promptPassword("Password (min 8 characters): ")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if password != confirm {
			fmt.Println("❌ Passwords do not match")
			return
		}

		user, err := db.CreateUser(args[0], password, name)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}

		// Sign in right away so the next command works.
		if _, err := db.CreateSession(user.Email, password); err != nil {
			fmt.Printf("Account created but sign-in failed: %v\n", err)
			return
		}
		fmt.Printf("✅ Account created for %s. You are signed in.\n", user.Email)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in to your account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		if session, err := db.CurrentSession(); err == nil {
			fmt.Printf("❌ Already signed in as %s. Run 'flowdeck logout' first.\n", session.User.Email)
			return
		}

		password, err := promptPassword("Password: ")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := db.CreateSession(args[0], password)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		fmt.Printf("✅ Signed in as %s\n", session.User.Email)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the current session",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		if _, err := db.CurrentSession(); err != nil {
			fmt.Println("Not signed in.")
			return
		}
		if err := db.DeleteSession(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("✅ Signed out")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		session, err := db.CurrentSession()
		if err != nil {
			fmt.Println("Not signed in.")
			return
		}
		if session.User.Name != "" {
			fmt.Printf("%s <%s>\n", session.User.Name, session.User.Email)
		} else {
			fmt.Println(session.User.Email)
		}
		fmt.Printf("Session expires %s\n", session.ExpiresAt.Format("02/01/2006 15:04"))
	},
}

// promptPassword reads a password without echo when stdin is a terminal.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	// Piped input (tests, scripts): read a plain line.
	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", err
	}
	return line, nil
}

func init() {
	signupCmd.Flags().StringP("name", "n", "", "Display name")
}
