package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/temirbekov/flowdeck/internal/config"
	"github.com/temirbekov/flowdeck/internal/db"
	"github.com/temirbekov/flowdeck/internal/preview"
	"github.com/temirbekov/flowdeck/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "flowdeck",
	Short: "Plan and preview social media content from the terminal",
	Long: `flowdeck is a command-line content planner for social media teams.
Draft posts, schedule them on a calendar, track production on a kanban
board, and preview how each post renders per platform.`,
}

// initApp loads configuration and opens the database, panicking on failure.
func initApp() {
	loaded, err := config.Load()
	if err != nil {
		panic(err)
	}
	cfg = loaded

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		panic(err)
	}
	if err := db.Initialize(dbPath); err != nil {
		panic(err)
	}
}

// withSession wraps a command function to require a signed-in user.
func withSession(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		if _, err := db.CurrentSession(); err != nil {
			fmt.Println("❌ Not signed in. Run 'flowdeck login' first.")
			os.Exit(1)
		}
		fn(cmd, args)
	}
}

// openPostStore loads the post collection from disk.
func openPostStore() *store.PostStore {
	path, err := cfg.PostsPath()
	if err != nil {
		panic(err)
	}
	posts, err := store.OpenPosts(path)
	if err != nil {
		fmt.Printf("Error loading posts: %v\n", err)
		os.Exit(1)
	}
	return posts
}

// openProjectStore loads projects from the database, persisting through it.
func openProjectStore() *store.ProjectStore {
	projects, err := db.LoadProjects()
	if err != nil {
		fmt.Printf("Error loading projects: %v\n", err)
		os.Exit(1)
	}
	return store.NewProjectStore(projects, db.SaveProjects)
}

// accountIdentity builds the preview byline from config, falling back to
// the signed-in user's name.
func accountIdentity() preview.Identity {
	identity := preview.Identity{Name: cfg.Account.Name, Handle: cfg.Account.Handle}
	if identity.Name == "" {
		if session, err := db.CurrentSession(); err == nil {
			identity.Name = session.User.Name
		}
	}
	return identity
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
