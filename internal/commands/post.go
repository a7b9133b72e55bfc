package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/temirbekov/flowdeck/internal/editor"
	"github.com/temirbekov/flowdeck/internal/models"
	"github.com/temirbekov/flowdeck/internal/parser"
	"github.com/temirbekov/flowdeck/internal/store"
	"github.com/temirbekov/flowdeck/internal/tui"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Manage posts",
	Long:  "Create, list, edit, and delete posts in the content plan.",
}

var postAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new post",
	Long: `Add a new post to the content plan.

Modes:
  Interactive: flowdeck post add (no arguments opens the form)
  Quick: flowdeck post add "Post title" (with optional flags)
  Smart parsing: flowdeck post add "Launch teaser #launch,video @twitter at:tomorrow 9:00"

Smart parsing syntax:
  #tag1,tag2    - Tags (comma-separated)
  @platform     - Platform (twitter/facebook/instagram/linkedin)
  at:tomorrow   - Schedule (today, tomorrow, dd/mm/yyyy, X days, optional hh:mm)`,
	Args: cobra.ArbitraryArgs,
	Run: withSession(func(cmd *cobra.Command, args []string) {
		posts := openPostStore()
		interactive, _ := cmd.Flags().GetBool("interactive")

		if len(args) == 0 && !interactive {
			interactive = true
		}

		if interactive {
			runInteractivePostAdd(cmd, posts, args)
			return
		}

		parsed := parser.ParsePost(strings.Join(args, " "), time.Now())
		if len(parsed.Errors) > 0 {
			fmt.Printf("⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
			fmt.Println("Opening the form for confirmation...")
			runInteractivePostAddParsed(cmd, posts, parsed)
			return
		}
		runDirectPostAdd(cmd, posts, parsed)
	}),
}

// runInteractivePostAdd opens the post form, pre-filled from args and flags.
func runInteractivePostAdd(cmd *cobra.Command, posts *store.PostStore, args []string) {
	prefilled := make(map[string]string)
	if len(args) > 0 {
		prefilled["title"] = strings.Join(args, " ")
	}
	fillFromFlags(cmd, prefilled)

	if err := tui.RunPostFormTUI(posts, prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// runInteractivePostAddParsed opens the form pre-filled from parsed data.
func runInteractivePostAddParsed(cmd *cobra.Command, posts *store.PostStore, parsed parser.ParsedPost) {
	prefilled := make(map[string]string)
	prefilled["title"] = parsed.Title
	if parsed.Platform != "" {
		prefilled["platform"] = string(parsed.Platform)
	}
	if len(parsed.Tags) > 0 {
		prefilled["tags"] = strings.Join(parsed.Tags, ", ")
	}
	if parsed.At != nil {
		prefilled["schedule"] = parsed.At.Format("02/01/2006 15:04")
	}
	fillFromFlags(cmd, prefilled)

	if err := tui.RunPostFormTUI(posts, prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// fillFromFlags overrides prefilled form values with explicit flags.
func fillFromFlags(cmd *cobra.Command, prefilled map[string]string) {
	if platform, _ := cmd.Flags().GetString("platform"); platform != "" {
		prefilled["platform"] = platform
	}
	if tags, _ := cmd.Flags().GetStringSlice("tags"); len(tags) > 0 {
		prefilled["tags"] = strings.Join(tags, ", ")
	}
	if at, _ := cmd.Flags().GetString("at"); at != "" {
		prefilled["schedule"] = at
	}
	if content, _ := cmd.Flags().GetString("content"); content != "" {
		prefilled["content"] = content
	}
}

// runDirectPostAdd creates the post without the form.
func runDirectPostAdd(cmd *cobra.Command, posts *store.PostStore, parsed parser.ParsedPost) {
	post := models.Post{
		Title:  parsed.Title,
		Tags:   parsed.Tags,
		Status: models.StatusDraft,
	}

	post.Platform = parsed.Platform
	if flagPlatform, _ := cmd.Flags().GetString("platform"); flagPlatform != "" {
		post.Platform = models.Platform(flagPlatform)
	}
	if post.Platform == "" {
		post.Platform = models.Platform(cfg.DefaultPlatform())
	}
	if !post.Platform.IsValid() {
		fmt.Printf("❌ Unknown platform %q (use twitter, facebook, instagram, or linkedin)\n", post.Platform)
		return
	}

	if flagTags, _ := cmd.Flags().GetStringSlice("tags"); len(flagTags) > 0 {
		post.Tags = flagTags
	}

	if parsed.At != nil {
		post.ScheduledTime = *parsed.At
		post.Status = models.StatusScheduled
	}
	if flagAt, _ := cmd.Flags().GetString("at"); flagAt != "" {
		at, err := parser.ParseSchedule(flagAt, time.Now())
		if err != nil {
			fmt.Printf("Error parsing schedule: %v\n", err)
			return
		}
		post.ScheduledTime = at
		post.Status = models.StatusScheduled
	}

	post.Content, _ = cmd.Flags().GetString("content")
	if useEditor, _ := cmd.Flags().GetBool("editor"); useEditor {
		if !editor.IsInteractive() {
			fmt.Println("❌ --editor needs an interactive terminal")
			return
		}
		content, err := editor.EditText(post.Content)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		post.Content = content
	}

	created, err := posts.Add(post)
	if err != nil {
		fmt.Printf("Error creating post: %v\n", err)
		return
	}

	fmt.Printf("Created post %s: %s\n", shortPostID(created.ID), created.Title)
	fmt.Printf("  Platform: %s\n", created.Platform)
	if len(created.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(created.Tags, ", "))
	}
	if !created.ScheduledTime.IsZero() {
		fmt.Printf("  Scheduled: %s\n", parser.FormatSchedule(created.ScheduledTime, time.Now()))
	}
}

var postListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List posts",
	Long:    "List posts with optional filters for status and platform",
	Run: withSession(func(cmd *cobra.Command, args []string) {
		posts := openPostStore()
		all := posts.Posts()

		statusFilter, _ := cmd.Flags().GetString("status")
		platformFilter, _ := cmd.Flags().GetString("platform")

		var shown []models.Post
		for _, post := range all {
			if statusFilter != "" && string(post.Status) != statusFilter {
				continue
			}
			if platformFilter != "" && string(post.Platform) != platformFilter {
				continue
			}
			shown = append(shown, post)
		}

		if len(shown) == 0 {
			fmt.Println("No posts found. Use 'flowdeck post add \"title\"' to create your first post.")
			return
		}

		fmt.Printf("%-10s %-9s %-36s %-11s %-22s %s\n", "ID", "STATUS", "TITLE", "PLATFORM", "SCHEDULED", "TAGS")
		fmt.Println(strings.Repeat("-", 100))
		for _, post := range shown {
			title := post.Title
			if len(title) > 34 {
				title = title[:31] + "..."
			}

			scheduled := "unscheduled"
			if !post.ScheduledTime.IsZero() {
				scheduled = humanize.Time(post.ScheduledTime)
			}

			fmt.Printf("%-10s %-9s %-36s %-11s %-22s %s\n",
				shortPostID(post.ID),
				post.Status,
				title,
				post.Platform,
				scheduled,
				strings.Join(post.Tags, ","))
		}
		fmt.Printf("\n%d post(s)\n", len(shown))
	}),
}

var postShowCmd = &cobra.Command{
	Use:   "show [post-id]",
	Short: "Show a post in full",
	Args:  cobra.ExactArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		posts := openPostStore()
		post, err := posts.FindByPrefix(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("%s\n", post.Title)
		fmt.Printf("  ID: %s\n", post.ID)
		fmt.Printf("  Platform: %s\n", post.Platform)
		fmt.Printf("  Status: %s\n", post.Status)
		fmt.Printf("  Scheduled: %s\n", parser.FormatSchedule(post.ScheduledTime, time.Now()))
		if len(post.Tags) > 0 {
			fmt.Printf("  Tags: %s\n", strings.Join(post.Tags, ", "))
		}
		if post.Content != "" {
			fmt.Printf("\n%s\n", post.Content)
		}
	}),
}

var postEditCmd = &cobra.Command{
	Use:   "edit [post-id]",
	Short: "Edit an existing post",
	Args:  cobra.ExactArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		posts := openPostStore()
		post, err := posts.FindByPrefix(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if useEditor, _ := cmd.Flags().GetBool("editor"); useEditor {
			if !editor.IsInteractive() {
				fmt.Println("❌ --editor needs an interactive terminal")
				return
			}
			content, err := editor.EditText(post.Content)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			patch := models.Post{ID: post.ID, Content: content}
			if _, err := posts.Update(patch); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("✅ Updated content of %s\n", shortPostID(post.ID))
			return
		}

		if err := tui.RunEditPostFormTUI(posts, post); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var postDeleteCmd = &cobra.Command{
	Use:     "delete [post-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a post",
	Args:    cobra.ExactArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		posts := openPostStore()
		post, err := posts.FindByPrefix(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := posts.Delete(post.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑  Deleted post %s: %s\n", shortPostID(post.ID), post.Title)
	}),
}

// shortPostID abbreviates a UUID for display.
func shortPostID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	postAddCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with the post form")
	postAddCmd.Flags().StringP("platform", "p", "", "Platform: twitter, facebook, instagram, linkedin")
	postAddCmd.Flags().StringSliceP("tags", "t", []string{}, "Comma-separated tags")
	postAddCmd.Flags().StringP("at", "", "", "Schedule: today, tomorrow, dd/mm/yyyy, X days (optional hh:mm)")
	postAddCmd.Flags().StringP("content", "c", "", "Post body")
	postAddCmd.Flags().BoolP("editor", "e", false, "Write the body in $EDITOR")

	postListCmd.Flags().StringP("status", "s", "", "Filter by status: draft, scheduled, published")
	postListCmd.Flags().StringP("platform", "p", "", "Filter by platform")

	postEditCmd.Flags().BoolP("editor", "e", false, "Edit the body in $EDITOR")

	postCmd.AddCommand(postAddCmd)
	postCmd.AddCommand(postListCmd)
	postCmd.AddCommand(postShowCmd)
	postCmd.AddCommand(postEditCmd)
	postCmd.AddCommand(postDeleteCmd)
}
