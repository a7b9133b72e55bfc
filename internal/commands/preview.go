package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/temirbekov/flowdeck/internal/models"
	"github.com/temirbekov/flowdeck/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview [post-id]",
	Short: "Render a post as it would appear on its platform",
	Long: `Render a platform-styled mockup of a post with character count.

Use --platform to preview the same content on a different platform.`,
	Args: cobra.ExactArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		posts := openPostStore()
		post, err := posts.FindByPrefix(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if platform, _ := cmd.Flags().GetString("platform"); platform != "" {
			post.Platform = models.Platform(platform)
		}

		width, _ := cmd.Flags().GetInt("width")
		fmt.Println(preview.Render(post, accountIdentity(), width))

		result := preview.Analyze(post.Platform, post.Content)
		if result.OverLimit {
			fmt.Printf("⚠️  Over the %d character limit by %d\n",
				result.CharacterLimit, result.CharacterCount-result.CharacterLimit)
		}
	}),
}

func init() {
	previewCmd.Flags().StringP("platform", "p", "", "Preview on a different platform")
	previewCmd.Flags().IntP("width", "w", 56, "Card width in columns")
}
