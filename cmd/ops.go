package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/presentation"
	"github.com/zjrosen/xroot/internal/ui/markdown"
)

// markdownWidth is the wrap width for `ops --markdown`.
const markdownWidth = 100

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the available operations",
	Long: `List the available operations with their category and description.

Use --category to show one category and --search to match a substring of
the operation name or description (case-insensitive).

Examples:
  # List everything
  xroot ops

  # Only hashing operations
  xroot ops --category hash

  # Search, as JSON
  xroot ops --search base64 --json
  xroot ops --json | jq '.[].id'

  # Rendered reference
  xroot ops --markdown`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		category, _ := cmd.Flags().GetString("category")
		query, _ := cmd.Flags().GetString("search")
		asJSON, _ := cmd.Flags().GetBool("json")
		asMarkdown, _ := cmd.Flags().GetBool("markdown")
		raw, _ := cmd.Flags().GetBool("raw")

		cat, err := operation.ParseCategory(category)
		if err != nil {
			return err
		}

		descs := filterOperations(operation.Default().FilterByCategory(cat), query)
		dtos := presentation.FromDescriptors(descs)
		formatter := presentation.NewFormatter(cmd.OutOrStdout())

		switch {
		case asJSON:
			return formatter.JSON(dtos)
		case asMarkdown && raw:
			return formatter.Markdown(dtos)
		case asMarkdown:
			r, err := markdown.New(markdownWidth, cfg.UI.MarkdownStyle)
			if err != nil {
				return fmt.Errorf("creating markdown renderer: %w", err)
			}
			out, err := r.Render(presentation.ReferenceMarkdown(dtos))
			if err != nil {
				return fmt.Errorf("rendering reference: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		default:
			return formatter.Operations(dtos)
		}
	},
}

func init() {
	opsCmd.Flags().String("category", "", "Filter by category (encode, hash, crypto, transform, format)")
	opsCmd.Flags().StringP("search", "s", "", "Filter by name or description substring")
	opsCmd.Flags().Bool("json", false, "Output as JSON")
	opsCmd.Flags().Bool("markdown", false, "Output the rendered operation reference")
	opsCmd.Flags().Bool("raw", false, "With --markdown, print the markdown source")
	opsCmd.MarkFlagsMutuallyExclusive("json", "markdown")
	rootCmd.AddCommand(opsCmd)
}

// filterOperations keeps descriptors whose ID or description contains query.
func filterOperations(descs []operation.Descriptor, query string) []operation.Descriptor {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return descs
	}
	result := make([]operation.Descriptor, 0, len(descs))
	for _, d := range descs {
		if d.Matches(q) {
			result = append(result, d)
		}
	}
	return result
}
