package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vow/internal/model"
	"github.com/jmylchreest/vow/internal/pledge"
	"github.com/jmylchreest/vow/internal/render"
)

var listOpts struct {
	// Filter options
	category string
	remind   string
	limit    int
	search   string

	// Output options
	format   string
	field    string
	template string

	// Lookup options
	index int
}

var listCmd = &cobra.Command{
	Use:   "list [index]",
	Short: "Print recorded pledges",
	Long: `Print recorded pledges in various formats.

Without arguments, outputs every pledge as a plain text block in the
order it was recorded. With a 1-based index argument, outputs that
specific pledge.

Examples:
  # List all pledges
  vow list

  # Filter by category
  vow list --category Health

  # Pledges mentioning "walk", as JSON
  vow list --search walk --format json

  # The second pledge's text only
  vow list 2 --field text

  # Custom template
  vow list --template '{{.Commitment.Category}}: {{.Commitment.Text}}'`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	// Filter flags
	listCmd.Flags().StringVar(&listOpts.category, "category", "",
		"Filter by category (exact match, case-insensitive)")
	listCmd.Flags().StringVar(&listOpts.remind, "remind", "",
		"Filter by reminder frequency")
	listCmd.Flags().IntVarP(&listOpts.limit, "limit", "n", 0,
		"Maximum number of pledges to show (0=unlimited)")
	listCmd.Flags().StringVarP(&listOpts.search, "search", "s", "",
		"Search in pledge text and category")

	// Output flags
	listCmd.Flags().StringVarP(&listOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml)")
	listCmd.Flags().StringVar(&listOpts.field, "field", "",
		"Output a single field (category, text, remind, timestamp, date, all)")
	listCmd.Flags().StringVar(&listOpts.template, "template", "",
		"Custom Go template for output formatting")

	// Lookup flags
	listCmd.Flags().IntVar(&listOpts.index, "index", 0,
		"Lookup pledge by 1-based index")
}

func runList(cmd *cobra.Command, args []string) error {
	// Check for positional index argument
	if len(args) > 0 {
		idx, err := strconv.Atoi(args[0])
		if err != nil || idx < 1 {
			return fmt.Errorf("invalid pledge index %q", args[0])
		}
		listOpts.index = idx
	}

	commitments := applyListFilters(getBook().All())

	// If looking up a specific pledge
	if listOpts.index > 0 {
		return handleListLookup(commitments)
	}

	return outputCommitments(commitments)
}

// applyListFilters narrows the sequence per the filter options. The
// limit cuts last so a search never runs on a truncated list.
func applyListFilters(commitments []model.Commitment) []model.Commitment {
	commitments = pledge.Filter(commitments, pledge.FilterOptions{
		Category: listOpts.category,
		Remind:   listOpts.remind,
	})

	if listOpts.search != "" {
		commitments = pledge.Search(commitments, listOpts.search)
	}

	if listOpts.limit > 0 && len(commitments) > listOpts.limit {
		commitments = commitments[:listOpts.limit]
	}

	return commitments
}

// handleListLookup outputs the single pledge at the requested index
// within the filtered sequence.
func handleListLookup(commitments []model.Commitment) error {
	if listOpts.index > len(commitments) {
		return fmt.Errorf("pledge at index %d not found", listOpts.index)
	}
	c := commitments[listOpts.index-1]

	if listOpts.field != "" {
		fmt.Println(render.FormatField(&c, listOpts.field))
		return nil
	}

	formatter := createFormatter()
	return formatter.Format(os.Stdout, []model.Commitment{c})
}

// outputCommitments outputs the pledge list.
func outputCommitments(commitments []model.Commitment) error {
	if len(commitments) == 0 {
		logger.Debug("no pledges to output")
		return nil
	}

	// Field output applies per pledge, one line each
	if listOpts.field != "" {
		for i := range commitments {
			fmt.Println(render.FormatField(&commitments[i], listOpts.field))
		}
		return nil
	}

	formatter := createFormatter()
	return formatter.Format(os.Stdout, commitments)
}

// createFormatter creates the output formatter based on options.
func createFormatter() render.Formatter {
	var format render.FormatType
	switch strings.ToLower(listOpts.format) {
	case "json":
		format = render.FormatJSON
	case "yaml":
		format = render.FormatYAML
	default:
		format = render.FormatPlain
	}

	opts := render.DefaultFormatterOptions()
	opts.Template = listOpts.template

	return render.NewFormatter(format, opts)
}
