package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/subcue/internal/subtitle"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [track]",
	Short: "Parse a track and show how each subtitle will be displayed",
	Long: `Parse the track, report malformed blocks and print every entry's
timing and formatted text without waiting. With --output, the
well-formed entries are also saved as a renumbered track.

Examples:
  subcue check files/subtitles.srt --width 16
  subcue check movie.srt -w 32 --layout split
  subcue check broken.srt -o cleaned.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().
		IntP("width", "w", 16, "Display width in characters")
	checkCmd.Flags().
		String("layout", string(subtitle.LayoutCentered), "Text layout (centered, split)")
	checkCmd.Flags().
		StringP("output", "o", "", "Write the well-formed entries to this track file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	layoutStr, _ := cmd.Flags().GetString("layout")
	outputPath, _ := cmd.Flags().GetString("output")

	if width <= 0 {
		return fmt.Errorf("display width must be a positive integer, got %d", width)
	}
	layout, err := subtitle.ParseLayout(layoutStr)
	if err != nil {
		return err
	}

	content, err := subtitle.ReadTrack(args[0])
	if err != nil {
		return err
	}

	skipped := 0
	report := func(err error) {
		skipped++
		reportBlock(err)
	}

	w := cmd.OutOrStdout()
	formatter := subtitle.NewFormatter(width, layout)
	count := 0
	for entry := range formatter.All(subtitle.Entries(content, report)) {
		count++
		fmt.Fprintf(w, "%s  %s --> %s\n",
			entry.Sequence,
			subtitle.FormatTimecode(entry.Start),
			subtitle.FormatTimecode(entry.End),
		)
		fmt.Fprintf(w, "|%s|\n\n", strings.ReplaceAll(entry.Text, "\n", "|\n|"))
	}

	fmt.Fprintf(w, "Entries: %d\n", count)
	fmt.Fprintf(w, "Skipped: %d\n", skipped)

	if outputPath == "" {
		return nil
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer f.Close()

	written, err := subtitle.WriteSRT(f, subtitle.Entries(content, nil))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(w, "Cleaned track written: %s (%d entries)\n", absOutput, written)
	return nil
}
