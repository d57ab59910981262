package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgpai22/subcue/internal/audio"
	"github.com/mgpai22/subcue/internal/schedule"
	"github.com/mgpai22/subcue/internal/sink"
	"github.com/mgpai22/subcue/internal/subtitle"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var playCmd = &cobra.Command{
	Use:   "play [track] [audio]",
	Short: "Start the audio and write subtitles to the sink on schedule",
	Long: `Start playback of the audio file, then write each subtitle of the track
to the sink file when it is due. Between subtitles the sink holds a single
space so the display is cleared. After the last subtitle the sink is
cleared and subcue exits.

Video files are accepted as the audio source; their audio track is
extracted before playback starts.

Malformed subtitle blocks are reported and skipped.

Examples:
  subcue play files/subtitles.srt files/audio.wav --width 16
  subcue play movie.srt movie.mkv -w 32 --sink /run/display/input.txt
  subcue play talk.srt talk.mp3 -w 20 --layout split
  SUBCUE_WIDTH=16 subcue play talk.srt talk.mp3 --no-audio`,
	Args: cobra.ExactArgs(2),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().
		IntP("width", "w", 0, "Display width in characters (required)")
	playCmd.Flags().
		StringP("sink", "s", "input.txt", "File rewritten with the current subtitle")
	playCmd.Flags().
		String("layout", string(subtitle.LayoutCentered), "Text layout (centered, split)")
	playCmd.Flags().
		Bool("no-audio", false, "Run the schedule without starting playback")

	for _, name := range []string{"width", "sink", "layout", "no-audio"} {
		_ = viper.BindPFlag(name, playCmd.Flags().Lookup(name))
	}
}

type playConfig struct {
	Width   int
	Sink    string
	Layout  subtitle.Layout
	NoAudio bool
}

func loadPlayConfig(v *viper.Viper) (playConfig, error) {
	width := v.GetInt("width")
	if width <= 0 {
		return playConfig{}, fmt.Errorf(
			"display width must be a positive integer, got %d: use --width or SUBCUE_WIDTH",
			width,
		)
	}

	layout, err := subtitle.ParseLayout(v.GetString("layout"))
	if err != nil {
		return playConfig{}, err
	}

	sinkPath := v.GetString("sink")
	if sinkPath == "" {
		return playConfig{}, errors.New("sink path must not be empty")
	}

	return playConfig{
		Width:   width,
		Sink:    sinkPath,
		Layout:  layout,
		NoAudio: v.GetBool("no-audio"),
	}, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	trackPath, audioPath := args[0], args[1]
	ctx := context.Background()

	cfg, err := loadPlayConfig(viper.GetViper())
	if err != nil {
		return err
	}

	content, err := subtitle.ReadTrack(trackPath)
	if err != nil {
		return err
	}

	var player audio.Player = audio.NopPlayer{}
	if !cfg.NoAudio {
		prepared, cleanup, err := prepareAudio(ctx, audioPath)
		if err != nil {
			return err
		}
		defer cleanup()
		audioPath = prepared
		player = audio.NewFFplayPlayer("")
	}

	out, err := sink.NewFile(cfg.Sink)
	if err != nil {
		return err
	}
	if err := out.Clear(); err != nil {
		return fmt.Errorf("%w: %w", schedule.ErrSinkWrite, err)
	}

	logger.Infow("Starting playback",
		"track", trackPath,
		"audio", audioPath,
		"sink", out.Path(),
		"width", cfg.Width,
		"layout", string(cfg.Layout),
	)

	formatter := subtitle.NewFormatter(cfg.Width, cfg.Layout)
	entries := formatter.All(subtitle.Entries(content, reportBlock))
	scheduler := schedule.New(out, schedule.WithLogger(logger))

	if err := player.Start(ctx, audioPath); err != nil {
		return fmt.Errorf("failed to start playback: %w", err)
	}
	defer func() {
		if err := player.Stop(); err != nil {
			logger.Warnw("Failed to stop playback", "error", err)
		}
	}()

	stats, err := scheduler.Run(ctx, entries)
	if err != nil {
		return fmt.Errorf("schedule aborted after %d entries: %w", stats.Entries, err)
	}

	logger.Infow("Track finished",
		"entries", stats.Entries,
		"elapsed", stats.Elapsed.String(),
	)
	return nil
}

// checks the audio resource and extracts the audio track from video
// containers. The returned cleanup removes any temporary files.
func prepareAudio(ctx context.Context, audioPath string) (string, func(), error) {
	noop := func() {}

	if _, err := os.Stat(audioPath); err != nil {
		return "", noop, fmt.Errorf("%w %s: %w", subtitle.ErrSourceRead, audioPath, err)
	}
	if !audio.IsMediaFile(audioPath) {
		return "", noop, fmt.Errorf(
			"unsupported file type: %s (expected audio or video file)",
			filepath.Ext(audioPath),
		)
	}

	cleanup := noop
	if audio.IsVideoFile(audioPath) {
		tempDir, err := os.MkdirTemp("", "subcue-*")
		if err != nil {
			return "", noop, fmt.Errorf("failed to create temp directory: %w", err)
		}
		cleanup = func() { _ = os.RemoveAll(tempDir) }

		logger.Infow("Extracting audio from video", "video", audioPath)
		extracted := filepath.Join(tempDir, "audio.wav")
		if err := audio.ExtractAudio(ctx, audioPath, extracted); err != nil {
			cleanup()
			return "", noop, fmt.Errorf("failed to extract audio: %w", err)
		}
		audioPath = extracted
	}

	if duration, err := audio.GetDuration(ctx, audioPath); err != nil {
		logger.Warnw("Could not determine audio duration", "error", err)
	} else {
		logger.Infow("Audio prepared", "duration", duration.String())
	}

	return audioPath, cleanup, nil
}

func reportBlock(err error) {
	var blockErr *subtitle.BlockError
	if errors.As(err, &blockErr) {
		logger.Warnw("Skipping malformed block",
			"block", blockErr.Index,
			"sequence", blockErr.Sequence,
			"error", err,
		)
		return
	}
	logger.Warnw("Skipping malformed block", "error", err)
}
