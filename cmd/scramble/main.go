// Package main provides the CLI entrypoint for scramble.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/scramble/internal/config"
	"github.com/verte-zerg/scramble/internal/game"
	"github.com/verte-zerg/scramble/internal/generator"
	"github.com/verte-zerg/scramble/internal/model"
	"github.com/verte-zerg/scramble/internal/repl"
	"github.com/verte-zerg/scramble/internal/session"
	"github.com/verte-zerg/scramble/internal/stats"
	"github.com/verte-zerg/scramble/internal/store"
	"github.com/verte-zerg/scramble/internal/tui"
	"github.com/verte-zerg/scramble/internal/wordlist"
)

const (
	defaultLang         = game.DefaultLang
	defaultMinLength    = game.DefaultMinLength
	defaultHighScores   = game.DefaultCapacity
	defaultFallbackRoot = "silkworm"
	defaultTop          = 10
	defaultCurveWindow  = 5
)

var (
	playLang       string
	playMinLength  int
	playHighScores int
	playRootWords  string
	playDictionary string
	playFallback   string
	playSeed       int64
	playPlain      bool

	scoresLang        string
	scoresSince       string
	scoresLast        int
	scoresTop         int
	scoresCurveWindow int

	wordsKind string
)

var (
	envCfg config.Env
	logger = zerolog.Nop()
)

func main() {
	_ = godotenv.Load()
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "scramble",
		Short:             "Word scramble game for the terminal",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setup,
		RunE:              runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playLang, "lang", defaultLang, "dictionary language code")
	rootCmd.Flags().IntVar(&playMinLength, "min-length", defaultMinLength, "minimum guess length")
	rootCmd.Flags().IntVar(&playHighScores, "high-scores", defaultHighScores, "number of high scores kept")
	rootCmd.Flags().StringVar(&playRootWords, "root-words", "", "root word list file (default: bundled list)")
	rootCmd.Flags().StringVar(&playDictionary, "dictionary", "", "dictionary file (default: bundled list)")
	rootCmd.Flags().StringVar(&playFallback, "fallback-root", "", "root word used when the list is empty (default: fail)")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed for root word selection (0: random)")
	rootCmd.Flags().BoolVar(&playPlain, "plain", false, "line-based play instead of the full-screen UI")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func setup(_ *cobra.Command, _ []string) error {
	e, err := config.ParseEnv()
	if err != nil {
		return err
	}
	envCfg = e
	level, err := zerolog.ParseLevel(strings.ToLower(e.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", e.LogLevel, err)
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
	return nil
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPlayConfig(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	source, err := resolveRootWords(cfg)
	if err != nil {
		return err
	}
	dict, err := resolveDictionary(cfg)
	if err != nil {
		return err
	}

	st, err := store.Open(envCfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close db")
		}
	}()

	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed)
	}
	logger.Debug().Int64("seed", gen.Seed()).Msg("random source ready")

	g := game.New(game.Options{
		MinLength:    cfg.MinLength,
		Lang:         cfg.Lang,
		Capacity:     cfg.HighScores,
		FallbackRoot: cfg.FallbackRoot,
		Rand:         gen,
	})
	useTUI := !cfg.Plain && term.IsTerminal(int(os.Stdin.Fd()))
	playLog := playLogger(useTUI)
	sess, err := session.New(g, session.Options{
		Source: source,
		Dict:   dict,
		Saver:  st,
		Logger: playLog,
	})
	if err != nil {
		return rootWordsError(cfg, err)
	}

	if !useTUI {
		return repl.Run(cmd.Context(), sess, cmd.InOrStdin(), cmd.OutOrStdout())
	}
	program := tea.NewProgram(tui.NewModel(sess, playLog), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// playLogger silences logging while the TUI owns the terminal; the play
// screen shows errors itself.
func playLogger(useTUI bool) zerolog.Logger {
	if useTUI {
		return logger.Output(io.Discard).Level(zerolog.Disabled)
	}
	return logger
}

func loadPlayConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(envCfg.ConfigPath)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "lang", &playLang, fileCfg.Game.Lang)
	applyConfig(cmd, "min-length", &playMinLength, fileCfg.Game.MinLength)
	applyConfig(cmd, "high-scores", &playHighScores, fileCfg.Game.HighScores)
	applyConfig(cmd, "root-words", &playRootWords, fileCfg.Game.RootWords)
	applyConfig(cmd, "dictionary", &playDictionary, fileCfg.Game.Dictionary)
	applyConfig(cmd, "fallback-root", &playFallback, fileCfg.Game.FallbackRoot)

	return model.Config{
		Lang:         playLang,
		MinLength:    playMinLength,
		HighScores:   playHighScores,
		RootWords:    expandHome(playRootWords),
		Dictionary:   expandHome(playDictionary),
		FallbackRoot: playFallback,
		Seed:         playSeed,
		Plain:        playPlain,
	}, nil
}

func resolveRootWords(cfg model.Config) (game.WordSource, error) {
	if cfg.RootWords == "" {
		if !wordlist.SameLang(cfg.Lang, wordlist.EmbeddedLang) {
			return nil, fmt.Errorf("no bundled root words for %q; set --root-words", cfg.Lang)
		}
		return wordlist.Embedded(), nil
	}
	return wordlist.FileSource{
		Path:   cfg.RootWords,
		Filter: wordlist.All(wordlist.FilterForLang(cfg.Lang), wordlist.MinLength(cfg.MinLength+1)),
	}, nil
}

func resolveDictionary(cfg model.Config) (*wordlist.Dictionary, error) {
	if cfg.Dictionary == "" {
		if !wordlist.SameLang(cfg.Lang, wordlist.EmbeddedLang) {
			return nil, fmt.Errorf("no bundled dictionary for %q; set --dictionary", cfg.Lang)
		}
		return wordlist.EmbeddedDictionary(), nil
	}
	dict, err := wordlist.LoadDictionary(cfg.Dictionary, cfg.Lang)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", cfg.Dictionary).Int("words", dict.Len()).Msg("dictionary loaded")
	return dict, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := envCfg.ConfigPath
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show score history and all-time high scores",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
	cmd.Flags().StringVar(&scoresLang, "lang", "", "language filter")
	cmd.Flags().StringVar(&scoresSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&scoresLast, "last", 0, "limit summary to last N rounds")
	cmd.Flags().IntVar(&scoresTop, "top", defaultTop, "number of high scores to list")
	cmd.Flags().IntVar(&scoresCurveWindow, "curve-window", defaultCurveWindow, "moving average window for the trend")
	return cmd
}

func runScoresCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := scoresConfig()
	if err != nil {
		return err
	}

	st, err := store.Open(envCfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close db")
		}
	}()

	report, err := stats.BuildReport(cmd.Context(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	if err := report.Render(cmd.OutOrStdout(), cfg.CurveWindow, 0); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func scoresConfig() (model.ScoresConfig, error) {
	var sinceTime *time.Time
	if scoresSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", scoresSince, time.Local)
		if err != nil {
			return model.ScoresConfig{}, fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if scoresTop < 0 {
		return model.ScoresConfig{}, fmt.Errorf("--top must be >= 0")
	}
	if scoresLast < 0 {
		return model.ScoresConfig{}, fmt.Errorf("--last must be >= 0")
	}
	return model.ScoresConfig{
		Lang:        scoresLang,
		Since:       sinceTime,
		Last:        scoresLast,
		Top:         scoresTop,
		CurveWindow: scoresCurveWindow,
	}, nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print the active root word list or dictionary",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().StringVar(&wordsKind, "kind", "root", "list to print: root or dict")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPlayConfig(cmd.Root())
	if err != nil {
		return err
	}
	var words []string
	switch wordsKind {
	case "root":
		source, err := resolveRootWords(cfg)
		if err != nil {
			return err
		}
		if words, err = source.RootWords(); err != nil {
			return err
		}
	case "dict":
		dict, err := resolveDictionary(cfg)
		if err != nil {
			return err
		}
		words = dict.Words()
	default:
		return fmt.Errorf("--kind must be root or dict")
	}
	return writeWords(cmd.OutOrStdout(), words)
}

func writeWords(w io.Writer, words []string) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# scramble configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# lang = %q                 # Dictionary language code
# min-length = %d             # Minimum guess length
# high-scores = %d            # Number of high scores kept per session
# root-words = "~/words.txt"  # Root word list, one per line (default: bundled)
# dictionary = "~/dict.txt"   # Dictionary, one word per line (default: bundled)
# fallback-root = %q   # Used when the root word list is empty
`,
		defaultLang,
		defaultMinLength,
		defaultHighScores,
		defaultFallbackRoot,
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.Lang) == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if cfg.MinLength <= 0 {
		return fmt.Errorf("--min-length must be > 0")
	}
	if cfg.HighScores <= 0 {
		return fmt.Errorf("--high-scores must be > 0")
	}
	return nil
}

func rootWordsError(cfg model.Config, err error) error {
	if !errors.Is(err, game.ErrNoRootWords) {
		return fmt.Errorf("failed to start game: %w", err)
	}
	path := cfg.RootWords
	if path == "" {
		path = "<bundled>"
	}
	lines := []string{
		fmt.Sprintf("failed to start game: %v", err),
		fmt.Sprintf("root words loaded from: %s", path),
		"Each line of the file should hold one root word.",
		"Set fallback-root in the config to play with a default word instead.",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, path[2:])
}
