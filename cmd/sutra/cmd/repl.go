package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/corey/sutra/internal/adapters/fsnotify"
	"github.com/corey/sutra/internal/app"
	"github.com/corey/sutra/internal/domain/score"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive session: encode lines, :decode, :context, :quit",
	Long: `Reads lines from stdin and encodes them. Prefix commands:
  :decode <tokens>   decode a token stream
  :context <text>    show context detection
  :quit              exit
When --lexicon points at a file, edits to it reload the lexicon live.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := loadApp()
		if err != nil {
			return err
		}

		// The watcher goroutine swaps the app; line handling takes the
		// same lock so a reload never lands mid-request.
		var mu sync.Mutex
		get := func() *app.App {
			mu.Lock()
			defer mu.Unlock()
			return current
		}

		if flagLexicon != "" {
			w, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer w.Stop()
			err = w.Watch(flagLexicon, func() {
				fresh, err := loadApp()
				if err != nil {
					log.Printf("lexicon reload failed: %v", err)
					return
				}
				mu.Lock()
				current = fresh
				mu.Unlock()
				log.Printf("lexicon reloaded (%d entries)", fresh.Lexicon().Len())
			})
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "sutra repl — %d entries loaded. :quit to exit.\n", get().Lexicon().Len())

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			switch {
			case line == "":
				continue
			case line == ":quit" || line == ":q":
				return nil
			case strings.HasPrefix(line, ":decode "):
				fmt.Fprintln(out, get().Decode(strings.TrimPrefix(line, ":decode ")))
			case strings.HasPrefix(line, ":context "):
				det := get().Context(strings.TrimPrefix(line, ":context "))
				fmt.Fprintf(out, "primary: %s  scores: %v\n", det.Primary, det.Scores)
			default:
				res := get().Tokenize(line, score.Hints{})
				fmt.Fprintln(out, res.Output())
				fmt.Fprintf(out, "  %d→%d segments, %.0f%% confidence\n",
					res.OriginalWords, len(res.Segments), res.AvgConfidence*100)
			}
		}
		return scanner.Err()
	},
}
