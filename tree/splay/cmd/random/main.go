package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.lepak.sg/splay/tree/splay"
)

func main() {
	app := &cli.App{
		Name:  "random",
		Usage: "build a splay tree from shuffled keys and search it at random",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "num",
				Aliases: []string{"n"},
				Usage:   "number of keys in the tree",
				Value:   10,
			},
			&cli.Int64Flag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "seed (default current unix time in ns)",
			},
			&cli.IntFlag{
				Name:    "finds",
				Aliases: []string{"f"},
				Usage:   "number of random finds (default num)",
				Value:   -1,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity: error, warn, info or debug",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cctx *cli.Context) error {
	logger := configLogger(cctx.String("log-level"), os.Stderr)

	num := cctx.Int("num")
	if num < 0 {
		return fmt.Errorf("--num must not be negative, got %d", num)
	}

	finds := cctx.Int("finds")
	if finds < 0 {
		finds = num
	}

	seed := cctx.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tr, st := build(num, finds, seed, logger)

	fmt.Println("tree:")
	fmt.Print(tr.String())
	fmt.Println("height:", tr.Height())
	fmt.Println("finds:", st.hits+st.misses, "hits:", st.hits, "misses:", st.misses)

	if err := tr.Verify(); err != nil {
		return cli.Exit(fmt.Sprintf("verify: %v", err), 2)
	}
	fmt.Println("verify: ok")

	return nil
}

type stats struct {
	hits, misses int
}

// build inserts the keys [0, num) in a shuffled order, then looks up
// finds keys drawn from [0, 2*num), so about half of them miss.
func build(num, finds int, seed int64, logger *slog.Logger) (*splay.Tree[int], stats) {
	rd := rand.New(rand.NewSource(seed))
	tr := &splay.Tree[int]{}

	for _, k := range rd.Perm(num) {
		tr.Insert(k)
	}
	logger.Info("inserted keys", "num", num, "seed", seed, "height", tr.Height())

	var st stats
	if num == 0 {
		return tr, st
	}

	for i := 0; i < finds; i++ {
		k := rd.Intn(2 * num)
		nearest, ok := tr.Find(k)
		if ok {
			st.hits++
		} else {
			st.misses++
		}
		logger.Debug("find", "key", k, "found", ok, "root", nearest)
	}
	logger.Info("finds done", "finds", finds, "hits", st.hits, "misses", st.misses,
		"height", tr.Height())

	return tr, st
}

func configLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "error":
		lvl = slog.LevelError
	case "warn":
		lvl = slog.LevelWarn
	case "debug":
		lvl = slog.LevelDebug
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}
