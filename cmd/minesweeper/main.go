package main

import (
	"bufio"
	"context"
	"flag"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-tui/internal/config"
	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/records"
)

var (
	log = logrus.New()

	dataPath string
	seed     uint64
)

func init() {
	flag.StringVar(&dataPath, "data", "", "records database path (overrides MINESWEEPER_DATA)")
	flag.Uint64Var(&seed, "seed", 0, "board RNG seed, 0 draws a random one")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	// the terminal belongs to the board, logs go to a file
	log.SetOutput(io.Discard)
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   config.LogPath(),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Warn("unable to log to file: ", err)
		return
	}
	log.AddHook(hook)

	mines.Log.SetLevel(logLevel)
	mines.Log.SetOutput(io.Discard)
	mines.Log.AddHook(hook)
}

func createRand() *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file: ", err)
	}

	setupLogging()

	path := dataPath
	if path == "" {
		path = config.DataPath()
	}
	store, err := records.Open(path)
	if err != nil {
		log.Fatal("unable to open records database: ", err)
	}
	defer store.Close()

	app := &application{
		store: store,
		rnd:   createRand(),
		in:    bufio.NewScanner(os.Stdin),
		out:   os.Stdout,
	}

	log.WithFields(logrus.Fields{"data": path, "seed": seed}).Debug("starting up")

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return app.run(gCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
