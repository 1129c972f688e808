package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/robertkrimen/isatty"
	"github.com/vilterp/balnative/pkg/lang"
	clog "github.com/vilterp/balnative/pkg/log"
	"github.com/vilterp/balnative/pkg/nativeimpl"
	"github.com/vilterp/balnative/pkg/natives"
	"github.com/vilterp/balnative/pkg/tablestore"
)

var (
	dataFile    = flag.String("data", "", "bolt file backing table(...) arguments")
	seed        = flag.Bool("seed", false, "create and fill a people table in the data file")
	verbose     = flag.Bool("verbose", false, "log invocations to stderr")
	historyFile = flag.String("history", "/tmp/.nativesh-history", "readline history file")
)

func main() {
	flag.Parse()

	if *verbose {
		clog.SetOutput(os.Stderr)
	}

	registry, err := nativeimpl.Registry(natives.WithArgumentChecking())
	if err != nil {
		fmt.Println("couldn't build registry:", err)
		os.Exit(1)
	}

	var store *tablestore.Store
	if *dataFile != "" {
		store, err = tablestore.Open(*dataFile)
		if err != nil {
			fmt.Println("couldn't open data file:", err)
			os.Exit(1)
		}
		defer store.Close()
		if *seed {
			if err := seedPeople(store); err != nil {
				fmt.Println("couldn't seed:", err)
				os.Exit(1)
			}
		}
	}

	// check if is TTY
	isInputTty := isatty.Check(os.Stdin.Fd())

	if isInputTty {
		fmt.Println("native shell")
		fmt.Println("\\h for help")
	}

	prompt := ""
	if isInputTty {
		prompt = "natives> "
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       *historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye!",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	sh := &shell{
		registry: registry,
		store:    store,
		out:      os.Stdout,
	}
	for {
		line, readlineErr := l.Readline()
		if readlineErr != nil {
			fmt.Println("bye!")
			return
		}
		sh.handleLine(line)
	}
}

var peopleColumns = []lang.Column{
	{Name: "id", Type: lang.ColumnInt},
	{Name: "name", Type: lang.ColumnString},
	{Name: "photo", Type: lang.ColumnBlob},
}

func seedPeople(store *tablestore.Store) error {
	for _, name := range store.Tables() {
		if name == "people" {
			return nil
		}
	}
	if err := store.CreateTable("people", peopleColumns); err != nil {
		return err
	}
	rows := [][]lang.Value{
		{lang.NewVInt(7), lang.NewVString("Ada"), lang.NewVBlob([]byte("hi"))},
		{lang.NewVInt(8), lang.NewVString("Grace"), lang.Null},
	}
	for _, row := range rows {
		if err := store.Insert("people", row...); err != nil {
			return err
		}
	}
	return nil
}
