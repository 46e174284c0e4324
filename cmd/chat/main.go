package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"guruvela-be/internal/bootstrap"
	"guruvela-be/internal/config"
	"guruvela-be/internal/constant"
	"guruvela-be/internal/pkg/logger"
	"guruvela-be/pkg/content"
	"guruvela-be/pkg/database"
	"guruvela-be/pkg/dialogue"
)

func main() {
	lang := flag.String("lang", "", "conversation language (en, hi-en, te-en)")
	flag.Parse()

	cfg := config.Load()
	if *lang == "" {
		*lang = cfg.Chat.DefaultLanguage
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	core := bootstrap.NewCore(db, cfg, logger.NewIsolatedLogger(cfg.App.LogFilePath), nil)
	defer func() {
		for _, c := range core.Closers {
			c()
		}
	}()

	sess := core.Sessions.Create(*lang)
	printReply(core.Orchestrator.Greeting(sess))
	color.HiBlack("Commands: /lang <code>, /topic <n>, /reset, /quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.CyanString("\nyou> "))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		turn := dialogue.Turn{Text: line}
		switch {
		case line == "/quit":
			return
		case line == "/reset":
			sess.Lock()
			sess.Reset()
			sess.Unlock()
			color.Yellow("Session cleared.")
			continue
		case strings.HasPrefix(line, "/lang "):
			code := content.NormalizeLanguage(strings.TrimSpace(strings.TrimPrefix(line, "/lang ")))
			sess.Lock()
			sess.Language = code
			sess.Unlock()
			color.Yellow("Language set to %s.", code)
			continue
		case strings.HasPrefix(line, "/topic "):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/topic ")))
			topics := constant.SuggestionsFor(sess.Language)
			if err != nil || n < 1 || n > len(topics) {
				color.Red("Pick a topic between 1 and %d.", len(topics))
				continue
			}
			turn = dialogue.Turn{Text: topics[n-1].ExampleQuery, TopicID: topics[n-1].TopicID}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		sess.Lock()
		reply := core.Orchestrator.HandleTurn(ctx, sess, turn)
		sess.Unlock()
		cancel()

		printReply(reply)
	}
}

func printReply(r dialogue.TurnResponse) {
	texts := constant.TextsFor(r.Language)

	fmt.Println(color.GreenString("guruvela> ") + r.Text)
	if r.RelatedLink != "" {
		color.Cyan("  see: %s", r.RelatedLink)
	}
	if r.ShowHelp {
		color.HiBlack("  %s", texts.HowToUseReferral)
	}
	if len(r.Suggestions) > 0 {
		color.Yellow("  %s", texts.ChooseTopic)
		for i, s := range r.Suggestions {
			color.Yellow("   %d. %s", i+1, s.Label)
		}
	}
	if r.Flow != "" {
		color.HiBlack("  [%s/%s]", r.Flow, r.Outcome)
	}
}
