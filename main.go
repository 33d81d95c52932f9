package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/k0kubun/pp"
	"github.com/pkg/errors"
	"github.com/to404hanga/online-judge-frontend-sub000/desc"
)

var update bool

func main() {
	updateVar := flag.Bool("update", false, "update all commands, regardless of if they are present or not")
	dump := flag.String("dump", "", "parse a description file, print its node tree and exit")
	render := flag.String("render", "", "parse a description file, print its Discord markdown and exit")
	flag.Parse()
	update = *updateVar

	switch {
	case *dump != "":
		nodes, err := parseFile(*dump)
		if err != nil {
			log.Fatal(err)
		}
		pp.Println(nodes)
		return

	case *render != "":
		nodes, err := parseFile(*render)
		if err != nil {
			log.Fatal(err)
		}
		md, _ := desc.Render(nodes, 0)
		fmt.Println(md)
		return
	}

	cfg := config()
	if cfg.Token == "" {
		log.Fatal("no token provided")
	}
	if cfg.JudgeURL == "" {
		log.Fatal("no judge url provided")
	}

	s := state.New("Bot " + cfg.Token)

	b := &botState{
		cfg:    cfg,
		state:  s,
		client: &http.Client{Timeout: fetchTimeout},
	}

	s.AddHandler(b.OnCommand)
	s.AddIntents(gateway.IntentGuilds)

	if err := s.Open(context.Background()); err != nil {
		log.Fatalln("failed to open:", err)
	}
	defer s.Close()

	log.Println("Gateway connection established.")
	me, err := s.Me()
	if err != nil {
		log.Println("Could not get me:", err)
		return
	}
	b.appID = discord.AppID(me.ID)

	log.Println("Logged in as", me.Tag())

	if err := loadCommands(s, b.appID); err != nil {
		log.Println("Could not load commands:", err)
		return
	}

	go b.updateProblems()
	select {}
}

func parseFile(path string) ([]desc.Node, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read description")
	}

	start := time.Now()
	nodes := desc.Parse(string(text))
	log.Printf("Parsed %d nodes in %s", len(nodes), time.Since(start))
	return nodes, nil
}
