package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/httputil"
	"github.com/to404hanga/online-judge-frontend-sub000/judge"
)

type botState struct {
	// cfgMu guards cfg.Blacklist, the only part of cfg changed at runtime.
	cfgMu sync.RWMutex
	cfg   configuration

	appID  discord.AppID
	state  *state.State
	client *http.Client

	mu        sync.RWMutex
	problems  []judge.Problem
	refreshed time.Time
}

func (b *botState) OnCommand(e *gateway.InteractionCreateEvent) {
	if e.GuildID != 0 {
		e.User = &e.Member.User
	}

	// ignore blacklisted users
	if b.ignored(discord.Snowflake(e.User.ID)) {
		log.Printf("Ignoring interaction from %s", e.User.Tag())
		return
	}

	switch data := e.Data.(type) {
	case *discord.CommandInteraction:
		switch data.Name {
		case "problem":
			b.handleProblem(e, data)
		case "preview":
			b.handlePreview(e, data)
		case "info":
			b.handleInfo(e, data)
		case "config":
			b.handleConfig(e, data)
		}
	}
}

func (b *botState) respondEmbed(e *gateway.InteractionCreateEvent, embed discord.Embed, ephemeral bool) {
	data := &api.InteractionResponseData{
		Embeds: &[]discord.Embed{embed},
	}
	if ephemeral {
		data.Flags = discord.EphemeralMessage
	}

	err := b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: data,
	})
	if err != nil {
		log.Printf("could not send interaction callback, %v", err)
	}
}

func loadCommands(s *state.State, appID discord.AppID) error {
	registered, err := s.Commands(appID)
	if err != nil {
		return err
	}

	registeredMap := map[string]bool{}
	if !update {
		for _, c := range registered {
			registeredMap[c.Name] = true
			log.Println("Registered command:", c.Name)
		}
	}

	for _, c := range commands {
		if registeredMap[c.Name] {
			continue
		}
		if _, err := s.CreateCommand(appID, c); err != nil {
			var httperr *httputil.HTTPError
			if errors.As(err, &httperr) {
				log.Println(string(httperr.Body))
			}
			return fmt.Errorf("could not register: %s, %w", c.Name, err)
		}
		log.Println("Created command:", c.Name)
	}

	return nil
}

var adminOnly = discord.PermissionAdministrator

var commands = []api.CreateCommandData{
	{
		Name:        "problem",
		Description: "Render a judge problem description",
		Options: []discord.CommandOption{
			&discord.StringOption{
				OptionName:  "query",
				Description: "Problem ID or title keywords",
				Required:    true,
			},
			&discord.BooleanOption{
				OptionName:  "public",
				Description: "Post the description for everyone (requires permissions)",
			},
		},
	},
	{
		Name:        "preview",
		Description: "Render description markup (write \\n for a line break)",
		Options: []discord.CommandOption{
			&discord.StringOption{
				OptionName:  "text",
				Description: "Description markup",
				Required:    true,
			},
		},
	},
	{
		Name:        "info",
		Description: "Generic Bot Info",
	},
	{
		Name:                     "config",
		Description:              "Configure the bot",
		DefaultMemberPermissions: &adminOnly,
		Options: []discord.CommandOption{
			&discord.SubcommandGroupOption{
				OptionName:  "user",
				Description: "Manage user access to the bot",
				Subcommands: []*discord.SubcommandOption{
					{
						OptionName:  "ignore",
						Description: "Ignore commands from a user",
						Options: []discord.CommandOptionValue{
							&discord.UserOption{
								OptionName:  "user",
								Description: "User to ignore",
								Required:    true,
							},
						},
					},
					{
						OptionName:  "unignore",
						Description: "Stop ignoring commands from a user",
						Options: []discord.CommandOptionValue{
							&discord.UserOption{
								OptionName:  "user",
								Description: "User to unignore",
								Required:    true,
							},
						},
					},
					{
						OptionName:  "ignorelist",
						Description: "List all ignored users",
					},
				},
			},
		},
	},
}
