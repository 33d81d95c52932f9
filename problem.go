package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/to404hanga/online-judge-frontend-sub000/judge"
)

const (
	indexRefresh = time.Hour * 6
	fetchTimeout = time.Second * 10
)

var (
	queryErr    = "Your query must be between 1 and 100 characters."
	notFound    = "Could not find a problem matching %q."
	fetchErr    = "Could not load problem `%s` from the judge."
	cannotShare = "You are not allowed to post problem descriptions publicly."
)

func (b *botState) updateProblems() {
	b.refreshProblems()

	ticker := time.NewTicker(indexRefresh)
	for range ticker.C {
		b.refreshProblems()
	}
}

func (b *botState) refreshProblems() {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	problems, err := judge.Problems(ctx, b.client, b.cfg.JudgeURL)
	if err != nil {
		log.Printf("Error querying problems: %v", err)
		return
	}

	b.mu.Lock()
	b.problems = problems
	b.refreshed = time.Now()
	b.mu.Unlock()

	log.Printf("Indexed %d problems", len(problems))
}

func (b *botState) index() []judge.Problem {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.problems
}

func (b *botState) handleProblem(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	// only required arg, always present
	query := strings.TrimSpace(d.Options.Find("query").String())
	public, _ := d.Options.Find("public").BoolValue()

	log.Printf("%s used problem(%q, %t)", e.User.Tag(), query, public)

	if len(query) < 1 || len(query) > 100 {
		b.respondEmbed(e, failEmbed("Error", queryErr), true)
		return
	}
	if public && !b.canShare(e) {
		b.respondEmbed(e, failEmbed("Error", cannotShare), true)
		return
	}

	id := query
	switch matches := judge.MatchAll(b.index(), query); len(matches) {
	case 0:
		// Hidden problems are not in the index but can still be fetched by ID.
	case 1:
		id = matches[0].ID
	default:
		b.respondEmbed(e, matchesEmbed(query, matches), true)
		return
	}

	deferred := api.InteractionResponse{
		Type: api.DeferredMessageInteractionWithSource,
		Data: &api.InteractionResponseData{},
	}
	if !public {
		deferred.Data.Flags = discord.EphemeralMessage
	}
	if err := b.state.RespondInteraction(e.ID, e.Token, deferred); err != nil {
		log.Println(fmt.Errorf("could not send interaction callback, %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	var embed discord.Embed
	p, err := judge.Fetch(ctx, b.client, b.cfg.JudgeURL, id)
	switch {
	case errors.Is(err, judge.ErrNotFound):
		embed = failEmbed("Error: Not Found", fmt.Sprintf(notFound, query))
	case err != nil:
		log.Printf("Problem request by %s(%q) failed: %v", e.User.Tag(), query, err)
		embed = failEmbed("Error", fmt.Sprintf(fetchErr, id))
	default:
		embed = problemEmbed(p, b.cfg.MaxDescription)
	}

	if _, err := b.state.EditInteractionResponse(e.AppID, e.Token, api.EditInteractionResponseData{
		Embeds: &[]discord.Embed{embed},
	}); err != nil {
		log.Printf("could not edit interaction response, %v", err)
	}
}

func (b *botState) handlePreview(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	text := previewText(d.Options.Find("text").String())

	log.Printf("%s used preview(%d bytes)", e.User.Tag(), len(text))

	b.respondEmbed(e, previewEmbed(text, b.cfg.MaxDescription), true)
}

// previewText reads the escape sequence \n as a line break, since slash
// command options are single line.
func previewText(option string) string {
	return strings.ReplaceAll(option, `\n`, "\n")
}

func (b *botState) canShare(e *gateway.InteractionCreateEvent) bool {
	// direct messages are private anyway
	if e.Member == nil {
		return true
	}

	for _, role := range e.Member.RoleIDs {
		if _, ok := b.cfg.Permissions.Share[discord.Snowflake(role)]; ok {
			return true
		}
	}

	perms, err := b.state.Permissions(e.ChannelID, e.User.ID)
	if err != nil {
		return false
	}
	return perms.Has(discord.PermissionAdministrator)
}
