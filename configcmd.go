package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
)

func (b *botState) handleConfig(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	var embed discord.Embed

block:
	switch grp := d.Options[0]; grp.Name {
	case "user":
		switch cmd := grp.Options[0]; cmd.Name {
		case "ignore":
			user, _ := cmd.Options[0].SnowflakeValue()

			if ok := b.canIgnore(e.GuildID, user); !ok {
				embed = failEmbed("Error", fmt.Sprintf("You cannot ignore <@!%s>.", user))
				break block
			}

			if !b.setIgnored(user, true) {
				embed = failEmbed("Error", fmt.Sprintf("<@!%s> is already being ignored.", user))
				break block
			}

			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("<@!%s> is now going to be ignored from all commands.", user),
				Color:       accentColor,
			}

		case "unignore":
			user, _ := cmd.Options[0].SnowflakeValue()

			if !b.setIgnored(user, false) {
				embed = failEmbed("Error", fmt.Sprintf("<@!%s> is not being ignored.", user))
				break block
			}

			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("<@!%s> is now unignored.", user),
				Color:       accentColor,
			}

		case "ignorelist":
			embed = ignoreList(b.blacklist())
		}
	}

	if !strings.HasPrefix(embed.Title, "Error") {
		if err := b.persist(); err != nil {
			embed = failEmbed("Error", fmt.Sprintf("Could not save config: `%v`", err))
		}
	}

	b.respondEmbed(e, embed, true)
}

func (b *botState) ignored(user discord.Snowflake) bool {
	b.cfgMu.RLock()
	defer b.cfgMu.RUnlock()

	_, ok := b.cfg.Blacklist[user]
	return ok
}

// setIgnored adds user to or removes user from the blacklist. It returns
// false when the blacklist was already in that state.
func (b *botState) setIgnored(user discord.Snowflake, ignore bool) bool {
	b.cfgMu.Lock()
	defer b.cfgMu.Unlock()

	if _, ok := b.cfg.Blacklist[user]; ok == ignore {
		return false
	}
	if ignore {
		b.cfg.Blacklist[user] = struct{}{}
	} else {
		delete(b.cfg.Blacklist, user)
	}
	return true
}

// blacklist returns a copy of the ignored users.
func (b *botState) blacklist() snowflakeLookup {
	b.cfgMu.RLock()
	defer b.cfgMu.RUnlock()

	users := make(snowflakeLookup, len(b.cfg.Blacklist))
	for user := range b.cfg.Blacklist {
		users[user] = struct{}{}
	}
	return users
}

func (b *botState) persist() error {
	b.cfgMu.Lock()
	defer b.cfgMu.Unlock()
	return saveConfig(b.cfg)
}

func ignoreList(blacklist snowflakeLookup) discord.Embed {
	if len(blacklist) == 0 {
		return discord.Embed{
			Title:       "Ignored Users",
			Description: "No users are being ignored.",
			Color:       accentColor,
		}
	}

	users := make([]string, 0, len(blacklist))
	for user := range blacklist {
		users = append(users, fmt.Sprintf("<@!%s>", user))
	}
	sort.Strings(users)

	return discord.Embed{
		Title:       "Ignored Users",
		Description: strings.Join(users, "\n"),
		Color:       accentColor,
	}
}

func (b *botState) canIgnore(guild discord.GuildID, user discord.Snowflake) bool {
	if !guild.IsValid() {
		return false
	}

	m, err := b.state.Member(guild, discord.UserID(user))
	if err != nil {
		return false
	}
	for _, role := range m.RoleIDs {
		if _, ok := b.cfg.Permissions.Config[guild][discord.Snowflake(role)]; ok {
			return false
		}
	}
	return true
}
