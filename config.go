package main

import (
	"encoding/json"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pkg/errors"
)

const (
	configFile = "config.json"

	defaultMaxDescription = 64 << 10
)

type configuration struct {
	Token    string `json:"token"`
	JudgeURL string `json:"judge_url"`

	// MaxDescription caps how many bytes of a description are parsed.
	MaxDescription int `json:"max_description"`

	Permissions commandPermissions `json:"permissions"`
	Blacklist   snowflakeLookup    `json:"blacklist"`
}

type commandPermissions struct {
	// Share holds the roles allowed to post descriptions publicly.
	Share snowflakeLookup `json:"share"`
	// Config holds, per guild, the roles that cannot be ignored.
	Config map[discord.GuildID]snowflakeLookup `json:"config"`
}

type snowflakeLookup map[discord.Snowflake]struct{}

func (s snowflakeLookup) MarshalJSON() ([]byte, error) {
	ids := make([]discord.Snowflake, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatUint(uint64(id), 10)
	}
	return json.Marshal(out)
}

func (s *snowflakeLookup) UnmarshalJSON(b []byte) error {
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}

	if *s == nil {
		*s = make(snowflakeLookup, len(ids))
	}
	for _, id := range ids {
		sf, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid snowflake %q", id)
		}
		(*s)[discord.Snowflake(sf)] = struct{}{}
	}
	return nil
}

func config() configuration {
	fileBytes, err := os.ReadFile(configFile)
	if err != nil {
		log.Fatal(errors.Wrap(err, "could not open config"))
	}

	cfg, err := configFromBytes(fileBytes)
	if err != nil {
		log.Fatal(errors.Wrap(err, "could not parse config"))
	}
	return cfg
}

func configFromBytes(b []byte) (configuration, error) {
	var cfg configuration
	if err := json.Unmarshal(b, &cfg); err != nil {
		return configuration{}, err
	}

	if cfg.MaxDescription == 0 {
		cfg.MaxDescription = defaultMaxDescription
	}
	if cfg.Permissions.Share == nil {
		cfg.Permissions.Share = snowflakeLookup{}
	}
	if cfg.Permissions.Config == nil {
		cfg.Permissions.Config = map[discord.GuildID]snowflakeLookup{}
	}
	if cfg.Blacklist == nil {
		cfg.Blacklist = snowflakeLookup{}
	}
	return cfg, nil
}

func saveConfig(cfg configuration) error {
	b, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return errors.Wrap(err, "could not encode config")
	}
	return errors.Wrap(os.WriteFile(configFile, b, 0o600), "could not write config")
}
