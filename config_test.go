package main

import (
	"encoding/json"
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
)

func TestSnowflakeLookup_MarshalJSON(t *testing.T) {
	lookup := snowflakeLookup{
		discord.Snowflake(1337): struct{}{},
		discord.Snowflake(42):   struct{}{},
		discord.Snowflake(777):  struct{}{},
	}

	d, err := json.Marshal(lookup)
	assert.NoError(t, err)
	assert.EqualValues(t, `["42","777","1337"]`, string(d))
}

func TestSnowflakeLookup_UnmarshalJSON(t *testing.T) {
	lookup := make(snowflakeLookup)
	input := []byte(`["1337","42","777"]`)

	err := json.Unmarshal(input, &lookup)
	assert.NoError(t, err)

	expected := snowflakeLookup{
		discord.Snowflake(1337): struct{}{},
		discord.Snowflake(42):   struct{}{},
		discord.Snowflake(777):  struct{}{},
	}

	assert.Equal(t, expected, lookup)

	err = json.Unmarshal([]byte(`["nope"]`), &lookup)
	assert.ErrorContains(t, err, `invalid snowflake "nope"`)
}

func TestConfigFromBytes(t *testing.T) {
	input := []byte(`
{
	"token": "secret",
	"judge_url": "https://judge.example.com",
	"permissions": {
		"share": [
			"1337"
		],
		"config": {
			"42": [
				"777"
			]
		}
	}
}
`)

	config, err := configFromBytes(input)
	assert.NoError(t, err)

	expected := configuration{
		Token:          "secret",
		JudgeURL:       "https://judge.example.com",
		MaxDescription: defaultMaxDescription,
		Permissions: commandPermissions{
			Share: snowflakeLookup{
				1337: {},
			},
			Config: map[discord.GuildID]snowflakeLookup{
				42: {
					777: {},
				},
			},
		},
		Blacklist: snowflakeLookup{},
	}

	assert.Equal(t, expected, config)
}

func TestConfigFromBytes_MaxDescription(t *testing.T) {
	config, err := configFromBytes([]byte(`{"max_description": 1024}`))
	assert.NoError(t, err)
	assert.Equal(t, 1024, config.MaxDescription)

	_, err = configFromBytes([]byte(`{"blacklist": "1"}`))
	assert.Error(t, err)
}
