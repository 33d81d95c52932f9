package main

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
)

func TestPreviewText(t *testing.T) {
	cases := []struct {
		name   string
		option string
		want   string
	}{
		{"single line", "plain", "plain"},
		{"escaped breaks", `# T\n\n- a\n- b`, "# T\n\n- a\n- b"},
		{"real breaks kept", "a\nb", "a\nb"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, previewText(c.option))
		})
	}
}

func TestIgnoreList(t *testing.T) {
	embed := ignoreList(snowflakeLookup{})
	assert.Equal(t, "No users are being ignored.", embed.Description)

	embed = ignoreList(snowflakeLookup{
		discord.Snowflake(777): {},
		discord.Snowflake(42):  {},
	})
	assert.Equal(t, "<@!42>\n<@!777>", embed.Description)
}

func TestInfoText(t *testing.T) {
	text := infoText(1234, time.Now().Add(-time.Hour), 64<<10)
	assert.Contains(t, text, "Problems Indexed: 1,234\n")
	assert.Contains(t, text, "Index Refreshed: 1 hour ago\n")
	assert.Contains(t, text, "Description Limit: 66 kB\n")

	assert.NotContains(t, infoText(0, time.Time{}, 1), "Index Refreshed")
}

func TestBlacklistConcurrent(t *testing.T) {
	b := &botState{cfg: configuration{Blacklist: snowflakeLookup{}}}
	user := discord.Snowflake(42)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.setIgnored(user, true)
				b.setIgnored(user, false)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.ignored(user)
				_, err := json.Marshal(b.blacklist())
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.False(t, b.ignored(user))
	assert.True(t, b.setIgnored(user, true))
	assert.False(t, b.setIgnored(user, true))
	assert.True(t, b.ignored(user))
	assert.Len(t, b.blacklist(), 1)

	assert.True(t, b.setIgnored(user, false))
	assert.False(t, b.setIgnored(user, false))
}
