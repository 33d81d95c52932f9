package main

import (
	"bytes"
	"fmt"
	"runtime"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/dustin/go-humanize"
)

var started = time.Now().Unix()

func (b *botState) handleInfo(e *gateway.InteractionCreateEvent, _ *discord.CommandInteraction) {
	b.mu.RLock()
	indexed, refreshed := len(b.problems), b.refreshed
	b.mu.RUnlock()

	b.respondEmbed(e, discord.Embed{
		Title:       "Judge Docs",
		Description: infoText(indexed, refreshed, b.cfg.MaxDescription),
		Color:       accentColor,
	}, true)
}

func infoText(indexed int, refreshed time.Time, maxDescription int) string {
	stats := runtime.MemStats{}
	runtime.ReadMemStats(&stats)

	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "Go: %s\n", runtime.Version())
	fmt.Fprintf(buf, "Uptime: <t:%d:R>\n", started)
	fmt.Fprintf(buf, "Memory: %s / %s (alloc / sys)\n", humanize.Bytes(stats.Alloc), humanize.Bytes(stats.Sys))
	fmt.Fprintf(buf, "Concurrent Tasks: %s\n", humanize.Comma(int64(runtime.NumGoroutine())))
	fmt.Fprintf(buf, "Problems Indexed: %s\n", humanize.Comma(int64(indexed)))
	if !refreshed.IsZero() {
		fmt.Fprintf(buf, "Index Refreshed: %s\n", humanize.Time(refreshed))
	}
	fmt.Fprintf(buf, "Description Limit: %s\n", humanize.Bytes(uint64(maxDescription)))

	return buf.String()
}
