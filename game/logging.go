package game

// flushPerf logs the rolling frame timing and appends it to perf.csv.
func (g *Game) flushPerf(tick int32) {
	stats := g.perf.Stats()
	stats.LogStats()
	if err := g.out.WritePerf(stats, tick); err != nil {
		g.log.Warn("perf write failed", "error", err)
	}
}
