package main

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/stitch"
)

const (
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// reporter writes the replay summary. Numbers are grouped for the English
// locale; ANSI styling is used only when color is set.
type reporter struct {
	p     *message.Printer
	color bool
}

func newReporter(color bool) *reporter {
	return &reporter{p: message.NewPrinter(language.English), color: color}
}

func (rp *reporter) style(code, s string) string {
	if !rp.color {
		return s
	}
	return code + s + ansiReset
}

// write prints one line per frame, the final block contents and totals.
func (rp *reporter) write(w io.Writer, r *replayer) error {
	var total stitch.FrameResult
	for _, f := range r.frames {
		res := f.result
		line := rp.p.Sprintf("visited %d, block changed %d, relinked %d, disposed %d, live %d",
			res.Visited, len(res.BlockChanged), res.Relinked, res.Disposed, f.stats.Live)
		if len(f.repainted) > 0 {
			line += ", repainted " + strings.Join(f.repainted, " ")
		}
		if _, err := rp.p.Fprintf(w, "%s: %s\n", rp.style(ansiBold, rp.p.Sprintf("frame %d", res.ID)), line); err != nil {
			return err
		}
		total.Visited += res.Visited
		total.Relinked += res.Relinked
		total.Disposed += res.Disposed
		total.BlockChanged = append(total.BlockChanged, res.BlockChanged...)
	}

	for _, name := range r.order {
		b := r.blocks[name]
		members := b.Ordered()
		names := make([]string, len(members))
		for i, d := range members {
			names[i] = r.label(d)
		}
		if _, err := rp.p.Fprintf(w, "block %s (%s): %s\n", name, b.Backend(), strings.Join(names, " ")); err != nil {
			return err
		}
		if err := b.Err(); err != nil {
			msg := strings.ReplaceAll(err.Error(), "\n", "; ")
			if _, err := rp.p.Fprintf(w, "  %s\n", rp.style(ansiRed, msg)); err != nil {
				return err
			}
		}
	}

	stats := r.pool.Stats()
	_, err := rp.p.Fprintf(w, "%d frames, %d visits, %d block changes, %d relinks, %d disposals; pool created %d reused %d live %d free %d\n",
		len(r.frames), total.Visited, len(total.BlockChanged), total.Relinked, total.Disposed,
		stats.Created, stats.Reused, stats.Live, stats.Free)
	return err
}

// label names d by its script name, falling back to its string form.
func (r *replayer) label(d *stitch.Drawable) string {
	if name, ok := r.names[d]; ok {
		return name
	}
	return d.String()
}
