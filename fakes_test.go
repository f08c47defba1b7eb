package stitch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// blockCall is one call received by a fakeBlock.
type blockCall struct {
	op    string
	block string
	id    ID
	seq   int
}

// callLog is shared by the fake blocks of a test to observe ordering.
type callLog struct {
	calls []blockCall
}

func (l *callLog) record(op, block string, d *Drawable) {
	l.calls = append(l.calls, blockCall{op: op, block: block, id: d.ID(), seq: len(l.calls)})
}

func (l *callLog) count(op, block string) int {
	n := 0
	for _, c := range l.calls {
		if c.op == op && c.block == block {
			n++
		}
	}
	return n
}

func (l *callLog) seqOf(op, block string) int {
	for _, c := range l.calls {
		if c.op == op && c.block == block {
			return c.seq
		}
	}
	return -1
}

type fakeBlock struct {
	name    string
	log     *callLog
	members map[ID]*Drawable
}

func newFakeBlock(name string) *fakeBlock {
	return newLoggedBlock(name, &callLog{})
}

func newLoggedBlock(name string, log *callLog) *fakeBlock {
	return &fakeBlock{name: name, log: log, members: make(map[ID]*Drawable)}
}

func (b *fakeBlock) AddDrawable(d *Drawable) {
	b.log.record("add", b.name, d)
	b.members[d.ID()] = d
}

func (b *fakeBlock) RemoveDrawable(d *Drawable) {
	b.log.record("remove", b.name, d)
	delete(b.members, d.ID())
}

func (b *fakeBlock) MarkDirtyDrawable(d *Drawable) {
	b.log.record("dirty", b.name, d)
}

func (b *fakeBlock) String() string { return b.name }

// movingBlock additionally observes membership-preserving moves.
type movingBlock struct {
	*fakeBlock
}

func (b movingBlock) OnPotentiallyMovedDrawable(d *Drawable) {
	b.log.record("moved", b.name, d)
}

type fakeBackbone struct {
	name   string
	blocks []Block
}

func (bb *fakeBackbone) Blocks() []Block { return bb.blocks }
func (bb *fakeBackbone) String() string  { return bb.name }

// countingDisplay counts registrations without finalizing anything.
type countingDisplay struct {
	changed, links, disposals []*Drawable
}

func (c *countingDisplay) MarkDrawableChangedBlock(d *Drawable)   { c.changed = append(c.changed, d) }
func (c *countingDisplay) MarkDrawableForLinksUpdate(d *Drawable) { c.links = append(c.links, d) }
func (c *countingDisplay) MarkDrawableForDisposal(d *Drawable)    { c.disposals = append(c.disposals, d) }

var (
	canvas = NewRenderer(BackendCanvas, 0)
	svg    = NewRenderer(BackendSVG, 0)
)

// requireAssertion fails the test unless fn panics with *AssertionError
// for operation op.
func requireAssertion(t *testing.T, op string, fn func()) {
	t.Helper()
	if !AssertionsEnabled {
		t.Skip("assertions compiled out")
	}
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected assertion failure in %s", op)
		err, ok := r.(*AssertionError)
		require.True(t, ok, "panic value %T is not *AssertionError: %v", r, r)
		require.Equal(t, op, err.Op)
	}()
	fn()
}

// attach adds d to block under backbone and finalizes the frame.
func attach(t *testing.T, d *Drawable, block Block, backbone Backbone) {
	t.Helper()
	frame := NewFrame()
	d.NotePendingAddition(frame, block, backbone)
	frame.Finalize()
	require.Equal(t, block, d.Parent())
}
