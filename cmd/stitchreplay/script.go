package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"

	"github.com/gogpu/stitch"
	"github.com/gogpu/stitch/block"
)

// palette colors rect payloads by drawable ID.
var palette = []color.RGBA{
	{R: 0xe6, G: 0x19, B: 0x4b, A: 0xff},
	{R: 0x3c, G: 0xb4, B: 0x4b, A: 0xff},
	{R: 0x43, G: 0x63, B: 0xd8, A: 0xff},
	{R: 0xf5, G: 0x82, B: 0x31, A: 0xff},
	{R: 0x91, G: 0x1e, B: 0xb4, A: 0xff},
	{R: 0x46, G: 0xf0, B: 0xf0, A: 0xff},
}

// ordered is implemented by every block in package block.
type ordered interface {
	stitch.Block
	Name() string
	Backend() stitch.Backend
	Ordered() []*stitch.Drawable
	Err() error
}

// frameReport is what one "frame" command produced.
type frameReport struct {
	result    stitch.FrameResult
	repainted []string
	stats     stitch.PoolStats
}

// replayer executes a frame script against one pool and frame.
type replayer struct {
	config Config
	pool   *stitch.Pool
	frame  *stitch.Frame

	drawables map[string]*stitch.Drawable
	names     map[*stitch.Drawable]string
	blocks    map[string]ordered
	order     []string
	backbones map[string]*block.Backbone

	frames []frameReport
	line   int
}

func newReplayer(config Config) *replayer {
	var opts []stitch.PoolOption
	if !config.Display.MoveCanvasOnly {
		opts = append(opts, stitch.WithMovePredicate(func(stitch.Renderer) bool { return true }))
	}
	return &replayer{
		config:    config,
		pool:      stitch.NewPool(opts...),
		frame:     stitch.NewFrame(stitch.WithAudit(config.Display.Audit)),
		drawables: make(map[string]*stitch.Drawable),
		names:     make(map[*stitch.Drawable]string),
		blocks:    make(map[string]ordered),
		backbones: make(map[string]*block.Backbone),
	}
}

// run executes every line of src. Blank lines and lines starting with '#'
// are skipped. Registrations left after the last line are finalized as one
// more frame.
func (r *replayer) run(src io.Reader) error {
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		r.line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		args, err := shlex.Split(text)
		if err != nil {
			return errors.Wrapf(err, "line %d", r.line)
		}
		if err := r.exec(args); err != nil {
			return errors.Wrapf(err, "line %d: %s", r.line, args[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read script")
	}
	if r.frame.Pending() > 0 {
		return r.exec([]string{"frame"})
	}
	return nil
}

// exec runs one command, turning protocol assertions into errors.
func (r *replayer) exec(args []string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			ae, ok := p.(*stitch.AssertionError)
			if !ok {
				panic(p)
			}
			err = ae
		}
	}()

	cmd, args := args[0], args[1:]
	switch cmd {
	case "drawable":
		return r.cmdDrawable(args)
	case "block":
		return r.cmdBlock(args)
	case "backbone":
		return r.cmdBackbone(args)
	case "add":
		return r.cmdAdd(args)
	case "remove":
		return r.withDrawable(args, 1, func(d *stitch.Drawable, _ []string) error {
			if d.Parent() == nil {
				return fmt.Errorf("%s has no block", r.names[d])
			}
			d.NotePendingRemoval(r.frame)
			return nil
		})
	case "move":
		return r.withDrawable(args, 2, func(d *stitch.Drawable, args []string) error {
			b, err := r.block(args[0])
			if err != nil {
				return err
			}
			d.NotePendingMove(r.frame, b)
			return nil
		})
	case "connect":
		return r.cmdConnect(args)
	case "unlink-before":
		return r.withDrawable(args, 1, func(d *stitch.Drawable, _ []string) error {
			stitch.DisconnectBefore(d, r.frame)
			return nil
		})
	case "unlink-after":
		return r.withDrawable(args, 1, func(d *stitch.Drawable, _ []string) error {
			stitch.DisconnectAfter(d, r.frame)
			return nil
		})
	case "dispose":
		return r.withDrawable(args, 1, r.dispose)
	case "dispose-now":
		return r.withDrawable(args, 1, r.disposeNow)
	case "visible":
		return r.withDrawable(args, 2, func(d *stitch.Drawable, args []string) error {
			v, err := strconv.ParseBool(args[0])
			if err != nil {
				return err
			}
			d.SetVisible(v)
			return nil
		})
	case "dirty":
		return r.withDrawable(args, 1, func(d *stitch.Drawable, _ []string) error {
			d.MarkDirty()
			return nil
		})
	case "rect":
		return r.withDrawable(args, 5, r.rect)
	case "frame":
		if len(args) != 0 {
			return errors.New("frame takes no arguments")
		}
		r.finalize()
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (r *replayer) cmdDrawable(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New("usage: drawable NAME BACKEND [FLAGS]")
	}
	name := args[0]
	if _, dup := r.drawables[name]; dup {
		return fmt.Errorf("drawable %q already exists", name)
	}
	backend, err := stitch.ParseBackend(args[1])
	if err != nil {
		return err
	}
	var flags uint64
	if len(args) == 3 {
		if flags, err = strconv.ParseUint(args[2], 0, 24); err != nil {
			return errors.Wrap(err, "flags")
		}
	}
	d := r.pool.Create(stitch.NewRenderer(backend, uint32(flags)))
	r.drawables[name] = d
	r.names[d] = name
	return nil
}

func (r *replayer) cmdBlock(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: block NAME BACKEND")
	}
	name := args[0]
	if _, dup := r.blocks[name]; dup {
		return fmt.Errorf("block %q already exists", name)
	}
	backend, err := stitch.ParseBackend(args[1])
	if err != nil {
		return err
	}
	var b stitch.Block
	if backend == stitch.BackendCanvas {
		b = block.NewRaster(name, r.config.Raster.Width, r.config.Raster.Height)
	} else if b, err = block.New(backend, name); err != nil {
		return err
	}
	o, ok := b.(ordered)
	if !ok {
		return fmt.Errorf("block %q: %T cannot be reported", name, b)
	}
	r.blocks[name] = o
	r.order = append(r.order, name)
	return nil
}

func (r *replayer) cmdBackbone(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: backbone NAME [BLOCK...]")
	}
	name := args[0]
	if _, dup := r.backbones[name]; dup {
		return fmt.Errorf("backbone %q already exists", name)
	}
	blocks := make([]stitch.Block, 0, len(args)-1)
	for _, bn := range args[1:] {
		b, err := r.block(bn)
		if err != nil {
			return err
		}
		blocks = append(blocks, b)
	}
	r.backbones[name] = block.NewBackbone(name, blocks...)
	return nil
}

func (r *replayer) cmdAdd(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New("usage: add DRAWABLE BLOCK [BACKBONE]")
	}
	d, err := r.drawable(args[0])
	if err != nil {
		return err
	}
	b, err := r.block(args[1])
	if err != nil {
		return err
	}
	var bb stitch.Backbone
	if len(args) == 3 {
		found, ok := r.backbones[args[2]]
		if !ok {
			return fmt.Errorf("unknown backbone %q", args[2])
		}
		bb = found
	}
	d.NotePendingAddition(r.frame, b, bb)
	return nil
}

func (r *replayer) cmdConnect(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: connect A B")
	}
	a, err := r.drawable(args[0])
	if err != nil {
		return err
	}
	b, err := r.drawable(args[1])
	if err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("cannot connect %s to itself", args[0])
	}
	stitch.ConnectDrawables(a, b, r.frame)
	return nil
}

// dispose detaches d from its block and disposes it at the next frame.
func (r *replayer) dispose(d *stitch.Drawable, _ []string) error {
	name := r.names[d]
	if d.HasPendingAddition() {
		return fmt.Errorf("%s has a pending addition; finalize a frame first", name)
	}
	if d.Parent() != nil {
		d.NotePendingRemoval(r.frame)
	}
	d.MarkForDisposal(r.frame)
	r.forget(d)
	return nil
}

// disposeNow disposes a detached d immediately.
func (r *replayer) disposeNow(d *stitch.Drawable, _ []string) error {
	name := r.names[d]
	if d.Parent() != nil || d.HasPendingAddition() || d.HasPendingRemoval() {
		return fmt.Errorf("%s still belongs to a block; remove it and finalize a frame first", name)
	}
	d.DisposeImmediately(r.frame)
	r.forget(d)
	return nil
}

func (r *replayer) rect(d *stitch.Drawable, args []string) error {
	var v [4]int
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.Wrap(err, "rect")
		}
		v[i] = n
	}
	d.Payload = block.Paint{
		Rect:  image.Rect(v[0], v[1], v[2], v[3]),
		Color: palette[int(d.ID()-1)%len(palette)],
	}
	d.MarkDirty()
	return nil
}

func (r *replayer) forget(d *stitch.Drawable) {
	delete(r.drawables, r.names[d])
	delete(r.names, d)
}

// finalize ends the current frame and repaints every raster.
func (r *replayer) finalize() {
	rep := frameReport{result: r.frame.Finalize()}
	for _, name := range r.order {
		if raster, ok := r.blocks[name].(*block.Raster); ok && raster.Repaint() {
			rep.repainted = append(rep.repainted, name)
		}
	}
	rep.stats = r.pool.Stats()
	r.frames = append(r.frames, rep)
}

func (r *replayer) withDrawable(args []string, n int, fn func(*stitch.Drawable, []string) error) error {
	if len(args) != n {
		return fmt.Errorf("want %d arguments, got %d", n, len(args))
	}
	d, err := r.drawable(args[0])
	if err != nil {
		return err
	}
	return fn(d, args[1:])
}

func (r *replayer) drawable(name string) (*stitch.Drawable, error) {
	d, ok := r.drawables[name]
	if !ok {
		return nil, fmt.Errorf("unknown drawable %q", name)
	}
	return d, nil
}

func (r *replayer) block(name string) (stitch.Block, error) {
	b, ok := r.blocks[name]
	if !ok {
		return nil, fmt.Errorf("unknown block %q", name)
	}
	return b, nil
}

// firstRaster returns the first canvas block declared, or nil.
func (r *replayer) firstRaster() *block.Raster {
	for _, name := range r.order {
		if raster, ok := r.blocks[name].(*block.Raster); ok {
			return raster
		}
	}
	return nil
}
