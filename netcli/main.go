package netcli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.ontoplane.com/netgraph/graph"
	"oss.ontoplane.com/netgraph/lib/geo"
	"oss.ontoplane.com/netgraph/lib/log"
	"oss.ontoplane.com/netgraph/lib/version"
	"oss.ontoplane.com/netgraph/lib/xmain"
	"oss.ontoplane.com/netgraph/netsvg"
	"oss.ontoplane.com/netgraph/simulation"
	"oss.ontoplane.com/netgraph/viewport"
)

// DEFAULT_STEPS is how many simulation steps the CLI runs before the
// layout is considered settled.
const DEFAULT_STEPS = 300

func Run(ctx context.Context, ms *xmain.State) (err error) {
	ctx = log.Stderr(ctx)

	watchFlag, err := ms.Opts.Bool("NETGRAPH_WATCH", "watch", "w", false, "watch for changes to input and live reload. Use $HOST and $PORT to specify the listening address.\n(default localhost:0, which will open on a randomly available local port).")
	if err != nil {
		return err
	}
	hostFlag := ms.Opts.String("HOST", "host", "h", "localhost", "host listening address when used with watch")
	portFlag := ms.Opts.String("PORT", "port", "p", "0", "port listening address when used with watch")
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	stepsFlag, err := ms.Opts.Int64("NETGRAPH_STEPS", "steps", "s", DEFAULT_STEPS, "number of simulation steps to run before rendering")
	if err != nil {
		return err
	}
	widthFlag, err := ms.Opts.Int64("NETGRAPH_WIDTH", "width", "", 800, "canvas width in pixels")
	if err != nil {
		return err
	}
	heightFlag, err := ms.Opts.Int64("NETGRAPH_HEIGHT", "height", "", 600, "canvas height in pixels")
	if err != nil {
		return err
	}
	seedFlag, err := ms.Opts.Int64("NETGRAPH_SEED", "seed", "", 0, "seed for initial node placement. 0 means a time-based seed, so layouts differ across runs")
	if err != nil {
		return err
	}
	scaleFlag, err := ms.Opts.Float64("NETGRAPH_SCALE", "scale", "", 1.0, "zoom applied to the rendered output, clamped to the viewport's zoom range")
	if err != nil {
		return err
	}
	noLabelsFlag, err := ms.Opts.Bool("NETGRAPH_NO_LABELS", "no-labels", "", false, "omit node name labels from the rendered output")
	if err != nil {
		return err
	}
	snapshotFlag, err := ms.Opts.Bool("NETGRAPH_SNAPSHOT", "snapshot", "", false, "write a JSON position snapshot instead of SVG")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}
	browserFlag := ms.Opts.String("BROWSER", "browser", "", "", "browser executable that watch opens.")

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
		ms.Env.Setenv("DEBUG", "1")
	}
	if *browserFlag != "" {
		ms.Env.Setenv("BROWSER", *browserFlag)
	}

	if len(ms.Opts.Flags.Args()) == 0 {
		if *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	} else if len(ms.Opts.Flags.Args()) >= 3 {
		return xmain.UsageErrorf("too many arguments passed")
	}

	inputPath := ms.Opts.Flags.Arg(0)
	outputPath := ""
	if len(ms.Opts.Flags.Args()) >= 2 {
		outputPath = ms.Opts.Flags.Arg(1)
	} else if inputPath == "-" {
		outputPath = "-"
	} else if *snapshotFlag {
		outputPath = renameExt(inputPath, ".layout.json")
	} else {
		outputPath = renameExt(inputPath, ".svg")
	}
	if inputPath != "-" {
		inputPath = ms.AbsPath(inputPath)
	}
	if outputPath != "-" {
		outputPath = ms.AbsPath(outputPath)
	}

	if *stepsFlag < 0 {
		return xmain.UsageErrorf("--steps must not be negative. You provided: %d", *stepsFlag)
	}
	if *widthFlag <= 0 || *heightFlag <= 0 {
		return xmain.UsageErrorf("--width and --height must be positive. You provided: %dx%d", *widthFlag, *heightFlag)
	}

	lo := layoutOpts{
		steps:    *stepsFlag,
		width:    float64(*widthFlag),
		height:   float64(*heightFlag),
		seed:     *seedFlag,
		scale:    *scaleFlag,
		noLabels: *noLabelsFlag,
		snapshot: *snapshotFlag,
	}

	if *watchFlag {
		if inputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with reading input from stdin")
		}
		if *snapshotFlag {
			return xmain.UsageErrorf("-w[atch] cannot be combined with --snapshot")
		}
		w, err := newWatcher(ctx, ms, watcherOpts{
			layoutOpts: lo,
			host:       *hostFlag,
			port:       *portFlag,
			inputPath:  inputPath,
			outputPath: outputPath,
		})
		if err != nil {
			return err
		}
		return w.run()
	}

	ctx, cancel := log.WithTimeout(ctx, 0)
	defer cancel()

	out, err := compile(ctx, ms, lo, inputPath)
	if err != nil {
		return err
	}
	err = ms.WritePath(outputPath, out)
	if err != nil {
		return err
	}
	ms.Log.Success.Printf("successfully laid out %v to %v", ms.HumanPath(inputPath), ms.HumanPath(outputPath))
	return nil
}

type layoutOpts struct {
	steps    int64
	width    float64
	height   float64
	seed     int64
	scale    float64
	noLabels bool
	snapshot bool
}

// compile reads the network document at inputPath, settles the layout
// and serializes the result.
func compile(ctx context.Context, ms *xmain.State, lo layoutOpts, inputPath string) ([]byte, error) {
	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return nil, err
	}

	doc, err := graph.DecodeDocument(input)
	if err != nil {
		return nil, err
	}

	canvas := geo.NewBox(geo.NewPoint(0, 0), lo.width, lo.height)
	var bopts graph.BuildOptions
	if lo.seed != 0 {
		bopts.Rand = rand.New(rand.NewSource(lo.seed))
	}
	g := graph.Build(doc.Things, doc.Connections, canvas, &bopts)
	if g.Dropped > 0 {
		ms.Log.Warn.Printf("dropped %d connection(s) referencing unknown things", g.Dropped)
	}
	log.Debug(ctx, "built graph",
		slog.F("nodes", len(g.Nodes)),
		slog.F("edges", len(g.Edges)),
	)

	sim := simulation.New(g, nil)
	err = sim.Run(ctx, int(lo.steps))
	if err != nil {
		return nil, err
	}

	if lo.snapshot {
		return g.Snapshot().Encode()
	}

	vp := viewport.New()
	vp.SetScale(lo.scale)
	return netsvg.Render(g, vp, &netsvg.RenderOpts{
		NoLabels: lo.noLabels,
	})
}

func renameExt(fp string, newExt string) string {
	ext := filepath.Ext(fp)
	if ext == "" {
		return fp + newExt
	}
	return strings.TrimSuffix(fp, ext) + newExt
}
