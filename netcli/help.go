package netcli

import (
	"fmt"
	"path/filepath"

	"oss.ontoplane.com/netgraph/lib/version"
	"oss.ontoplane.com/netgraph/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--watch=false] [--steps=300] network.json [network.svg]

%[1]s lays out the network document network.json with a force-directed
simulation and renders it to network.svg. It defaults to network.svg if
an output path is not provided. With --snapshot, it writes the settled
node positions as JSON instead.

Use - to have %[1]s read from stdin or write to stdout.

The input document is JSON with two arrays: "things" (id, name,
category) and "connections" (source, target, strength).

Flags:
%[3]s
`, filepath.Base(ms.Name), version.Version, ms.Opts.Help())
}
