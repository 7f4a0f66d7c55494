package main

import (
	"oss.ontoplane.com/netgraph/lib/xmain"
	"oss.ontoplane.com/netgraph/netcli"
)

func main() {
	xmain.Main(netcli.Run)
}
