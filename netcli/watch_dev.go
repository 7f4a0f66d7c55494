//go:build dev

package netcli

func init() {
	devMode = true
}
