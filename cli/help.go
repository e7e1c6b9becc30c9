package cli

import "fmt"

// PrintHelp prints the help message.
func PrintHelp() {
	help := `al1905d - IEEE 1905.1/1a Abstraction Layer topology daemon

Usage:
  al1905d [options] [interface]

Options:
  -l, --list-interfaces       List interfaces al1905d would seed into the
                               local interface table
  --list-all-interfaces       List all interfaces, including ones filtered
                               out, with the reason
  -v, --version                Show version
  -h, --help                    Show this help

Identity Options (C1):
  --name <string>               System name shown in the dashboard (default: hostname)
  --al-mac <mac>                Seed the local AL MAC (colon-separated hex)
  --registrar-mac <mac>         Seed the registrar MAC (colon-separated hex)
  --map-whole-network           Map the whole network, not just direct neighbors
  --no-map-whole-network        Map only direct neighbors (default)

Timing Options (C3/C4/C5, spec.md §6):
  --discovery-threshold-ms <n>  Bridged-link detection window (default: 120000)
  --max-age-seconds <n>         Device freshness window (default: 50)
  --gc-max-age-seconds <n>      Device eviction age; must exceed max-age (default: 90)
  --gc-interval-seconds <n>     GC ticker cadence; must be less than gc-max-age (default: 30)

Logging Options:
  --no-log                      Disable the CSV snapshot logger
  --log-dir <path>              Directory for CSV snapshot logs

Examples:
  al1905d                             # Seed all interfaces, collect on all
  al1905d eth0                         # Restrict capture to eth0
  al1905d --al-mac 02:11:22:33:44:55   # Pin the local AL MAC
  al1905d --map-whole-network          # Track the whole network, not just neighbors

Configuration:
  Config file: ~/.config/al1905d/config.toml (Linux/macOS)
               %APPDATA%\al1905d\config.toml (Windows)

  CLI flags override config file settings.
`
	fmt.Print(help)
}
