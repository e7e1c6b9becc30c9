package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"al1905d/cli"
	"al1905d/collector"
	"al1905d/config"
	"al1905d/datamodel"
	"al1905d/dashboard"
	"al1905d/logger"
	"al1905d/platform"
	"al1905d/types"
	"al1905d/version"
)

func init() {
	// Force true color mode on Windows Terminal which supports it but doesn't
	// set COLORTERM environment variable. This enables proper background colors.
	// Safe to call even on terminals that don't support true color - they'll
	// just display the closest available colors.
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func main() {
	opts := cli.ParseArgs()

	if opts.ShowHelp {
		cli.PrintHelp()
		os.Exit(0)
	}
	if opts.ShowVersion {
		fmt.Printf("al1905d %s\n", version.String())
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cli.ApplyOverrides(&cfg, opts)

	if warnings := cfg.ValidateAndFix(); len(warnings) > 0 {
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	}

	if err := platform.CheckNpcap(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := platform.CheckPrivileges(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "%s\n", platform.GetPrivilegeHint())
		os.Exit(1)
	}

	interfaces, err := platform.GetEthernetInterfaces()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing interfaces: %v\n", err)
		os.Exit(1)
	}

	if opts.ListInterfaces {
		cli.PrintInterfaces(interfaces)
		os.Exit(0)
	}
	if opts.ListAllInterfaces {
		all, err := platform.GetAllInterfaces()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing all interfaces: %v\n", err)
			os.Exit(1)
		}
		cli.PrintAllInterfaces(interfaces, all)
		os.Exit(0)
	}

	if len(interfaces) == 0 {
		fmt.Fprintf(os.Stderr, "No suitable Ethernet interfaces found.\n")
		fmt.Fprintf(os.Stderr, "Make sure you have wired network adapters available.\n")
		os.Exit(1)
	}

	// Restrict capture to a single named interface if one was given,
	// either on the command line or in the config file.
	captureInterfaces := interfaces
	if cfg.CaptureInterface != "" {
		iface := cli.FindInterface(interfaces, cfg.CaptureInterface)
		if iface == nil {
			cli.PrintInterfaceError(cfg.CaptureInterface, interfaces)
			os.Exit(1)
		}
		captureInterfaces = []types.InterfaceInfo{*iface}
	}

	store := datamodel.New(datamodel.WithThresholds(
		cfg.DiscoveryThresholdMS,
		cfg.MaxAgeSeconds*1000,
		cfg.GCMaxAgeSeconds*1000,
	))

	// Seed the local interface table (C2) from every Ethernet interface on
	// the host, independent of which ones capture is restricted to.
	if _, err := platform.SeedLocalInterfaces(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding local interfaces: %v\n", err)
		os.Exit(1)
	}

	if mac, ok := cfg.ParsedALMAC(); ok {
		store.ALMacSet(mac)
	} else if len(interfaces) > 0 && len(interfaces[0].MAC) == 6 {
		var mac datamodel.MAC
		copy(mac[:], interfaces[0].MAC)
		store.ALMacSet(mac)
	}
	if mac, ok := cfg.ParsedRegistrarMAC(); ok {
		store.RegistrarMacSet(mac)
	}
	store.MapWholeNetworkSet(cfg.MapWholeNetwork)

	systemName := cfg.SystemName
	if systemName == "" {
		if hostname, err := os.Hostname(); err == nil {
			systemName = hostname
		} else {
			systemName = "al1905d"
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store.StartGC(ctx, time.Duration(cfg.GCIntervalSeconds)*time.Second)

	var collectors []*collector.Collector
	for _, iface := range captureInterfaces {
		if len(iface.MAC) != 6 {
			continue
		}
		var mac datamodel.MAC
		copy(mac[:], iface.MAC)

		col, err := collector.New(store, iface.Name, mac)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: not capturing on %s: %v\n", iface.Name, err)
			continue
		}
		collectors = append(collectors, col)
	}
	for _, col := range collectors {
		go func(c *collector.Collector) {
			c.Run(ctx)
		}(col)
	}

	var csvLogger *logger.CSVLogger
	logPath := ""
	if cfg.LoggingEnabled {
		csvLogger, err = logger.NewCSVLogger(cfg.LogDirectory)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: CSV logging disabled: %v\n", err)
		} else {
			logPath = csvLogger.Filepath()
			go csvLogger.Run(ctx, store, 5*time.Second)
		}
	}

	model := dashboard.New(store, systemName, logPath)
	p := tea.NewProgram(model, tea.WithAltScreen())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	_, runErr := p.Run()

	cancel()
	for _, col := range collectors {
		col.Close()
	}
	if csvLogger != nil {
		csvLogger.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", runErr)
		os.Exit(1)
	}
}
