/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// bridgectl inspects and dry-runs BridgeKit bridge configurations with
// the conversion plugins bundled in this repository.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"github.com/suparena/bridgekit"
	"github.com/suparena/bridgekit/config"
	"github.com/suparena/bridgekit/errors"
	"github.com/suparena/bridgekit/plugins/stdmsgs"
	"github.com/suparena/bridgekit/plugins/stdsrvs"
	"github.com/suparena/bridgekit/system/inproc"
	"github.com/suparena/bridgekit/xtypes"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configPath  = flag.String("config", "", "Bridge configuration YAML file")
	listFlag    = flag.Bool("list", false, "List registered type keys per factory kind")
	dryRunFlag  = flag.Bool("dry-run", false, "Instantiate configured bridges on an in-process runtime")
)

func main() {
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := bridgekit.GetVersionInfo()
		fmt.Printf("BridgeKit bridgectl version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	factory := bridgekit.New()
	bridgekit.Load(factory, stdmsgs.Plugin, stdsrvs.Plugin)

	if *listFlag {
		listRegistrations(factory)
	}

	if *configPath == "" {
		if !*listFlag {
			flag.Usage()
			os.Exit(2)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("bridgectl: %v", err)
	}
	fmt.Printf("Loaded %s: node %q, %d topics, %d services\n",
		*configPath, cfg.Node, len(cfg.Topics), len(cfg.Services))

	if *dryRunFlag {
		dryRun(factory, cfg)
	}
}

func listRegistrations(factory *bridgekit.Factory) {
	regs := factory.Registrations()

	kinds := make([]string, 0, len(regs))
	for kind := range regs {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		fmt.Printf("%s:\n", kind)
		for _, key := range regs[kind] {
			fmt.Printf("  %s\n", key)
		}
	}
}

// dryRun instantiates every configured bridge endpoint on a throwaway
// in-process node. Unsupported types are reported and skipped; one
// unbridgeable topic never fails the rest.
func dryRun(factory *bridgekit.Factory, cfg *config.Config) {
	node := inproc.NewNode(cfg.Node)
	discard := func(msg *xtypes.Data) {}

	for _, t := range cfg.Topics {
		msgType, err := factory.CreateType(t.Type)
		if err != nil {
			reportSkip("topic", t.Name, t.Type, err)
			continue
		}
		if _, err := factory.CreateSubscription(node, msgType, t.Name, discard, t.Queue(), nil); err != nil {
			reportSkip("topic", t.Name, t.Type, err)
			continue
		}
		if _, err := factory.CreatePublisher(node, t.Type, t.TargetName(), t.Queue(), t.Latch); err != nil {
			reportSkip("topic", t.Name, t.Type, err)
			continue
		}
		fmt.Printf("ok: topic %s (%s) -> %s\n", t.Name, t.Type, t.TargetName())
	}

	for _, s := range cfg.Services {
		if _, err := factory.CreateServerProxy(node, s.Type, s.Name); err != nil {
			reportSkip("service", s.Name, s.Type, err)
			continue
		}
		if _, err := factory.CreateClientProxy(node, s.Type, s.Name, discard); err != nil {
			reportSkip("service", s.Name, s.Type, err)
			continue
		}
		fmt.Printf("ok: service %s (%s)\n", s.Name, s.Type)
	}
}

func reportSkip(kind, name, typeName string, err error) {
	if errors.IsNotFound(err) {
		fmt.Printf("skip: %s %s: type %s is not registered\n", kind, name, typeName)
		return
	}
	fmt.Printf("skip: %s %s (%s): %v\n", kind, name, typeName, err)
}
