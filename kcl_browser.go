package main

import (
	"flag"
	"log"

	"github.com/mogaika/kcl_browser/config"
	"github.com/mogaika/kcl_browser/vfs"
	"github.com/mogaika/kcl_browser/web"

	_ "github.com/mogaika/kcl_browser/pack/kcl"
)

func main() {
	var addr, dir, cfgPath string
	flag.StringVar(&addr, "i", "", "Address of server (default "+config.DefaultAddr+")")
	flag.StringVar(&dir, "dir", "", "Path to folder with .kcl files")
	flag.StringVar(&cfgPath, "config", "", "Path to yaml config")
	flag.Parse()

	var cfg config.Config
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	cfg.Resolve(config.Flags{Addr: addr, Dir: dir})

	if cfg.Dir == "" {
		flag.PrintDefaults()
		return
	}

	config.SetClassify(cfg.Classify)

	d := vfs.NewDirectoryDriver(cfg.Dir)
	log.Printf("[main] Serving collision files from %q", d.Path())
	if err := web.StartServer(cfg.Addr, d); err != nil {
		log.Fatal(err)
	}
}
