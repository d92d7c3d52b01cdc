package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/kcl_browser/config"
	"github.com/mogaika/kcl_browser/pack/kcl"
	"github.com/mogaika/kcl_browser/utils"
	"github.com/mogaika/kcl_browser/utils/gltfutils"
)

func export(k *kcl.Kcl, format string, all bool, w io.Writer) error {
	switch format {
	case "obj":
		return k.ExportObj(w, !all)
	case "glb":
		return gltfutils.ExportBinary(w, k.ExportGLTF())
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(k.Summary())
	case "dump":
		_, err := io.WriteString(w, utils.SDump(k.Summary(), k.Marshal(!all).Triangles))
		return err
	default:
		return errors.Errorf("Unknown format %q", format)
	}
}

func run(in, out, format, cfgPath string, all bool) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrapf(err, "Cannot read %q", in)
	}

	k, err := kcl.Decode(data)
	if err != nil {
		return errors.Wrapf(err, "Cannot decode %q", in)
	}

	var cc config.ClassifyConfig
	if cfgPath != "" {
		if cc, err = config.LoadClassify(cfgPath); err != nil {
			return err
		}
	}
	k.Classify(&cc)

	log.Printf("[kclexport] %s: %d triangles (%d active) from %d prisms, dropped %d+%d",
		in, len(k.Triangles), k.ActiveCount(), k.PrismsCount, k.Dropped.OutOfBounds, k.Dropped.Degenerate)

	if out == "" || out == "-" {
		return export(k, format, all, os.Stdout)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0777); err != nil {
		return errors.Wrapf(err, "Cannot create output dir")
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "Cannot create %q", out)
	}
	defer f.Close()
	return export(k, format, all, f)
}

func main() {
	var in, out, format, cfgPath string
	var all bool
	flag.StringVar(&in, "in", "", "Path to .kcl file")
	flag.StringVar(&out, "out", "", "Output path, stdout if empty")
	flag.StringVar(&format, "format", "obj", "obj | glb | yaml | dump")
	flag.StringVar(&cfgPath, "config", "", "Path to yaml classification config")
	flag.BoolVar(&all, "all", false, "Export inactive triangles too (obj, dump)")
	flag.Parse()

	if in == "" {
		flag.PrintDefaults()
		return
	}

	format = strings.ToLower(format)
	if err := run(in, out, format, cfgPath, all); err != nil {
		log.Fatal(err)
	}
}
