package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/lintang-b-s/grasp-maxcut/pkg"
	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/lintang-b-s/grasp-maxcut/pkg/generator"
	"github.com/lintang-b-s/grasp-maxcut/pkg/logger"
	"github.com/lintang-b-s/grasp-maxcut/pkg/logger/config"
	"github.com/lintang-b-s/grasp-maxcut/pkg/maxcut"
	"github.com/lintang-b-s/grasp-maxcut/pkg/osmparser"
	"github.com/lintang-b-s/grasp-maxcut/pkg/report"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	v, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logger.NewWithViper(v)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if v.GetBool("generate") {
		err = generate(v, log)
	} else {
		err = benchmark(ctx, v, log)
	}
	if err != nil {
		log.Fatal("maxcut failed", zap.Error(err))
	}
}

// loadConfig layers flags over MAXCUT_* environment variables over the optional config file
// over the defaults.
func loadConfig(args []string) (*viper.Viper, error) {
	fs := pflag.NewFlagSet("maxcut", pflag.ContinueOnError)
	fs.String("config", "", "yaml config file")
	fs.StringSlice("graphs", nil, "graph files (n m header, then 1-based u v w triples; .bz2 allowed)")
	fs.String("osm", "", "openstreetmap file (.osm or .osm.pbf) solved as an extra road network instance")
	fs.String("known-best", "", "yaml file mapping instance name to known best cut (defaults to the G-set values)")
	fs.String("out", "maxcut.csv", "output csv")
	fs.String("cut-dir", "", "directory for the best cut of every instance (<name>.cut, plus <name>.json for maps)")
	fs.Int("workers", 0, "instances solved in parallel (0 = one per cpu)")
	fs.Float64("alpha", pkg.DEFAULT_ALPHA, "semi-greedy RCL parameter in [0,1]")
	fs.Int("iterations", pkg.DEFAULT_GRASP_ITERATIONS, "GRASP iterations")
	fs.Int64("seed", pkg.DEFAULT_SEED, "random seed")
	fs.Int("trials", pkg.DEFAULT_RANDOMIZED_TRIALS, "randomized baseline trials")
	fs.Int("local-samples", pkg.DEFAULT_LOCAL_SAMPLES, "semi-greedy starts averaged for the local search column")
	fs.Int("log-level", config.INFO_LEVEL, "zap level, -1 debug .. 5 fatal")

	fs.Bool("generate", false, "write a synthetic instance instead of solving")
	fs.String("gen-kind", "random", "random, toroidal or geometric")
	fs.Int("gen-n", 800, "vertices (random, geometric)")
	fs.Float64("gen-density", 0.06, "edge probability (random)")
	fs.Int("gen-rows", 20, "torus rows (toroidal)")
	fs.Int("gen-cols", 40, "torus columns (toroidal)")
	fs.Float64("gen-radius", 1.5, "connection radius in km (geometric)")
	fs.String("gen-out", "random.txt", "generated graph file (.bz2 compresses)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	fs.VisitAll(func(f *pflag.Flag) {
		v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	v.SetEnvPrefix("MAXCUT")
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	graphs := append(v.GetStringSlice("graphs"), fs.Args()...)
	v.Set("graphs", graphs)
	return v, nil
}

func solverConfig(v *viper.Viper) (maxcut.Config, error) {
	cfg := maxcut.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func benchmark(ctx context.Context, v *viper.Viper, log *zap.Logger) error {
	cfg, err := solverConfig(v)
	if err != nil {
		return err
	}

	knownBest := report.DefaultKnownBest()
	if path := v.GetString("known_best"); path != "" {
		if knownBest, err = report.LoadKnownBest(path); err != nil {
			return err
		}
	}

	instances := make([]report.Instance, 0)
	for _, path := range v.GetStringSlice("graphs") {
		in, err := report.LoadInstance(path)
		if err != nil {
			log.Sugar().Warnf("could not load %s: %v", path, err)
		}
		instances = append(instances, in)
	}
	if path := v.GetString("osm"); path != "" {
		rn, err := osmparser.NewOSMParser(log).ParseFile(ctx, path)
		if err != nil {
			return err
		}
		instances = append(instances, report.Instance{
			Name:        report.InstanceName(path),
			Graph:       rn.Graph,
			Coordinates: rn.Coordinates,
		})
	}
	if len(instances) == 0 {
		return fmt.Errorf("no instances: pass graph files with --graphs or a map with --osm")
	}

	runner := report.Runner{
		Config:    cfg,
		Workers:   v.GetInt("workers"),
		KnownBest: knownBest,
		Logger:    log,
	}
	records, runErr := runner.Run(ctx, instances)
	if records == nil {
		return runErr
	}

	out := v.GetString("out")
	if err := report.WriteCSV(out, records); err != nil {
		return err
	}
	log.Sugar().Infof("csv file generated: %s", out)

	if dir := v.GetString("cut_dir"); dir != "" {
		if err := writeCuts(dir, instances, records); err != nil {
			return err
		}
	}
	return runErr
}

func writeCuts(dir string, instances []report.Instance, records []report.Record) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, rec := range records {
		if rec.Cut == nil {
			continue
		}
		if err := report.WriteAssignment(filepath.Join(dir, rec.Name+".cut"), rec.Cut); err != nil {
			return err
		}
		if coords := instances[i].Coordinates; coords != nil {
			if err := report.WriteSidesJSON(filepath.Join(dir, rec.Name+".json"), rec.Cut, coords); err != nil {
				return err
			}
		}
	}
	return nil
}

func generate(v *viper.Viper, log *zap.Logger) error {
	rng := maxcut.NewRand(v.GetInt64("seed"))
	out := v.GetString("gen_out")

	var (
		g   *datastructure.Graph
		err error
	)
	switch kind := v.GetString("gen_kind"); kind {
	case "random":
		g, err = generator.Random(v.GetInt("gen_n"), v.GetFloat64("gen_density"), 1, 1, rng)
	case "toroidal":
		g, err = generator.Toroidal(v.GetInt("gen_rows"), v.GetInt("gen_cols"), rng)
	case "geometric":
		var gi generator.GeometricInstance
		bbox := generator.BoundingBox{MinLat: -7.95, MinLon: 110.25, MaxLat: -7.55, MaxLon: 110.90}
		gi, err = generator.Geometric(v.GetInt("gen_n"), v.GetFloat64("gen_radius"), bbox, rng)
		if err == nil {
			g = gi.Graph
			err = os.WriteFile(out+".polyline", []byte(gi.Polyline()+"\n"), 0o644)
		}
	default:
		err = fmt.Errorf("unknown generator %q", kind)
	}
	if err != nil {
		return err
	}

	if err := datastructure.WriteGraphFile(out, g); err != nil {
		return err
	}
	log.Sugar().Infof("wrote %s: %d vertices, %d edges", out, g.NumberOfVertices(), g.NumberOfEdges())
	return nil
}
