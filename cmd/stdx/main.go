// Command stdx demonstrates the library end to end: it generates Latin
// squares and random graphs from the terminal, with defaults optionally
// loaded from a yaml profile.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stdx/latin"
	"github.com/katalvlaran/stdx/randgraph"
)

// profile carries generation defaults loadable from a yaml file.
// Flags given on the command line win over profile values.
type profile struct {
	Latin latinProfile `yaml:"latin"`
	Graph graphProfile `yaml:"graph"`
}

type latinProfile struct {
	Order int   `yaml:"order"`
	Seed  int64 `yaml:"seed"`
}

type graphProfile struct {
	Kind        string  `yaml:"kind"`
	Vertices    int     `yaml:"vertices"`
	Probability float64 `yaml:"probability"`
	Degree      int     `yaml:"degree"`
	Seed        int64   `yaml:"seed"`
}

// defaultProfile returns the built-in generation defaults.
func defaultProfile() profile {
	var p profile
	p.Latin.Order = 9
	p.Latin.Seed = 1
	p.Graph.Kind = "sparse"
	p.Graph.Vertices = 10
	p.Graph.Probability = 0.3
	p.Graph.Degree = 3
	p.Graph.Seed = 1

	return p
}

// loadProfile reads the yaml profile at path over the defaults; an empty
// path returns the defaults untouched.
func loadProfile(path string) (profile, error) {
	p := defaultProfile()
	if path == "" {
		return p, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("profile %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("profile %s: %w", path, err)
	}

	return p, nil
}

func main() {
	cmd := cli.Command{
		Name:        "stdx",
		Description: "Playground CLI for the stdx data-structure library",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "profile", Usage: "yaml file with generation defaults"},
		},

		Commands: []*cli.Command{
			{
				Name:  "latin",
				Usage: "generate a random Latin square and print it",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "order", Aliases: []string{"n"}, Usage: "square order"},
					&cli.IntFlag{Name: "seed", Usage: "rng seed"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					p, err := loadProfile(c.String("profile"))
					if err != nil {
						return err
					}
					order, seed := p.Latin.Order, p.Latin.Seed
					if c.IsSet("order") {
						order = int(c.Int("order"))
					}
					if c.IsSet("seed") {
						seed = int64(c.Int("seed"))
					}

					sq, err := latin.Generate(order, rand.New(rand.NewSource(seed)))
					if err != nil {
						return err
					}
					fmt.Print(sq)

					return nil
				},
			},
			{
				Name:  "graph",
				Usage: "generate a random graph and print its edge list",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kind", Usage: "complete | cycle | sparse | regular"},
					&cli.IntFlag{Name: "vertices", Aliases: []string{"n"}, Usage: "vertex count"},
					&cli.FloatFlag{Name: "p", Usage: "edge probability (sparse)"},
					&cli.IntFlag{Name: "degree", Aliases: []string{"d"}, Usage: "vertex degree (regular)"},
					&cli.IntFlag{Name: "seed", Usage: "rng seed"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					p, err := loadProfile(c.String("profile"))
					if err != nil {
						return err
					}
					cfg := p.Graph
					if c.IsSet("kind") {
						cfg.Kind = c.String("kind")
					}
					if c.IsSet("vertices") {
						cfg.Vertices = int(c.Int("vertices"))
					}
					if c.IsSet("p") {
						cfg.Probability = float64(c.Float("p"))
					}
					if c.IsSet("degree") {
						cfg.Degree = int(c.Int("degree"))
					}
					if c.IsSet("seed") {
						cfg.Seed = int64(c.Int("seed"))
					}

					g, err := buildGraph(cfg)
					if err != nil {
						return err
					}
					fmt.Printf("vertices: %d, edges: %d\n", g.Order(), g.Size())
					for _, e := range g.Edges() {
						fmt.Printf("%d - %d\n", e[0], e[1])
					}

					return nil
				},
			},
		},

		Suggest: true,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "stdx:", err)
		os.Exit(1)
	}
}

// buildGraph dispatches on the profile's generator kind.
func buildGraph(cfg graphProfile) (*randgraph.Graph, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	switch cfg.Kind {
	case "complete":
		return randgraph.Complete(cfg.Vertices)
	case "cycle":
		return randgraph.Cycle(cfg.Vertices)
	case "sparse":
		return randgraph.Sparse(cfg.Vertices, cfg.Probability, rng)
	case "regular":
		return randgraph.Regular(cfg.Vertices, cfg.Degree, rng)
	default:
		return nil, fmt.Errorf("unknown graph kind %q (want complete|cycle|sparse|regular)", cfg.Kind)
	}
}
