package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ChrisWren/airent-api/compiler/gen"
	"github.com/ChrisWren/airent-api/compiler/load"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [entity...]",
	Short: "Print the augmented strings and code of entities",
	Long: `Load and augment the schemas without writing any file, and print the
api strings, method flags and code fragments of the named entities as
YAML. Without arguments, all entities are printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := load.LoadGraph(cfgFile)
		if err != nil {
			return err
		}
		if err := gen.Augment(g, gen.WithVerbose(verbose), gen.WithLogger(newLogger())); err != nil {
			return err
		}
		return inspect(cmd.OutOrStdout(), g, args...)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// inspection is the printed view of an augmented entity.
type inspection struct {
	Entity   string            `yaml:"entity"`
	Strings  *gen.APIStrings   `yaml:"strings"`
	Booleans *gen.APIBooleans  `yaml:"booleans"`
	Bounds   map[string]string `yaml:"bounds,omitempty"`
	Code     gen.Code          `yaml:"code"`
}

func inspect(w io.Writer, g *gen.Graph, names ...string) error {
	entities := g.SortedEntities()
	if len(names) > 0 {
		entities = entities[:0:0]
		for _, n := range names {
			e, ok := g.Entities[n]
			if !ok {
				return fmt.Errorf("unknown entity %q", n)
			}
			entities = append(entities, e)
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	for _, e := range entities {
		v := inspection{
			Entity:   e.Name,
			Strings:  e.API.Strings,
			Booleans: e.API.Booleans,
			Code:     e.Code,
		}
		for _, f := range e.Fields {
			for _, b := range []string{f.Strings.MinVar, f.Strings.MaxVar} {
				if b == "" {
					continue
				}
				if v.Bounds == nil {
					v.Bounds = make(map[string]string)
				}
				v.Bounds[b] = f.Name
			}
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
