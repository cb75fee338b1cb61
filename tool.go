package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/gargakshite7/gulp-sourcemapsq/pipeline"
	"github.com/gargakshite7/gulp-sourcemapsq/sourcemaps"
)

const toolVersion = "1.0.0"

func main() {
	if err := rootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sourcemaps",
		Short:         "Attach and serialize source maps for files in a build pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(applyCommand(), versionCommand())
	return root
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tool version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(toolVersion)
		},
	}
}

// applyOptions is the flag surface of the apply command. The same fields can
// come from a TOML config file; explicit flags win.
type applyOptions struct {
	base           string
	out            string
	dest           string
	loadMaps       bool
	identityMap    bool
	addComment     bool
	includeContent bool
	sourceRoot     string
	urlPrefix      string
	debug          bool
	watch          bool
	config         string
}

func registerApplyFlags(fs *pflag.FlagSet, o *applyOptions) {
	fs.StringVarP(&o.base, "base", "b", ".", "base directory for relative display paths")
	fs.StringVarP(&o.out, "out", "o", "dist", "directory the processed files are written to")
	fs.StringVarP(&o.dest, "dest", "d", "", "map destination directory relative to each file; empty writes maps inline")
	fs.BoolVar(&o.loadMaps, "load-maps", false, "discover existing inline or external maps before synthesizing")
	fs.BoolVar(&o.identityMap, "identity-map", false, "synthesize syntax-aware identity maps")
	fs.BoolVar(&o.addComment, "add-comment", true, "insert the sourceMappingURL comment")
	fs.BoolVar(&o.includeContent, "include-content", true, "embed original source text in the map")
	fs.StringVar(&o.sourceRoot, "source-root", "", "sourceRoot value assigned onto every map")
	fs.StringVar(&o.urlPrefix, "url-prefix", "", "prefix prepended to external map URLs")
	fs.BoolVar(&o.debug, "debug", false, "report per-source backfill failures")
	fs.BoolVarP(&o.watch, "watch", "w", false, "keep running and re-apply on file changes")
	fs.StringVarP(&o.config, "config", "c", "", "TOML config file; explicit flags take precedence")
}

func applyCommand() *cobra.Command {
	opts := &applyOptions{}
	cmd := &cobra.Command{
		Use:   "apply [globs]",
		Short: "Run the init and write stages over the matched files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.config != "" {
				if err := loadConfigFile(opts.config, cmd.Flags(), opts); err != nil {
					return err
				}
			}
			paths, err := expandGlobs(args)
			if err != nil {
				return err
			}
			if err := runApply(opts, paths); err != nil {
				return err
			}
			if opts.watch {
				return watchAndRun(paths, func(changed []string) error {
					return runApply(opts, changed)
				})
			}
			return nil
		},
	}
	registerApplyFlags(cmd.Flags(), opts)
	return cmd
}

func expandGlobs(globs []string) ([]string, error) {
	seen := map[string]bool{}
	var paths []string
	for _, g := range globs {
		matches, err := filepath.Glob(g)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", g, err)
		}
		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err != nil {
				return nil, err
			}
			if !seen[abs] {
				seen[abs] = true
				paths = append(paths, abs)
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files matched")
	}
	sort.Strings(paths)
	return paths, nil
}

// runApply pushes each matched file through the Loader and Writer and writes
// every emitted file below the out directory. Independent files are processed
// concurrently; each file still moves through the stages one at a time.
func runApply(o *applyOptions, paths []string) error {
	base, err := filepath.Abs(o.base)
	if err != nil {
		return err
	}

	wopts := sourcemaps.WriteOptions{
		AddComment:     o.addComment,
		IncludeContent: o.includeContent,
		Debug:          o.debug,
	}
	if o.sourceRoot != "" {
		wopts.SourceRoot = sourcemaps.Literal(o.sourceRoot)
	}
	if o.urlPrefix != "" {
		wopts.SourceMappingURLPrefix = sourcemaps.Literal(o.urlPrefix)
	}
	stages := []pipeline.Stage{
		sourcemaps.NewLoader(sourcemaps.InitOptions{
			LoadMaps:    o.loadMaps,
			IdentityMap: o.identityMap,
			AddComment:  o.addComment,
			Debug:       o.debug,
		}),
		sourcemaps.NewWriter(o.dest, wopts),
	}

	var (
		g       errgroup.Group
		mu      sync.Mutex
		emitted []*pipeline.File
	)
	for _, p := range paths {
		p := p
		g.Go(func() error {
			content, err := os.ReadFile(p)
			if err != nil {
				return err
			}
			f := &pipeline.File{Path: p, Base: base, Contents: pipeline.Buffer(content)}
			out, err := pipeline.Run([]*pipeline.File{f}, stages...)
			if err != nil {
				return err
			}
			mu.Lock()
			emitted = append(emitted, out...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, f := range emitted {
		content, ok := f.Buffered()
		if !ok {
			continue
		}
		target := filepath.Join(o.out, filepath.FromSlash(f.Relative()))
		if err := os.MkdirAll(filepath.Dir(target), 0777); err != nil {
			return err
		}
		if err := os.WriteFile(target, content, 0666); err != nil {
			return err
		}
		log.Debugf("wrote %s", target)
	}
	return nil
}
