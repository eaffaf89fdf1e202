package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"csdoc/internal/config"
	"csdoc/internal/crawler"
	"csdoc/internal/extractor"
	"csdoc/internal/generator"
	"csdoc/internal/markup"
	"csdoc/internal/storage"
	"csdoc/internal/syntax"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "csdoc [path]",
		Short: "Generate an HTML reference from C# XML documentation comments",
		Args:  cobra.MaximumNArgs(1),
		Run:   runGenerate,
	}
	configPath  string
	modeFlag    string
	outFlag     string
	catalogFlag string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&modeFlag, "mode", "m", "", "Render mode: standalone or fragment (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&outFlag, "out", "o", "", "Output file name (overrides config)")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "SQLite catalog path (overrides config)")

	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(catalogCmd)
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if modeFlag != "" {
		cfg.Output.Mode = modeFlag
	}
	if outFlag != "" {
		cfg.Output.File = outFlag
	}
	if catalogFlag != "" {
		cfg.Catalog.Path = catalogFlag
	}
	return cfg
}

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Scan C# sources and write the documentation page",
	Args:  cobra.MaximumNArgs(1),
	Run:   runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	root := cfg.Project.Root
	if len(args) > 0 {
		root = args[0]
	}

	mode, err := cfg.RenderMode()
	if err != nil {
		log.Fatalf("Invalid render mode: %v", err)
	}

	ext := extractor.NewExtractor(syntax.NewTreeSitterProvider())
	cr := crawler.NewCrawler(ext, cfg.Project.Ignore...)
	gen := generator.NewHTMLGenerator(cr, markup.NewTransformer(mode), generator.NewHTMLRenderer(mode, cfg.Output.Route))

	fmt.Printf("📂 Scanning directory: %s\n", root)
	start := time.Now()
	ctx := context.Background()
	doc, err := gen.Generate(ctx, root, cfg.Project.Name)
	switch {
	case errors.Is(err, crawler.ErrNoSourceFiles):
		fmt.Println("ℹ️  No C# source files found. Nothing to do.")
		return
	case errors.Is(err, generator.ErrNoDocumentation):
		fmt.Println("ℹ️  No documentation comments found. Nothing to do.")
		return
	case err != nil:
		log.Fatalf("Failed to generate documentation: %v", err)
	}

	fmt.Printf("✅ %d of %d files documented (%d summaries) in %v.\n",
		doc.Stats.FilesDocumented, doc.Stats.FilesScanned, doc.Stats.Summaries, time.Since(start))

	outPath := cfg.Output.File
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(root, outPath)
	}
	if err := doc.WriteFile(outPath); err != nil {
		log.Fatalf("Failed to write documentation: %v", err)
	}

	if cfg.Catalog.Path != "" {
		store, err := storage.NewSQLiteStore(cfg.Catalog.Path)
		if err != nil {
			log.Fatalf("Failed to open catalog: %v", err)
		}
		defer store.Close()

		fmt.Println("💾 Saving catalog...")
		if err := store.SaveItems(ctx, doc.Items); err != nil {
			log.Printf("⚠️ Failed to save catalog: %v", err)
		}
	}

	fmt.Printf("🎉 Documentation written to %s (%s mode)\n", outPath, mode)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the documentation catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the items stored in the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if cfg.Catalog.Path == "" {
			log.Fatal("No catalog configured (set catalog.path, CSDOC_CATALOG or --catalog)")
		}

		store, err := storage.NewSQLiteStore(cfg.Catalog.Path)
		if err != nil {
			log.Fatalf("Failed to open catalog: %v", err)
		}
		defer store.Close()

		items, err := store.LoadItems(context.Background())
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		if len(items) == 0 {
			fmt.Println("📭 Catalog is empty.")
			return
		}
		for _, it := range items {
			fmt.Printf("%-30s %-30s #%s (%d summaries)\n", it.Title, it.Namespace, it.Slug, len(it.Summaries))
		}
	},
}
