package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bigocheck/internal/config"
	"bigocheck/internal/engine"
	"bigocheck/internal/render"
	"bigocheck/internal/scanner"
	"bigocheck/internal/watcher"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	formatFlag         string
	watchFlag          bool
	configFlag         string
	generateConfigFlag bool
	problemSizeFlag    int64
	timeLimitFlag      int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bigocheck [files or directories]",
	Short: "A static complexity estimator for C/C++ source files",
	Long: `bigocheck scans C/C++ source files line by line, classifies loops,
library calls and memory declarations into asymptotic complexity
classes, and reports overall and per-function estimates.

Examples:
  bigocheck main.cpp                     # Analyze one file
  bigocheck src/                         # Analyze a directory
  bigocheck --format=json main.cpp       # Output results in JSON format
  bigocheck --n=1000000 --time-limit=2000 main.cpp
  bigocheck --generate-config            # Generate sample config file`,
	Run: runAnalysis,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format (console, json)")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch mode for development")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().BoolVar(&generateConfigFlag, "generate-config", false, "Generate sample configuration file")
	rootCmd.Flags().Int64Var(&problemSizeFlag, "n", 0, "Assumed problem size for the constraint check")
	rootCmd.Flags().IntVar(&timeLimitFlag, "time-limit", 0, "Time limit in ms for the constraint check")
}

func runAnalysis(cmd *cobra.Command, args []string) {

	if generateConfigFlag {
		generateConfig()
		return
	}

	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		color.Red("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if formatFlag != "" {
		cfg.Output.Format = formatFlag
	}
	if problemSizeFlag > 0 {
		cfg.Limits.ProblemSize = problemSizeFlag
	}
	if timeLimitFlag > 0 {
		cfg.Limits.TimeLimitMS = timeLimitFlag
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	fileScanner := scanner.NewScanner(cfg.Files.Exclude)
	files, err := fileScanner.ScanPaths(args)
	if err != nil {
		color.Red("Error collecting files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		color.Yellow("⚠️  No C/C++ files found to analyze\n")
		return
	}

	renderer := render.NewRenderer(cfg)

	if cfg.Output.Verbose {
		color.Cyan("🔍 Analyzing %d C/C++ files...\n", len(files))
		if configFlag != "" {
			color.Cyan("📋 Using configuration: %s\n\n", configFlag)
		}
	}

	analyzeAndReport(files, cfg, renderer)

	if watchFlag {
		runWatchMode(args, cfg, renderer)
	}
}

func analyzeAndReport(files []string, cfg *config.Config, renderer *render.Renderer) {
	for _, file := range files {
		result, err := engine.AnalyzeFile(file)
		if err != nil {
			if errors.Is(err, engine.ErrNotApplicable) {
				color.Yellow("⚠️  Skipping %s: not a recognized C/C++ source\n", file)
			} else {
				color.Red("Analysis failed for %s: %v\n", file, err)
			}
			continue
		}

		report := renderer.Render(result)

		if cfg.Output.OutputFile != "" {
			if err := writeReportToFile(report, cfg.Output.OutputFile); err != nil {
				color.Red("Failed to write report to file: %v\n", err)
			} else {
				color.Green("📄 Report saved to: %s\n", cfg.Output.OutputFile)
			}
		} else {
			fmt.Print(report)
		}
	}
}

func runWatchMode(paths []string, cfg *config.Config, renderer *render.Renderer) {
	fw, err := watcher.NewFileWatcher(cfg)
	if err != nil {
		color.Red("Failed to start watch mode: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	handler := func(changed []string) error {
		color.Cyan("\n🔄 Re-analyzing %d changed file(s)...\n", len(changed))
		analyzeAndReport(changed, cfg, renderer)
		return nil
	}

	if err := fw.Watch(paths, handler); err != nil {
		color.Red("Watch error: %v\n", err)
		os.Exit(1)
	}

	color.Cyan("👀 Watching for changes (Ctrl+C to stop)...\n")
	select {}
}

func writeReportToFile(report, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(filePath, []byte(report), 0644)
}

func generateConfig() {
	configPath := ".bigocheck.yml"
	if err := config.GenerateConfig(configPath); err != nil {
		color.Red("Failed to generate config file: %v\n", err)
		os.Exit(1)
	}
	color.Green("✅ Generated sample configuration file: %s\n", configPath)
	color.Cyan("📝 Edit this file to customize bigocheck behavior\n")
	color.Cyan("🚀 Run 'bigocheck --config=%s .' to use it\n", configPath)
}
