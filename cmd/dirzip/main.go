package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bencewok/dirzip/internal/config"
	"github.com/bencewok/dirzip/internal/filter"
	"github.com/bencewok/dirzip/internal/stats"
	"github.com/bencewok/dirzip/internal/zipper"
)

func main() {
	// Command line flags
	var (
		sourceFlag      = flag.String("source", "", "Directory to compress (default: current directory)")
		outputFlag      = flag.String("output", "", "Output directory (default: current directory)")
		nameFlag        = flag.String("name", "", "Custom base name for the archive")
		excludeFlag     = flag.String("exclude", "", "Comma-separated patterns to exclude (unioned with defaults)")
		noTimestampFlag = flag.Bool("no-timestamp", false, "Exclude the timestamp from the archive filename")
		configFlag      = flag.String("config", "", "Path to config file")
		verboseFlag     = flag.Bool("verbose", false, "Show each file as it is compressed")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *sourceFlag != "" {
		settings.SourcePath = *sourceFlag
	}
	if *outputFlag != "" {
		settings.OutputPath = *outputFlag
	}
	if *nameFlag != "" {
		settings.ArchiveName = *nameFlag
	}
	if *excludeFlag != "" {
		settings.ExcludePatterns = append(settings.ExcludePatterns, filter.ParsePatterns(*excludeFlag)...)
	}
	if *noTimestampFlag {
		settings.UseTimestamp = false
	}
	if *verboseFlag {
		settings.Verbose = true
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n🛑 Interrupted, cancelling...")
		cancel()
	}()

	manager := zipper.NewManager(settings, &consoleReporter{verbose: settings.Verbose})

	fmt.Println("📦 dirzip")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("Source: %s\n", settings.SourcePath)
	fmt.Println()

	fmt.Println("🔍 Discovering files...")
	if err := manager.Discover(ctx); err != nil {
		exit(ctx, err)
	}

	// Finish the reporter's "\r Found N files" line.
	fmt.Printf(" (%s)\n\n", stats.HumanSize(manager.TotalBytes()))

	fmt.Println("🚀 Starting compression...")
	if _, err := manager.Write(ctx); err != nil {
		exit(ctx, err)
	}

	fmt.Println()
	fmt.Println("✅ Successfully created archive:")
	fmt.Printf("📦 %s\n", manager.ArchivePath())
}

// exit maps a run failure to the process exit code: 130 for user
// cancellation, 2 for an empty source tree, 1 for everything else.
// Error messages have already been rendered by the reporter.
func exit(ctx context.Context, err error) {
	if ctx.Err() != nil {
		fmt.Println("Run cancelled.")
		os.Exit(130)
	}
	if errors.Is(err, zipper.ErrEmptySource) {
		os.Exit(2)
	}
	os.Exit(1)
}

// consoleReporter renders progress events as plain terminal output.
type consoleReporter struct {
	verbose bool
}

func (r *consoleReporter) DiscoveryProgress(count int) {
	fmt.Printf("\r   Found %d files", count)
}

func (r *consoleReporter) WriteProgress(index, total int, relPath string) {
	if r.verbose {
		fmt.Printf("   [%d/%d] %s\n", index, total, relPath)
		return
	}
	percent := float64(index) / float64(total) * 100
	// Pad the tail so a shorter path overwrites the previous line.
	fmt.Printf("\r   [%d/%d] %3.0f%% %-50s", index, total, percent, relPath)
}

func (r *consoleReporter) Complete(st stats.RunStats) {
	fmt.Println()
	fmt.Println("\n📊 Compression Statistics")
	fmt.Println("──────────────────────────────────────")
	fmt.Printf("  %-18s %s\n", "Source Directory:", st.SourceName)
	fmt.Printf("  %-18s %d\n", "Total Files:", st.FileCount)
	fmt.Printf("  %-18s %s\n", "Original Size:", stats.HumanSize(st.OriginalBytes))
	fmt.Printf("  %-18s %s\n", "Compressed Size:", stats.HumanSize(st.CompressedBytes))
	fmt.Printf("  %-18s %.1f%%\n", "Compression Ratio:", st.RatioPercent)
	fmt.Printf("  %-18s %.2fs\n", "Processing Time:", st.Elapsed.Seconds())
	fmt.Println("──────────────────────────────────────")
}

func (r *consoleReporter) Error(msg string) {
	fmt.Fprintf(os.Stderr, "\n❌ %s\n", msg)
}
