package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/eczemahub/pkg/config"
	"github.com/doodlesbykumbi/eczemahub/pkg/server"
	"github.com/doodlesbykumbi/eczemahub/pkg/server/endpoints"
	"github.com/doodlesbykumbi/eczemahub/pkg/store/memory"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the EczemaHub application server",
	Long: `Run the EczemaHub application server.

Requires the ECZEMAHUB_TOKEN_KEY environment variable (base64 signing
key for caller tokens).

The store lives in process memory. On start the server restores the
snapshot file if it exists; on SIGINT/SIGTERM it writes a fresh
snapshot before exiting. A half-written or corrupt snapshot aborts
startup rather than serving from partial state.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}
		if addr, _ := cmd.Flags().GetString("bind-address"); addr != "" {
			cfg.BindAddress = addr
		}
		if path, _ := cmd.Flags().GetString("snapshot"); path != "" {
			cfg.SnapshotPath = path
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		// Validate required environment variables first (fail fast)
		tokenKey, err := config.TokenKey()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		resources := memory.NewStore()

		// Restore must complete before the first request is served;
		// anything earlier would observe an empty store.
		if err := restoreSnapshot(resources, cfg.SnapshotPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to restore snapshot: %v\n", err)
			os.Exit(1)
		}

		s := server.NewServer(resources, tokenKey, cfg)
		endpoints.RegisterAll(s)

		errChan := make(chan error, 1)
		go func() {
			log.Printf("Running server at http://%s...\n", cfg.Addr())
			errChan <- s.Start()
		}()

		stopTrigger, err := watchSnapshotTrigger(resources, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch snapshot trigger: %v\n", err)
			os.Exit(1)
		}
		defer stopTrigger()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errChan:
			if err != nil {
				log.Fatal(err)
			}
		case sig := <-sigChan:
			log.Printf("Received %s, shutting down...\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.Shutdown(ctx); err != nil {
				log.Printf("Shutdown error: %v\n", err)
			}

			// Handlers are drained; the snapshot cannot race a mutation.
			if err := saveSnapshot(resources, cfg.SnapshotPath); err != nil {
				log.Fatalf("Failed to save snapshot: %v", err)
			}
			log.Printf("Snapshot saved to %s\n", cfg.SnapshotPath)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().IntP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address")
	serverCmd.Flags().String("snapshot", "", "store snapshot file path")
}

func defaultPort() int {
	if port := os.Getenv("ECZEMAHUB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 0
}

// restoreSnapshot rehydrates the store from path. A missing file is a
// cold start, not an error; anything else that fails is fatal to the
// caller because persistence is all-or-nothing.
func restoreSnapshot(resources *memory.Store, path string) error {
	blob, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("No snapshot at %s, starting empty\n", path)
		return nil
	}
	if err != nil {
		return err
	}

	if err := resources.Restore(blob); err != nil {
		return err
	}
	log.Printf("Restored snapshot from %s\n", path)
	return nil
}

// saveSnapshot serializes the store and writes it atomically
// (temp file + rename) so a crash mid-write never corrupts the
// previous snapshot.
func saveSnapshot(resources *memory.Store, path string) error {
	blob, err := resources.Snapshot()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
