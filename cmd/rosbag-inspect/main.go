// Command rosbag-inspect prints a summary of a ROS bag file: its
// connection and chunk counts, its connection table, and its index
// entries. Grounded on go-dictzip's urfave/cli-based single-command CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rosbagio/rosbag/internal/observability"
	"github.com/rosbagio/rosbag/pkg/blobstore"
	"github.com/rosbagio/rosbag/pkg/rosbag"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "rosbag-inspect: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "rosbag-inspect",
		Usage:     "inspect a ROS bag v2.0 file",
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "index",
				Usage: "dump index section entries",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log unknown header fields encountered while reading",
			},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.Exit("missing PATH argument", 2)
			}
			return inspect(c.Context, path, c.Bool("index"), c.Bool("verbose"))
		},
	}
}

func inspect(ctx context.Context, path string, dumpIndex, verbose bool) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := observability.NewCoreLogger(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		nil,
	)
	if verbose {
		rosbag.SetWarnLogger(logger.Logger)
	} else {
		rosbag.SetWarnLogger(observability.NewNoOpLogger().Logger)
	}

	f, err := blobstore.OpenLocalFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bag, err := rosbag.Open(ctx, f)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	fmt.Printf("connections: %d\n", bag.ConnCount())
	fmt.Printf("chunks:      %d\n", bag.ChunkCount())
	fmt.Printf("index_pos:   %d\n", bag.IndexPos())

	chunkRecs, err := bag.ChunkRecords(ctx)
	if err != nil {
		return err
	}
	var chunksSeen, messagesSeen int
	for {
		rec, err := chunkRecs.Next()
		if err != nil {
			logger.CaptureWarn("stopping at malformed chunk-section record", "error", err)
			break
		}
		if rec == nil {
			break
		}
		if ch, ok := rec.(*rosbag.Chunk); ok {
			chunksSeen++
			msgs := ch.Messages()
			for {
				m, err := msgs.Next()
				if err != nil {
					logger.CaptureWarn("stopping at malformed message-section record", "error", err)
					break
				}
				if m == nil {
					break
				}
				if _, ok := m.(*rosbag.MessageData); ok {
					messagesSeen++
				}
			}
		}
	}
	fmt.Printf("chunks read: %d, messages read: %d\n", chunksSeen, messagesSeen)

	if !dumpIndex {
		return nil
	}

	indexRecs, err := bag.IndexRecords(ctx)
	if err != nil {
		return err
	}
	fmt.Println("\nconnections:")
	for {
		rec, err := indexRecs.Next()
		if err != nil {
			logger.CaptureWarn("stopping at malformed index-section record", "error", err)
			break
		}
		if rec == nil {
			break
		}
		switch r := rec.(type) {
		case *rosbag.Connection:
			fmt.Printf("  [%d] %s -> %s (%s)\n", r.ID, r.StorageTopic, r.Topic, r.Type)
		case *rosbag.ChunkInfo:
			fmt.Printf("  chunk at %d: [%d, %d]\n", r.ChunkPos, r.StartTime, r.EndTime)
			entries := r.Entries()
			for {
				e, ok := entries.Next()
				if !ok {
					break
				}
				fmt.Printf("    conn=%d count=%d\n", e.ConnID, e.Count)
			}
		case *rosbag.IndexData:
			fmt.Printf("  index for conn=%d (ver=%d):\n", r.ConnID, r.Ver)
			entries := r.Entries()
			for {
				e, ok := entries.Next()
				if !ok {
					break
				}
				fmt.Printf("    time=%d offset=%d\n", e.Time, e.Offset)
			}
		}
	}
	return nil
}
