// Command doors starts Doors of Perception, a real-time maze game: dodge
// the ghosts, grab the coins, drop portals to exorcise your pursuers, and
// reach the exit before the clock runs out.
//
// The default command opens the game window. The layouts and validate
// subcommands work with layout files without starting the game. Flags
// control the layout directory, layout selection, and debug logging;
// LAYOUT_DIR from the environment (or a .env file) overrides the
// directory default.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/pocketportal/doors/game/config"
	"github.com/pocketportal/doors/game/engine"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Doors of Perception"
)

// getLayoutDirDefault returns the default layout directory. It first
// honors the LAYOUT_DIR environment variable, then falls back to
// "layouts".
func getLayoutDirDefault() string {
	if dir := os.Getenv("LAYOUT_DIR"); dir != "" {
		return dir
	}
	return "layouts"
}

func main() {
	// Load .env file if present (ignore errors if not found)
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cmd := &cli.Command{
		Name:    "doors",
		Usage:   "play Doors of Perception",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "layout",
				Usage: "layout name to play",
				Value: "classic",
			},
			&cli.StringFlag{
				Name:  "layout-dir",
				Usage: "directory containing layout files",
				Value: getLayoutDirDefault(),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: runPlay,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "open the game window (default)",
				Action: runPlay,
			},
			{
				Name:   "layouts",
				Usage:  "list available layouts",
				Action: runLayouts,
			},
			{
				Name:      "validate",
				Usage:     "validate a layout file",
				ArgsUsage: "<file>",
				Action:    runValidate,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// runPlay resolves the layout and opens the game window
func runPlay(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	layoutName := cmd.String("layout")
	layout, err := resolveLayout(cmd.String("layout-dir"), layoutName)
	if err != nil {
		return err
	}

	app, err := NewApp(layout)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"layout":   layout.Name,
		"monsters": len(layout.Monsters),
		"coins":    len(layout.Coins),
	}).Info("Starting game")

	ebiten.SetWindowSize(int(layout.ScreenWidth), int(layout.ScreenHeight))
	ebiten.SetWindowTitle(AppName)

	if err := ebiten.RunGame(app); err != nil {
		return err
	}
	return nil
}

// resolveLayout loads the named layout through a directory manager, or
// falls back to the built-in classic dungeon when no layout directory
// exists. The game stays playable with zero setup.
func resolveLayout(dir, name string) (*engine.LayoutConfig, error) {
	manager, err := config.NewManager(dir)
	if err != nil {
		if name != "" && name != "classic" {
			return nil, fmt.Errorf("layout %q requested but layout directory is unusable: %w", name, err)
		}
		logrus.WithField("dir", dir).Debug("No layout directory, using built-in layout")
		return engine.DefaultLayout(), nil
	}

	if name == "" {
		return manager.GetDefault(), nil
	}

	layout, err := manager.LoadLayout(name)
	if err != nil {
		if name == "classic" && err == config.ErrLayoutNotFound {
			return engine.DefaultLayout(), nil
		}
		return nil, fmt.Errorf("failed to load layout %q: %w", name, err)
	}
	return layout, nil
}

// runLayouts lists the layouts available in the layout directory
func runLayouts(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.String("layout-dir")
	manager, err := config.NewManager(dir)
	if err != nil {
		fmt.Printf("No layout directory at %s; the built-in classic layout is always available.\n", dir)
		return nil
	}

	infos, err := manager.ListLayouts()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Printf("No layouts in %s; the built-in classic layout is always available.\n", dir)
		return nil
	}

	for _, info := range infos {
		fmt.Printf("%-20s %-24s walls:%-3d monsters:%-3d coins:%-3d time:%-6g portals:%d\n",
			info.LayoutID, info.Name, info.Walls, info.Monsters, info.Coins,
			info.StartingTime, info.PortalBudget)
		if info.Description != "" {
			fmt.Printf("  %s\n", info.Description)
		}
	}
	return nil
}

// runValidate checks a single layout file
func runValidate(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("usage: doors validate <file>")
	}

	layout, err := engine.LoadLayout(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Printf("%s: ok (%s: %d walls, %d monsters, %d coins)\n",
		path, layout.Name, len(layout.Walls), len(layout.Monsters), len(layout.Coins))
	return nil
}
