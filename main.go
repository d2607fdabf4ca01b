package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/frozenbrush/pkg/app"
	"github.com/decker502/frozenbrush/pkg/embedded"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag     = flag.String("config", "", "YAML config file (default: embedded data/brush.yaml)")
	seedFlag       = flag.Int64("seed", 0, "Random seed for particle directions (0 = time-based)")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen (toggle with F11)")
)

func main() {
	flag.Parse()

	// 初始化内嵌数据，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	brushApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Seed:       *seedFlag,
		Fullscreen: *fullscreenFlag,
	})
	if err != nil {
		// NewApp 在非 verbose 模式下会静默日志，致命错误仍需输出
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	brushApp.ApplyWindowSettings()

	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(brushApp); err != nil {
		log.Fatal(err)
	}
}
