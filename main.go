package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to a yaml config file (default ./config.yaml)")
	flag.StringVar(&opts.inputPath, "input", "", "workload file; without it the HTTP API is served")
	flag.StringVar(&opts.format, "format", "csv", "workload format: csv or text")
	flag.StringVar(&opts.algorithm, "algorithm", "all", "scheduling algorithm: srtf, rr or all")
	flag.IntVar(&opts.timeQuantum, "quantum", 0, "round robin time quantum (default from config)")
	flag.BoolVar(&opts.replay, "replay", false, "replay the schedule interactively")
	flag.Parse()

	cfg := loadConfig(opts.configPath)

	if opts.inputPath != "" {
		if err := runCLI(os.Stdout, opts, cfg); err != nil {
			log.Fatalln(err)
		}
		return
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	api.Register(app.Group("/api"), api.NewSchedulerHandlerImpl(cfg))

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

func loadConfig(path string) *config.SchedulerConfig {
	if path == "" {
		return config.GetSchedulerConfig()
	}
	cfg, err := config.LoadSchedulerConfig(path)
	if err != nil {
		log.Fatalln(err)
	}
	return cfg
}
