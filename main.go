package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rook-computer/iconmaker/internal/app"
)

const (
	// EnvDebugLog names a file that receives component debug logging.
	EnvDebugLog = "ICONMAKER_DEBUG_LOG"
	// EnvStdioLog redirects stdout+stderr (including panics) to a file.
	EnvStdioLog = "ICONMAKER_STDIO_LOG"
)

func main() {
	if logPath := os.Getenv(EnvStdioLog); logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if debugPath := os.Getenv(EnvDebugLog); debugPath != "" {
		f, err := os.OpenFile(debugPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
		}
	}

	a := app.New(".", os.Stdout)
	a.Logger = logger
	if err := a.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "iconmaker: %+v\n", err)
		os.Exit(1)
	}
}
