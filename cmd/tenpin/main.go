// tenpin generates, scores and compares ten-pin bowling frames.
//
// Usage:
//
//	tenpin generate                 - Generate random frames
//	tenpin score <frame>...         - Score frames given in notation
//	tenpin score --file card.yaml   - Score every frame on a card
//	tenpin match --random           - Play a random two-player match
//	tenpin match --file match.yaml  - Score a recorded match
//	tenpin version                  - Print the version
//
// Global flags:
//
//	--seed <value>       - RNG seed for reproducible output (default: random)
//	--config <path>      - Config file (default: ~/.tenpin/config.yaml)
//	--log-level <level>  - debug, info, warn or error
//	--profile <name>     - Preset first-ball weights
package main

import "os"

func main() {
	logger := newLogger(os.Stderr)
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
