package main

import (
	"os"

	"github.com/btcsuite/btclog"

	"github.com/INLOpen/hollow"
	"github.com/INLOpen/hollow/maze"
)

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
var (
	backendLog = btclog.NewBackend(os.Stdout)

	walkLog = backendLog.Logger("WALK")
	holwLog = backendLog.Logger("HOLW")
	mazeLog = backendLog.Logger("MAZE")
)

// Initialize package-global logger variables.
func init() {
	hollow.UseLogger(holwLog)
	maze.UseLogger(mazeLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"WALK": walkLog,
	"HOLW": holwLog,
	"MAZE": mazeLog,
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.  Invalid levels are ignored.
func setLogLevels(logLevel string) {
	level, ok := btclog.LevelFromString(logLevel)
	if !ok {
		return
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}
