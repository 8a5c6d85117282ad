package centurion

import (
	"github.com/veandco/go-sdl2/sdl"
)

// LogPriority mirrors SDL_LogPriority.
type LogPriority int

const (
	LogVerbose LogPriority = iota + 1
	LogDebug
	LogInfo
	LogWarn
	LogError
	LogCritical
)

var logPriorityNames = map[LogPriority]string{
	LogVerbose:  "Verbose",
	LogDebug:    "Debug",
	LogInfo:     "Info",
	LogWarn:     "Warn",
	LogError:    "Error",
	LogCritical: "Critical",
}

func (p LogPriority) String() string {
	return EnumName(logPriorityNames, "LogPriority", p)
}

// LogCategory mirrors SDL_LogCategory.
type LogCategory int

const (
	CategoryApplication LogCategory = 0
	CategoryError       LogCategory = 1
	CategoryAssert      LogCategory = 2
	CategorySystem      LogCategory = 3
	CategoryAudio       LogCategory = 4
	CategoryVideo       LogCategory = 5
	CategoryRender      LogCategory = 6
	CategoryInput       LogCategory = 7
	CategoryTest        LogCategory = 8
	CategoryCustom      LogCategory = 19
)

var logCategoryNames = map[LogCategory]string{
	CategoryApplication: "Application",
	CategoryError:       "Error",
	CategoryAssert:      "Assert",
	CategorySystem:      "System",
	CategoryAudio:       "Audio",
	CategoryVideo:       "Video",
	CategoryRender:      "Render",
	CategoryInput:       "Input",
	CategoryTest:        "Test",
	CategoryCustom:      "Custom",
}

func (c LogCategory) String() string {
	return EnumName(logCategoryNames, "LogCategory", c)
}

// SetLogPriority sets the priority of a single category.
func SetLogPriority(category LogCategory, priority LogPriority) {
	sdl.LogSetPriority(int(category), sdl.LogPriority(priority))
}

// SetAllLogPriorities sets the priority of every category.
func SetAllLogPriorities(priority LogPriority) {
	sdl.LogSetAllPriority(sdl.LogPriority(priority))
}

// LogPriorityOf returns the priority of a category.
func LogPriorityOf(category LogCategory) LogPriority {
	return LogPriority(sdl.LogGetPriority(int(category)))
}

// ResetLogPriorities restores SDL's default priorities.
func ResetLogPriorities() {
	sdl.LogResetPriorities()
}

// LogMessage writes a message through SDL's logging facility.
func LogMessage(category LogCategory, priority LogPriority, format string, args ...any) {
	switch priority {
	case LogVerbose:
		sdl.LogVerbose(int(category), format, args...)
	case LogDebug:
		sdl.LogDebug(int(category), format, args...)
	case LogInfo:
		sdl.LogInfo(int(category), format, args...)
	case LogWarn:
		sdl.LogWarn(int(category), format, args...)
	case LogError:
		sdl.LogError(int(category), format, args...)
	case LogCritical:
		sdl.LogCritical(int(category), format, args...)
	}
}
