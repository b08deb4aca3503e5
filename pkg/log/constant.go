package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Level names accepted in ZapConfig.Level.
const (
	LevelDebug  = "debug"
	LevelInfo   = "info"
	LevelWarn   = "warn"
	LevelError  = "error"
	LevelFatal  = "fatal"
	LevelPanic  = "panic"
	LevelDPanic = "dpanic"
)

const (
	timeFormat = "2006-01-02 15:04:05.000"

	keyLevel   = "LEVEL"
	keyCaller  = "CALLER"
	keyTime    = "TIME"
	keyName    = "NAME"
	keyMessage = "MESSAGE"
)
