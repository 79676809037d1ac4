package constants

const (
	AppName           = "practicelog"
	Version           = "v0.3.0"
	EnvPrefix         = "PRACTICELOG"
	DefaultConfigPath = "~/.config/practicelog/config.yaml"
	DefaultLogDir     = "~/.config/practicelog"

	// Converter defaults
	DefaultWideInput  = "Piano Songs Performance Record - Sheet1.csv"
	DefaultLongOutput = "historical_piano_data.csv"

	// Expander defaults
	DefaultSampleInput  = "app/docs/PlayTest_2024.csv"
	DefaultSampleOutput = "app/docs/PlayTest_XL.csv"
	DefaultSampleYears  = "2024,2023,2022,2021,2020"

	// DateTimeFormat is the timestamp layout of the long format (YYYY-MM-DD HH:MM:SS)
	DateTimeFormat = "2006-01-02 15:04:05"

	// ActivityTimeOfDay is the fixed time stamped on every converted activity
	ActivityTimeOfDay = "13:00:00"

	// UntrackedLength marks an activity whose duration was not recorded
	UntrackedLength = -1

	// DefaultPerformanceType is written for every converted activity
	DefaultPerformanceType = "practice"

	// Backup constants
	MaxBackups    = 14
	BackupDirName = "backups"
	BackupStamp   = "20060102-150405"
)

// Long-format column names, in file order.
const (
	HeaderDateTime        = "DateTime"
	HeaderLength          = "Length"
	HeaderActivityType    = "ActivityType"
	HeaderPiece           = "Piece"
	HeaderLevel           = "Level"
	HeaderPerformanceType = "PerformanceType"
	HeaderNotes           = "Notes"
)

// LongHeader is the header row of the activity log the tracker app imports.
var LongHeader = []string{
	HeaderDateTime,
	HeaderLength,
	HeaderActivityType,
	HeaderPiece,
	HeaderLevel,
	HeaderPerformanceType,
	HeaderNotes,
}

// Column positions in the long format.
const (
	ColDateTime = iota
	ColLength
	ColActivityType
	ColPiece
	ColLevel
	ColPerformanceType
	ColNotes
)

// Level bounds accepted by the tracker app on import.
const (
	MinLevel            = 1
	MaxPracticeLevel    = 4
	MaxPerformanceLevel = 3
)
